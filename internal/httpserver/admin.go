package httpserver

import (
	"embed"
	"io/fs"
	"net/http"

	"github.com/gin-gonic/gin"
)

//go:embed web
var adminFS embed.FS

// registerAdminUI serves the embedded single-page admin at the root. The
// page talks to /api/v1 with plain fetch calls; the binary ships it so no
// separate frontend deployment is needed.
func registerAdminUI(router *gin.Engine) {
	sub, err := fs.Sub(adminFS, "web")
	if err != nil {
		// embed guarantees the directory exists at build time
		panic(err)
	}
	router.GET("/", func(c *gin.Context) {
		c.FileFromFS("index.html", http.FS(sub))
	})
}
