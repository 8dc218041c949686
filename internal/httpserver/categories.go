package httpserver

import (
	"net/http"

	"catalog-api/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func listCategoriesHandler(svc CategoryService, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		categories, err := svc.List(c.Request.Context())
		if err != nil {
			writeError(c, logger, err)
			return
		}
		if categories == nil {
			categories = []domain.Category{}
		}
		c.JSON(http.StatusOK, categories)
	}
}

func createCategoryHandler(svc CategoryService, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createCategoryRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Code: "INVALID_BODY", Message: "malformed JSON body"})
			return
		}
		name, fields := req.validate()
		if fields != nil {
			writeFieldErrors(c, fields)
			return
		}
		created, err := svc.Create(c.Request.Context(), name)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}
