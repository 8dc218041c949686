package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

func listProductsHandler(svc ProductService, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		params, fields := parseListProductsQuery(c.Request.URL.Query())
		if fields != nil {
			writeFieldErrors(c, fields)
			return
		}
		page, err := svc.List(c.Request.Context(), params)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, page)
	}
}

func getProductHandler(svc ProductService, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, fields := parseID(c.Param("id"))
		if fields != nil {
			writeFieldErrors(c, fields)
			return
		}
		product, err := svc.Get(c.Request.Context(), id)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, product)
	}
}

func createProductHandler(svc ProductService, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req createProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Code: "INVALID_BODY", Message: "malformed JSON body"})
			return
		}
		params, fields := req.validate()
		if fields != nil {
			writeFieldErrors(c, fields)
			return
		}
		created, err := svc.Create(c.Request.Context(), params)
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusCreated, created)
	}
}

func updateProductHandler(svc ProductService, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, fields := parseID(c.Param("id"))
		if fields != nil {
			writeFieldErrors(c, fields)
			return
		}
		var req updateProductRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, errorResponse{Code: "INVALID_BODY", Message: "malformed JSON body"})
			return
		}
		updated, err := svc.Update(c.Request.Context(), id, req.params())
		if err != nil {
			writeError(c, logger, err)
			return
		}
		c.JSON(http.StatusOK, updated)
	}
}

func deleteProductHandler(svc ProductService, logger zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, fields := parseID(c.Param("id"))
		if fields != nil {
			writeFieldErrors(c, fields)
			return
		}
		if err := svc.Delete(c.Request.Context(), id); err != nil {
			writeError(c, logger, err)
			return
		}
		c.Status(http.StatusNoContent)
	}
}
