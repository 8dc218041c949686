package httpserver

import (
	"errors"
	"net/http"

	"catalog-api/internal/domain"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

type errorResponse struct {
	Code    string              `json:"code"`
	Message string              `json:"message"`
	Fields  []domain.FieldError `json:"fields,omitempty"`
}

// writeError translates the domain error taxonomy to an HTTP response.
// Anything outside the taxonomy is a 500; its detail is logged, not leaked.
func writeError(c *gin.Context, logger zerolog.Logger, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, errorResponse{
			Code:    "VALIDATION",
			Message: "invalid input",
			Fields:  verr.Fields,
		})
	case errors.Is(err, domain.ErrCategoryNotFound):
		c.JSON(http.StatusBadRequest, errorResponse{
			Code:    "VALIDATION",
			Message: "invalid input",
			Fields:  []domain.FieldError{{Field: "categoryId", Message: "unknown category"}},
		})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, errorResponse{Code: "NOT_FOUND", Message: "resource not found"})
	case errors.Is(err, domain.ErrConflict):
		c.JSON(http.StatusConflict, errorResponse{Code: "CONFLICT", Message: "resource already exists"})
	default:
		logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("unhandled error")
		c.JSON(http.StatusInternalServerError, errorResponse{Code: "INTERNAL", Message: "internal server error"})
	}
}

func writeFieldErrors(c *gin.Context, fields []domain.FieldError) {
	c.JSON(http.StatusBadRequest, errorResponse{
		Code:    "VALIDATION",
		Message: "invalid input",
		Fields:  fields,
	})
}
