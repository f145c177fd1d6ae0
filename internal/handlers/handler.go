package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/alhijaztravel/safarbay/internal/models"
)

// respondError maps the flow's error classes onto HTTP statuses. Anything
// unclassified falls back to 500, or 404 for lookups that missed.
func respondError(c *gin.Context, err error) {
	var valErr *models.ValidationError
	var gwErr *models.GatewayError

	switch {
	case errors.As(err, &valErr):
		c.JSON(http.StatusBadRequest, models.ErrorResponse(valErr.Error()))
	case errors.As(err, &gwErr):
		c.JSON(http.StatusBadGateway, models.ErrorResponse(gwErr.Error()))
	case strings.Contains(err.Error(), "not found"):
		c.JSON(http.StatusNotFound, models.ErrorResponse(err.Error()))
	case strings.Contains(err.Error(), "does not belong"):
		c.JSON(http.StatusForbidden, models.ErrorResponse(err.Error()))
	case strings.Contains(err.Error(), "already processed"):
		c.JSON(http.StatusConflict, models.ErrorResponse(err.Error()))
	default:
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(err.Error()))
	}
}
