package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alhijaztravel/safarbay/internal/models"
	"github.com/alhijaztravel/safarbay/internal/services"
)

func ListPackages(ps *services.PackageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		packages, err := ps.ListPackages(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(packages, ""))
	}
}

func GetPackageByID(ps *services.PackageService) gin.HandlerFunc {
	return func(c *gin.Context) {
		pkg, err := ps.GetPackageByID(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(pkg, ""))
	}
}
