package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alhijaztravel/safarbay/internal/helpers"
	"github.com/alhijaztravel/safarbay/internal/models"
	"github.com/alhijaztravel/safarbay/internal/services"
)

func callerClaims(c *gin.Context) (*helpers.EnhancedClaims, bool) {
	claims, exists := c.Get("user")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return nil, false
	}
	userClaims, ok := claims.(*helpers.EnhancedClaims)
	if !ok {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user claims"})
		return nil, false
	}
	return userClaims, true
}

func ListBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := callerClaims(c)
		if !ok {
			return
		}

		bookings, err := bs.ListBookings(c.Request.Context(), claims.UserID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(bookings, ""))
	}
}

func GetBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := callerClaims(c)
		if !ok {
			return
		}

		booking, err := bs.GetBooking(c.Request.Context(), c.Param("orderId"), claims.UserID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(booking, ""))
	}
}

// ConsumeWelcome hands the post-checkout welcome banner to the dashboard. The
// flag is read-once; a second call returns no data.
func ConsumeWelcome(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := callerClaims(c)
		if !ok {
			return
		}

		payload, err := bs.ConsumeWelcome(c.Request.Context(), claims.UserID)
		if err != nil {
			respondError(c, err)
			return
		}
		if payload == nil {
			c.JSON(http.StatusOK, models.SuccessResponse(nil, "no welcome banner staged"))
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(payload, ""))
	}
}
