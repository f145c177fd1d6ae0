package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/alhijaztravel/safarbay/internal/gateway"
	"github.com/alhijaztravel/safarbay/internal/models"
)

// CreateTransaction is the bare token endpoint the payment widget bootstrap
// calls: order id, gross amount and customer details in, opaque token out.
func CreateTransaction(tokens gateway.TokenSource) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody struct {
			OrderID         string `json:"orderId" binding:"required"`
			GrossAmount     int64  `json:"grossAmount" binding:"required,gt=0"`
			CustomerDetails struct {
				Name  string `json:"name" binding:"required"`
				Email string `json:"email" binding:"required,email"`
				Phone string `json:"phone" binding:"required"`
			} `json:"customerDetails" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error":   "invalid transaction request",
				"details": err.Error(),
			})
			return
		}

		token, err := tokens.CreateToken(c.Request.Context(), reqBody.OrderID, reqBody.GrossAmount, gateway.CustomerDetails{
			Name:  reqBody.CustomerDetails.Name,
			Email: reqBody.CustomerDetails.Email,
			Phone: reqBody.CustomerDetails.Phone,
		})
		if err != nil {
			var gwErr *models.GatewayError
			if errors.As(err, &gwErr) {
				c.JSON(http.StatusBadGateway, gin.H{
					"error":   "failed to create transaction",
					"details": gwErr.Detail,
				})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "failed to create transaction",
				"details": err.Error(),
			})
			return
		}

		c.JSON(http.StatusOK, gin.H{"token": token})
	}
}
