package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alhijaztravel/safarbay/internal/gateway"
	"github.com/alhijaztravel/safarbay/internal/models"
	"github.com/alhijaztravel/safarbay/internal/services"
)

func StartCheckout(cs *services.CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody struct {
			PackageID string `json:"package_id" binding:"required"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("package_id is required"))
			return
		}

		view, err := cs.StartSession(c.Request.Context(), reqBody.PackageID)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, models.SuccessResponse(view, "checkout started"))
	}
}

func GetCheckout(cs *services.CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := cs.GetSession(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(view, ""))
	}
}

func AbandonCheckout(cs *services.CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if err := cs.Abandon(c.Param("id")); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(nil, "checkout abandoned"))
	}
}

func UpdateContact(cs *services.CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody struct {
			Name     string `json:"name"`
			Email    string `json:"email"`
			Password string `json:"password"`
			Phone    string `json:"phone"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		view, err := cs.UpdateContact(c.Param("id"), models.PrimaryContact{
			Name:     reqBody.Name,
			Email:    reqBody.Email,
			Password: reqBody.Password,
			Phone:    reqBody.Phone,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(view, ""))
	}
}

func UpdateCompanion(cs *services.CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid companion index"))
			return
		}

		var reqBody struct {
			Name     string `json:"name"`
			Whatsapp string `json:"whatsapp"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		view, err := cs.UpdateCompanion(c.Param("id"), index, reqBody.Name, reqBody.Whatsapp)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(view, ""))
	}
}

func IncrementPax(cs *services.CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := cs.IncrementPax(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(view, view.Notice))
	}
}

func DecrementPax(cs *services.CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := cs.DecrementPax(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(view, view.Notice))
	}
}

func SetPax(cs *services.CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody struct {
			Pax int `json:"pax"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		view, err := cs.SetPax(c.Param("id"), reqBody.Pax)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(view, ""))
	}
}

func RemoveCompanion(cs *services.CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		index, err := strconv.Atoi(c.Param("index"))
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid companion index"))
			return
		}

		view, err := cs.RemoveCompanion(c.Param("id"), index)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(view, view.Notice))
	}
}

func SetCodes(cs *services.CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody struct {
			VoucherCode  string `json:"voucher_code"`
			ReferralCode string `json:"referral_code"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("invalid request body"))
			return
		}

		view, err := cs.SetCodes(c.Param("id"), reqBody.VoucherCode, reqBody.ReferralCode)
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(view, ""))
	}
}

func SubmitCheckout(cs *services.CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := cs.Submit(c.Request.Context(), c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(view, "payment token issued"))
	}
}

// PaymentOutcome receives the widget callback the browser relays: exactly one
// of success / pending / error / close per payment attempt.
func PaymentOutcome(cs *services.CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		var reqBody struct {
			Result        string `json:"result" binding:"required"`
			TransactionID string `json:"transaction_id"`
			PaymentType   string `json:"payment_type"`
			StatusMessage string `json:"status_message"`
		}
		if err := c.ShouldBindJSON(&reqBody); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse("result is required"))
			return
		}

		kind, err := gateway.ParseOutcomeKind(reqBody.Result)
		if err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(err.Error()))
			return
		}

		view, err := cs.HandleOutcome(c.Request.Context(), c.Param("id"), gateway.Outcome{
			Kind:          kind,
			TransactionID: reqBody.TransactionID,
			PaymentType:   reqBody.PaymentType,
			Message:       reqBody.StatusMessage,
		})
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(view, view.Notice))
	}
}

func BackToDetails(cs *services.CheckoutService) gin.HandlerFunc {
	return func(c *gin.Context) {
		view, err := cs.Back(c.Param("id"))
		if err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, models.SuccessResponse(view, ""))
	}
}
