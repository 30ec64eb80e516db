package handler

import (
	"context"
	"math"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"mealhub/internal/payments"
)

// IntentCreator is the slice of the payment client the handler needs.
type IntentCreator interface {
	CreateIntent(ctx context.Context, amountMinor int64, currency string) (*payments.Intent, error)
}

type PaymentHandler interface {
	CreatePaymentIntent(c *gin.Context)
}

type paymentHandler struct {
	provider IntentCreator
	logger   *zap.Logger
}

func NewPaymentHandler(provider IntentCreator, logger *zap.Logger) PaymentHandler {
	return &paymentHandler{provider: provider, logger: logger}
}

type paymentIntentRequest struct {
	Price float64 `json:"price"`
}

// CreatePaymentIntent handles POST /create-payment-intent. The price is a
// major-unit decimal; the provider is always charged in integer minor
// units of USD.
func (h *paymentHandler) CreatePaymentIntent(c *gin.Context) {
	var req paymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid payload"})
		return
	}
	if req.Price <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"message": "price must be positive"})
		return
	}

	amount := int64(math.Round(req.Price * 100))
	intent, err := h.provider.CreateIntent(c.Request.Context(), amount, "usd")
	if err != nil {
		h.logger.Error("Failed to create payment intent", zap.Float64("price", req.Price), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"clientSecret": intent.ClientSecret})
}
