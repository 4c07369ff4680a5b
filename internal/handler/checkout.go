package handler

import (
	"errors"
	"net/http"

	"accessrealty/internal/model"
	"accessrealty/internal/service"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles checkout-related HTTP requests
type CheckoutHandler struct {
	checkout *service.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(checkout *service.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout}
}

// CreateSession handles POST /api/v1/checkout/session
func (h *CheckoutHandler) CreateSession(c *gin.Context) {
	var req model.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.checkout.StartCheckout(c.Request.Context(), &req, c.Request.Host)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidPlan):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid plan selected"})
		case errors.Is(err, service.ErrPriceNotConfigured):
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment configuration error. Please contact support."})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error":   "Failed to create checkout session",
				"details": err.Error(),
			})
		}
		return
	}

	c.JSON(http.StatusOK, resp)
}
