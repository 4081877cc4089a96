package handlers

import (
	"net/http"

	"glowdesk/models"
	"glowdesk/services/payment"

	"github.com/gin-gonic/gin"
)

// PaymentHandler exposes payout methods and the booking fee setting.
type PaymentHandler struct {
	Payments payment.PaymentService
}

func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Payments: svc}
}

// ListMethodsHandler returns the stylist's payout methods, masked.
func (h *PaymentHandler) ListMethodsHandler(c *gin.Context) {
	stylistID, token := currentIdentity(c)

	methods, err := h.Payments.Methods(c.Request.Context(), token, stylistID)
	if err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"paymentMethods": methods})
}

// AddMethodHandler records a new payout method for the stylist.
func (h *PaymentHandler) AddMethodHandler(c *gin.Context) {
	stylistID, token := currentIdentity(c)

	var req struct {
		MethodName    string `json:"methodName" binding:"required"`
		AccountNumber string `json:"accountNumber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	method := models.PaymentMethod{
		StylistID:     stylistID,
		MethodName:    req.MethodName,
		AccountNumber: req.AccountNumber,
	}
	created, err := h.Payments.AddMethod(c.Request.Context(), token, method)
	if err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// EditMethodHandler updates an existing payout method.
func (h *PaymentHandler) EditMethodHandler(c *gin.Context) {
	_, token := currentIdentity(c)
	id := models.ID(c.Param("id"))

	var req struct {
		MethodName    string `json:"methodName" binding:"required"`
		AccountNumber string `json:"accountNumber" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	updated, err := h.Payments.EditMethod(c.Request.Context(), token, id, req.MethodName, req.AccountNumber)
	if err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// RemoveMethodHandler deletes a payout method.
func (h *PaymentHandler) RemoveMethodHandler(c *gin.Context) {
	_, token := currentIdentity(c)
	id := models.ID(c.Param("id"))

	if err := h.Payments.RemoveMethod(c.Request.Context(), token, id); err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "payment method removed"})
}

// GetFeeHandler returns the stylist's booking fee. A null percent means the
// fee has never been set.
func (h *PaymentHandler) GetFeeHandler(c *gin.Context) {
	stylistID, token := currentIdentity(c)

	fee, err := h.Payments.Fee(c.Request.Context(), token, stylistID)
	if err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	if fee == nil {
		fee = &models.BookingFee{StylistID: stylistID}
	}
	c.JSON(http.StatusOK, fee)
}

// SetFeeHandler sets or clears the stylist's booking fee percent.
func (h *PaymentHandler) SetFeeHandler(c *gin.Context) {
	stylistID, token := currentIdentity(c)

	var req struct {
		Percent *float64 `json:"percent"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if req.Percent != nil && (*req.Percent < 0 || *req.Percent > 100) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "percent must be between 0 and 100"})
		return
	}

	fee, err := h.Payments.SetFee(c.Request.Context(), token, stylistID, req.Percent)
	if err != nil {
		respondServiceError(c, getLogger(c), err)
		return
	}
	c.JSON(http.StatusOK, fee)
}
