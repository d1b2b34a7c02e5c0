package handlers

import (
	"net/http"

	"food-cart-api/checkout"
	"food-cart-api/confirm"
	"food-cart-api/middleware"
	"food-cart-api/models"
	"food-cart-api/navigation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type PlaceOrderRequest struct {
	Address       string `json:"address"`
	PaymentMethod string `json:"payment_method" binding:"required"`
	TelebirrPhone string `json:"telebirr_phone"`
	BankCode      string `json:"bank_code"`
	AccountNumber string `json:"account_number"`
	Confirm       bool   `json:"confirm"`
}

// BeginCheckout moves a non-empty cart on to the confirmation view
func (h *Handler) BeginCheckout(c *gin.Context) {
	if err := checkout.Begin(middleware.GetCart(c)); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"redirect": navigation.ViewConfirm})
}

// GetSummary prices the cart for the confirmation view
func (h *Handler) GetSummary(c *gin.Context) {
	summary, err := checkout.Summarize(middleware.GetCart(c))
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"summary": summary})
}

// PlaceOrder validates the payment form and, once confirmed, empties the cart
// and records a receipt
func (h *Handler) PlaceOrder(c *gin.Context) {
	var req PlaceOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	method, bankCode, err := checkout.ParseMethod(req.PaymentMethod)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if bankCode == "" {
		bankCode = req.BankCode
	}
	payment := checkout.Payment{
		Method:        method,
		Phone:         req.TelebirrPhone,
		BankCode:      bankCode,
		AccountNumber: req.AccountNumber,
	}

	result, err := checkout.Place(middleware.GetCart(c), payment, req.Address, confirm.Answer(req.Confirm))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !result.Confirmed {
		c.JSON(http.StatusOK, gin.H{
			"confirmed": false,
			"prompt":    result.Prompt,
			"order":     result.Order,
		})
		return
	}

	receipt := h.recordOrder(c, models.StatusPlaced, result.Order)
	h.log.Info("order placed",
		zap.String("client_id", clientID(c)),
		zap.String("payment", result.Order.Payment),
		zap.String("total", result.Order.Summary.FinalTotal.String()))

	c.JSON(http.StatusCreated, gin.H{
		"confirmed": true,
		"message":   "Order confirmed! Your payment will be processed. You will receive a confirmation email shortly.",
		"order":     receipt,
		"redirect":  navigation.ViewMenu,
	})
}

// CancelOrder abandons the order once the client confirms
func (h *Handler) CancelOrder(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	crt := middleware.GetCart(c)
	// snapshot before the cart is emptied; an empty cart leaves no receipt
	summary, sumErr := checkout.Summarize(crt)

	rec := &confirm.Recorder{Yes: req.Confirm}
	done, err := checkout.Cancel(crt, rec.Ask)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !done {
		c.JSON(http.StatusOK, gin.H{"cancelled": false, "prompt": rec.Prompt})
		return
	}
	if sumErr == nil {
		h.recordOrder(c, models.StatusCancelled, checkout.Order{Summary: summary})
	}
	h.log.Info("order cancelled", zap.String("client_id", clientID(c)))
	c.JSON(http.StatusOK, gin.H{
		"cancelled": true,
		"message":   "Order cancelled. Redirecting to menu...",
		"redirect":  navigation.ViewMenu,
	})
}

// recordOrder stores a receipt. The cart is already settled at this point, so
// a failed write is logged rather than reported.
func (h *Handler) recordOrder(c *gin.Context, status models.OrderStatus, o checkout.Order) models.Order {
	receipt := models.Order{
		ClientID:        clientID(c),
		UserEmail:       middleware.GetSession(c).Email(),
		Status:          status,
		Payment:         o.Payment,
		DeliveryAddress: o.Address,
		Subtotal:        o.Summary.Subtotal,
		DeliveryFee:     o.Summary.DeliveryFee,
		TotalPrice:      o.Summary.FinalTotal,
	}
	for _, line := range o.Summary.Lines {
		receipt.Items = append(receipt.Items, models.OrderItem{
			Name:      line.Name,
			Quantity:  line.Quantity,
			Price:     line.UnitPrice,
			LineTotal: line.LineTotal,
		})
	}
	if err := h.db.WithContext(c.Request.Context()).Create(&receipt).Error; err != nil {
		h.log.Error("record order", zap.String("client_id", receipt.ClientID), zap.Error(err))
	}
	return receipt
}
