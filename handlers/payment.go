package handlers

import (
	"net/http"

	"food-cart-api/checkout"

	"github.com/gin-gonic/gin"
)

type PhoneRequest struct {
	Phone string `json:"phone"`
}

// ListPaymentMethods describes each payment method and the fields it needs
func (h *Handler) ListPaymentMethods(c *gin.Context) {
	methods := []checkout.Requirements{}
	for _, m := range []checkout.Method{checkout.MethodCash, checkout.MethodTelebirr, checkout.MethodBank} {
		r, err := checkout.Require(checkout.Payment{Method: m})
		if err != nil {
			h.respondError(c, err)
			return
		}
		methods = append(methods, r)
	}
	c.JSON(http.StatusOK, gin.H{
		"methods":      methods,
		"banks":        checkout.Banks(),
		"delivery_fee": checkout.DeliveryFee,
	})
}

// GetPaymentRequirements answers which fields a chosen method needs, filling in
// the bank name for bank transfers
func (h *Handler) GetPaymentRequirements(c *gin.Context) {
	method, bankCode, err := checkout.ParseMethod(c.Param("method"))
	if err != nil {
		h.respondError(c, err)
		return
	}
	if bankCode == "" {
		bankCode = c.Query("bank_code")
	}
	r, err := checkout.Require(checkout.Payment{Method: method, BankCode: bankCode})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, r)
}

// NormalizePhone cleans a telebirr number as the customer types it
func (h *Handler) NormalizePhone(c *gin.Context) {
	var req PhoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	phone := checkout.NormalizePhone(req.Phone)
	c.JSON(http.StatusOK, gin.H{"phone": phone, "complete": len(phone) == 10})
}
