package handlers

import (
	"errors"
	"net/http"

	"food-cart-api/cart"
	"food-cart-api/checkout"
	"food-cart-api/navigation"
	"food-cart-api/session"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// userMessages are shown to the customer as-is
var userMessages = []struct {
	err error
	msg string
}{
	{session.ErrMissingCredentials, "Please fill in all fields"},
	{cart.ErrInvalidItem, "Menu item needs a name and a non-negative price"},
	{cart.ErrQuantityLimit, "That is more than we can deliver in one order"},
	{checkout.ErrMissingAddress, "Please enter your delivery address"},
	{checkout.ErrInvalidPhone, "Please enter a valid Telebirr phone number (10 digits)"},
	{checkout.ErrMissingAccount, "Please enter your account number"},
	{checkout.ErrUnknownBank, "Please choose one of the listed banks"},
	{checkout.ErrUnknownPaymentMethod, "Please choose a payment method"},
}

// respondError turns a core error into a JSON response
func (h *Handler) respondError(c *gin.Context, err error) {
	if errors.Is(err, checkout.ErrEmptyCart) {
		c.JSON(http.StatusConflict, gin.H{
			"error":    "Your cart is empty!",
			"redirect": navigation.ViewMenu,
		})
		return
	}
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": m.msg, "reason": err.Error()})
			return
		}
	}
	h.log.Error("request failed",
		zap.String("path", c.FullPath()),
		zap.String("client_id", clientID(c)),
		zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Something went wrong, please try again"})
}
