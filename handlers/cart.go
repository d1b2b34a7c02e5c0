package handlers

import (
	"errors"
	"net/http"

	"food-cart-api/cart"
	"food-cart-api/middleware"
	"food-cart-api/models"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// AddItemRequest names a menu item; its price always comes from the menu
type AddItemRequest struct {
	Name string `json:"name" binding:"required"`
}

type UpdateQuantityRequest struct {
	Delta *int `json:"delta" binding:"required"`
}

func cartBody(crt *cart.Cart) gin.H {
	return gin.H{
		"items":       crt.Items(),
		"total_items": crt.TotalItems(),
		"total_price": crt.TotalPrice(),
	}
}

// GetCart returns the cart with its running totals
func (h *Handler) GetCart(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"cart": cartBody(middleware.GetCart(c))})
}

// AddItem puts one unit of an available menu item in the cart at its menu price
func (h *Handler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	var item models.MenuItem
	err := h.db.WithContext(c.Request.Context()).
		Where("name = ? AND is_available = ?", req.Name, true).
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found or unavailable"})
		return
	}
	if err != nil {
		h.respondError(c, err)
		return
	}

	crt := middleware.GetCart(c)
	if err := crt.Add(item.Name, item.Price); err != nil {
		h.respondError(c, err)
		return
	}
	h.log.Info("cart item added", zap.String("client_id", clientID(c)), zap.String("name", item.Name))
	c.JSON(http.StatusOK, gin.H{"message": "Item added to cart", "cart": cartBody(crt)})
}

// UpdateItemQuantity shifts a line's quantity; lines reaching zero disappear
func (h *Handler) UpdateItemQuantity(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	crt := middleware.GetCart(c)
	if err := crt.UpdateQuantity(c.Param("name"), *req.Delta); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cartBody(crt)})
}

// RemoveItem drops a line from the cart
func (h *Handler) RemoveItem(c *gin.Context) {
	crt := middleware.GetCart(c)
	if err := crt.Remove(c.Param("name")); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"cart": cartBody(crt)})
}

// ClearCart empties the cart
func (h *Handler) ClearCart(c *gin.Context) {
	crt := middleware.GetCart(c)
	if err := crt.Clear(); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Cart cleared", "cart": cartBody(crt)})
}
