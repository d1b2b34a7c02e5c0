package handlers

import (
	"net/http"

	"food-cart-api/models"

	"github.com/gin-gonic/gin"
)

// GetMyOrders returns the receipts recorded for the calling client
func (h *Handler) GetMyOrders(c *gin.Context) {
	var orders []models.Order
	query := h.db.WithContext(c.Request.Context()).Preload("Items").
		Where("client_id = ?", clientID(c))
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Order("created_at desc").Order("id desc").Find(&orders).Error; err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(orders), "orders": orders})
}
