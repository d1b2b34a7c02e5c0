package handlers

import (
	"net/http"

	"food-cart-api/models"
	"food-cart-api/navigation"

	"github.com/gin-gonic/gin"
)

// GetMenu returns the menu (public)
func (h *Handler) GetMenu(c *gin.Context) {
	var items []models.MenuItem
	query := h.db.WithContext(c.Request.Context()).Where("is_available = ?", true)

	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if err := query.Order("id asc").Find(&items).Error; err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"count": len(items), "menu": items})
}

// GetNavigationInfo returns the page gating rules for informational purposes
func (h *Handler) GetNavigationInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"rules":       navigation.Rules(),
		"views":       []navigation.View{navigation.ViewLogin, navigation.ViewMenu, navigation.ViewConfirm},
		"description": "Views not listed in rules are open to everyone",
	})
}
