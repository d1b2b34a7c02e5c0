package handlers

import (
	"net/http"

	"food-cart-api/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// IssueClient hands a browser the token naming its own storage namespace
func (h *Handler) IssueClient(c *gin.Context) {
	token, id, expiresAt, err := h.tokens.Issue()
	if err != nil {
		h.log.Error("issue client token", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}
	h.log.Info("client registered", zap.String("client_id", id))
	c.JSON(http.StatusCreated, gin.H{
		"client_id":  id,
		"token":      token,
		"expires_at": expiresAt,
	})
}

func clientID(c *gin.Context) string {
	return middleware.GetClientID(c)
}
