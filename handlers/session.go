package handlers

import (
	"net/http"

	"food-cart-api/confirm"
	"food-cart-api/middleware"
	"food-cart-api/navigation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ConfirmRequest struct {
	Confirm bool `json:"confirm"`
}

// GetSession reports the caller's login state
func (h *Handler) GetSession(c *gin.Context) {
	sess := middleware.GetSession(c)
	c.JSON(http.StatusOK, gin.H{
		"logged_in": sess.IsAuthenticated(),
		"email":     sess.Email(),
	})
}

// Login opens a session for any non-empty email and password
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	sess := middleware.GetSession(c)
	if err := sess.Login(req.Email, req.Password); err != nil {
		h.respondError(c, err)
		return
	}
	h.log.Info("logged in", zap.String("client_id", clientID(c)), zap.String("email", sess.Email()))
	c.JSON(http.StatusOK, gin.H{
		"message":  "Login successful! Redirecting to menu...",
		"email":    sess.Email(),
		"redirect": navigation.ViewMenu,
	})
}

// Logout ends the session and empties the cart once the client confirms
func (h *Handler) Logout(c *gin.Context) {
	var req ConfirmRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rec := &confirm.Recorder{Yes: req.Confirm}
	done, err := middleware.GetSession(c).Logout(middleware.GetCart(c), rec.Ask)
	if err != nil {
		h.respondError(c, err)
		return
	}
	if !done {
		c.JSON(http.StatusOK, gin.H{"logged_out": false, "prompt": rec.Prompt})
		return
	}
	h.log.Info("logged out", zap.String("client_id", clientID(c)))
	c.JSON(http.StatusOK, gin.H{"logged_out": true, "redirect": navigation.ViewLogin})
}

// ResolveView tells the client which view to render for the page it asked for
func (h *Handler) ResolveView(c *gin.Context) {
	view := navigation.ParseView(c.Param("view"))
	render := navigation.Resolve(view, middleware.GetSession(c).IsAuthenticated())
	c.JSON(http.StatusOK, gin.H{
		"view":    view,
		"allowed": render == view,
		"render":  render,
	})
}
