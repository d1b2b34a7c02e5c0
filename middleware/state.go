package middleware

import (
	"errors"
	"net/http"

	"food-cart-api/cart"
	"food-cart-api/navigation"
	"food-cart-api/session"
	"food-cart-api/storage"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const (
	sessionKey = "session"
	cartKey    = "cart"
)

// LoadClientState reads the caller's session and cart from its namespace.
// Must run after ClientRequired.
func LoadClientState(backend storage.Backend, auth session.Authenticator, log *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		store := backend.Namespace(c.Request.Context(), GetClientID(c))
		sess, err := session.Load(store, auth)
		if err != nil {
			log.Error("load session", zap.String("client_id", GetClientID(c)), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load session"})
			c.Abort()
			return
		}
		crt, err := cart.Load(store)
		if err != nil {
			log.Error("load cart", zap.String("client_id", GetClientID(c)), zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load cart"})
			c.Abort()
			return
		}
		c.Set(sessionKey, sess)
		c.Set(cartKey, crt)
		c.Next()
	}
}

// ViewRequired stops requests for a view the caller may not see and tells the
// client where to go instead
func ViewRequired(view navigation.View) gin.HandlerFunc {
	return func(c *gin.Context) {
		authenticated := GetSession(c).IsAuthenticated()
		err := navigation.Check(view, authenticated)
		if err == nil {
			c.Next()
			return
		}
		var redirect *navigation.RedirectError
		if !errors.As(err, &redirect) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			c.Abort()
			return
		}
		status, msg := http.StatusUnauthorized, "Please log in first"
		if authenticated {
			status, msg = http.StatusConflict, "Already logged in"
		}
		c.JSON(status, gin.H{
			"error":    msg,
			"view":     view,
			"redirect": redirect.To,
		})
		c.Abort()
	}
}

// GetSession returns the session loaded by LoadClientState
func GetSession(c *gin.Context) *session.Session {
	return c.MustGet(sessionKey).(*session.Session)
}

// GetCart returns the cart loaded by LoadClientState
func GetCart(c *gin.Context) *cart.Cart {
	return c.MustGet(cartKey).(*cart.Cart)
}
