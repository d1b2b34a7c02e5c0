package routes

import (
	"net/http"
	"time"

	"food-cart-api/handlers"
	"food-cart-api/middleware"
	"food-cart-api/navigation"
	"food-cart-api/session"
	"food-cart-api/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Deps is everything the router needs to serve requests
type Deps struct {
	DB          *gorm.DB
	Storage     storage.Backend
	Tokens      *middleware.TokenIssuer
	Auth        session.Authenticator
	Log         *zap.Logger
	CORSOrigins []string
}

// NewRouter builds the gin engine with middleware and every route
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(d.Log), gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PATCH", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if len(d.CORSOrigins) == 0 || (len(d.CORSOrigins) == 1 && d.CORSOrigins[0] == "*") {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = d.CORSOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Food Cart API",
			"version": "1.0.0",
		})
	})
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to the Food Cart API",
			"start":   "POST /api/client",
			"docs":    "/api/navigation",
			"health":  "/health",
		})
	})

	SetupRoutes(r, handlers.New(d.DB, d.Tokens, d.Log), d)
	return r
}

func SetupRoutes(r *gin.Engine, h *handlers.Handler, d Deps) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		public.POST("/client", h.IssueClient)
		public.GET("/menu", h.GetMenu)
		public.GET("/navigation", h.GetNavigationInfo)
		public.GET("/payment-methods", h.ListPaymentMethods)
		public.GET("/payment-methods/:method", h.GetPaymentRequirements)
		public.POST("/payment-methods/phone", h.NormalizePhone)
	}

	// ── Client routes (any browser holding a client token) ─────────
	client := r.Group("/api")
	client.Use(middleware.ClientRequired(d.Tokens), middleware.LoadClientState(d.Storage, d.Auth, d.Log))
	{
		client.GET("/session", h.GetSession)
		client.POST("/session/logout", h.Logout)
		client.GET("/views/:view", h.ResolveView)
		client.POST("/session/login", middleware.ViewRequired(navigation.ViewLogin), h.Login)
	}

	// ── Menu view: cart and order history ──────────────────────────
	menu := client.Group("")
	menu.Use(middleware.ViewRequired(navigation.ViewMenu))
	{
		menu.GET("/cart", h.GetCart)
		menu.POST("/cart/items", h.AddItem)
		menu.PATCH("/cart/items/:name", h.UpdateItemQuantity)
		menu.DELETE("/cart/items/:name", h.RemoveItem)
		menu.DELETE("/cart", h.ClearCart)
		menu.POST("/checkout", h.BeginCheckout)
		menu.GET("/orders", h.GetMyOrders)
	}

	// ── Confirmation view: summary and payment ─────────────────────
	confirm := client.Group("/checkout")
	confirm.Use(middleware.ViewRequired(navigation.ViewConfirm))
	{
		confirm.GET("/summary", h.GetSummary)
		confirm.POST("/place", h.PlaceOrder)
		confirm.POST("/cancel", h.CancelOrder)
	}
}
