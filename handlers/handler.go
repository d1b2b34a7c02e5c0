package handlers

import (
	"food-cart-api/middleware"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Handler is the HTTP face of the storefront. Per-client state arrives on the
// gin context via middleware.LoadClientState.
type Handler struct {
	db     *gorm.DB
	tokens *middleware.TokenIssuer
	log    *zap.Logger
}

func New(db *gorm.DB, tokens *middleware.TokenIssuer, log *zap.Logger) *Handler {
	return &Handler{db: db, tokens: tokens, log: log}
}
