package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderStatus is how a checkout attempt ended
type OrderStatus string

const (
	StatusPlaced    OrderStatus = "PLACED"
	StatusCancelled OrderStatus = "CANCELLED"
)

// Order is the receipt kept for every confirmed or abandoned checkout
type Order struct {
	ID              uint            `json:"id" gorm:"primaryKey"`
	ClientID        string          `json:"client_id" gorm:"index;not null"`
	UserEmail       string          `json:"user_email"`
	Status          OrderStatus     `json:"status" gorm:"not null;default:'PLACED'"`
	Payment         string          `json:"payment"`
	DeliveryAddress string          `json:"delivery_address"`
	Subtotal        decimal.Decimal `json:"subtotal" gorm:"type:decimal(10,2)"`
	DeliveryFee     decimal.Decimal `json:"delivery_fee" gorm:"type:decimal(10,2)"`
	TotalPrice      decimal.Decimal `json:"total_price" gorm:"type:decimal(10,2)"`
	Items           []OrderItem     `json:"items,omitempty" gorm:"foreignKey:OrderID"`
	CreatedAt       time.Time       `json:"created_at"`
}

type OrderItem struct {
	ID        uint            `json:"id" gorm:"primaryKey"`
	OrderID   uint            `json:"order_id" gorm:"not null"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity" gorm:"not null"`
	Price     decimal.Decimal `json:"price" gorm:"type:decimal(10,2);not null"` // snapshot unit price
	LineTotal decimal.Decimal `json:"line_total" gorm:"type:decimal(10,2)"`
}
