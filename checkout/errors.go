package checkout

import "errors"

var (
	ErrEmptyCart            = errors.New("cart is empty")
	ErrMissingAddress       = errors.New("delivery address is required")
	ErrInvalidPhone         = errors.New("telebirr phone must be exactly 10 digits")
	ErrMissingAccount       = errors.New("account number is required")
	ErrUnknownPaymentMethod = errors.New("unknown payment method")
	ErrUnknownBank          = errors.New("unknown bank")
)
