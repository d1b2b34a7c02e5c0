package checkout

import (
	"fmt"
	"strings"

	"food-cart-api/cart"
	"food-cart-api/confirm"
)

const CancelPrompt = "Are you sure you want to cancel your order?"

// Order is a validated checkout: what is bought, how it is paid, where it goes.
type Order struct {
	Summary Summary `json:"summary"`
	Payment string  `json:"payment"`
	Address string  `json:"delivery_address"`
}

// Result of Place. Order is filled in even when the user declined, so the
// caller can show what would have been placed.
type Result struct {
	Prompt    string `json:"prompt"`
	Confirmed bool   `json:"confirmed"`
	Order     Order  `json:"order"`
}

// Begin reports whether checkout may start; an empty cart blocks it.
func Begin(c *cart.Cart) error {
	if c.IsEmpty() {
		return ErrEmptyCart
	}
	return nil
}

func placePrompt(payment, address string) string {
	return fmt.Sprintf("Confirm your order?\n\nPayment Method: %s\nDelivery Address: %s", payment, address)
}

// Place validates the form, asks for confirmation and, on yes, empties c.
// Nothing is changed when validation fails or the user declines.
func Place(c *cart.Cart, p Payment, address string, ask confirm.Func) (Result, error) {
	summary, err := Summarize(c)
	if err != nil {
		return Result{}, err
	}
	descriptor, err := ValidateForSubmission(p, address)
	if err != nil {
		return Result{}, err
	}
	address = strings.TrimSpace(address)
	res := Result{
		Prompt: placePrompt(descriptor, address),
		Order:  Order{Summary: summary, Payment: descriptor, Address: address},
	}
	if !ask(res.Prompt) {
		return res, nil
	}
	if err := c.Clear(); err != nil {
		return Result{}, fmt.Errorf("place order: %w", err)
	}
	res.Confirmed = true
	return res, nil
}

// Cancel abandons the order without validating anything once ask agrees.
func Cancel(c *cart.Cart, ask confirm.Func) (bool, error) {
	if !ask(CancelPrompt) {
		return false, nil
	}
	if err := c.Clear(); err != nil {
		return false, fmt.Errorf("cancel order: %w", err)
	}
	return true, nil
}
