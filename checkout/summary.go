// Package checkout turns a cart into an order: it prices the cart, checks the
// delivery and payment details, and empties the cart once the user confirms.
package checkout

import (
	"food-cart-api/cart"

	"github.com/shopspring/decimal"
)

// DeliveryFee is charged once per order, in BIRR.
var DeliveryFee = decimal.NewFromInt(50)

type Line struct {
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	LineTotal decimal.Decimal `json:"line_total"`
}

type Summary struct {
	Lines       []Line          `json:"lines"`
	ItemCount   int             `json:"item_count"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	DeliveryFee decimal.Decimal `json:"delivery_fee"`
	FinalTotal  decimal.Decimal `json:"final_total"`
}

// Summarize prices c. An empty cart has no summary and yields ErrEmptyCart.
func Summarize(c *cart.Cart) (Summary, error) {
	items := c.Items()
	if len(items) == 0 {
		return Summary{}, ErrEmptyCart
	}
	s := Summary{
		Lines:       make([]Line, 0, len(items)),
		Subtotal:    decimal.Zero,
		DeliveryFee: DeliveryFee,
	}
	for _, it := range items {
		line := Line{
			Name:      it.Name,
			Quantity:  it.Quantity,
			UnitPrice: it.Price,
			LineTotal: it.LineTotal(),
		}
		s.Lines = append(s.Lines, line)
		s.ItemCount += it.Quantity
		s.Subtotal = s.Subtotal.Add(line.LineTotal)
	}
	s.FinalTotal = s.Subtotal.Add(s.DeliveryFee)
	return s, nil
}
