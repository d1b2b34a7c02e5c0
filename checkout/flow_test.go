package checkout

import (
	"testing"

	"food-cart-api/cart"
	"food-cart-api/confirm"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBegin(t *testing.T) {
	c, _ := newCart(t)
	assert.ErrorIs(t, Begin(c), ErrEmptyCart)

	require.NoError(t, c.Add("Burger", decimal.NewFromInt(100)))
	assert.NoError(t, Begin(c))
}

func TestPlace_Confirmed(t *testing.T) {
	c, s := burgerAndFries(t)
	rec := &confirm.Recorder{Yes: true}

	res, err := Place(c, Payment{Method: MethodTelebirr, Phone: "0912345678"}, " Bole, Addis Ababa ", rec.Ask)
	require.NoError(t, err)
	assert.True(t, res.Confirmed)
	assert.Equal(t, "Confirm your order?\n\nPayment Method: Telebirr: 0912345678\nDelivery Address: Bole, Addis Ababa", rec.Prompt)
	assert.Equal(t, rec.Prompt, res.Prompt)
	assert.Equal(t, "Telebirr: 0912345678", res.Order.Payment)
	assert.Equal(t, "Bole, Addis Ababa", res.Order.Address)
	assert.True(t, res.Order.Summary.FinalTotal.Equal(decimal.NewFromInt(300)))

	assert.True(t, c.IsEmpty())
	reloaded, err := cart.Load(s)
	require.NoError(t, err)
	assert.True(t, reloaded.IsEmpty())
}

func TestPlace_Declined(t *testing.T) {
	c, _ := burgerAndFries(t)

	res, err := Place(c, Payment{Method: MethodCash}, "Addis Ababa", confirm.Answer(false))
	require.NoError(t, err)
	assert.False(t, res.Confirmed)
	assert.Equal(t, "Cash on Delivery", res.Order.Payment)
	assert.Equal(t, 2, c.Len())
}

func TestPlace_InvalidFormLeavesCart(t *testing.T) {
	c, _ := burgerAndFries(t)
	asked := false
	ask := func(string) bool { asked = true; return true }

	_, err := Place(c, Payment{Method: MethodBank, BankCode: "cbe"}, "Addis Ababa", ask)
	assert.ErrorIs(t, err, ErrMissingAccount)
	_, err = Place(c, Payment{Method: MethodTelebirr, Phone: "09123"}, "Addis Ababa", ask)
	assert.ErrorIs(t, err, ErrInvalidPhone)
	_, err = Place(c, Payment{Method: MethodCash}, "", ask)
	assert.ErrorIs(t, err, ErrMissingAddress)

	assert.False(t, asked)
	assert.Equal(t, 2, c.Len())
}

func TestPlace_EmptyCart(t *testing.T) {
	c, _ := newCart(t)
	_, err := Place(c, Payment{Method: MethodCash}, "Addis Ababa", confirm.Answer(true))
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestCancel(t *testing.T) {
	c, _ := burgerAndFries(t)
	rec := &confirm.Recorder{Yes: false}

	done, err := Cancel(c, rec.Ask)
	require.NoError(t, err)
	assert.False(t, done)
	assert.Equal(t, CancelPrompt, rec.Prompt)
	assert.Equal(t, 2, c.Len())

	done, err = Cancel(c, confirm.Answer(true))
	require.NoError(t, err)
	assert.True(t, done)
	assert.True(t, c.IsEmpty())
}
