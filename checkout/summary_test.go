package checkout

import (
	"context"
	"testing"

	"food-cart-api/cart"
	"food-cart-api/storage"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCart(t *testing.T) (*cart.Cart, storage.Store) {
	t.Helper()
	s := storage.NewMemory().Namespace(context.Background(), "test")
	c, err := cart.Load(s)
	require.NoError(t, err)
	return c, s
}

func burgerAndFries(t *testing.T) (*cart.Cart, storage.Store) {
	t.Helper()
	c, s := newCart(t)
	require.NoError(t, c.Add("Burger", decimal.NewFromInt(100)))
	require.NoError(t, c.Add("Burger", decimal.NewFromInt(100)))
	require.NoError(t, c.Add("Fries", decimal.NewFromInt(50)))
	return c, s
}

func TestSummarize(t *testing.T) {
	c, _ := burgerAndFries(t)

	s, err := Summarize(c)
	require.NoError(t, err)
	assert.True(t, s.Subtotal.Equal(decimal.NewFromInt(250)), "subtotal %s", s.Subtotal)
	assert.True(t, s.DeliveryFee.Equal(decimal.NewFromInt(50)))
	assert.True(t, s.FinalTotal.Equal(decimal.NewFromInt(300)), "final %s", s.FinalTotal)
	assert.Equal(t, 3, s.ItemCount)

	require.Len(t, s.Lines, 2)
	assert.Equal(t, "Burger", s.Lines[0].Name)
	assert.Equal(t, 2, s.Lines[0].Quantity)
	assert.True(t, s.Lines[0].LineTotal.Equal(decimal.NewFromInt(200)))
	assert.Equal(t, "Fries", s.Lines[1].Name)
	assert.True(t, s.Lines[1].LineTotal.Equal(decimal.NewFromInt(50)))
}

func TestSummarize_EmptyCart(t *testing.T) {
	c, _ := newCart(t)
	_, err := Summarize(c)
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestSummarize_DoesNotTouchCart(t *testing.T) {
	c, s := burgerAndFries(t)
	before, _, _ := s.Get(cart.StorageKey)
	_, err := Summarize(c)
	require.NoError(t, err)
	after, _, _ := s.Get(cart.StorageKey)
	assert.Equal(t, before, after)
	assert.Equal(t, 2, c.Len())
}
