// Package cart is the ordered list of line items a client intends to buy.
// Every mutation is written back to the client's store before it becomes
// visible, so a failed write leaves the cart as it was.
package cart

import (
	"encoding/json"
	"errors"
	"fmt"

	"food-cart-api/storage"

	"github.com/shopspring/decimal"
)

// StorageKey is where the serialized cart lives in the client's store.
const StorageKey = "cart"

// MaxQuantity caps the units of one line.
const MaxQuantity = 999

var (
	ErrInvalidItem   = errors.New("cart item needs a name and a non-negative price")
	ErrQuantityLimit = fmt.Errorf("cart line cannot exceed %d units", MaxQuantity)
)

// Item is one line of the cart. Name doubles as its identity.
type Item struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// LineTotal is price × quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is one client's cart, bound to the store it was loaded from.
type Cart struct {
	store storage.Store
	items []Item
}

// Load reads the persisted cart. Missing or unreadable data yields an empty
// cart; only a failing store is reported.
func Load(store storage.Store) (*Cart, error) {
	c := &Cart{store: store, items: []Item{}}
	raw, ok, err := store.Get(StorageKey)
	if err != nil {
		return nil, fmt.Errorf("load cart: %w", err)
	}
	if !ok {
		return c, nil
	}
	var items []Item
	if err := json.Unmarshal([]byte(raw), &items); err != nil {
		return c, nil
	}
	c.items = normalize(items)
	return c, nil
}

// normalize drops lines that could never have been stored and folds duplicate
// names into their first occurrence.
func normalize(items []Item) []Item {
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if it.Name == "" || it.Quantity <= 0 || it.Price.IsNegative() {
			continue
		}
		if i := indexOf(out, it.Name); i >= 0 {
			out[i].Quantity = min(out[i].Quantity+min(it.Quantity, MaxQuantity), MaxQuantity)
			continue
		}
		it.Quantity = min(it.Quantity, MaxQuantity)
		out = append(out, it)
	}
	return out
}

func indexOf(items []Item, name string) int {
	for i := range items {
		if items[i].Name == name {
			return i
		}
	}
	return -1
}

// Items returns a copy of the lines in display order.
func (c *Cart) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Len is the number of lines, not units.
func (c *Cart) Len() int { return len(c.items) }

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool { return len(c.items) == 0 }

// Add puts one more unit of name in the cart, appending a new line if needed.
func (c *Cart) Add(name string, price decimal.Decimal) error {
	if name == "" || price.IsNegative() {
		return ErrInvalidItem
	}
	next := c.Items()
	if i := indexOf(next, name); i >= 0 {
		if next[i].Quantity >= MaxQuantity {
			return ErrQuantityLimit
		}
		next[i].Quantity++
	} else {
		next = append(next, Item{Name: name, Price: price, Quantity: 1})
	}
	return c.commit(next)
}

// Remove drops the line for name. Removing an absent name still rewrites the
// stored cart.
func (c *Cart) Remove(name string) error {
	next := make([]Item, 0, len(c.items))
	for _, it := range c.items {
		if it.Name != name {
			next = append(next, it)
		}
	}
	return c.commit(next)
}

// UpdateQuantity shifts the quantity of name by delta. A line that drops to
// zero or below is removed. Unknown names are ignored. Growing a line past
// MaxQuantity fails with ErrQuantityLimit and leaves the cart untouched.
func (c *Cart) UpdateQuantity(name string, delta int) error {
	i := indexOf(c.items, name)
	if i < 0 {
		return nil
	}
	if delta > MaxQuantity-c.items[i].Quantity {
		return ErrQuantityLimit
	}
	if c.items[i].Quantity+delta <= 0 {
		return c.Remove(name)
	}
	next := c.Items()
	next[i].Quantity += delta
	return c.commit(next)
}

// Clear empties the cart and persists the empty list.
func (c *Cart) Clear() error {
	return c.commit([]Item{})
}

// TotalItems is the sum of all quantities.
func (c *Cart) TotalItems() int {
	n := 0
	for _, it := range c.items {
		n += it.Quantity
	}
	return n
}

// TotalPrice is the sum of every line total.
func (c *Cart) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.items {
		total = total.Add(it.LineTotal())
	}
	return total
}

func (c *Cart) commit(next []Item) error {
	raw, err := json.Marshal(next)
	if err != nil {
		return fmt.Errorf("encode cart: %w", err)
	}
	if err := c.store.Set(StorageKey, string(raw)); err != nil {
		return fmt.Errorf("save cart: %w", err)
	}
	c.items = next
	return nil
}
