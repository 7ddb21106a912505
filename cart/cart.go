package cart

import (
	"sync"

	"vastra/models"
)

// Cart holds one browser session's line items in insertion order. Totals
// are recomputed from the items on every read, never cached. None of the
// operations can fail; out-of-range quantities are normalized instead.
type Cart struct {
	mu    sync.Mutex
	items []models.LineItem
}

func New() *Cart {
	return &Cart{}
}

// AddOrReplace inserts the item, or overwrites the quantity of an existing
// item with the same composite key (last write wins, quantities are not
// summed). A quantity below 1 behaves like a removal.
func (c *Cart) AddOrReplace(item models.LineItem) {
	if item.Key == "" {
		item.Key = models.LineKey(item.ProductID, item.Size)
	}
	if item.Quantity < 1 {
		c.Remove(item.Key)
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Key == item.Key {
			c.items[i] = item
			return
		}
	}
	c.items = append(c.items, item)
}

// Remove deletes the line item with the key; absent keys are a no-op.
func (c *Cart) Remove(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Key == key {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// SetQuantity updates an existing item's quantity in place. Quantities
// below 1 remove the item; absent keys are a no-op.
func (c *Cart) SetQuantity(key string, quantity int) {
	if quantity < 1 {
		c.Remove(key)
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].Key == key {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

// Items returns a copy of the line items in insertion order.
func (c *Cart) Items() []models.LineItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]models.LineItem, len(c.items))
	copy(out, c.items)
	return out
}

// ItemCount is the sum of all quantities.
func (c *Cart) ItemCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for i := range c.items {
		n += c.items[i].Quantity
	}
	return n
}

// DiscountedSubtotal sums unit price times quantity.
func (c *Cart) DiscountedSubtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for i := range c.items {
		total += c.items[i].Price * float64(c.items[i].Quantity)
	}
	return total
}

// OriginalSubtotal sums pre-discount unit price times quantity.
func (c *Cart) OriginalSubtotal() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	total := 0.0
	for i := range c.items {
		total += c.items[i].OriginalPrice * float64(c.items[i].Quantity)
	}
	return total
}

// Summary bundles the items and the derived totals for the client.
func (c *Cart) Summary() models.CartSummary {
	items := c.Items()
	s := models.CartSummary{Items: items}
	for i := range items {
		s.ItemCount += items[i].Quantity
		s.DiscountedSubtotal += items[i].Price * float64(items[i].Quantity)
		s.OriginalSubtotal += items[i].OriginalPrice * float64(items[i].Quantity)
	}
	return s
}
