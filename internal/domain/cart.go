package domain

import (
	"errors"
	"maps"
	"slices"

	"golang.org/x/text/currency"
)

var ErrEntryNotFound = errors.New("entry not found")

type Cart struct {
	OwnerID  string
	Currency currency.Unit
	Items    map[ProductID]CartEntry
}

type CartEntry struct {
	Product  Product
	Quantity int
}

func (e CartEntry) Subtotal() Money {
	return e.Product.Price.Mul(e.Quantity)
}

func NewCart(ownerID string, cur currency.Unit) Cart {
	return Cart{
		OwnerID:  ownerID,
		Currency: cur,
		Items:    make(map[ProductID]CartEntry),
	}
}

// Add puts one unit of product into the cart. The entry keeps a copy of the
// product taken on first add.
func (c *Cart) Add(product Product) CartEntry {
	if c.Items == nil {
		c.Items = make(map[ProductID]CartEntry)
	}

	entry, ok := c.Items[product.ID]
	if !ok {
		entry = CartEntry{Product: product}
	}
	entry.Quantity++

	c.Items[product.ID] = entry
	return entry
}

// Remove takes one unit of the product out of the cart and returns the
// quantity left. The entry is deleted when the last unit goes.
func (c *Cart) Remove(id ProductID) (int, error) {
	entry, ok := c.Items[id]
	if !ok {
		return 0, ErrEntryNotFound
	}

	if entry.Quantity > 1 {
		entry.Quantity--
		c.Items[id] = entry
		return entry.Quantity, nil
	}

	delete(c.Items, id)
	return 0, nil
}

func (c *Cart) Clear() {
	clear(c.Items)
}

// Total is the exact sum of price times quantity over all entries.
func (c Cart) Total() Money {
	total := ZeroMoney(c.Currency)
	for _, entry := range c.Items {
		total = total.Add(entry.Subtotal())
	}
	return total
}

func (c Cart) Contains(id ProductID) bool {
	_, ok := c.Items[id]
	return ok
}

func (c Cart) Quantity(id ProductID) int {
	return c.Items[id].Quantity
}

// Len is the number of distinct products.
func (c Cart) Len() int {
	return len(c.Items)
}

// Count is the number of units across all entries.
func (c Cart) Count() int {
	var n int
	for _, entry := range c.Items {
		n += entry.Quantity
	}
	return n
}

func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Entries returns the entries ordered by product id.
func (c Cart) Entries() []CartEntry {
	ids := slices.Sorted(maps.Keys(c.Items))

	entries := make([]CartEntry, 0, len(ids))
	for _, id := range ids {
		entries = append(entries, c.Items[id])
	}
	return entries
}

func (c Cart) Clone() Cart {
	clone := c
	clone.Items = maps.Clone(c.Items)
	if clone.Items == nil {
		clone.Items = make(map[ProductID]CartEntry)
	}
	return clone
}
