package domain_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/currency"
)

func TestCartAdd(t *testing.T) {
	cart := domain.NewCart("owner", currency.USD)
	p := product(1, "10", "electronics")

	entry := cart.Add(p)
	assert.Equal(t, 1, entry.Quantity)
	assert.Empty(t, cmp.Diff(p, entry.Product, currencyComparer))

	entry = cart.Add(p)
	assert.Equal(t, 2, entry.Quantity)
	assert.Equal(t, 1, cart.Len())
	assert.Equal(t, 2, cart.Count())
}

func TestCartAddOnZeroValue(t *testing.T) {
	var cart domain.Cart

	cart.Add(product(1, "1", "electronics"))
	assert.Equal(t, 1, cart.Quantity(1))
}

func TestCartRemove(t *testing.T) {
	tests := []struct {
		name      string
		adds      int
		removeID  domain.ProductID
		wantQty   int
		wantFound bool
		wantError error
	}{
		{
			name:      "quantity 2 becomes 1",
			adds:      2,
			removeID:  1,
			wantQty:   1,
			wantFound: true,
		},
		{
			name:      "quantity 1 deletes entry",
			adds:      1,
			removeID:  1,
			wantQty:   0,
			wantFound: false,
		},
		{
			name:      "absent id: error",
			adds:      1,
			removeID:  2,
			wantError: domain.ErrEntryNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cart := domain.NewCart("owner", currency.USD)
			for range tt.adds {
				cart.Add(product(1, "10", "electronics"))
			}

			qty, err := cart.Remove(tt.removeID)
			if tt.wantError != nil {
				require.ErrorIs(t, err, tt.wantError)
				assert.Equal(t, tt.adds, cart.Quantity(1))
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.wantQty, qty)
			assert.Equal(t, tt.wantFound, cart.Contains(tt.removeID))
		})
	}
}

func TestCartClear(t *testing.T) {
	cart := domain.NewCart("owner", currency.USD)
	cart.Add(product(1, "10", "electronics"))
	cart.Add(product(2, "5", "jewelery"))

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.True(t, cart.Total().Amount.IsZero())
	assert.Equal(t, "$0.00", cart.Total().String())
}

func TestCartTotalIsExact(t *testing.T) {
	cart := domain.NewCart("owner", currency.USD)
	p := product(1, "0.1", "electronics")
	for range 3 {
		cart.Add(p)
	}

	assert.True(t, cart.Total().Amount.Equal(decimal.RequireFromString("0.3")))
}

func TestCartEndToEnd(t *testing.T) {
	products := []domain.Product{
		product(1, "10", "electronics"),
		product(2, "5", "jewelery"),
	}

	cart := domain.NewCart("owner", currency.USD)
	cart.Add(products[0])
	cart.Add(products[0])
	cart.Add(products[1])

	total := cart.Total()
	assert.True(t, total.Amount.Equal(decimal.NewFromInt(25)))
	assert.Equal(t, "$25.00", total.String())

	qty, err := cart.Remove(2)
	require.NoError(t, err)
	assert.Zero(t, qty)

	assert.False(t, cart.Contains(2))
	require.Equal(t, 1, cart.Len())
	assert.Equal(t, 2, cart.Quantity(1))
}

func TestCartEntriesSorted(t *testing.T) {
	cart := domain.NewCart("owner", currency.USD)
	for _, id := range []domain.ProductID{3, 1, 2} {
		cart.Add(product(id, "1", "electronics"))
	}

	var ids []domain.ProductID
	for _, e := range cart.Entries() {
		ids = append(ids, e.Product.ID)
	}
	assert.Equal(t, []domain.ProductID{1, 2, 3}, ids)
}

func TestCartClone(t *testing.T) {
	cart := domain.NewCart("owner", currency.USD)
	cart.Add(product(1, "1", "electronics"))

	clone := cart.Clone()
	clone.Add(product(1, "1", "electronics"))
	clone.Add(product(2, "1", "electronics"))

	assert.Equal(t, 1, cart.Quantity(1))
	assert.False(t, cart.Contains(2))
	assert.Equal(t, 2, clone.Quantity(1))
}

var currencyComparer = cmp.Comparer(func(x, y currency.Unit) bool {
	return x.String() == y.String()
})

func product(id domain.ProductID, price, category string) domain.Product {
	return domain.Product{
		ID:       id,
		Title:    "product",
		Category: category,
		Price: domain.Money{
			Amount:   decimal.RequireFromString(price),
			Currency: currency.USD,
		},
	}
}
