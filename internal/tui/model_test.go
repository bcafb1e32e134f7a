package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikolayk812/storefront/internal/catalog"
	"github.com/nikolayk812/storefront/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

type stubLoader struct {
	state catalog.State
	calls int
}

func (s *stubLoader) Load(ctx context.Context) catalog.State {
	s.calls++
	return s.state
}

func TestModelLoadsCatalog(t *testing.T) {
	loader := &stubLoader{state: catalog.Loaded{Products: testProducts()}}
	m := New(t.Context(), loader, "session", currency.USD, zap.NewNop())

	assert.IsType(t, catalog.Loading{}, m.State())
	assert.Contains(t, m.View(), "Loading products...")
	require.NotNil(t, m.Init())

	m = update(t, m, m.load())

	assert.Equal(t, 1, loader.calls)
	assert.IsType(t, catalog.Loaded{}, m.State())
	assert.Len(t, m.Visible(), 3)
	assert.Contains(t, m.View(), "Cart is empty")
}

func TestModelShowsError(t *testing.T) {
	m := New(t.Context(), &stubLoader{}, "session", currency.USD, zap.NewNop())

	m = update(t, m, catalogMsg{state: catalog.Failed{Message: "failed to fetch products", Err: errors.New("x")}})

	assert.Contains(t, m.View(), "failed to fetch products")
	assert.Empty(t, m.Visible())

	m = update(t, m, keyRune('+'))
	assert.True(t, m.Cart().IsEmpty())
}

func TestModelCategoryNavigation(t *testing.T) {
	m := loadedModel(t)
	assert.Equal(t, domain.CategoryAll, m.SelectedCategory())

	tests := []struct {
		name         string
		key          tea.KeyMsg
		wantCategory string
		wantVisible  int
	}{
		{name: "right", key: tea.KeyMsg{Type: tea.KeyRight}, wantCategory: "men's clothing", wantVisible: 0},
		{name: "tab", key: tea.KeyMsg{Type: tea.KeyTab}, wantCategory: "women's clothing", wantVisible: 0},
		{name: "right again", key: tea.KeyMsg{Type: tea.KeyRight}, wantCategory: "electronics", wantVisible: 2},
		{name: "right to jewelery", key: tea.KeyMsg{Type: tea.KeyRight}, wantCategory: "jewelery", wantVisible: 1},
		{name: "wraps to all", key: tea.KeyMsg{Type: tea.KeyRight}, wantCategory: domain.CategoryAll, wantVisible: 3},
		{name: "left wraps to jewelery", key: tea.KeyMsg{Type: tea.KeyLeft}, wantCategory: "jewelery", wantVisible: 1},
	}

	for _, tt := range tests {
		m = update(t, m, tt.key)
		assert.Equal(t, tt.wantCategory, m.SelectedCategory(), tt.name)
		assert.Len(t, m.Visible(), tt.wantVisible, tt.name)
		assert.Zero(t, m.Cursor(), tt.name)
	}
}

func TestModelCartKeys(t *testing.T) {
	m := loadedModel(t)

	// cursor on product 1 ($10), add twice
	m = update(t, m, keyRune('+'))
	m = update(t, m, keyRune('a'))

	// product 2 ($5), add once
	m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	cart := m.Cart()
	assert.Equal(t, 2, cart.Quantity(1))
	assert.Equal(t, 1, cart.Quantity(2))
	assert.True(t, cart.Total().Amount.Equal(decimal.NewFromInt(25)))
	assert.Contains(t, m.View(), "Total: $25.00")

	m = update(t, m, keyRune('-'))
	cart = m.Cart()
	assert.False(t, cart.Contains(2))
	assert.Equal(t, 2, cart.Quantity(1))

	// not in cart: ignored
	m = update(t, m, keyRune('-'))
	assert.Equal(t, 1, m.Cart().Len())

	m = update(t, m, keyRune('c'))
	assert.True(t, m.Cart().IsEmpty())
	assert.Contains(t, m.View(), "Cart is empty")
}

func TestModelCursorBounds(t *testing.T) {
	m := loadedModel(t)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyUp})
	assert.Zero(t, m.Cursor())

	for range 10 {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 2, m.Cursor())
}

func TestModelQuit(t *testing.T) {
	m := loadedModel(t)

	_, cmd := m.Update(keyRune('q'))
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func loadedModel(t *testing.T) Model {
	t.Helper()

	m := New(t.Context(), &stubLoader{}, "session", currency.USD, zap.NewNop())
	return update(t, m, catalogMsg{state: catalog.Loaded{Products: testProducts()}})
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()

	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func testProducts() []domain.Product {
	usd := func(amount int64) domain.Money {
		return domain.Money{Amount: decimal.NewFromInt(amount), Currency: currency.USD}
	}

	return []domain.Product{
		{ID: 1, Title: "Monitor", Category: "electronics", Price: usd(10)},
		{ID: 2, Title: "Ring", Category: "jewelery", Price: usd(5)},
		{ID: 3, Title: "SSD", Category: "electronics", Price: usd(80)},
	}
}
