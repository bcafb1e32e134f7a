// Package tui is the terminal storefront: category buttons, the product grid
// and the cart strip over one session cart.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikolayk812/storefront/internal/catalog"
	"github.com/nikolayk812/storefront/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/text/currency"
)

// CatalogLoader resolves the catalog once.
type CatalogLoader interface {
	Load(ctx context.Context) catalog.State
}

type catalogMsg struct {
	state catalog.State
}

// Model owns the session cart. All mutations happen in Update, so no locking
// is needed.
type Model struct {
	ctx    context.Context
	loader CatalogLoader
	log    *zap.Logger

	state      catalog.State
	cart       domain.Cart
	categories []string
	selected   int
	cursor     int

	spinner spinner.Model
	help    help.Model
	keys    keyMap
	styles  styles
	width   int
}

func New(ctx context.Context, loader CatalogLoader, sessionID string, cur currency.Unit, logger *zap.Logger) Model {
	st := defaultStyles()

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = st.Spinner

	return Model{
		ctx:        ctx,
		loader:     loader,
		log:        logger,
		state:      catalog.Loading{},
		cart:       domain.NewCart(sessionID, cur),
		categories: domain.Categories(),
		spinner:    sp,
		help:       help.New(),
		keys:       defaultKeyMap(),
		styles:     st,
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.load)
}

func (m Model) load() tea.Msg {
	return catalogMsg{state: m.loader.Load(m.ctx)}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case catalogMsg:
		m.state = msg.state
		m.cursor = 0
		return m, nil

	case spinner.TickMsg:
		if _, loading := m.state.(catalog.Loading); loading {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.NextCategory):
		m.selectCategory(m.selected + 1)

	case key.Matches(msg, m.keys.PrevCategory):
		m.selectCategory(m.selected - 1)

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.Visible())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Add):
		if p, ok := m.current(); ok {
			entry := m.cart.Add(p)
			m.log.Debug("added to cart", zap.Int("product", int(p.ID)), zap.Int("quantity", entry.Quantity))
		}

	case key.Matches(msg, m.keys.Remove):
		// The remove control is only shown for products already in the cart.
		if p, ok := m.current(); ok && m.cart.Contains(p.ID) {
			qty, err := m.cart.Remove(p.ID)
			if err != nil {
				m.log.Error("remove from cart", zap.Error(err))
				break
			}
			m.log.Debug("removed from cart", zap.Int("product", int(p.ID)), zap.Int("quantity", qty))
		}

	case key.Matches(msg, m.keys.Clear):
		m.cart.Clear()
	}

	return m, nil
}

func (m *Model) selectCategory(i int) {
	n := len(m.categories)
	m.selected = ((i % n) + n) % n
	m.cursor = 0
}

func (m Model) current() (domain.Product, bool) {
	visible := m.Visible()
	if m.cursor < 0 || m.cursor >= len(visible) {
		return domain.Product{}, false
	}
	return visible[m.cursor], true
}

// Visible is the filtered product list, empty unless the catalog is loaded.
func (m Model) Visible() []domain.Product {
	loaded, ok := m.state.(catalog.Loaded)
	if !ok {
		return nil
	}
	return domain.Filter(loaded.Products, m.SelectedCategory())
}

func (m Model) SelectedCategory() string {
	return m.categories[m.selected]
}

func (m Model) Cart() domain.Cart {
	return m.cart.Clone()
}

func (m Model) State() catalog.State {
	return m.state
}

func (m Model) Cursor() int {
	return m.cursor
}
