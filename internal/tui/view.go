package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/nikolayk812/storefront/internal/catalog"
	"github.com/nikolayk812/storefront/internal/domain"
)

const (
	cardWidth   = 28
	defaultCols = 3
)

func (m Model) View() string {
	sections := []string{
		m.viewCategories(),
		m.viewCatalog(),
		m.viewCart(),
		m.help.View(m.keys),
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewCategories() string {
	buttons := make([]string, 0, len(m.categories))
	for i, c := range m.categories {
		style := m.styles.Category
		if i == m.selected {
			style = m.styles.SelectedCategory
		}
		buttons = append(buttons, style.Render(domain.Label(c)))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, buttons...)
}

func (m Model) viewCatalog() string {
	switch state := m.state.(type) {
	case catalog.Failed:
		return m.styles.Error.Render(state.Message)
	case catalog.Loaded:
		return m.viewGrid()
	default:
		return "\n  " + m.spinner.View() + " Loading products...\n"
	}
}

func (m Model) viewGrid() string {
	visible := m.Visible()
	if len(visible) == 0 {
		return m.styles.Muted.Render("No products in this category")
	}

	cards := make([]string, 0, len(visible))
	for i, p := range visible {
		cards = append(cards, m.viewCard(p, i == m.cursor))
	}

	cols := m.columns()
	var rows []string
	for start := 0; start < len(cards); start += cols {
		end := min(start+cols, len(cards))
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cards[start:end]...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (m Model) viewCard(p domain.Product, selected bool) string {
	style := m.styles.Card
	if selected {
		style = m.styles.SelectedCard
	}

	var controls string
	if m.cart.Contains(p.ID) {
		controls = fmt.Sprintf("[-] %d [+]", m.cart.Quantity(p.ID))
	} else {
		controls = "[Add to cart]"
	}

	body := strings.Join([]string{
		m.styles.Title.Render(truncate(p.Title, cardWidth-2)),
		m.styles.Muted.Render(p.Category),
		m.styles.Price.Render(p.Price.String()),
		controls,
	}, "\n")

	return style.Render(body)
}

func (m Model) viewCart() string {
	var b strings.Builder
	b.WriteString(m.styles.Heading.Render("Cart"))
	b.WriteString("\n")

	if m.cart.IsEmpty() {
		b.WriteString("Cart is empty\n")
		return b.String()
	}

	items := make([]string, 0, m.cart.Len())
	for _, e := range m.cart.Entries() {
		items = append(items, m.styles.Card.Render(fmt.Sprintf("%s\n%s x %d",
			truncate(e.Product.Title, cardWidth-2), e.Product.Price, e.Quantity)))
	}
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, items...))
	b.WriteString("\n")
	b.WriteString(m.styles.Title.Render("Total: " + m.cart.Total().String()))
	b.WriteString("  [c] Clear Cart\n")

	return b.String()
}

func (m Model) columns() int {
	if m.width <= 0 {
		return defaultCols
	}
	return max(1, m.width/(cardWidth+4))
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}
