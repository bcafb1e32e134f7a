package tui

import "github.com/charmbracelet/lipgloss"

var (
	black = lipgloss.Color("#000000")
	white = lipgloss.Color("#ffffff")
	gray  = lipgloss.Color("#808080")
	red   = lipgloss.Color("#e53935")
)

type styles struct {
	Category         lipgloss.Style
	SelectedCategory lipgloss.Style
	Card             lipgloss.Style
	SelectedCard     lipgloss.Style
	Title            lipgloss.Style
	Muted            lipgloss.Style
	Price            lipgloss.Style
	Error            lipgloss.Style
	Heading          lipgloss.Style
	Spinner          lipgloss.Style
}

func defaultStyles() styles {
	button := lipgloss.NewStyle().Padding(0, 2).MarginRight(1)
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(gray).
		Padding(0, 1).
		Width(cardWidth)

	return styles{
		Category:         button.Border(lipgloss.NormalBorder()).BorderForeground(gray),
		SelectedCategory: button.Border(lipgloss.ThickBorder()).BorderForeground(black).Background(black).Foreground(white),
		Card:             card,
		SelectedCard:     card.BorderForeground(black).Border(lipgloss.ThickBorder()),
		Title:            lipgloss.NewStyle().Bold(true),
		Muted:            lipgloss.NewStyle().Foreground(gray),
		Price:            lipgloss.NewStyle().Bold(true),
		Error:            lipgloss.NewStyle().Foreground(red).Bold(true),
		Heading:          lipgloss.NewStyle().Bold(true).Underline(true),
		Spinner:          lipgloss.NewStyle().Foreground(black),
	}
}
