package theme

import (
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Styles describes reusable Lip Gloss styles shared across the UI.
type Styles struct {
	Header            *lipgloss.Style
	Loading           *lipgloss.Style
	Item              *lipgloss.Style
	SelectedItem      *lipgloss.Style
	CompletedItem     *lipgloss.Style
	Notes             *lipgloss.Style
	CollectionName    *lipgloss.Style
	Count             *lipgloss.Style
	Checkbox          *lipgloss.Style
	CheckboxDone      *lipgloss.Style
	Error             *lipgloss.Style
	Status            *lipgloss.Style
	Footer            *lipgloss.Style
	Filter            *lipgloss.Style
	FilterPrompt      *lipgloss.Style
	FilterPlaceholder *lipgloss.Style
	FormLabel         *lipgloss.Style
	FormLabelActive   *lipgloss.Style
}

var defaultStyles = Styles{
	Header: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Bold(true),
	),
	Loading: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Italic(true),
	),
	Item: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	SelectedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Background(lipgloss.Color("238")).Bold(true),
	),
	CompletedItem: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
	),
	Notes: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	CollectionName: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("39")).Bold(true),
	),
	Count: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("243")),
	),
	Checkbox: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
	),
	CheckboxDone: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	Error: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	),
	Status: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Footer: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	Filter: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("249")),
	),
	FilterPrompt: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("34")).Bold(true),
	),
	FilterPlaceholder: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	),
	FormLabel: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	),
	FormLabelActive: ptr(
		lipgloss.NewStyle().Foreground(lipgloss.Color("33")).Bold(true),
	),
}

// Default exposes the standard style set used across the application.
func Default() *Styles {
	return &defaultStyles
}

// fallbackDot is used when a collection color fails to parse.
const fallbackDot = "#1E6FFF"

// CollectionDot returns a style whose foreground carries the collection's
// own color. Named or malformed colors fall back to a neutral blue.
func CollectionDot(hex string) lipgloss.Style {
	c, err := colorful.Hex(hex)
	if err != nil {
		c, _ = colorful.Hex(fallbackDot)
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Bold(true)
}

func ptr(style lipgloss.Style) *lipgloss.Style {
	return &style
}
