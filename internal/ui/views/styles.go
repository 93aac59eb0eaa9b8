package views

import (
	"github.com/charmbracelet/lipgloss"

	"wordgrip/internal/ui/viewmodels"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Title       lipgloss.Style
	Dim         lipgloss.Style
	InfoBox     lipgloss.Style
	Help        lipgloss.Style
	Main        lipgloss.Style
	Scroll      lipgloss.Style
	Highlight   lipgloss.Style
	HighlightBg lipgloss.Style
	StatusError lipgloss.Style
	Loading     lipgloss.Style
	Headword    lipgloss.Style
	Phonetic    lipgloss.Style
	Enabled     lipgloss.Style
	Disabled    lipgloss.Style
	Origin      lipgloss.Style
	Number      lipgloss.Style
	Example     lipgloss.Style
	Label       lipgloss.Style
	Recent      lipgloss.Style
}

// NewStyles creates a new Styles instance with default values
func NewStyles() *Styles {
	return &Styles{
		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99")).
			MarginBottom(1),
		Dim: lipgloss.NewStyle().Faint(true),
		InfoBox: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			Padding(1).
			BorderForeground(lipgloss.Color("241")),
		Help: lipgloss.NewStyle().Faint(true),
		Main: lipgloss.NewStyle().
			Padding(1, 2),
		Scroll:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Highlight:   lipgloss.NewStyle().Foreground(lipgloss.Color("226")).Bold(true),
		HighlightBg: lipgloss.NewStyle().Background(lipgloss.Color("238")),
		StatusError: lipgloss.NewStyle().Foreground(lipgloss.Color("203")), // red
		Loading:     lipgloss.NewStyle().Foreground(lipgloss.Color("241")), // gray
		Headword:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("255")),
		Phonetic:    lipgloss.NewStyle().Foreground(lipgloss.Color("51")), // cyan
		Enabled:     lipgloss.NewStyle().Foreground(lipgloss.Color("78")), // green
		Disabled:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Strikethrough(true),
		Origin:      lipgloss.NewStyle().Foreground(lipgloss.Color("246")).Italic(true),
		Number:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Example:     lipgloss.NewStyle().Foreground(lipgloss.Color("246")).Italic(true),
		Label:       lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		Recent:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}

// GetPartOfSpeechColor returns the label color for a part-of-speech category
func GetPartOfSpeechColor(category viewmodels.PartOfSpeechCategory) string {
	switch category {
	case viewmodels.CategoryNoun:
		return "33" // blue
	case viewmodels.CategoryVerb:
		return "78" // green
	case viewmodels.CategoryAdjective:
		return "214" // yellow
	case viewmodels.CategoryAdverb:
		return "213" // pink
	case viewmodels.CategoryPronoun:
		return "51" // cyan
	case viewmodels.CategoryPreposition:
		return "141" // purple
	case viewmodels.CategoryConjunction:
		return "180" // tan
	case viewmodels.CategoryInterjection:
		return "203" // red
	default:
		return "245" // gray
	}
}
