package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wordgrip/internal/ui/viewmodels"
)

// ResultRenderer handles rendering of a looked-up word
type ResultRenderer struct {
	styles *Styles
}

// NewResultRenderer creates a new result renderer
func NewResultRenderer(styles *Styles) *ResultRenderer {
	return &ResultRenderer{
		styles: styles,
	}
}

// RenderResult renders the whole result, wrapped to width
func (r *ResultRenderer) RenderResult(view viewmodels.ResultView, width int) string {
	if view.Headword == "" {
		return ""
	}
	if width <= 0 {
		width = 80
	}

	var lines []string

	header := r.styles.Headword.Render(view.Headword)
	if view.Phonetic != "" {
		header += "  " + r.styles.Phonetic.Render(view.Phonetic)
	}
	lines = append(lines, header)
	lines = append(lines, r.renderAffordances(view))

	if view.Origin != "" {
		lines = append(lines, "")
		lines = append(lines, r.wrap(r.styles.Origin, "Origin: "+view.Origin, width))
	}

	for _, meaning := range view.Meanings {
		lines = append(lines, "")
		lines = append(lines, r.renderMeaning(meaning, width)...)
	}

	return strings.Join(lines, "\n")
}

func (r *ResultRenderer) renderAffordances(view viewmodels.ResultView) string {
	play := r.styles.Disabled.Render("♪ play (ctrl+a)")
	if view.AudioEnabled {
		play = r.styles.Enabled.Render("♪ play (ctrl+a)")
	}
	speak := r.styles.Disabled.Render("speak (ctrl+s)")
	if view.SpeechEnabled {
		speak = r.styles.Enabled.Render("speak (ctrl+s)")
	}
	return play + "  " + speak
}

func (r *ResultRenderer) renderMeaning(meaning viewmodels.MeaningView, width int) []string {
	labelStyle := lipgloss.NewStyle().
		Bold(true).
		Italic(true).
		Foreground(lipgloss.Color(GetPartOfSpeechColor(meaning.Category)))

	lines := []string{labelStyle.Render(meaning.PartOfSpeech)}

	indent := lipgloss.NewStyle().PaddingLeft(4)
	for _, def := range meaning.Definitions {
		number := r.styles.Number.Render(fmt.Sprintf("%2d.", def.Number))
		text := lipgloss.NewStyle().Width(width - 4).Render(def.Text)
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, number, " ", text))

		if def.Example != "" {
			lines = append(lines, indent.Render(r.wrap(r.styles.Example, fmt.Sprintf("%q", def.Example), width-4)))
		}
		if len(def.Synonyms) > 0 {
			lines = append(lines, indent.Render(r.styles.Label.Render("Synonyms: ")+def.SynonymsLine()))
		}
		if len(def.Antonyms) > 0 {
			lines = append(lines, indent.Render(r.styles.Label.Render("Antonyms: ")+def.AntonymsLine()))
		}
	}
	return lines
}

func (r *ResultRenderer) wrap(style lipgloss.Style, text string, width int) string {
	if width < 10 {
		width = 10
	}
	return style.Width(width).Render(text)
}
