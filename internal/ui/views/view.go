package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"wordgrip/internal/ui/state"
	"wordgrip/internal/ui/viewmodels"
)

// ChromeHeight is the number of lines the view uses around the result body
const ChromeHeight = 11

// Renderer handles all view rendering
type Renderer struct {
	styles       *Styles
	resultRender *ResultRenderer
	popupRender  *PopupRenderer
}

// NewRenderer creates a new renderer
func NewRenderer() *Renderer {
	styles := NewStyles()
	return &Renderer{
		styles:       styles,
		resultRender: NewResultRenderer(styles),
		popupRender:  NewPopupRenderer(styles),
	}
}

// RenderResult renders a result for the viewport or the pager
func (r *Renderer) RenderResult(view viewmodels.ResultView, width int) string {
	return r.resultRender.RenderResult(view, width)
}

// Render produces the complete view
func (r *Renderer) Render(vs viewmodels.ViewState) string {
	if vs.ShowHelp {
		return r.popupRender.RenderPopup(r.renderHelp(vs), vs.Height, vs.Width, r.styles.InfoBox)
	}

	content := &strings.Builder{}

	content.WriteString(r.renderTitle(vs))
	content.WriteString("\n")
	content.WriteString(vs.Input)
	content.WriteString("\n")
	content.WriteString(r.renderStatus(vs))
	content.WriteString("\n\n")

	switch {
	case vs.HasResult:
		content.WriteString(vs.Body)
	case vs.Phase == state.PhaseIdle:
		content.WriteString(r.styles.Dim.Render("Type a word and press enter."))
	}
	content.WriteString("\n")

	if recent := r.renderRecent(vs); recent != "" {
		content.WriteString("\n")
		content.WriteString(recent)
		content.WriteString("\n")
	}

	if vs.HelpFooter != "" {
		content.WriteString("\n")
		content.WriteString(r.styles.Help.Render(vs.HelpFooter))
	}

	mainStyle := r.styles.Main
	if vs.Height > 0 {
		mainStyle = mainStyle.MaxHeight(vs.Height)
	}
	return mainStyle.Render(content.String())
}

// renderTitle renders the logo with the scroll position right-aligned
func (r *Renderer) renderTitle(vs viewmodels.ViewState) string {
	logo := r.styles.Title.Render("wordgrip")
	if !vs.HasResult {
		return logo
	}

	right := r.styles.Scroll.Render(fmt.Sprintf("%3.0f%%", vs.ScrollPct*100))
	termWidth := vs.Width
	if termWidth <= 0 {
		termWidth = 80
	}
	padding := termWidth - 4 - lipgloss.Width(logo) - lipgloss.Width(right)
	if padding < 2 {
		padding = 2
	}
	return logo + strings.Repeat(" ", padding) + right
}

func (r *Renderer) renderStatus(vs viewmodels.ViewState) string {
	switch vs.Phase {
	case state.PhaseLoading:
		return r.styles.Loading.Render(vs.Spinner + " Looking up...")
	case state.PhaseFailure:
		return r.styles.StatusError.Render(vs.Err)
	default:
		return ""
	}
}

func (r *Renderer) renderRecent(vs viewmodels.ViewState) string {
	if len(vs.Recent) == 0 {
		return ""
	}

	items := make([]string, 0, len(vs.Recent))
	for i, term := range vs.Recent {
		if i == vs.RecentCursor {
			items = append(items, r.styles.Highlight.Inherit(r.styles.HighlightBg).Render(term))
			continue
		}
		items = append(items, r.styles.Recent.Render(term))
	}
	return r.styles.Dim.Render("Recent: ") + strings.Join(items, r.styles.Dim.Render(" · "))
}

func (r *Renderer) renderHelp(vs viewmodels.ViewState) string {
	title := r.styles.Title.Render("wordgrip help")
	return title + "\n" + vs.HelpFull + "\n\n" + r.styles.Dim.Render("Press ? or esc to close")
}
