package ui

import (
	"context"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"wordgrip/internal/domain"
	"wordgrip/internal/ui/commands"
	"wordgrip/internal/ui/handlers"
	"wordgrip/internal/ui/input"
	"wordgrip/internal/ui/services/navigation"
	"wordgrip/internal/ui/services/query"
	"wordgrip/internal/ui/viewmodels"
	"wordgrip/internal/ui/views"
)

// RecentSource provides the recent searches, most recent first, with the
// version of that list
type RecentSource interface {
	Recent() ([]string, uint64)
}

// Options wires a Model to its services
type Options struct {
	Context     context.Context
	Query       *query.Service
	History     RecentSource
	Pronouncer  commands.Pronouncer // nil disables play and speak
	Caps        viewmodels.Capabilities
	InitialTerm string
	Logger      zerolog.Logger
}

// Model represents the UI state
type Model struct {
	query   *query.Service
	history RecentSource
	caps    viewmodels.Capabilities
	log     zerolog.Logger

	// UI-specific state not owned by the query controller
	width       int
	height      int
	keys        input.KeyMap
	help        help.Model
	textInput   textinput.Model
	spinner     spinner.Model
	viewport    viewport.Model
	spinning    bool
	showHelp    bool
	inPagerMode bool
	shownRecord *domain.WordRecord
	initialTerm string

	// Handlers
	nav          *navigation.Service
	renderer     *views.Renderer
	eventHandler *handlers.EventHandler
	viewModel    *viewmodels.ViewModel
	cmdExecutor  *commands.Executor
	pager        *PagerOps

	// Program reference for terminal management
	program *tea.Program
}

// NewModel creates a new UI model
func NewModel(opts Options) *Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}
	logger := opts.Logger.With().Str("component", "ui").Logger()

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Search for a word"
	ti.CharLimit = 64

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("99"))

	keys := input.DefaultKeyMap()
	keys.SetAudioEnabled(false)
	keys.SetSpeechEnabled(opts.Caps.Speaker && opts.Pronouncer != nil)

	m := &Model{
		query:       opts.Query,
		history:     opts.History,
		caps:        opts.Caps,
		log:         logger,
		keys:        keys,
		help:        help.New(),
		textInput:   ti,
		spinner:     sp,
		viewport:    viewport.New(76, 10),
		initialTerm: opts.InitialTerm,
		nav:         navigation.NewService(),
		renderer:    views.NewRenderer(),
		viewModel:   viewmodels.NewViewModel(),
		cmdExecutor: commands.NewExecutor(ctx, opts.Query, opts.Pronouncer),
		pager:       NewPagerOps(),
	}
	m.eventHandler = handlers.NewEventHandler(m.nav, logger)
	m.viewModel.SetHelp(m.help, m.keys)

	m.syncRecent()
	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.program = p
	m.pager.SetProgram(p)
}

// Init focuses the search box and looks up the initial term, if any
func (m *Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.textInput.Focus(), textinput.Blink}
	if m.initialTerm != "" {
		m.textInput.SetValue(m.initialTerm)
		m.textInput.CursorEnd()
		cmds = append(cmds, m.submit(m.initialTerm))
	}
	return tea.Batch(cmds...)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resize()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case commands.LookupResultMsg:
		if m.query.Complete(msg.Result) {
			m.refreshResult()
			m.syncRecent()
		}
		return m, nil

	case commands.PronounceDoneMsg:
		if msg.Err != nil {
			m.log.Warn().Err(msg.Err).Str("word", msg.Word).Msg("pronunciation failed")
		}
		return m, nil

	case spinner.TickMsg:
		if m.inPagerMode || !m.query.State().Loading {
			m.spinning = false
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case EventMsg:
		m.eventHandler.HandleEvent(msg.Event)
		return m, nil

	case resultPagerMsg:
		if msg.err != nil {
			m.log.Error().Err(msg.err).Msg("pager failed")
		}
		return m, nil

	case pauseRenderingMsg:
		m.inPagerMode = true
		return m, nil

	case resumeRenderingMsg:
		m.inPagerMode = false
		if m.query.State().Loading && !m.spinning {
			m.spinning = true
			return m, m.spinner.Tick
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.showHelp {
		switch {
		case msg.Type == tea.KeyCtrlC:
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help), msg.Type == tea.KeyEsc:
			m.showHelp = false
		}
		return m, nil
	}

	inputEmpty := m.textInput.Value() == ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help) && (msg.Type == tea.KeyF1 || inputEmpty):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m, m.submit(m.textInput.Value())

	case key.Matches(msg, m.keys.NextRecent) && m.recentKeyAllowed(msg, inputEmpty):
		if term, ok := m.nav.Next(); ok {
			m.setInput(term)
		}
		return m, nil

	case key.Matches(msg, m.keys.PrevRecent) && m.recentKeyAllowed(msg, inputEmpty):
		if term, ok := m.nav.Prev(); ok {
			m.setInput(term)
		}
		return m, nil

	case key.Matches(msg, m.keys.UseRecent):
		term, ok := m.nav.Selected()
		if !ok {
			return m, nil
		}
		m.setInput(term)
		return m, m.submit(term)

	case key.Matches(msg, m.keys.Play):
		record := m.query.State().Record
		if record == nil || !m.caps.Player || !record.HasAudio() {
			return m, nil
		}
		return m, m.cmdExecutor.ExecutePronounce(record)

	case key.Matches(msg, m.keys.Speak):
		record := m.query.State().Record
		if record == nil {
			return m, nil
		}
		return m, m.cmdExecutor.ExecuteSpeak(record.Word)

	case key.Matches(msg, m.keys.Pager):
		return m, m.openResultPager()

	case key.Matches(msg, m.keys.PageUp, m.keys.PageDown):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	before := m.textInput.Value()
	var cmd tea.Cmd
	m.textInput, cmd = m.textInput.Update(msg)
	if m.textInput.Value() != before {
		m.nav.Reset()
	}
	return m, cmd
}

// recentKeyAllowed keeps the arrow keys for the text box while it has text
func (m *Model) recentKeyAllowed(msg tea.KeyMsg, inputEmpty bool) bool {
	if msg.Type == tea.KeyUp || msg.Type == tea.KeyDown {
		return inputEmpty || m.nav.GetCursor() >= 0
	}
	return true
}

// syncRecent reads the recent list straight from the history. It goes
// through the event handler so a late HistoryChanged cannot roll it back.
func (m *Model) syncRecent() {
	if m.history == nil {
		return
	}
	terms, version := m.history.Recent()
	m.eventHandler.ApplyHistory(terms, version)
}

func (m *Model) setInput(term string) {
	m.textInput.SetValue(term)
	m.textInput.CursorEnd()
}

// submit starts a lookup and the spinner. Blank terms do nothing.
func (m *Model) submit(term string) tea.Cmd {
	lookup := m.cmdExecutor.ExecuteLookup(term)
	if lookup == nil {
		return nil
	}
	m.nav.Reset()
	if m.spinning {
		return lookup
	}
	m.spinning = true
	return tea.Batch(lookup, m.spinner.Tick)
}

// refreshResult re-renders the current record into the viewport
func (m *Model) refreshResult() {
	st := m.query.State()
	view := viewmodels.BuildResult(st.Record, m.caps)

	m.keys.SetAudioEnabled(view.AudioEnabled)
	m.viewModel.SetHelp(m.help, m.keys)

	m.viewport.SetContent(m.renderer.RenderResult(view, m.viewport.Width))
	if st.Record != m.shownRecord {
		m.viewport.GotoTop()
		m.shownRecord = st.Record
	}
}

func (m *Model) resize() {
	m.help.Width = m.width
	m.textInput.Width = max(m.width-8, 10)
	m.viewport.Width = max(m.width-4, 20)
	m.viewport.Height = max(m.height-views.ChromeHeight, 3)
	m.refreshResult()
}

// openResultPager returns a command that shows the rendered result in ov
func (m *Model) openResultPager() tea.Cmd {
	record := m.query.State().Record
	if record == nil || m.program == nil {
		return nil
	}
	content := m.renderer.RenderResult(viewmodels.BuildResult(record, m.caps), m.viewport.Width)

	return func() tea.Msg {
		// Send pause message to stop rendering
		m.program.Send(pauseRenderingMsg{})

		err := m.pager.ShowInPager(content)

		// Send resume message to restart rendering
		m.program.Send(resumeRenderingMsg{})

		return resultPagerMsg{err: err}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.inPagerMode {
		return ""
	}
	if m.width == 0 {
		return "Loading..."
	}

	m.viewModel.SetDimensions(m.width, m.height)
	m.viewModel.UpdateTextInput(m.textInput.View())
	m.viewModel.SetSpinner(m.spinner.View())
	m.viewModel.SetBody(m.viewport.View(), m.viewport.ScrollPercent())
	m.viewModel.SetRecent(m.nav.Items(), m.nav.GetCursor())
	m.viewModel.SetShowHelp(m.showHelp)

	state := m.viewModel.BuildViewState(m.query.State())
	return m.renderer.Render(state)
}
