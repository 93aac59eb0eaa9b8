package viewmodels

import (
	"github.com/charmbracelet/bubbles/help"

	"wordgrip/internal/ui/state"
)

// ViewState contains all the state needed for rendering
type ViewState struct {
	Width        int
	Height       int
	Input        string
	Phase        state.Phase
	Spinner      string
	Err          string
	HasResult    bool
	Body         string
	ScrollPct    float64
	Recent       []string
	RecentCursor int
	ShowHelp     bool
	HelpFooter   string
	HelpFull     string
}

// ViewModel transforms application state into view-ready data
type ViewModel struct {
	width        int
	height       int
	help         help.Model
	keys         help.KeyMap
	input        string
	spinner      string
	body         string
	scrollPct    float64
	recent       []string
	recentCursor int
	showHelp     bool
}

// NewViewModel creates a new view model
func NewViewModel() *ViewModel {
	return &ViewModel{
		help:         help.New(),
		recentCursor: -1,
	}
}

// SetDimensions sets the current terminal dimensions
func (vm *ViewModel) SetDimensions(width, height int) {
	vm.width = width
	vm.height = height
	vm.help.Width = width
}

// SetHelp sets the help model and the bindings it describes
func (vm *ViewModel) SetHelp(helpModel help.Model, keys help.KeyMap) {
	vm.help = helpModel
	vm.keys = keys
}

// SetShowHelp toggles the help popup
func (vm *ViewModel) SetShowHelp(show bool) {
	vm.showHelp = show
}

// UpdateTextInput sets the rendered search box
func (vm *ViewModel) UpdateTextInput(view string) {
	vm.input = view
}

// SetSpinner sets the rendered spinner frame
func (vm *ViewModel) SetSpinner(frame string) {
	vm.spinner = frame
}

// SetBody sets the rendered, scrolled result viewport
func (vm *ViewModel) SetBody(body string, scrollPct float64) {
	vm.body = body
	vm.scrollPct = scrollPct
}

// SetRecent sets the recent searches and the highlighted index
func (vm *ViewModel) SetRecent(items []string, cursor int) {
	vm.recent = items
	vm.recentCursor = cursor
}

// BuildViewState creates a ViewState for rendering
func (vm *ViewModel) BuildViewState(st state.AppState) ViewState {
	vs := ViewState{
		Width:        vm.width,
		Height:       vm.height,
		Input:        vm.input,
		Phase:        st.Phase,
		Spinner:      vm.spinner,
		Err:          st.Err,
		HasResult:    st.Record != nil,
		Body:         vm.body,
		ScrollPct:    vm.scrollPct,
		Recent:       vm.recent,
		RecentCursor: vm.recentCursor,
		ShowHelp:     vm.showHelp,
	}

	if vm.keys != nil {
		short := vm.help
		short.ShowAll = false
		vs.HelpFooter = short.View(vm.keys)

		full := vm.help
		full.ShowAll = true
		vs.HelpFull = full.View(vm.keys)
	}
	return vs
}
