// Package input defines the key bindings of the lookup screen.
package input

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every binding. It implements help.KeyMap.
type KeyMap struct {
	Submit     key.Binding
	NextRecent key.Binding
	PrevRecent key.Binding
	UseRecent  key.Binding
	Play       key.Binding
	Speak      key.Binding
	Pager      key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "look up"),
		),
		NextRecent: key.NewBinding(
			key.WithKeys("ctrl+n", "down"),
			key.WithHelp("ctrl+n/↓", "older search"),
		),
		PrevRecent: key.NewBinding(
			key.WithKeys("ctrl+p", "up"),
			key.WithHelp("ctrl+p/↑", "newer search"),
		),
		UseRecent: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "search highlighted"),
		),
		Play: key.NewBinding(
			key.WithKeys("ctrl+a"),
			key.WithHelp("ctrl+a", "play audio"),
		),
		Speak: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "speak word"),
		),
		Pager: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open in pager"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "scroll up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "scroll down"),
		),
		Help: key.NewBinding(
			key.WithKeys("?", "f1"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "quit"),
		),
	}
}

// ShortHelp is shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Play, k.Speak, k.Help, k.Quit}
}

// FullHelp is shown in the help popup
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Submit, k.UseRecent, k.NextRecent, k.PrevRecent},
		{k.Play, k.Speak, k.Pager},
		{k.PageUp, k.PageDown, k.Help, k.Quit},
	}
}

// SetAudioEnabled toggles the play binding, which hides it from help
func (k *KeyMap) SetAudioEnabled(enabled bool) {
	k.Play.SetEnabled(enabled)
}

// SetSpeechEnabled toggles the speak binding
func (k *KeyMap) SetSpeechEnabled(enabled bool) {
	k.Speak.SetEnabled(enabled)
}
