package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"wordgrip/internal/domain"
	"wordgrip/internal/ui/services/query"
)

// Command represents an executable action
type Command interface {
	Execute() tea.Cmd
}

// Searcher is the part of the query controller commands drive
type Searcher interface {
	Begin(term string) (query.Request, bool)
	Fetch(ctx context.Context, req query.Request) query.Result
}

// Pronouncer plays or speaks a word
type Pronouncer interface {
	Pronounce(ctx context.Context, record *domain.WordRecord) error
	Speak(text string) error
}

// CommandContext provides context for command execution
type CommandContext struct {
	Ctx        context.Context
	Searcher   Searcher
	Pronouncer Pronouncer
}

// LookupResultMsg carries a finished lookup back to the update loop
type LookupResultMsg struct {
	Result query.Result
}

// PronounceDoneMsg reports the end of a pronunciation attempt
type PronounceDoneMsg struct {
	Word string
	Err  error
}

// LookupCommand starts a search and fetches it off the update loop
type LookupCommand struct {
	ctx  *CommandContext
	term string
}

// NewLookupCommand creates a new lookup command
func NewLookupCommand(ctx *CommandContext, term string) *LookupCommand {
	return &LookupCommand{
		ctx:  ctx,
		term: term,
	}
}

// Execute begins the search synchronously so the loading state is visible
// on the next render. Blank terms produce no command.
func (c *LookupCommand) Execute() tea.Cmd {
	req, ok := c.ctx.Searcher.Begin(c.term)
	if !ok {
		return nil
	}
	ctx, searcher := c.ctx.Ctx, c.ctx.Searcher
	return func() tea.Msg {
		return LookupResultMsg{Result: searcher.Fetch(ctx, req)}
	}
}

// PronounceCommand plays the record's audio, speaking it on failure
type PronounceCommand struct {
	ctx    *CommandContext
	record *domain.WordRecord
}

// NewPronounceCommand creates a new pronounce command
func NewPronounceCommand(ctx *CommandContext, record *domain.WordRecord) *PronounceCommand {
	return &PronounceCommand{
		ctx:    ctx,
		record: record,
	}
}

// Execute performs the playback
func (c *PronounceCommand) Execute() tea.Cmd {
	if c.record == nil || c.ctx.Pronouncer == nil {
		return nil
	}
	ctx, p, record := c.ctx.Ctx, c.ctx.Pronouncer, c.record
	return func() tea.Msg {
		return PronounceDoneMsg{Word: record.Word, Err: p.Pronounce(ctx, record)}
	}
}

// SpeakCommand speaks text through the synthesizer
type SpeakCommand struct {
	ctx  *CommandContext
	text string
}

// NewSpeakCommand creates a new speak command
func NewSpeakCommand(ctx *CommandContext, text string) *SpeakCommand {
	return &SpeakCommand{
		ctx:  ctx,
		text: text,
	}
}

// Execute starts speech without waiting for it to finish
func (c *SpeakCommand) Execute() tea.Cmd {
	if c.text == "" || c.ctx.Pronouncer == nil {
		return nil
	}
	p, text := c.ctx.Pronouncer, c.text
	return func() tea.Msg {
		return PronounceDoneMsg{Word: text, Err: p.Speak(text)}
	}
}
