package commands

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"wordgrip/internal/domain"
)

// Executor handles command execution
type Executor struct {
	ctx *CommandContext
}

// NewExecutor creates a new command executor. pronouncer may be nil.
func NewExecutor(ctx context.Context, searcher Searcher, pronouncer Pronouncer) *Executor {
	if ctx == nil {
		ctx = context.Background()
	}
	return &Executor{
		ctx: &CommandContext{
			Ctx:        ctx,
			Searcher:   searcher,
			Pronouncer: pronouncer,
		},
	}
}

// ExecuteLookup creates and executes a lookup command
func (e *Executor) ExecuteLookup(term string) tea.Cmd {
	return NewLookupCommand(e.ctx, term).Execute()
}

// ExecutePronounce creates and executes a pronounce command
func (e *Executor) ExecutePronounce(record *domain.WordRecord) tea.Cmd {
	return NewPronounceCommand(e.ctx, record).Execute()
}

// ExecuteSpeak creates and executes a speak command
func (e *Executor) ExecuteSpeak(text string) tea.Cmd {
	return NewSpeakCommand(e.ctx, text).Execute()
}
