// Package audio plays pronunciation audio and speaks text through whatever
// player and synthesizer commands the platform provides.
package audio

import (
	"context"
	"errors"
	"os/exec"
)

// ErrUnavailable is returned when no suitable command is installed
var ErrUnavailable = errors.New("audio: capability unavailable")

// Runner starts external commands
type Runner interface {
	LookPath(name string) (string, error)
	// Run blocks until the command exits
	Run(ctx context.Context, name string, args ...string) error
	// Start launches the command without waiting for it
	Start(name string, args ...string) error
}

// ExecRunner runs commands with os/exec. Output is discarded so nothing
// reaches the terminal owned by the UI.
type ExecRunner struct{}

func (ExecRunner) LookPath(name string) (string, error) {
	return exec.LookPath(name)
}

func (ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	return exec.CommandContext(ctx, name, args...).Run()
}

func (ExecRunner) Start(name string, args ...string) error {
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return err
	}
	// Reap the process; nobody observes completion
	go func() { _ = cmd.Wait() }()
	return nil
}

// firstAvailable returns the first candidate found on PATH
func firstAvailable(r Runner, candidates ...string) (string, bool) {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		if path, err := r.LookPath(c); err == nil {
			return path, true
		}
	}
	return "", false
}
