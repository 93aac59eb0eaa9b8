package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/noborus/ov/oviewer"
)

var errNoProgram = errors.New("program not set")

// PagerOps shows content full screen in the ov pager
type PagerOps struct {
	program *tea.Program
	run     func(r io.Reader) error
}

// NewPagerOps creates a pager backed by oviewer
func NewPagerOps() *PagerOps {
	return &PagerOps{run: runOviewer}
}

// SetProgram sets the program whose terminal is borrowed while paging
func (p *PagerOps) SetProgram(program *tea.Program) {
	p.program = program
}

// ShowInPager pages content, handing the terminal back afterwards
func (p *PagerOps) ShowInPager(content string) error {
	if p.program == nil {
		return errNoProgram
	}

	if err := p.program.ReleaseTerminal(); err != nil {
		return fmt.Errorf("release terminal: %w", err)
	}
	defer func() {
		// Let ov finish tearing down its screen first
		time.Sleep(100 * time.Millisecond)
		_ = p.program.RestoreTerminal()
	}()

	return p.run(strings.NewReader(content))
}

func runOviewer(r io.Reader) error {
	root, err := oviewer.NewRoot(r)
	if err != nil {
		return err
	}

	config := oviewer.NewConfig()
	config.IsWriteOnExit = false
	config.IsWriteOriginal = false
	root.SetConfig(config)

	return root.Run()
}
