//go:build e2e && unix

package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

const scrollback = 1 << 20

var binPath = "wordgrip_e2e"

// Keystrokes as the terminal sends them
const (
	KeyEnter = "\r"
	KeyEsc   = "\x1b"
	KeyCtrlC = "\x03"
	KeyCtrlN = "\x0e"
	KeyCtrlU = "\x15"
	KeyTab   = "\t"
)

// The color profile probe asks for the background (OSC 11) followed by the
// cursor position. Answering both keeps startup from waiting on its timeout.
var (
	bgQuery = []byte("\x1b]11;?")
	bgReply = []byte("\x1b]11;rgb:0000/0000/0000\x1b\\\x1b[1;1R")
)

// Strips CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// screen is a bounded capture of everything the app has written
type screen struct {
	mu   sync.Mutex
	data []byte
}

func (s *screen) Write(p []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = append(s.data, p...)
	if over := len(s.data) - scrollback; over > 0 {
		s.data = append(s.data[:0], s.data[over:]...)
	}
	return len(p), nil
}

func (s *screen) String() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return string(s.data)
}

func (s *screen) Reset() {
	s.mu.Lock()
	s.data = s.data[:0]
	s.mu.Unlock()
}

// App runs one wordgrip process on a pseudo terminal. The home directory
// is private to the test, so config and history survive restarts of the
// same App but never leak between tests.
type App struct {
	t    *testing.T
	home string
	env  []string

	ptmx *os.File
	cmd  *exec.Cmd
	out  screen
}

func NewApp(t *testing.T) *App {
	t.Helper()
	a := &App{t: t, home: t.TempDir()}
	t.Cleanup(a.Stop)
	return a
}

// Setenv adds KEY=VALUE pairs for every later Start
func (a *App) Setenv(kv ...string) {
	a.env = append(a.env, kv...)
}

// Start launches the binary with args on a 120x40 terminal
func (a *App) Start(args ...string) error {
	a.cmd = exec.Command(binPath, args...)
	a.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C.UTF-8",
		"HOME="+a.home,
		"XDG_CONFIG_HOME="+filepath.Join(a.home, ".config"),
		"PATH=/nonexistent", // keeps real players and synthesizers out of reach
	)
	a.cmd.Env = append(a.cmd.Env, a.env...)

	ptmx, err := pty.StartWithSize(a.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		return fmt.Errorf("start on pty: %w", err)
	}
	a.ptmx = ptmx

	go func() {
		buf := make([]byte, 8192)
		for {
			n, err := ptmx.Read(buf)
			if n > 0 {
				_, _ = a.out.Write(buf[:n])
				if bytes.Contains(buf[:n], bgQuery) {
					_, _ = ptmx.Write(bgReply)
				}
			}
			if err != nil {
				return
			}
		}
	}()
	return nil
}

// Type writes raw keystrokes
func (a *App) Type(keys string) error {
	a.t.Helper()
	_, err := a.ptmx.Write([]byte(keys))
	return err
}

// Search replaces the input with term and submits it
func (a *App) Search(term string) error {
	a.t.Helper()
	return a.Type(KeyCtrlU + term + KeyEnter)
}

// Plain is the captured output without escape sequences
func (a *App) Plain() string {
	return ansiRe.ReplaceAllString(a.out.String(), "")
}

// Eventually polls pred against the plain output until timeout
func (a *App) Eventually(pred func(plain string) bool, timeout time.Duration) bool {
	a.t.Helper()
	deadline := time.Now().Add(timeout)
	for {
		if pred(a.Plain()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// Sees waits up to three seconds for text
func (a *App) Sees(text string) bool {
	a.t.Helper()
	return a.Eventually(func(s string) bool { return strings.Contains(s, text) }, 3*time.Second)
}

// Wait blocks until the process exits or timeout passes
func (a *App) Wait(timeout time.Duration) error {
	a.t.Helper()
	done := make(chan error, 1)
	go func() { done <- a.cmd.Wait() }()
	select {
	case err := <-done:
		a.cmd = nil
		return err
	case <-time.After(timeout):
		return fmt.Errorf("still running after %s", timeout)
	}
}

// Clear forgets the output captured so far
func (a *App) Clear() {
	a.out.Reset()
}

// Restart stops the current process and forgets its output
func (a *App) Restart(args ...string) error {
	a.Stop()
	a.Clear()
	return a.Start(args...)
}

// Tail logs the last n bytes of plain output
func (a *App) Tail(n int) {
	s := a.Plain()
	if len(s) > n {
		s = s[len(s)-n:]
	}
	a.t.Logf("--- output tail ---\n%s", s)
}

// Stop hangs up the terminal and kills the process if it is still alive
func (a *App) Stop() {
	if a.ptmx != nil {
		_ = a.ptmx.Close()
		a.ptmx = nil
	}
	if a.cmd != nil && a.cmd.Process != nil {
		_ = a.cmd.Process.Kill()
		_, _ = a.cmd.Process.Wait()
	}
	a.cmd = nil
}
