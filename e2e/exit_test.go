//go:build e2e && unix

package main

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestApplicationExit(t *testing.T) {
	t.Parallel()
	app := NewApp(t)
	launch(t, app, newFakeDictionary(t))

	require.NoError(t, app.Type(KeyEsc))

	if err := app.Wait(1500 * time.Millisecond); err != nil {
		t.Logf("esc didn't work, using Ctrl+C: %v", err)
		require.NoError(t, app.Type(KeyCtrlC))
		require.NoError(t, app.Wait(750*time.Millisecond))
	}
}

func TestApplicationExitWithCtrlC(t *testing.T) {
	t.Parallel()
	app := NewApp(t)
	launch(t, app, newFakeDictionary(t))

	require.NoError(t, app.Type("hel"+KeyCtrlC))
	require.NoError(t, app.Wait(1500*time.Millisecond))
}

func TestHelpPopup(t *testing.T) {
	t.Parallel()
	app := NewApp(t)
	launch(t, app, newFakeDictionary(t))

	require.NoError(t, app.Type("?"))
	require.True(t, app.Sees("wordgrip help"))
	require.True(t, app.Sees("open in pager"))

	app.Clear()
	require.NoError(t, app.Type(KeyEsc))
	require.True(t, app.Sees("Type a word and press enter."))
}
