// Package screen declares what the router needs from a screen. Screens
// live under internal/screens; each renders only its body, with the
// shared header and footer drawn around it by the app shell.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/daylab/labmate/internal/ui/layout"
)

type Screen interface {
	Init() tea.Cmd

	// Update receives every message while the screen is on top of the
	// stack, returning the screen to keep showing.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View draws the body inside the given content box.
	View(width, height int) string

	// Title labels the header while this screen is active.
	Title() string
}

// KeyHintProvider lets a screen put its own bindings in the footer;
// screens without it get the default hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}
