// SPDX-License-Identifier: MIT
// Package: render
//
// terminal.go — frame presentation on an ANSI terminal via termenv.
//
// Lifecycle: Begin hides the cursor and clears the screen, Present homes the
// cursor and overwrites the previous frame in place, End restores the cursor.

package render

import (
	"io"

	"github.com/muesli/termenv"
)

// TerminalOption customizes NewTerminal.
type TerminalOption func(*terminalConfig)

type terminalConfig struct {
	profile    termenv.Profile
	hasProfile bool
	color      string
}

// WithProfile forces a colour profile instead of detecting one from the
// environment. termenv.Ascii disables colour.
func WithProfile(p termenv.Profile) TerminalOption {
	return func(c *terminalConfig) {
		c.profile = p
		c.hasProfile = true
	}
}

// WithColor sets the foreground colour of drawn cells: an ANSI index such as
// "2" or a hex value such as "#00ff00". Panics on an empty string.
func WithColor(color string) TerminalOption {
	if color == "" {
		panic("render: WithColor(\"\")")
	}
	return func(c *terminalConfig) { c.color = color }
}

// Terminal writes frames to an ANSI terminal.
type Terminal struct {
	out   *termenv.Output
	style termenv.Style
}

// NewTerminal wraps w, typically os.Stdout.
func NewTerminal(w io.Writer, opts ...TerminalOption) *Terminal {
	var cfg terminalConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	var outOpts []termenv.OutputOption
	if cfg.hasProfile {
		outOpts = append(outOpts, termenv.WithProfile(cfg.profile))
	}
	out := termenv.NewOutput(w, outOpts...)

	style := out.String()
	if cfg.color != "" {
		style = style.Foreground(out.Color(cfg.color))
	}
	return &Terminal{out: out, style: style}
}

// Begin prepares the screen for a sequence of frames.
func (t *Terminal) Begin() {
	t.out.HideCursor()
	t.out.ClearScreen()
}

// Present draws fb over the previous frame.
func (t *Terminal) Present(fb *Framebuffer) error {
	t.out.MoveCursor(1, 1)
	_, err := io.WriteString(t.out, t.style.Styled(fb.String()))
	return err
}

// End restores the cursor.
func (t *Terminal) End() {
	t.out.ShowCursor()
}
