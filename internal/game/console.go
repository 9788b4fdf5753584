// Package game implements the turn engine and encounter sequencer. All
// player-facing text and input flows through the Console boundary; the
// packages below it never format screens or read input.
package game

import "github.com/lucasb-eyer/go-colorful"

// Verbosity is the presentation detail level threaded to the boundary.
type Verbosity int

const (
	// VerbosityNormal shows the standard narration and combat lines.
	VerbosityNormal Verbosity = iota
	// VerbosityDebug additionally surfaces rolled bonuses and internals.
	VerbosityDebug
)

// String returns the verbosity name as used in configuration.
func (v Verbosity) String() string {
	switch v {
	case VerbosityNormal:
		return "normal"
	case VerbosityDebug:
		return "debug"
	default:
		return "unknown"
	}
}

// ParseVerbosity maps a configuration string to a Verbosity. Anything other
// than "debug" is normal.
func ParseVerbosity(s string) Verbosity {
	if s == "debug" {
		return VerbosityDebug
	}
	return VerbosityNormal
}

// Option is one selectable entry in a boundary menu.
type Option struct {
	ID     string // stable identifier returned by Choose
	Label  string // menu line shown to the player
	Detail string // optional second line (ability descriptions, stock counts)
}

// Console is the presentation boundary. Implementations own all rendering
// and input concerns; the engine only ever hands over lines and menus.
//
// Choose never fails: implementations re-prompt on invalid or ambiguous
// input until one of the given options is selected.
type Console interface {
	// Display writes one or more narration lines.
	Display(lines ...string)
	// Banner renders a prominent title, styled with the given accent
	// color when the implementation supports color.
	Banner(title string, accent colorful.Color)
	// Choose presents a menu and blocks until a valid selection is made,
	// returning the chosen option's ID.
	Choose(prompt string, options []Option) string
	// ReadLine prompts for and returns one line of free-form input.
	ReadLine(prompt string) string
	// Pause blocks until the player acknowledges (press enter).
	Pause()
}
