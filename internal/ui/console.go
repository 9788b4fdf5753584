// Package ui renders the game on a line-oriented terminal.
package ui

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/hollandm/gravenhold/internal/game"
)

const bannerWidth = 60

// ConsolePresenter implements game.Console over buffered line input and a
// plain writer. Menus accept a number or a unique case-insensitive prefix of
// an option label; anything else re-prompts.
type ConsolePresenter struct {
	in        *bufio.Reader
	out       io.Writer
	color     bool
	verbosity game.Verbosity
}

// NewConsolePresenter creates a presenter reading from in and writing to
// out. color enables ANSI styling and screen clears.
func NewConsolePresenter(in io.Reader, out io.Writer, color bool, verbosity game.Verbosity) *ConsolePresenter {
	return &ConsolePresenter{
		in:        bufio.NewReader(in),
		out:       out,
		color:     color,
		verbosity: verbosity,
	}
}

// Display writes each line followed by a newline.
func (p *ConsolePresenter) Display(lines ...string) {
	for _, line := range lines {
		fmt.Fprintln(p.out, line)
	}
}

// Banner renders a prominent title block, tinted with the accent color when
// color is enabled.
func (p *ConsolePresenter) Banner(title string, accent colorful.Color) {
	if p.color {
		// Clear the screen and home the cursor between scenes.
		fmt.Fprint(p.out, "\x1b[2J\x1b[H")
	}

	rule := strings.Repeat("=", bannerWidth)
	fmt.Fprintln(p.out, rule)
	fmt.Fprintln(p.out, p.tint(centerText(title, bannerWidth), accent))
	fmt.Fprintln(p.out, rule)
}

// Choose presents a numbered menu and blocks until a valid selection is
// made. Input matches by number or by unique case-insensitive label prefix.
func (p *ConsolePresenter) Choose(prompt string, options []game.Option) string {
	for {
		fmt.Fprintln(p.out)
		fmt.Fprintln(p.out, prompt)
		for i, opt := range options {
			fmt.Fprintf(p.out, "  %d) %s\n", i+1, opt.Label)
			if opt.Detail != "" {
				fmt.Fprintf(p.out, "     %s\n", opt.Detail)
			}
		}

		line, err := p.readLine()
		input := strings.TrimSpace(line)

		if opt, ok := matchOption(input, options); ok {
			if p.verbosity == game.VerbosityDebug {
				fmt.Fprintf(p.out, "[debug] selected %s\n", opt.Label)
			}
			return opt.ID
		}

		if err != nil {
			// Input is gone; fall back to the first option rather
			// than spin forever.
			return options[0].ID
		}
		fmt.Fprintf(p.out, "Choose by number or name (e.g. 1 or %q).\n", options[0].Label)
	}
}

// ReadLine prompts for and returns one trimmed line of input.
func (p *ConsolePresenter) ReadLine(prompt string) string {
	fmt.Fprintf(p.out, "%s\n> ", prompt)
	line, _ := p.readLine()
	return strings.TrimSpace(line)
}

// Pause blocks until the player presses enter.
func (p *ConsolePresenter) Pause() {
	fmt.Fprint(p.out, "(press enter to continue) ")
	_, _ = p.readLine()
}

func (p *ConsolePresenter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	return line, err
}

// tint wraps text in a truecolor ANSI escape derived from the accent color.
// Unstyled text is returned when color is off.
func (p *ConsolePresenter) tint(text string, accent colorful.Color) string {
	if !p.color {
		return text
	}
	r, g, b := accent.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, text)
}

// matchOption resolves input to an option by 1-based number or by unique
// case-insensitive label prefix. Ambiguous or empty input matches nothing.
func matchOption(input string, options []game.Option) (game.Option, bool) {
	if input == "" {
		return game.Option{}, false
	}

	if n, err := strconv.Atoi(input); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1], true
		}
		return game.Option{}, false
	}

	lowered := strings.ToLower(input)
	var matched game.Option
	count := 0
	for _, opt := range options {
		if strings.HasPrefix(strings.ToLower(opt.Label), lowered) {
			matched = opt
			count++
		}
	}
	if count == 1 {
		return matched, true
	}
	return game.Option{}, false
}

// centerText pads text to sit in the middle of a width-character line.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	left := (width - len(text)) / 2
	return strings.Repeat(" ", left) + text
}
