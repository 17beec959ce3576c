// Package printer renders prompt text and divider lines for CLI tools.
package printer

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	// DefaultDividerLength is used when a divider length is not given.
	DefaultDividerLength = 30
	// DefaultDividerChar is used when a divider character is not given.
	DefaultDividerChar = "-"
)

var dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))

// Config controls where output goes and how dividers render by default.
// A nil or zero Config means stdout with the package defaults.
type Config struct {
	Out           io.Writer
	DividerLength int
	DividerChar   string
}

// Printer writes prompt text and decorative dividers to a single sink.
// Writes are fire-and-forget; there are no error conditions to handle.
type Printer struct {
	out           io.Writer
	dividerLength int
	dividerChar   string
}

// New creates a printer with sensible defaults for any nil Config fields.
func New(cfg *Config) *Printer {
	if cfg == nil {
		cfg = &Config{}
	}

	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	length := cfg.DividerLength
	if length <= 0 {
		length = DefaultDividerLength
	}

	char := cfg.DividerChar
	if char == "" {
		char = DefaultDividerChar
	}

	return &Printer{
		out:           out,
		dividerLength: length,
		dividerChar:   char,
	}
}

// Print writes text, optionally followed by a line break.
func (p *Printer) Print(text string, newline bool) {
	if newline {
		fmt.Fprintln(p.out, text)
		return
	}
	fmt.Fprint(p.out, text)
}

// Newline writes a single line break.
func (p *Printer) Newline() {
	fmt.Fprintln(p.out)
}

// Divider writes a repeated-character line. A non-positive length or empty
// char falls back to the configured defaults.
func (p *Printer) Divider(length int, char string) {
	if length <= 0 {
		length = p.dividerLength
	}
	if char == "" {
		char = p.dividerChar
	}
	fmt.Fprintln(p.out, dividerStyle.Render(strings.Repeat(char, length)))
}

// Out returns the underlying writer, for callers that echo responses
// alongside the prompts.
func (p *Printer) Out() io.Writer {
	return p.out
}
