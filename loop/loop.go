package loop

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/fernvale/askline/history"
	"github.com/fernvale/askline/printer"
)

var (
	// ErrInputClosed reports a read that yielded no data because the input
	// stream ended.
	ErrInputClosed = errors.New("input stream closed")

	// ErrNothingToRepeat reports a Repeat call before any prompt was made.
	ErrNothingToRepeat = errors.New("nothing to repeat")

	// ErrNoOptions reports a Choose call with an empty option list.
	ErrNoOptions = errors.New("choose requires at least one option")
)

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("cyan")).Bold(true)
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Config controls the streams and rendering defaults of a Loop.
// A nil Config means stdin/stdout with the printer defaults.
type Config struct {
	In  io.Reader
	Out io.Writer

	// Divider defaults, forwarded to the printer.
	DividerLength int
	DividerChar   string

	// Navigate switches prompts to arrow-key models when the loop runs on
	// the real process streams. It has no effect on injected streams.
	Navigate bool
}

// Preferences controls how a single Choose or Question call renders and how
// its answer is obtained. Malformed values fall back to defaults.
type Preferences struct {
	Brackets       string // two-rune pair around option indices, default "[]"
	Inline         bool   // one line with separators instead of stacked
	Separator      string // inline separator, default two spaces
	Divider        bool   // frame the options with divider lines
	DividerLength  int
	DividerChar    string
	DividerPadding bool // blank line between dividers and options

	// Choice supplies the answer programmatically, bypassing the read.
	// Strings and numbers are coerced to their decimal string form.
	Choice any

	// LastOptionClose marks the loop done when the answer is the last index.
	LastOptionClose bool

	// Navigate shows this menu as an arrow-key model (terminal runs only).
	Navigate bool
}

// Result is what Repeat resolved to, depending on the replayed prompt kind.
type Result struct {
	Kind      history.Kind
	Selection []bool
	Answer    string
}

// Loop is the user-facing prompt surface. It renders prompts, obtains
// answers interactively or from supplied values, remembers the last prompt
// for replay, and tracks a monotonic done flag.
type Loop struct {
	in          *bufio.Reader
	printer     *printer.Printer
	history     *history.History
	navigate    bool
	interactive bool
	done        bool
}

// New creates a loop reading from cfg.In and writing through a printer on
// cfg.Out. Nil streams default to stdin and stdout.
func New(cfg *Config) *Loop {
	if cfg == nil {
		cfg = &Config{}
	}

	in := cfg.In
	if in == nil {
		in = os.Stdin
	}
	out := cfg.Out
	if out == nil {
		out = os.Stdout
	}

	return &Loop{
		in: bufio.NewReader(in),
		printer: printer.New(&printer.Config{
			Out:           out,
			DividerLength: cfg.DividerLength,
			DividerChar:   cfg.DividerChar,
		}),
		history:     history.New(),
		navigate:    cfg.Navigate,
		interactive: in == io.Reader(os.Stdin) && out == io.Writer(os.Stdout),
	}
}

// Read performs one blocking line read and returns the line with trailing
// carriage-return and line-feed characters stripped. A read that yields no
// data returns ErrInputClosed.
func (l *Loop) Read() (string, error) {
	line, err := l.in.ReadString('\n')
	if err != nil && line == "" {
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// Choose renders an indexed option menu, obtains an answer, and returns one
// bool per option, true exactly at the answer's index. An answer matching
// no index yields an all-false selection. When prefs.LastOptionClose is set
// and the last option is chosen, the loop is marked done.
func (l *Loop) Choose(options []string, prefs *Preferences) ([]bool, error) {
	if len(options) == 0 {
		return nil, ErrNoOptions
	}
	if prefs == nil {
		prefs = &Preferences{}
	}

	l.history.Save(history.Record{
		Kind:            history.Choose,
		Options:         options,
		LastOptionClose: prefs.LastOptionClose,
	})

	answer, err := l.chooseAnswer(options, prefs)
	if err != nil {
		return nil, err
	}

	selection := make([]bool, len(options))
	if idx, convErr := strconv.Atoi(answer); convErr == nil && idx >= 0 && idx < len(options) {
		selection[idx] = true
		if prefs.LastOptionClose && idx == len(options)-1 {
			l.done = true
		}
	}
	return selection, nil
}

// chooseAnswer renders the menu and resolves the raw answer string.
func (l *Loop) chooseAnswer(options []string, prefs *Preferences) (string, error) {
	if prefs.Choice != nil {
		l.renderOptions(options, prefs)
		return coerce(prefs.Choice), nil
	}

	if (prefs.Navigate || l.navigate) && l.interactive {
		idx, err := runMenu(options)
		if err != nil {
			return "", fmt.Errorf("show menu: %w", err)
		}
		if idx < 0 {
			// Cancelled. Treated like an answer matching no option.
			return "", nil
		}
		return strconv.Itoa(idx), nil
	}

	l.renderOptions(options, prefs)
	return l.Read()
}

// renderOptions writes the indexed menu per the preferences.
func (l *Loop) renderOptions(options []string, prefs *Preferences) {
	open, closing := bracketPair(prefs.Brackets)

	if prefs.Divider {
		l.printer.Divider(prefs.DividerLength, prefs.DividerChar)
		if prefs.DividerPadding {
			l.printer.Newline()
		}
	}

	if prefs.Inline {
		sep := prefs.Separator
		if sep == "" {
			sep = "  "
		}
		entries := make([]string, len(options))
		for i, opt := range options {
			entries[i] = hintStyle.Render(open+strconv.Itoa(i)+closing) + " " + opt
		}
		l.printer.Print(strings.Join(entries, sep), true)
	} else {
		for i, opt := range options {
			l.printer.Print(hintStyle.Render(open+strconv.Itoa(i)+closing)+" "+opt, true)
		}
	}

	if prefs.Divider {
		if prefs.DividerPadding {
			l.printer.Newline()
		}
		l.printer.Divider(prefs.DividerLength, prefs.DividerChar)
	}
}

// Question prints text (with a trailing line break when newline is true),
// records the invocation, and resolves with the coerced value or, when
// value is nil, the next line of input.
func (l *Loop) Question(text string, newline bool, value any) (string, error) {
	l.history.Save(history.Record{
		Kind:    history.Question,
		Text:    text,
		Newline: newline,
	})

	if value != nil {
		l.printer.Print(promptStyle.Render(text), newline)
		return coerce(value), nil
	}

	if l.navigate && l.interactive {
		return runTextField(text)
	}

	l.printer.Print(promptStyle.Render(text), newline)
	return l.Read()
}

// Ask prints text on its own line and reads the reply.
func (l *Loop) Ask(text string) (string, error) {
	return l.Question(text, true, nil)
}

// Repeat replays the most recent prompt with value as the auto-supplied
// answer (nil for an interactive read). It returns ErrNothingToRepeat when
// no prompt was ever made.
func (l *Loop) Repeat(value any) (*Result, error) {
	rec, ok := l.history.Retrieve()
	if !ok {
		return nil, ErrNothingToRepeat
	}

	switch rec.Kind {
	case history.Choose:
		selection, err := l.Choose(rec.Options, &Preferences{
			Choice:          value,
			LastOptionClose: rec.LastOptionClose,
		})
		if err != nil {
			return nil, err
		}
		return &Result{Kind: history.Choose, Selection: selection}, nil

	case history.Question:
		answer, err := l.Question(rec.Text, rec.Newline, value)
		if err != nil {
			return nil, err
		}
		return &Result{Kind: history.Question, Answer: answer}, nil
	}

	return nil, ErrNothingToRepeat
}

// Close marks the loop done. Safe to call more than once.
func (l *Loop) Close() {
	l.done = true
}

// Done reports whether a terminating option was chosen or Close was called.
func (l *Loop) Done() bool {
	return l.done
}

// bracketPair splits a two-rune pair like "[]" or "()". Anything else falls
// back to square brackets.
func bracketPair(pair string) (string, string) {
	runes := []rune(pair)
	if len(runes) != 2 {
		return "[", "]"
	}
	return string(runes[0]), string(runes[1])
}

// coerce normalizes an auto-supplied answer to the string form used for
// index comparison. Integral floats collapse to their integer form, so a
// choice of 1.0 matches index 1.
func coerce(v any) string {
	switch a := v.(type) {
	case nil:
		return ""
	case string:
		return a
	case int:
		return strconv.Itoa(a)
	case int64:
		return strconv.FormatInt(a, 10)
	case float64:
		if a == math.Trunc(a) && !math.IsInf(a, 0) {
			return strconv.FormatInt(int64(a), 10)
		}
		return strconv.FormatFloat(a, 'f', -1, 64)
	case fmt.Stringer:
		return a.String()
	default:
		return fmt.Sprint(a)
	}
}
