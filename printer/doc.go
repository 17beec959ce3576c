// Package printer renders prompt text and divider lines for CLI tools.
//
// # Overview
//
// The prompt loop writes everything it shows through this package, so
// output ordering is the call order and there is a single place to swap
// the sink (stdout by default, a buffer in tests).
//
// # Usage
//
// Create a printer and write to it:
//
//	p := printer.New(nil)
//	p.Print("Pick a fruit", true)
//	p.Divider(0, "") // 30 dashes, the package defaults
//	p.Newline()
//
// Defaults can be changed per printer:
//
//	p := printer.New(&printer.Config{DividerLength: 12, DividerChar: "="})
//
// # Styling
//
// Dividers are rendered in muted gray via lipgloss. Styling degrades to
// plain text automatically when the output is not a terminal.
package printer
