// Package loop provides an interactive prompt loop for terminal input.
//
// # Overview
//
// A Loop renders choose menus and free-text questions, reads answers one
// line at a time, remembers the most recent prompt so it can be replayed,
// and tracks a done flag that a terminating menu option or Close flips.
//
// # Usage
//
// Create a loop and prompt until the operator picks the closing option:
//
//	l := loop.New(nil)
//	for !l.Done() {
//	    selection, err := l.Choose(
//	        []string{"Deploy", "Status", "Quit"},
//	        &loop.Preferences{LastOptionClose: true},
//	    )
//	    if err != nil {
//	        return err
//	    }
//	    // selection is true exactly at the chosen index
//	}
//
// Free-text questions work the same way:
//
//	name, err := l.Ask("What's your name?")
//
// # Auto-answers
//
// Scripted flows supply the answer instead of reading one:
//
//	l.Choose(options, &loop.Preferences{Choice: 1})
//	l.Question("Module path", true, "github.com/username/myapp")
//
// Supplied values are coerced to their decimal string form before index
// comparison, so Choice: 1 and Choice: "1" behave identically.
//
// # Replay
//
// Repeat re-runs the last prompt verbatim, optionally substituting an
// auto-answer:
//
//	result, err := l.Repeat(nil) // interactive re-run
//	result, err := l.Repeat(0)   // replay with answer 0
//
// # Streams
//
// Both streams are injectable for tests and embedding:
//
//	l := loop.New(&loop.Config{In: strings.NewReader("1\n"), Out: &buf})
//
// The only failure mode of a read is the input stream ending, surfaced as
// ErrInputClosed.
package loop
