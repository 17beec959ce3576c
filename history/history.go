// Package history remembers the most recent prompt so it can be replayed.
package history

// Kind identifies which prompt variant was recorded.
type Kind int

const (
	None Kind = iota
	Choose
	Question
)

// Record holds the arguments of one prompt invocation. Choose records carry
// Options and LastOptionClose; Question records carry Text and Newline.
type Record struct {
	Kind            Kind
	Options         []string
	Text            string
	LastOptionClose bool
	Newline         bool
}

// History stores the single most recent record. Each Save overwrites the
// previous one; there is no list.
type History struct {
	rec   Record
	saved bool
}

// New creates an empty history.
func New() *History {
	return &History{}
}

// Save overwrites the stored record. Options are copied so later mutation
// of the caller's slice cannot change what a replay renders.
func (h *History) Save(rec Record) {
	if rec.Options != nil {
		opts := make([]string, len(rec.Options))
		copy(opts, rec.Options)
		rec.Options = opts
	}
	h.rec = rec
	h.saved = true
}

// Retrieve returns the current record. The bool reports whether anything
// was ever saved.
func (h *History) Retrieve() (Record, bool) {
	return h.rec, h.saved
}
