package sync

import "time"

// Lookahead is how far past now an assignment may be due and still sync.
const Lookahead = 7 * 24 * time.Hour

// Window is the closed interval [Start, End] of due instants worth syncing.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow returns [now, now+Lookahead] in UTC.
func NewWindow(now time.Time) Window {
	start := now.UTC()
	return Window{Start: start, End: start.Add(Lookahead)}
}

// Contains reports whether t lies in the window, both ends included.
func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && !t.After(w.End)
}
