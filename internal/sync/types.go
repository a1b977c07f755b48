package sync

import "canvas-notion-sync/internal/domain"

// IDSet is the set of Canvas ids already present in Notion.
// It is owned by a single pass and is not safe for concurrent use.
type IDSet map[string]struct{}

func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

func (s IDSet) Add(id string) { s[id] = struct{}{} }

func (s IDSet) Len() int { return len(s) }

// State is the terminal state of one assignment in a pass.
type State string

const (
	StateSkippedNotInMapping State = "skipped:not-in-mapping"
	StateSkippedNoDueDate    State = "skipped:no-due-date"
	StateSkippedOutOfWindow  State = "skipped:out-of-window"
	StateSkippedDuplicate    State = "skipped:duplicate"
	StateCreated             State = "created"
	StateCreateFailed        State = "create-failed"
)

// Outcome records what happened to one assignment. Unmapped courses get a
// single course-level outcome with an empty Assignment.
type Outcome struct {
	Course     domain.Course
	Assignment domain.Assignment
	Category   string
	State      State
	PageID     string
	Err        error
}

// Report is everything a pass did, in processing order.
type Report struct {
	Window   Window
	Baseline int
	Outcomes []Outcome
}

func (r *Report) add(o Outcome) { r.Outcomes = append(r.Outcomes, o) }

// Count returns how many outcomes ended in state s.
func (r *Report) Count(s State) int {
	n := 0
	for _, o := range r.Outcomes {
		if o.State == s {
			n++
		}
	}
	return n
}

// Failures returns the create-failed outcomes.
func (r *Report) Failures() []Outcome {
	var out []Outcome
	for _, o := range r.Outcomes {
		if o.State == StateCreateFailed {
			out = append(out, o)
		}
	}
	return out
}
