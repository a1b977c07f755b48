package domain

import "time"

const (
	// StatusNotStarted is the Status every new Notion row starts in.
	StatusNotStarted = "Not started"

	// EventDuration is how long the Date range of a synced row spans.
	EventDuration = 30 * time.Minute
)

// Course is a Canvas course as the sync sees it.
type Course struct {
	ID   string
	Name string
}

// Assignment is a Canvas assignment as the sync sees it.
// ID is the decimal Canvas id and doubles as the dedup key.
type Assignment struct {
	ID       string
	CourseID string
	Name     string
	DueAt    string // raw ISO-8601, "" when Canvas has none
	HTMLURL  string
}

// DestinationRecord is one row to create in the Notion data source.
type DestinationRecord struct {
	Title      string
	Start      time.Time
	End        time.Time
	Category   string
	Ref        string
	Status     string
	ExternalID string
}

// NewDestinationRecord builds the row for an assignment due at due.
func NewDestinationRecord(a Assignment, due time.Time, category string) DestinationRecord {
	return DestinationRecord{
		Title:      a.Name,
		Start:      due,
		End:        due.Add(EventDuration),
		Category:   category,
		Ref:        a.HTMLURL,
		Status:     StatusNotStarted,
		ExternalID: a.ID,
	}
}

// ExistingRecord is a row already in the destination.
// ExternalID is "" when the row has no Canvas ID.
type ExistingRecord struct {
	PageID     string
	ExternalID string
}

// RecordPage is one page of a destination scan.
type RecordPage struct {
	Records    []ExistingRecord
	HasMore    bool
	NextCursor string
}
