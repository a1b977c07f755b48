package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewDestinationRecord(t *testing.T) {
	due := time.Date(2026, 10, 20, 23, 59, 0, 0, time.UTC)
	a := Assignment{
		ID:      "123456",
		Name:    "Lab 4: Linked Lists",
		DueAt:   "2026-10-20T23:59:00Z",
		HTMLURL: "https://canvas.test/courses/1/assignments/123456",
	}

	rec := NewDestinationRecord(a, due, "CS101")

	assert.Equal(t, DestinationRecord{
		Title:      "Lab 4: Linked Lists",
		Start:      due,
		End:        time.Date(2026, 10, 21, 0, 29, 0, 0, time.UTC),
		Category:   "CS101",
		Ref:        "https://canvas.test/courses/1/assignments/123456",
		Status:     "Not started",
		ExternalID: "123456",
	}, rec)
}
