package providers

import (
	"context"
	"iter"

	"canvas-notion-sync/internal/domain"
)

// AssignmentSource lazily enumerates courses and their upcoming assignments.
// Each sequence is single-use and yields at most one non-nil error, last.
type AssignmentSource interface {
	Courses(ctx context.Context) iter.Seq2[domain.Course, error]
	UpcomingAssignments(ctx context.Context, courseID string) iter.Seq2[domain.Assignment, error]
}

// RecordStore is the destination the sync writes into.
type RecordStore interface {
	QueryRecords(ctx context.Context, cursor string, pageSize int) (domain.RecordPage, error)
	CreateRecord(ctx context.Context, rec domain.DestinationRecord) (pageID string, err error)
}
