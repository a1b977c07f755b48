package providers

import (
	"context"
	"iter"
	"testing"

	"canvas-notion-sync/internal/domain"
)

// MockSource is a mock implementation of AssignmentSource for testing
type MockSource struct {
	CoursesFunc     func(ctx context.Context) iter.Seq2[domain.Course, error]
	AssignmentsFunc func(ctx context.Context, courseID string) iter.Seq2[domain.Assignment, error]
}

func (m *MockSource) Courses(ctx context.Context) iter.Seq2[domain.Course, error] {
	return m.CoursesFunc(ctx)
}

func (m *MockSource) UpcomingAssignments(ctx context.Context, courseID string) iter.Seq2[domain.Assignment, error] {
	return m.AssignmentsFunc(ctx, courseID)
}

// MockStore is a mock implementation of RecordStore for testing
type MockStore struct {
	QueryFunc  func(ctx context.Context, cursor string, pageSize int) (domain.RecordPage, error)
	CreateFunc func(ctx context.Context, rec domain.DestinationRecord) (string, error)
}

func (m *MockStore) QueryRecords(ctx context.Context, cursor string, pageSize int) (domain.RecordPage, error) {
	return m.QueryFunc(ctx, cursor, pageSize)
}

func (m *MockStore) CreateRecord(ctx context.Context, rec domain.DestinationRecord) (string, error) {
	return m.CreateFunc(ctx, rec)
}

func TestProviders(t *testing.T) {
	var _ AssignmentSource = (*MockSource)(nil)
	var _ RecordStore = (*MockStore)(nil)

	src := &MockSource{
		CoursesFunc: func(ctx context.Context) iter.Seq2[domain.Course, error] {
			return func(yield func(domain.Course, error) bool) {
				yield(domain.Course{ID: "1", Name: "BIO 110"}, nil)
			}
		},
	}

	var got []domain.Course
	for c, err := range src.Courses(context.Background()) {
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		got = append(got, c)
	}

	if len(got) != 1 || got[0].Name != "BIO 110" {
		t.Errorf("Expected one course named 'BIO 110', got %+v", got)
	}
}
