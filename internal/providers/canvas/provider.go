package canvas

import (
	"context"
	"fmt"
	"iter"
	"strconv"

	"canvas-notion-sync/internal/domain"
)

// Source adapts the Canvas client into providers.AssignmentSource.
type Source struct {
	C *Client
}

func (s Source) Courses(ctx context.Context) iter.Seq2[domain.Course, error] {
	return func(yield func(domain.Course, error) bool) {
		for c, err := range s.C.ActiveCourses(ctx) {
			if err != nil {
				yield(domain.Course{}, err)
				return
			}
			if !yield(domain.Course{ID: strconv.FormatInt(c.ID, 10), Name: c.Name}, nil) {
				return
			}
		}
	}
}

func (s Source) UpcomingAssignments(ctx context.Context, courseID string) iter.Seq2[domain.Assignment, error] {
	return func(yield func(domain.Assignment, error) bool) {
		id, err := strconv.ParseInt(courseID, 10, 64)
		if err != nil {
			yield(domain.Assignment{}, fmt.Errorf("canvas: invalid course id %q: %w", courseID, err))
			return
		}
		for a, err := range s.C.UpcomingAssignments(ctx, id) {
			if err != nil {
				yield(domain.Assignment{}, err)
				return
			}
			if !yield(toDomainAssignment(a), nil) {
				return
			}
		}
	}
}

func toDomainAssignment(a Assignment) domain.Assignment {
	due := ""
	if a.DueAt != nil {
		due = *a.DueAt
	}
	return domain.Assignment{
		ID:       strconv.FormatInt(a.ID, 10),
		CourseID: strconv.FormatInt(a.CourseID, 10),
		Name:     a.Name,
		DueAt:    due,
		HTMLURL:  a.HTMLURL,
	}
}
