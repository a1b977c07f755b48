package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"canvas-notion-sync/internal/domain"
	"canvas-notion-sync/internal/providers"
)

// Pass copies upcoming Canvas assignments into Notion once.
// It runs on a single goroutine; nothing in it is safe for concurrent use.
type Pass struct {
	Source  providers.AssignmentSource
	Store   providers.RecordStore
	Mapping map[string]string // course name -> Class label
	Log     *slog.Logger

	// Now defaults to time.Now.
	Now func() time.Time
}

// CreateResult is the outcome of a single create call. Err is nil on success.
type CreateResult struct {
	Record domain.DestinationRecord
	PageID string
	Err    error
}

func (r CreateResult) OK() bool { return r.Err == nil }

// Run executes the pass. A returned error means the run was aborted; the
// report still holds every outcome recorded before the failure. Failed
// creates are not errors: they are recorded as create-failed outcomes.
func (p *Pass) Run(ctx context.Context) (*Report, error) {
	if p.Source == nil || p.Store == nil {
		return nil, errors.New("sync: pass needs a source and a store")
	}
	log := p.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	now := p.Now
	if now == nil {
		now = time.Now
	}

	existing, err := LoadExistingIDs(ctx, p.Store, log)
	if err != nil {
		return nil, err
	}

	report := &Report{
		Window:   NewWindow(now()),
		Baseline: existing.Len(),
	}
	log.Info("Scanning assignments due in window",
		"start", report.Window.Start.Format(time.RFC3339),
		"end", report.Window.End.Format(time.RFC3339),
	)

	for course, err := range p.Source.Courses(ctx) {
		if err != nil {
			return report, fmt.Errorf("sync: list courses: %w", err)
		}
		if err := p.syncCourse(ctx, log, course, existing, report); err != nil {
			return report, err
		}
	}

	log.Info("Sync run complete",
		"created", report.Count(StateCreated),
		"failed", report.Count(StateCreateFailed),
		"duplicates", report.Count(StateSkippedDuplicate),
		"out_of_window", report.Count(StateSkippedOutOfWindow),
		"no_due_date", report.Count(StateSkippedNoDueDate),
		"unmapped_courses", report.Count(StateSkippedNotInMapping),
	)
	return report, nil
}

func (p *Pass) syncCourse(ctx context.Context, log *slog.Logger, course domain.Course, existing IDSet, report *Report) error {
	log.Debug("Evaluating course", "course", course.Name, "course_id", course.ID)

	label, ok := p.Mapping[course.Name]
	if !ok {
		log.Debug("Course not in name map, skipping", "course", course.Name)
		report.add(Outcome{Course: course, State: StateSkippedNotInMapping})
		return nil
	}
	log.Info("Processing course", "course", course.Name, "class", label)

	window := report.Window
	checked := 0
	for a, err := range p.Source.UpcomingAssignments(ctx, course.ID) {
		if err != nil {
			return fmt.Errorf("sync: list assignments for course %s (%s): %w", course.Name, course.ID, err)
		}
		checked++
		log.Debug("Checking assignment", "assignment", a.Name, "canvas_id", a.ID)

		o := Outcome{Course: course, Assignment: a, Category: label}

		if a.DueAt == "" {
			log.Debug("No due date, skipping assignment", "canvas_id", a.ID)
			o.State = StateSkippedNoDueDate
			report.add(o)
			continue
		}

		due, err := ParseDueAt(a.DueAt)
		if err != nil {
			return fmt.Errorf("sync: assignment %s: %w", a.ID, err)
		}
		log.Debug("Parsed due date", "canvas_id", a.ID, "due", due.Format(time.RFC3339))

		if !window.Contains(due) {
			log.Debug("Assignment outside window, skipping", "canvas_id", a.ID, "due", due.Format(time.RFC3339))
			o.State = StateSkippedOutOfWindow
			report.add(o)
			continue
		}

		if existing.Has(a.ID) {
			log.Debug("Duplicate detected, already synced", "canvas_id", a.ID)
			o.State = StateSkippedDuplicate
			report.add(o)
			continue
		}

		res := p.create(ctx, log, domain.NewDestinationRecord(a, due, label))
		if !res.OK() {
			log.Error("Failed to create Notion page for assignment",
				"assignment", a.Name,
				"canvas_id", a.ID,
				"err", res.Err,
			)
			o.State = StateCreateFailed
			o.Err = res.Err
			report.add(o)
			continue
		}

		existing.Add(a.ID)
		log.Info("Added assignment", "assignment", a.Name, "class", label, "page_id", res.PageID)
		o.State = StateCreated
		o.PageID = res.PageID
		report.add(o)
	}

	log.Debug("Finished course", "course", course.Name, "checked", checked)
	return nil
}

func (p *Pass) create(ctx context.Context, log *slog.Logger, rec domain.DestinationRecord) CreateResult {
	log.Debug("Creating Notion page for assignment", "assignment", rec.Title, "canvas_id", rec.ExternalID)
	id, err := p.Store.CreateRecord(ctx, rec)
	return CreateResult{Record: rec, PageID: id, Err: err}
}
