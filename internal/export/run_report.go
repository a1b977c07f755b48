package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"canvas-notion-sync/internal/sync"
)

// Run report layout. Keep header order EXACT.
var runReportHeader = []string{
	"COURSE",
	"ASSIGNMENT",
	"CANVAS_ID",
	"DUE_AT",
	"CATEGORY",
	"STATE",
	"NOTION_PAGE_ID",
	"ERROR",
}

// WriteRunReportCSV writes one row per outcome of a pass.
func WriteRunReportCSV(w io.Writer, report *sync.Report) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(runReportHeader); err != nil {
		return err
	}

	for _, o := range report.Outcomes {
		if err := cw.Write(toRunReportRow(o)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteRunReportFile writes the report to path, creating parent dirs.
func WriteRunReportFile(path string, report *sync.Report) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("export: create report dir: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("export: create report: %w", err)
	}
	if err := WriteRunReportCSV(f, report); err != nil {
		f.Close()
		return fmt.Errorf("export: write report: %w", err)
	}
	return f.Close()
}

func toRunReportRow(o sync.Outcome) []string {
	errText := ""
	if o.Err != nil {
		errText = oneLine(o.Err.Error())
	}

	return []string{
		o.Course.Name,              // COURSE
		oneLine(o.Assignment.Name), // ASSIGNMENT
		o.Assignment.ID,            // CANVAS_ID
		o.Assignment.DueAt,         // DUE_AT
		o.Category,                 // CATEGORY
		string(o.State),            // STATE
		o.PageID,                   // NOTION_PAGE_ID
		errText,                    // ERROR
	}
}

// oneLine folds newlines so each outcome stays on one physical row.
func oneLine(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}
