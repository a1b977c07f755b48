package export

import (
	"bytes"
	"encoding/csv"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canvas-notion-sync/internal/domain"
	"canvas-notion-sync/internal/sync"
)

func testReport() *sync.Report {
	course := domain.Course{ID: "1", Name: "CS 101"}
	return &sync.Report{Outcomes: []sync.Outcome{
		{Course: domain.Course{ID: "9", Name: "Orientation"}, State: sync.StateSkippedNotInMapping},
		{
			Course:     course,
			Assignment: domain.Assignment{ID: "100", Name: "Lab 1", DueAt: "2026-10-20T23:59:00Z"},
			Category:   "CS",
			State:      sync.StateCreated,
			PageID:     "page-1",
		},
		{
			Course:     course,
			Assignment: domain.Assignment{ID: "101", Name: "Lab, part\n2", DueAt: "2026-10-21T23:59:00Z"},
			Category:   "CS",
			State:      sync.StateCreateFailed,
			Err:        errors.New("notion: create page failed:\nstatus=400"),
		},
	}}
}

func TestWriteRunReportCSV(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteRunReportCSV(&buf, testReport()))

	rows, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	require.Len(t, rows, 4)

	assert.Equal(t, runReportHeader, rows[0])
	assert.Equal(t, []string{"Orientation", "", "", "", "", "skipped:not-in-mapping", "", ""}, rows[1])
	assert.Equal(t, []string{"CS 101", "Lab 1", "100", "2026-10-20T23:59:00Z", "CS", "created", "page-1", ""}, rows[2])
	assert.Equal(t, []string{"CS 101", "Lab, part 2", "101", "2026-10-21T23:59:00Z", "CS", "create-failed", "", "notion: create page failed: status=400"}, rows[3])
}

func TestWriteRunReportFileCreatesDirs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.csv")

	require.NoError(t, WriteRunReportFile(path, testReport()))

	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "COURSE,ASSIGNMENT,CANVAS_ID")
	assert.Contains(t, string(b), "page-1")
}
