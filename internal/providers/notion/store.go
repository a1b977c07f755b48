package notion

import (
	"context"
	"time"

	"canvas-notion-sync/internal/domain"
)

// isoLayout renders instants with an explicit offset, e.g. 2026-10-20T23:59:00+00:00.
const isoLayout = "2006-01-02T15:04:05.999999-07:00"

// Store adapts the Notion client into providers.RecordStore for one data source.
type Store struct {
	C            *Client
	DataSourceID string
}

func (s Store) QueryRecords(ctx context.Context, cursor string, pageSize int) (domain.RecordPage, error) {
	resp, err := s.C.QueryDataSource(ctx, s.DataSourceID, QueryRequest{
		PageSize:    pageSize,
		StartCursor: cursor,
	})
	if err != nil {
		return domain.RecordPage{}, err
	}

	out := domain.RecordPage{
		Records: make([]domain.ExistingRecord, 0, len(resp.Results)),
		HasMore: resp.HasMore,
	}
	if resp.NextCursor != nil {
		out.NextCursor = *resp.NextCursor
	}
	for _, p := range resp.Results {
		id, _ := p.FirstPlainText(PropCanvasID)
		out.Records = append(out.Records, domain.ExistingRecord{PageID: p.ID, ExternalID: id})
	}
	return out, nil
}

func (s Store) CreateRecord(ctx context.Context, rec domain.DestinationRecord) (string, error) {
	page, err := s.C.CreatePage(ctx, CreatePageRequest{
		Parent:     Parent{DataSourceID: s.DataSourceID},
		Properties: RecordProperties(rec),
	})
	if err != nil {
		return "", err
	}
	return page.ID, nil
}

// RecordProperties maps a destination record onto the data source's columns.
func RecordProperties(rec domain.DestinationRecord) map[string]PropertyValue {
	ref := rec.Ref
	return map[string]PropertyValue{
		PropName: {Title: Text(rec.Title)},
		PropDate: {Date: &DateValue{
			Start: formatInstant(rec.Start),
			End:   formatInstant(rec.End),
		}},
		PropClass:    {Select: &NamedOption{Name: rec.Category}},
		PropRef:      {URL: &ref},
		PropStatus:   {Status: &NamedOption{Name: rec.Status}},
		PropCanvasID: {RichText: Text(rec.ExternalID)},
	}
}

func formatInstant(t time.Time) string {
	return t.Format(isoLayout)
}
