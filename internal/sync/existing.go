package sync

import (
	"context"
	"fmt"
	"log/slog"

	"canvas-notion-sync/internal/providers"
)

// QueryPageSize is the page size used when scanning the destination.
const QueryPageSize = 100

// LoadExistingIDs scans every row of the destination and collects their
// Canvas ids. Any query error aborts the scan; no partial set is returned.
func LoadExistingIDs(ctx context.Context, store providers.RecordStore, log *slog.Logger) (IDSet, error) {
	log.Info("Fetching existing Canvas IDs from Notion")

	ids := NewIDSet()
	cursor := ""

	for batch := 1; ; batch++ {
		log.Debug("Querying Notion", "batch", batch, "cursor", cursor)

		page, err := store.QueryRecords(ctx, cursor, QueryPageSize)
		if err != nil {
			return nil, fmt.Errorf("sync: load existing ids (batch %d): %w", batch, err)
		}
		log.Debug("Received results from Notion", "batch", batch, "count", len(page.Records))

		for _, r := range page.Records {
			if r.ExternalID == "" {
				continue
			}
			ids.Add(r.ExternalID)
			log.Debug("Found existing Canvas ID", "canvas_id", r.ExternalID, "page_id", r.PageID)
		}

		if !page.HasMore {
			log.Debug("No more Notion pages")
			break
		}
		if page.NextCursor == "" {
			return nil, fmt.Errorf("sync: load existing ids (batch %d): has_more without next_cursor", batch)
		}
		cursor = page.NextCursor
	}

	log.Info("Loaded existing Canvas IDs", "count", ids.Len())
	return ids, nil
}
