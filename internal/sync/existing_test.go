package sync

import (
	"context"
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"canvas-notion-sync/internal/domain"
	"canvas-notion-sync/internal/logging"
)

func TestLoadExistingIDsPaginates(t *testing.T) {
	store := &fakeStore{}
	for i := 0; i < 250; i++ {
		store.records = append(store.records, domain.ExistingRecord{
			PageID:     "page-" + strconv.Itoa(i),
			ExternalID: strconv.Itoa(1000 + i),
		})
	}

	ids, err := LoadExistingIDs(context.Background(), store, logging.Discard())
	require.NoError(t, err)

	assert.Equal(t, 3, store.queryCalls)
	assert.Equal(t, 250, ids.Len())
	for i := 0; i < 250; i++ {
		assert.True(t, ids.Has(strconv.Itoa(1000+i)))
	}
}

func TestLoadExistingIDsSkipsRowsWithoutID(t *testing.T) {
	store := &fakeStore{records: []domain.ExistingRecord{
		{PageID: "a", ExternalID: "1"},
		{PageID: "b"},
		{PageID: "c", ExternalID: "1"},
	}}

	ids, err := LoadExistingIDs(context.Background(), store, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, NewIDSet("1"), ids)
}

func TestLoadExistingIDsEmptyStore(t *testing.T) {
	store := &fakeStore{}

	ids, err := LoadExistingIDs(context.Background(), store, logging.Discard())
	require.NoError(t, err)
	assert.Equal(t, 0, ids.Len())
	assert.Equal(t, 1, store.queryCalls)
}

func TestLoadExistingIDsPropagatesError(t *testing.T) {
	store := &fakeStore{queryErr: errors.New("rate limited")}

	ids, err := LoadExistingIDs(context.Background(), store, logging.Discard())
	assert.Nil(t, ids)
	assert.ErrorContains(t, err, "batch 1")
	assert.ErrorContains(t, err, "rate limited")
	assert.Equal(t, 1, store.queryCalls)
}

type cursorlessStore struct{ fakeStore }

func (s *cursorlessStore) QueryRecords(ctx context.Context, cursor string, pageSize int) (domain.RecordPage, error) {
	return domain.RecordPage{HasMore: true}, nil
}

func TestLoadExistingIDsRejectsMissingCursor(t *testing.T) {
	_, err := LoadExistingIDs(context.Background(), &cursorlessStore{}, logging.Discard())
	assert.ErrorContains(t, err, "has_more without next_cursor")
}
