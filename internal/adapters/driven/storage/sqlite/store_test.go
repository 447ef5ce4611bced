package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/civica-labs/corpora-cli/internal/core/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := NewStore(filepath.Join(t.TempDir(), "corpus.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func storeTestTable() domain.Table {
	return domain.Table{
		{
			SpeakerSurname:   "Washington",
			SpeakerGivenName: "George",
			Affiliation:      "Unaffiliated",
			OccurredOn:       time.Date(1790, 1, 8, 0, 0, 0, 0, time.UTC),
			Category:         "address",
			DeliveryMode:     "spoken",
			Body:             "Fellow-Citizens...",
		},
		{
			SpeakerSurname:   "Adams",
			SpeakerGivenName: "John",
			Affiliation:      "Federalist",
			OccurredOn:       time.Date(1797, 11, 23, 0, 0, 0, 0, time.UTC),
			Category:         "address",
			DeliveryMode:     "spoken",
			Body:             "Gentlemen...",
		},
	}
}

func TestNewStore_RunsMigrations(t *testing.T) {
	store := newTestStore(t)

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, count)
}

func TestReplace_InsertsAllDocuments(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, storeTestTable()))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

func TestReplace_SwapsWholesale(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Replace(ctx, storeTestTable()))
	require.NoError(t, store.Replace(ctx, storeTestTable()[:1]))

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestDocumentID_Deterministic(t *testing.T) {
	table := storeTestTable()

	assert.Equal(t, documentID(&table[0]), documentID(&table[0]))
	assert.NotEqual(t, documentID(&table[0]), documentID(&table[1]))
}
