package transcript

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAndReadBack(t *testing.T) {
	store, err := NewWALStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(Entry{Input: "leverage 0 20", OK: true, Message: "leverage updated"}))
	require.NoError(t, store.Save(Entry{Input: "buy btc", OK: false, ErrorDetail: "token not set"}))

	records, err := store.EntriesAfter(0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	assert.Equal(t, "leverage 0 20", records[0].Entry.Input)
	assert.True(t, records[0].Entry.OK)
	assert.NotEmpty(t, records[0].Entry.ID)
	assert.False(t, records[0].Entry.Time.IsZero())

	assert.Equal(t, "buy btc", records[1].Entry.Input)
	assert.Equal(t, "token not set", records[1].Entry.ErrorDetail)
	assert.Greater(t, records[1].Index, records[0].Index)
}

func TestEntriesAfterSkipsOlder(t *testing.T) {
	store, err := NewWALStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(Entry{Input: "first", OK: true}))
	require.NoError(t, store.Save(Entry{Input: "second", OK: true}))

	records, err := store.EntriesAfter(0)
	require.NoError(t, err)
	require.Len(t, records, 2)

	newer, err := store.EntriesAfter(records[0].Index)
	require.NoError(t, err)
	require.Len(t, newer, 1)
	assert.Equal(t, "second", newer[0].Entry.Input)
}

func TestSaveRedactsToken(t *testing.T) {
	store, err := NewWALStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Save(Entry{Input: "token super-secret-jwt", OK: true}))

	records, err := store.EntriesAfter(0)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "token ***", records[0].Entry.Input)
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "token ***", Redact("token abc"))
	assert.Equal(t, "token ***", Redact("  TOKEN abc  "))
	assert.Equal(t, "leverage 0 20", Redact("leverage 0 20"))
	assert.Equal(t, "buy btc", Redact("buy btc"))
}

func TestUninitializedStore(t *testing.T) {
	var store *WALStore

	assert.Error(t, store.Save(Entry{Input: "x"}))
	_, err := store.EntriesAfter(0)
	assert.Error(t, err)
	assert.Error(t, store.Close())
}
