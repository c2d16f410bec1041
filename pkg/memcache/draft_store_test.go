package mem

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, capacity int) *DraftCache {
	t.Helper()
	store, err := NewDraftCache(capacity)
	require.NoError(t, err)
	return store
}

func sampleEntry(key string) DraftEntry {
	return DraftEntry{
		Key:               key,
		Title:             "How To Read A Balance Sheet",
		Description:       "A walk through the three core statements.",
		Content:           "## Assets\n...",
		OriginalContent:   "raw extracted pdf text",
		ContentType:       "blog",
		Tags:              []string{"finance", "accounting"},
		KeyPoints:         []string{"assets = liabilities + equity"},
		Links:             []string{"https://example.com/source"},
		EstimatedReadTime: 7,
		CreatedAt:         time.Now(),
	}
}

func TestSetGetRoundTrip(t *testing.T) {
	store := newTestStore(t, 16)
	entry := sampleEntry("draft-1")

	store.Set("draft-1", entry)

	got, ok := store.Get("draft-1")
	require.True(t, ok)
	assert.Equal(t, entry, got)
}

func TestGetMissIsNotAnError(t *testing.T) {
	store := newTestStore(t, 16)

	_, ok := store.Get("never-set")
	assert.False(t, ok)
}

func TestSetOverwritesWholeEntry(t *testing.T) {
	store := newTestStore(t, 16)

	first := sampleEntry("draft-1")
	store.Set("draft-1", first)

	second := DraftEntry{
		Title:       "Replacement Title",
		Content:     "entirely new body",
		ContentType: "listicle",
	}
	store.Set("draft-1", second)

	got, ok := store.Get("draft-1")
	require.True(t, ok)
	assert.Equal(t, "Replacement Title", got.Title)
	assert.Equal(t, "entirely new body", got.Content)
	// no merge: fields absent from the second write are gone
	assert.Empty(t, got.Tags)
	assert.Empty(t, got.OriginalContent)
}

func TestSetStampsKeyOnEntry(t *testing.T) {
	store := newTestStore(t, 16)

	entry := sampleEntry("stale-key")
	store.Set("actual-key", entry)

	got, ok := store.Get("actual-key")
	require.True(t, ok)
	assert.Equal(t, "actual-key", got.Key)
}

func TestDelete(t *testing.T) {
	store := newTestStore(t, 16)
	store.Set("draft-1", sampleEntry("draft-1"))

	store.Delete("draft-1")

	_, ok := store.Get("draft-1")
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	store := newTestStore(t, 16)
	store.Set("a", sampleEntry("a"))
	store.Set("b", sampleEntry("b"))

	store.Clear()

	_, ok := store.Get("a")
	assert.False(t, ok)
	_, ok = store.Get("b")
	assert.False(t, ok)
}

func TestCapacityEvictsLeastRecentlyUsed(t *testing.T) {
	store := newTestStore(t, 2)

	store.Set("a", sampleEntry("a"))
	store.Set("b", sampleEntry("b"))
	store.Set("c", sampleEntry("c"))

	_, ok := store.Get("a")
	assert.False(t, ok, "oldest draft should be evicted at capacity")

	_, ok = store.Get("b")
	assert.True(t, ok)
	_, ok = store.Get("c")
	assert.True(t, ok)
}
