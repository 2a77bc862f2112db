package sync

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/calendar/v3"
)

func TestBuildIndex(t *testing.T) {
	remote := []*calendar.Event{
		{Id: "r1", ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{metaKeyID: "42"},
		}},
		{Id: "r2"}, // never synced
		{Id: "r3", ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{metaKeyID: "not-a-number"},
		}},
	}

	idx := BuildIndex(remote)

	ext, ok := idx.LookupExternal(42)
	require.True(t, ok)
	assert.Equal(t, "r1", ext)

	id, ok := idx.LookupInternal("r1")
	require.True(t, ok)
	assert.Equal(t, int64(42), id)

	_, ok = idx.LookupInternal("r2")
	assert.False(t, ok)
	_, ok = idx.LookupInternal("r3")
	assert.False(t, ok)
}

func TestIndex_RecordStaysOneToOne(t *testing.T) {
	idx := NewIndex()

	idx.Record(1, "a")
	idx.Record(1, "b") // rebind internal id

	_, ok := idx.LookupInternal("a")
	assert.False(t, ok, "stale external binding must be displaced")

	ext, ok := idx.LookupExternal(1)
	require.True(t, ok)
	assert.Equal(t, "b", ext)

	idx.Record(2, "b") // rebind external id
	_, ok = idx.LookupExternal(1)
	assert.False(t, ok, "stale internal binding must be displaced")

	id, ok := idx.LookupInternal("b")
	require.True(t, ok)
	assert.Equal(t, int64(2), id)
}
