package sync

import (
	"strconv"

	"google.golang.org/api/calendar/v3"
)

// Remote extended-properties keys carrying the dedup marker.
const (
	metaKeyID   = "studybuddy_id"
	metaKeyType = "studybuddy_type"
)

// Index is the per-run identity map between local event ids and remote event
// ids. It is rebuilt on every reconciliation from the metadata of the fetched
// remote events, making the provider the source of truth for dedup.
type Index struct {
	byInternal map[int64]string
	byExternal map[string]int64
}

func NewIndex() *Index {
	return &Index{
		byInternal: map[int64]string{},
		byExternal: map[string]int64{},
	}
}

// BuildIndex scans the fetched remote events for internal-id markers.
func BuildIndex(remote []*calendar.Event) *Index {
	idx := NewIndex()
	for _, re := range remote {
		if id, ok := remoteInternalID(re); ok {
			idx.Record(id, re.Id)
		}
	}

	return idx
}

// Record binds an internal id to an external id, displacing any stale
// bindings so the mapping stays one-to-one in both directions.
func (x *Index) Record(internal int64, external string) {
	if old, ok := x.byInternal[internal]; ok {
		delete(x.byExternal, old)
	}
	if old, ok := x.byExternal[external]; ok {
		delete(x.byInternal, old)
	}

	x.byInternal[internal] = external
	x.byExternal[external] = internal
}

func (x *Index) LookupExternal(internal int64) (string, bool) {
	ext, ok := x.byInternal[internal]
	return ext, ok
}

func (x *Index) LookupInternal(external string) (int64, bool) {
	id, ok := x.byExternal[external]
	return id, ok
}

// remoteInternalID extracts the internal-id marker from a remote event.
// Absence or malformed content means the event was never seen before.
func remoteInternalID(re *calendar.Event) (int64, bool) {
	if re.ExtendedProperties == nil {
		return 0, false
	}

	raw, ok := re.ExtendedProperties.Private[metaKeyID]
	if !ok {
		return 0, false
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, false
	}

	return id, true
}
