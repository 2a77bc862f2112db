package sync

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/api/calendar/v3"

	"github.com/studybuddy/studybuddy-backend/internal/model"
)

type fakeEvents struct {
	nextID int64
	events map[int64]*model.Event
}

func newFakeEvents(seed ...*model.Event) *fakeEvents {
	f := &fakeEvents{events: map[int64]*model.Event{}}
	for _, e := range seed {
		f.events[e.ID] = e
		if e.ID > f.nextID {
			f.nextID = e.ID
		}
	}
	return f
}

func (f *fakeEvents) GetEvents(_ context.Context, filter model.EventsFilter) ([]*model.Event, error) {
	var res []*model.Event
	for _, e := range f.events {
		res = append(res, e)
	}
	sort.Slice(res, func(i, j int) bool { return res[i].ID < res[j].ID })
	return res, nil
}

func (f *fakeEvents) CreateEvent(_ context.Context, info *model.EventCreate) (*model.Event, error) {
	f.nextID++
	e := &model.Event{ID: f.nextID, EventCreate: *info}
	f.events[e.ID] = e
	return e, nil
}

func (f *fakeEvents) UpdateEvent(_ context.Context, event *model.Event) error {
	f.events[event.ID] = event
	return nil
}

func (f *fakeEvents) SetExternalRef(_ context.Context, id int64, ref string) error {
	f.events[id].ExternalRef = ref
	return nil
}

func (f *fakeEvents) DeleteEvent(_ context.Context, id int64) error {
	delete(f.events, id)
	return nil
}

type fakeCalendar struct {
	nextID  int
	order   []string
	events  map[string]*calendar.Event
	creates int
	updates int
	lists   int

	createErr      error
	createErrAfter int
}

func newFakeCalendar(seed ...*calendar.Event) *fakeCalendar {
	f := &fakeCalendar{events: map[string]*calendar.Event{}}
	for _, e := range seed {
		f.events[e.Id] = e
		f.order = append(f.order, e.Id)
	}
	return f
}

func copyRemote(e *calendar.Event) *calendar.Event {
	c := *e
	if e.Start != nil {
		s := *e.Start
		c.Start = &s
	}
	if e.End != nil {
		s := *e.End
		c.End = &s
	}
	if e.ExtendedProperties != nil {
		private := make(map[string]string, len(e.ExtendedProperties.Private))
		for k, v := range e.ExtendedProperties.Private {
			private[k] = v
		}
		c.ExtendedProperties = &calendar.EventExtendedProperties{Private: private}
	}
	return &c
}

func (f *fakeCalendar) List(_ context.Context, _ string, _, _ time.Time) ([]*calendar.Event, error) {
	f.lists++
	res := make([]*calendar.Event, 0, len(f.order))
	for _, id := range f.order {
		res = append(res, copyRemote(f.events[id]))
	}
	return res, nil
}

func (f *fakeCalendar) Create(_ context.Context, _ string, event *calendar.Event) (*calendar.Event, error) {
	if f.createErr != nil && f.creates >= f.createErrAfter {
		return nil, f.createErr
	}
	f.creates++

	f.nextID++
	stored := copyRemote(event)
	stored.Id = fmt.Sprintf("r%d", f.nextID)
	f.events[stored.Id] = stored
	f.order = append(f.order, stored.Id)

	return copyRemote(stored), nil
}

func (f *fakeCalendar) Update(_ context.Context, _ string, eventID string, event *calendar.Event) (*calendar.Event, error) {
	if _, ok := f.events[eventID]; !ok {
		return nil, fmt.Errorf("remote event %v not found", eventID)
	}
	f.updates++

	stored := copyRemote(event)
	stored.Id = eventID
	f.events[eventID] = stored

	return copyRemote(stored), nil
}

type fakeLocks struct {
	refuse   bool
	acquired int
	released int
}

func (f *fakeLocks) Acquire(context.Context, int64) (bool, error) {
	if f.refuse {
		return false, nil
	}
	f.acquired++
	return true, nil
}

func (f *fakeLocks) Release(context.Context, int64) error {
	f.released++
	return nil
}

func newTestService(fe *fakeEvents, fc *fakeCalendar, locks *fakeLocks) *Service {
	s := NewService(fe, fc, locks, 365*24*time.Hour, zap.NewNop().Sugar())
	s.now = func() time.Time { return time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC) }
	return s
}

func localEvent(id int64, title string) *model.Event {
	return &model.Event{
		ID: id,
		EventCreate: model.EventCreate{
			UserID:    7,
			EventType: model.EventTypeStudySession,
			Title:     title,
			Date:      time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
			Time:      "10:00",
			Priority:  2,
		},
	}
}

func TestReconcile_OutboundCreatesRemote(t *testing.T) {
	fe := newFakeEvents(localEvent(1, "Algorithms review"))
	fc := newFakeCalendar()
	locks := &fakeLocks{}

	stats, err := newTestService(fe, fc, locks).Reconcile(context.Background(), 7, "primary")
	require.NoError(t, err)

	assert.Equal(t, model.SyncStats{Created: 1}, stats)
	require.Len(t, fc.events, 1)

	re := fc.events["r1"]
	require.NotNil(t, re)
	assert.Equal(t, "Algorithms review", re.Summary)
	assert.Equal(t, "7", re.ColorId)
	assert.Equal(t, "1", re.ExtendedProperties.Private[metaKeyID])

	assert.Equal(t, "r1", fe.events[1].ExternalRef)
	assert.Equal(t, 1, locks.acquired)
	assert.Equal(t, 1, locks.released)
}

func TestReconcile_SecondRunIsIdempotent(t *testing.T) {
	fe := newFakeEvents(localEvent(1, "Algorithms review"))
	fc := newFakeCalendar()
	svc := newTestService(fe, fc, &fakeLocks{})

	_, err := svc.Reconcile(context.Background(), 7, "primary")
	require.NoError(t, err)

	stats, err := svc.Reconcile(context.Background(), 7, "primary")
	require.NoError(t, err)

	assert.Equal(t, model.SyncStats{}, stats)
	assert.Len(t, fe.events, 1)
	assert.Len(t, fc.events, 1)
}

func TestReconcile_RoundTripKeepsIdentity(t *testing.T) {
	fe := newFakeEvents(localEvent(1, "Algorithms review"))
	fc := newFakeCalendar()
	svc := newTestService(fe, fc, &fakeLocks{})

	_, err := svc.Reconcile(context.Background(), 7, "primary")
	require.NoError(t, err)

	// A later pass must recognize the pushed event by its metadata and
	// never import it as a duplicate.
	for i := 0; i < 3; i++ {
		stats, err := svc.Reconcile(context.Background(), 7, "primary")
		require.NoError(t, err)
		assert.Zero(t, stats.Created)
	}

	assert.Len(t, fe.events, 1)
	assert.Len(t, fc.events, 1)
	assert.Equal(t, "1", fc.events["r1"].ExtendedProperties.Private[metaKeyID])
}

func TestReconcile_MappedRemoteIsUpdatedNotDuplicated(t *testing.T) {
	local := localEvent(42, "Algorithms review")
	fe := newFakeEvents(local)

	remote, err := toRemote(local)
	require.NoError(t, err)
	remote.Id = "r9"
	remote.Summary = "edited remotely"
	fc := newFakeCalendar(remote)

	stats, err := newTestService(fe, fc, &fakeLocks{}).Reconcile(context.Background(), 7, "primary")
	require.NoError(t, err)

	assert.Zero(t, stats.Created, "a mapped remote event must never become a new local event")
	assert.Equal(t, 1, stats.Updated)
	assert.Len(t, fe.events, 1)
	assert.Len(t, fc.events, 1)

	// Local is the source of record for mapped differences.
	assert.Equal(t, "Algorithms review", fc.events["r9"].Summary)
	assert.Equal(t, "r9", fe.events[42].ExternalRef)
}

func TestReconcile_InboundImportWritesBackMetadata(t *testing.T) {
	fe := newFakeEvents()
	fc := newFakeCalendar(&calendar.Event{
		Id:      "r5",
		Summary: "Dentist",
		ColorId: "4",
		Start:   &calendar.EventDateTime{DateTime: "2025-03-05T15:00:00Z"},
		End:     &calendar.EventDateTime{DateTime: "2025-03-05T16:00:00Z"},
	})
	svc := newTestService(fe, fc, &fakeLocks{})

	stats, err := svc.Reconcile(context.Background(), 7, "primary")
	require.NoError(t, err)

	assert.Equal(t, model.SyncStats{Created: 1}, stats)
	require.Len(t, fe.events, 1)

	imported := fe.events[1]
	assert.Equal(t, "Dentist", imported.Title)
	assert.Equal(t, model.EventTypeOther, imported.EventType, "unknown colors map to Other")
	assert.Equal(t, "15:00", imported.Time)
	assert.Equal(t, "r5", imported.ExternalRef)

	// The new internal id is written back so the next run recognizes it.
	assert.Equal(t, "1", fc.events["r5"].ExtendedProperties.Private[metaKeyID])

	stats, err = svc.Reconcile(context.Background(), 7, "primary")
	require.NoError(t, err)
	assert.Equal(t, model.SyncStats{}, stats)
	assert.Len(t, fe.events, 1)
}

func TestReconcile_CancelledWithoutMappingIsSkipped(t *testing.T) {
	fe := newFakeEvents()
	fc := newFakeCalendar(&calendar.Event{
		Id:     "r2",
		Status: "cancelled",
	})

	stats, err := newTestService(fe, fc, &fakeLocks{}).Reconcile(context.Background(), 7, "primary")
	require.NoError(t, err)

	assert.Equal(t, model.SyncStats{Skipped: 1}, stats)
	assert.Empty(t, fe.events)
}

func TestReconcile_CancelledDeletesMappedLocal(t *testing.T) {
	local := localEvent(5, "Dropped seminar")
	local.ExternalRef = "r5"
	fe := newFakeEvents(local)

	fc := newFakeCalendar(&calendar.Event{
		Id:     "r5",
		Status: "cancelled",
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{metaKeyID: "5"},
		},
	})

	stats, err := newTestService(fe, fc, &fakeLocks{}).Reconcile(context.Background(), 7, "primary")
	require.NoError(t, err)

	assert.Equal(t, model.SyncStats{Deleted: 1}, stats)
	assert.Empty(t, fe.events)
	assert.Zero(t, fc.updates, "cancelled events must not be pushed to")
}

func TestReconcile_EventsWithoutStartAreSkipped(t *testing.T) {
	fe := newFakeEvents()
	fc := newFakeCalendar(&calendar.Event{
		Id:      "r3",
		Summary: "all-day holiday",
		Start:   &calendar.EventDateTime{Date: "2025-03-07"},
	})

	stats, err := newTestService(fe, fc, &fakeLocks{}).Reconcile(context.Background(), 7, "primary")
	require.NoError(t, err)

	assert.Equal(t, model.SyncStats{Skipped: 1}, stats)
	assert.Empty(t, fe.events)
}

func TestReconcile_MalformedLocalEventIsSkipped(t *testing.T) {
	bad := localEvent(1, "broken")
	bad.Time = "whenever"
	fe := newFakeEvents(bad)
	fc := newFakeCalendar()

	stats, err := newTestService(fe, fc, &fakeLocks{}).Reconcile(context.Background(), 7, "primary")
	require.NoError(t, err)

	assert.Equal(t, model.SyncStats{Skipped: 1}, stats)
	assert.Empty(t, fc.events)
}

func TestReconcile_RemoteFailureReturnsPartialCounts(t *testing.T) {
	fe := newFakeEvents(localEvent(1, "first"), localEvent(2, "second"))
	fc := newFakeCalendar()
	fc.createErr = errors.New("backend error")
	fc.createErrAfter = 1

	stats, err := newTestService(fe, fc, &fakeLocks{}).Reconcile(context.Background(), 7, "primary")

	require.Error(t, err)
	assert.Equal(t, 1, stats.Created, "progress before the failure is reported")
	assert.Equal(t, "r1", fe.events[1].ExternalRef)
	assert.Empty(t, fe.events[2].ExternalRef, "no compensating writes after the abort")
}

func TestReconcile_RefusedWhenLockHeld(t *testing.T) {
	fe := newFakeEvents(localEvent(1, "anything"))
	fc := newFakeCalendar()
	locks := &fakeLocks{refuse: true}

	_, err := newTestService(fe, fc, locks).Reconcile(context.Background(), 7, "primary")

	assert.ErrorIs(t, err, model.ErrSyncInProgress)
	assert.Zero(t, fc.lists, "no remote calls while another run holds the lock")
	assert.Zero(t, locks.released)
}

func TestReconcile_CancelledContext(t *testing.T) {
	fe := newFakeEvents(localEvent(1, "anything"))
	fc := newFakeCalendar()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestService(fe, fc, &fakeLocks{}).Reconcile(ctx, 7, "primary")
	assert.ErrorIs(t, err, context.Canceled)
}
