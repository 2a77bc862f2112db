package sync

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"google.golang.org/api/calendar/v3"

	"github.com/studybuddy/studybuddy-backend/internal/model"
)

// Service reconciles locally stored events with the remote calendar in two
// directional passes per run. When both sides of a mapped pair diverge the
// local copy wins: the outbound pass pushes it first and the inbound pass
// then compares against the refreshed remote state. There is no three-way
// merge.
type Service struct {
	events   eventsService
	calendar calendarClient
	locks    lockRepository
	window   time.Duration
	logger   *zap.SugaredLogger
	now      func() time.Time
}

type eventsService interface {
	GetEvents(ctx context.Context, filter model.EventsFilter) ([]*model.Event, error)
	CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error)
	UpdateEvent(ctx context.Context, event *model.Event) error
	SetExternalRef(ctx context.Context, id int64, ref string) error
	DeleteEvent(ctx context.Context, id int64) error
}

type calendarClient interface {
	List(ctx context.Context, calendarID string, timeMin, timeMax time.Time) ([]*calendar.Event, error)
	Create(ctx context.Context, calendarID string, event *calendar.Event) (*calendar.Event, error)
	Update(ctx context.Context, calendarID, eventID string, event *calendar.Event) (*calendar.Event, error)
}

type lockRepository interface {
	Acquire(ctx context.Context, ownerID int64) (bool, error)
	Release(ctx context.Context, ownerID int64) error
}

func NewService(
	events eventsService,
	calendar calendarClient,
	locks lockRepository,
	window time.Duration,
	logger *zap.SugaredLogger,
) *Service {
	return &Service{
		events:   events,
		calendar: calendar,
		locks:    locks,
		window:   window,
		logger:   logger,
		now:      time.Now,
	}
}

// Reconcile runs one full sync for an owner against one remote calendar.
// A remote failure aborts the remainder of the current pass; the counts
// accumulated so far are returned alongside the error, and writes already
// applied are not rolled back.
func (s *Service) Reconcile(ctx context.Context, ownerID int64, calendarID string) (model.SyncStats, error) {
	stats := model.SyncStats{}

	ok, err := s.locks.Acquire(ctx, ownerID)
	if err != nil {
		return stats, fmt.Errorf("acquire sync lock: %w", err)
	}
	if !ok {
		return stats, model.ErrSyncInProgress
	}
	defer func() {
		if err := s.locks.Release(ctx, ownerID); err != nil {
			s.logger.Errorw("failed to release sync lock", "owner_id", ownerID, "err", err)
		}
	}()

	runID := uuid.NewString()
	now := s.now()
	from := now.Add(-s.window)
	to := now.Add(s.window)

	s.logger.Infow("reconciliation started",
		"run_id", runID,
		"owner_id", ownerID,
		"calendar_id", calendarID,
		"from", from,
		"to", to,
	)

	local, err := s.events.GetEvents(ctx, model.EventsFilter{UserID: ownerID, From: from, To: to})
	if err != nil {
		return stats, fmt.Errorf("fetch local events: %w", err)
	}

	remote, err := s.calendar.List(ctx, calendarID, from, to)
	if err != nil {
		return stats, fmt.Errorf("fetch remote events: %w", err)
	}

	idx := BuildIndex(remote)

	remoteByID := make(map[string]*calendar.Event, len(remote))
	for _, re := range remote {
		remoteByID[re.Id] = re
	}

	if err := s.outboundPass(ctx, calendarID, local, idx, remoteByID, &stats); err != nil {
		return stats, err
	}

	localByID := make(map[int64]*model.Event, len(local))
	for _, e := range local {
		localByID[e.ID] = e
	}

	if err := s.inboundPass(ctx, ownerID, calendarID, remote, localByID, idx, &stats); err != nil {
		return stats, err
	}

	s.logger.Infow("reconciliation finished",
		"run_id", runID,
		"owner_id", ownerID,
		"created", stats.Created,
		"updated", stats.Updated,
		"deleted", stats.Deleted,
		"skipped", stats.Skipped,
	)

	return stats, nil
}

// outboundPass pushes every local event to the remote calendar: an update
// when its remote counterpart is known, a create plus identity recording
// otherwise.
func (s *Service) outboundPass(
	ctx context.Context,
	calendarID string,
	local []*model.Event,
	idx *Index,
	remoteByID map[string]*calendar.Event,
	stats *model.SyncStats,
) error {
	for _, e := range local {
		if err := ctx.Err(); err != nil {
			return err
		}

		payload, err := toRemote(e)
		if err != nil {
			if errors.Is(err, model.ErrInvalidTime) {
				s.logger.Warnw("skipping local event with malformed time", "event_id", e.ID, "err", err)
				stats.Skipped++
				continue
			}
			return fmt.Errorf("convert event %v: %w", e.ID, err)
		}

		extID := e.ExternalRef
		if extID == "" {
			extID, _ = idx.LookupExternal(e.ID)
		}

		if extID != "" {
			re, fetched := remoteByID[extID]
			if fetched && re.Status == "cancelled" {
				// Deletion signal; the inbound pass resolves it.
				continue
			}
			if fetched && !needsPush(payload, re) {
				continue
			}

			pushed, err := s.calendar.Update(ctx, calendarID, extID, payload)
			if err != nil {
				return fmt.Errorf("push update for event %v: %w", e.ID, err)
			}
			if fetched && pushed != nil {
				// Refresh the snapshot so the inbound pass compares
				// against what the remote now holds, not stale data.
				*re = *pushed
			}
			stats.Updated++

			if e.ExternalRef == "" {
				if err := s.events.SetExternalRef(ctx, e.ID, extID); err != nil {
					return fmt.Errorf("record external ref for event %v: %w", e.ID, err)
				}
			}
			continue
		}

		created, err := s.calendar.Create(ctx, calendarID, payload)
		if err != nil {
			return fmt.Errorf("push create for event %v: %w", e.ID, err)
		}

		idx.Record(e.ID, created.Id)
		if err := s.events.SetExternalRef(ctx, e.ID, created.Id); err != nil {
			return fmt.Errorf("record external ref for event %v: %w", e.ID, err)
		}
		stats.Created++
	}

	return nil
}

// inboundPass imports remote state: known ids update their local event,
// unknown ones become new local events whose id is written back into the
// remote metadata so the next run recognizes them. A cancelled remote event
// mapped to a local one is the deletion signal.
func (s *Service) inboundPass(
	ctx context.Context,
	ownerID int64,
	calendarID string,
	remote []*calendar.Event,
	localByID map[int64]*model.Event,
	idx *Index,
	stats *model.SyncStats,
) error {
	for _, re := range remote {
		if err := ctx.Err(); err != nil {
			return err
		}

		if re.Status == "cancelled" {
			if id, ok := remoteInternalID(re); ok {
				if _, exists := localByID[id]; exists {
					if err := s.events.DeleteEvent(ctx, id); err != nil {
						return fmt.Errorf("delete cancelled event %v: %w", id, err)
					}
					delete(localByID, id)
					stats.Deleted++
					continue
				}
			}
			stats.Skipped++
			continue
		}

		if re.Start == nil || re.Start.DateTime == "" {
			stats.Skipped++
			continue
		}

		id, known := remoteInternalID(re)
		if known {
			localEvent, exists := localByID[id]
			if !exists {
				// Mapping points at an event deleted locally; the
				// deletion wins, nothing is resurrected.
				stats.Skipped++
				continue
			}

			inc, err := fromRemote(ownerID, re)
			if err != nil {
				s.logger.Warnw("skipping remote event with malformed start", "remote_id", re.Id, "err", err)
				stats.Skipped++
				continue
			}

			if !needsLocalUpdate(localEvent, inc) {
				continue
			}

			localEvent.Title = inc.Title
			localEvent.Date = inc.Date
			localEvent.Time = inc.Time
			localEvent.EventType = inc.EventType
			if err := s.events.UpdateEvent(ctx, localEvent); err != nil {
				return fmt.Errorf("update local event %v: %w", id, err)
			}
			stats.Updated++
			continue
		}

		inc, err := fromRemote(ownerID, re)
		if err != nil {
			s.logger.Warnw("skipping remote event with malformed start", "remote_id", re.Id, "err", err)
			stats.Skipped++
			continue
		}

		created, err := s.events.CreateEvent(ctx, inc)
		if err != nil {
			return fmt.Errorf("import remote event %v: %w", re.Id, err)
		}

		if re.ExtendedProperties == nil {
			re.ExtendedProperties = &calendar.EventExtendedProperties{}
		}
		if re.ExtendedProperties.Private == nil {
			re.ExtendedProperties.Private = map[string]string{}
		}
		re.ExtendedProperties.Private[metaKeyID] = fmt.Sprintf("%d", created.ID)
		re.ExtendedProperties.Private[metaKeyType] = fmt.Sprintf("%d", int(inc.EventType))

		if _, err := s.calendar.Update(ctx, calendarID, re.Id, re); err != nil {
			return fmt.Errorf("write back metadata for remote event %v: %w", re.Id, err)
		}

		idx.Record(created.ID, re.Id)
		if err := s.events.SetExternalRef(ctx, created.ID, re.Id); err != nil {
			return fmt.Errorf("record external ref for event %v: %w", created.ID, err)
		}
		stats.Created++
	}

	return nil
}
