package sync

import (
	"fmt"
	"strconv"
	"time"

	"google.golang.org/api/calendar/v3"

	"github.com/studybuddy/studybuddy-backend/internal/model"
)

// toRemote builds the full remote payload for a local event: title, start and
// end instants, type-derived color and the dedup metadata.
func toRemote(e *model.Event) (*calendar.Event, error) {
	start, err := e.StartAt()
	if err != nil {
		return nil, err
	}
	end := start.Add(e.Duration())

	return &calendar.Event{
		Summary: e.Title,
		Start: &calendar.EventDateTime{
			DateTime: start.Format(time.RFC3339),
			TimeZone: "UTC",
		},
		End: &calendar.EventDateTime{
			DateTime: end.Format(time.RFC3339),
			TimeZone: "UTC",
		},
		ColorId: model.ColorForType(e.EventType),
		ExtendedProperties: &calendar.EventExtendedProperties{
			Private: map[string]string{
				metaKeyID:   strconv.FormatInt(e.ID, 10),
				metaKeyType: strconv.Itoa(int(e.EventType)),
			},
		},
	}, nil
}

// fromRemote extracts the locally relevant fields of a remote event: title,
// day, clock time and the type implied by its color code. All-day events have
// no start datetime and are rejected upstream.
func fromRemote(userID int64, re *calendar.Event) (*model.EventCreate, error) {
	if re.Start == nil || re.Start.DateTime == "" {
		return nil, fmt.Errorf("no start datetime: %w", model.ErrInvalidTime)
	}

	start, err := time.Parse(time.RFC3339, re.Start.DateTime)
	if err != nil {
		return nil, fmt.Errorf("parse start %q: %w", re.Start.DateTime, model.ErrInvalidTime)
	}
	start = start.UTC()

	return &model.EventCreate{
		UserID:    userID,
		EventType: model.TypeForColor(re.ColorId),
		Title:     re.Summary,
		Date:      time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		Time:      start.Format(model.TimeLayout),
		Priority:  2,
	}, nil
}

// needsPush reports whether the remote copy differs from the payload derived
// from the local event. Unchanged events are left alone so that repeated runs
// stay idempotent.
func needsPush(payload, remote *calendar.Event) bool {
	if payload.Summary != remote.Summary {
		return true
	}
	// Colors compare through the type mapping: an unmapped remote color
	// already reads back as Other, so overwriting it with the neutral code
	// would change nothing and only churn the remote event.
	if model.TypeForColor(payload.ColorId) != model.TypeForColor(remote.ColorId) {
		return true
	}
	if !sameInstant(payload.Start, remote.Start) {
		return true
	}

	if remote.ExtendedProperties == nil {
		return true
	}
	return payload.ExtendedProperties.Private[metaKeyID] != remote.ExtendedProperties.Private[metaKeyID]
}

// needsLocalUpdate compares only the fields that round-trip through the
// provider; locally owned fields like priority are never overwritten inbound.
func needsLocalUpdate(local *model.Event, inc *model.EventCreate) bool {
	return local.Title != inc.Title ||
		!local.Date.Equal(inc.Date) ||
		local.Time != inc.Time ||
		local.EventType != inc.EventType
}

func sameInstant(a, b *calendar.EventDateTime) bool {
	if a == nil || b == nil {
		return a == b
	}

	ta, errA := time.Parse(time.RFC3339, a.DateTime)
	tb, errB := time.Parse(time.RFC3339, b.DateTime)
	if errA != nil || errB != nil {
		return a.DateTime == b.DateTime
	}

	return ta.Equal(tb)
}
