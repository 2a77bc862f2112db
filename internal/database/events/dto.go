package events

import (
	"time"

	"github.com/studybuddy/studybuddy-backend/internal/model"
)

type eventDTO struct {
	ID          int64
	UserID      int64
	EventType   int `db:"type"`
	Title       string
	Date        time.Time
	StartTime   string
	Priority    int
	ExternalRef *string
}

func mapToEvent(dto *eventDTO) *model.Event {
	externalRef := ""
	if dto.ExternalRef != nil {
		externalRef = *dto.ExternalRef
	}

	return &model.Event{
		ID:          dto.ID,
		ExternalRef: externalRef,
		EventCreate: model.EventCreate{
			UserID:    dto.UserID,
			EventType: model.EventType(dto.EventType),
			Title:     dto.Title,
			Date:      dto.Date.UTC(),
			Time:      dto.StartTime,
			Priority:  dto.Priority,
		},
	}
}
