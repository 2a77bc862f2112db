package model

import (
	"fmt"
	"time"
)

const (
	// DateLayout is the wire and storage format for calendar days.
	DateLayout = "2006-01-02"
	// TimeLayout is the wire and storage format for clock times, 24-hour.
	TimeLayout = "15:04"
)

type EventCreate struct {
	UserID    int64
	EventType EventType
	Title     string
	Date      time.Time // calendar day, midnight UTC
	Time      string    // HH:MM, 24-hour
	Priority  int       // 1 (low) .. 3 (high)
}

type Event struct {
	ID          int64
	ExternalRef string // remote calendar event id, empty until first pushed
	EventCreate
}

type EventType int

const (
	EventTypeStudySession EventType = iota
	EventTypeLecture
	EventTypeExam
	EventTypeAssignmentDue
	EventTypeGroupMeeting
	EventTypeOther
)

// IsDeadline is fully determined by the event type.
func (t EventType) IsDeadline() bool {
	return t == EventTypeExam || t == EventTypeAssignmentDue
}

// StartAt combines the calendar day and clock time into a single instant.
// Returns ErrInvalidTime for a malformed Time field.
func (e *Event) StartAt() (time.Time, error) {
	t, err := time.Parse(TimeLayout, e.Time)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse time %q: %w", e.Time, ErrInvalidTime)
	}

	d := e.Date
	return time.Date(d.Year(), d.Month(), d.Day(), t.Hour(), t.Minute(), 0, 0, time.UTC), nil
}

// StartHour returns the hour slot the event starts in.
func (e *Event) StartHour() (int, error) {
	t, err := time.Parse(TimeLayout, e.Time)
	if err != nil {
		return 0, fmt.Errorf("parse time %q: %w", e.Time, ErrInvalidTime)
	}

	return t.Hour(), nil
}

// Duration is the span used when pushing the event to the remote calendar.
// Study sessions block two hours, everything else defaults to one.
func (e *Event) Duration() time.Duration {
	if e.EventType == EventTypeStudySession {
		return 2 * time.Hour
	}
	return time.Hour
}

type EventsFilter struct {
	UserID int64
	From   time.Time
	To     time.Time
}
