package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvent_StartAt(t *testing.T) {
	e := &Event{
		EventCreate: EventCreate{
			Date: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
			Time: "14:30",
		},
	}

	start, err := e.StartAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2025, 3, 3, 14, 30, 0, 0, time.UTC), start)
}

func TestEvent_StartAt_Malformed(t *testing.T) {
	e := &Event{
		EventCreate: EventCreate{
			Date: time.Date(2025, 3, 3, 0, 0, 0, 0, time.UTC),
			Time: "25:99",
		},
	}

	_, err := e.StartAt()
	assert.ErrorIs(t, err, ErrInvalidTime)

	_, err = (&Event{EventCreate: EventCreate{Time: "noon"}}).StartHour()
	assert.ErrorIs(t, err, ErrInvalidTime)
}

func TestEvent_StartHour(t *testing.T) {
	e := &Event{EventCreate: EventCreate{Time: "09:15"}}

	h, err := e.StartHour()
	require.NoError(t, err)
	assert.Equal(t, 9, h)
}

func TestEventType_IsDeadline(t *testing.T) {
	assert.True(t, EventTypeExam.IsDeadline())
	assert.True(t, EventTypeAssignmentDue.IsDeadline())
	assert.False(t, EventTypeStudySession.IsDeadline())
	assert.False(t, EventTypeLecture.IsDeadline())
	assert.False(t, EventTypeGroupMeeting.IsDeadline())
	assert.False(t, EventTypeOther.IsDeadline())
}

func TestEvent_Duration(t *testing.T) {
	study := &Event{EventCreate: EventCreate{EventType: EventTypeStudySession}}
	assert.Equal(t, 2*time.Hour, study.Duration())

	lecture := &Event{EventCreate: EventCreate{EventType: EventTypeLecture}}
	assert.Equal(t, time.Hour, lecture.Duration())
}
