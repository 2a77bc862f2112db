package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorMapping_Bijection(t *testing.T) {
	types := []EventType{
		EventTypeStudySession,
		EventTypeLecture,
		EventTypeExam,
		EventTypeAssignmentDue,
		EventTypeGroupMeeting,
		EventTypeOther,
	}

	seen := map[string]struct{}{}
	for _, typ := range types {
		color := ColorForType(typ)

		_, dup := seen[color]
		assert.False(t, dup, "color %q assigned twice", color)
		seen[color] = struct{}{}

		assert.Equal(t, typ, TypeForColor(color))
	}
}

func TestColorMapping_Codes(t *testing.T) {
	assert.Equal(t, "7", ColorForType(EventTypeStudySession))
	assert.Equal(t, "2", ColorForType(EventTypeLecture))
	assert.Equal(t, "11", ColorForType(EventTypeExam))
	assert.Equal(t, "5", ColorForType(EventTypeAssignmentDue))
	assert.Equal(t, "9", ColorForType(EventTypeGroupMeeting))
	assert.Equal(t, "8", ColorForType(EventTypeOther))
}

func TestColorMapping_UnknownDefaults(t *testing.T) {
	assert.Equal(t, EventTypeOther, TypeForColor("3"))
	assert.Equal(t, EventTypeOther, TypeForColor(""))
	assert.Equal(t, ColorOther, ColorForType(EventType(42)))
}
