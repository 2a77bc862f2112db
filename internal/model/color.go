package model

// Remote palette codes for each event type. The table is the single source of
// both directions of the mapping; unknown values on either side resolve to
// the Other/neutral pair.
const ColorOther = "8"

var colorTable = []struct {
	eventType EventType
	color     string
}{
	{EventTypeStudySession, "7"},
	{EventTypeLecture, "2"},
	{EventTypeExam, "11"},
	{EventTypeAssignmentDue, "5"},
	{EventTypeGroupMeeting, "9"},
	{EventTypeOther, ColorOther},
}

var (
	typeToColor = map[EventType]string{}
	colorToType = map[string]EventType{}
)

func init() {
	for _, p := range colorTable {
		typeToColor[p.eventType] = p.color
		colorToType[p.color] = p.eventType
	}
}

// ColorForType maps an event type to its remote palette code.
func ColorForType(t EventType) string {
	if c, ok := typeToColor[t]; ok {
		return c
	}
	return ColorOther
}

// TypeForColor maps a remote palette code back to an event type.
func TypeForColor(color string) EventType {
	if t, ok := colorToType[color]; ok {
		return t
	}
	return EventTypeOther
}
