package planner

import (
	"fmt"

	"github.com/studybuddy/studybuddy-backend/internal/model"
)

// Recommended study methods per learning style. Content is a pure function of
// (course, style) and has no effect on placement.
var methodsByStyle = map[model.LearningStyle][]string{
	model.LearningStyleVisual:      {"mind maps", "annotated diagrams", "color-coded notes"},
	model.LearningStyleAuditory:    {"recorded lecture playback", "explain the topic aloud", "group discussion"},
	model.LearningStyleKinesthetic: {"practice problems", "flashcard drills", "build a worked example"},
	model.LearningStyleReading:     {"textbook summaries", "rewrite notes", "past paper questions"},
	model.LearningStyleUnknown:     {"review notes", "practice problems", "self-quiz"},
}

// SessionContent derives the topic and recommended methods for a study slot.
func SessionContent(course *model.Course, style model.LearningStyle) (string, []string) {
	methods, ok := methodsByStyle[style]
	if !ok {
		methods = methodsByStyle[model.LearningStyleUnknown]
	}

	topic := fmt.Sprintf("%s review", course.Name)
	return topic, methods
}
