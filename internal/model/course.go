package model

import "time"

type Course struct {
	ID     int64
	UserID int64
	Code   string
	Name   string
}

// CourseScheduleEntry is read-only input to scheduling, owned by the course
// catalog. Lectures recur weekly from StartDate.
type CourseScheduleEntry struct {
	CourseID  int64
	StartDate time.Time
	StartTime string // HH:MM
	EndTime   string // HH:MM
	Room      string
}

// LearningStyle is produced by the external classifier; the scheduler treats
// it as an opaque label when picking recommended study methods.
type LearningStyle int

const (
	LearningStyleUnknown LearningStyle = iota
	LearningStyleVisual
	LearningStyleAuditory
	LearningStyleKinesthetic
	LearningStyleReading
)
