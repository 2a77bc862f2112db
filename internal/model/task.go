package model

import "time"

type TaskCreate struct {
	UserID    int64
	CourseID  int64
	Date      time.Time // calendar day, midnight UTC
	StartTime string    // HH:MM
	EndTime   string    // HH:MM
	Topic     string
	Methods   []string
}

type Task struct {
	ID        int64
	Completed bool
	TaskCreate
}

type TasksFilter struct {
	UserID    int64
	CourseIDs []int64
}
