package courses

import (
	"time"

	"github.com/studybuddy/studybuddy-backend/internal/model"
)

type courseDTO struct {
	ID     int64
	UserID int64
	Code   string
	Name   string
}

type scheduleEntryDTO struct {
	CourseID  int64
	StartDate time.Time
	StartTime string
	EndTime   string
	Room      string
}

func mapToCourse(dto *courseDTO) *model.Course {
	return &model.Course{
		ID:     dto.ID,
		UserID: dto.UserID,
		Code:   dto.Code,
		Name:   dto.Name,
	}
}

func mapToScheduleEntry(dto *scheduleEntryDTO) *model.CourseScheduleEntry {
	return &model.CourseScheduleEntry{
		CourseID:  dto.CourseID,
		StartDate: dto.StartDate.UTC(),
		StartTime: dto.StartTime,
		EndTime:   dto.EndTime,
		Room:      dto.Room,
	}
}
