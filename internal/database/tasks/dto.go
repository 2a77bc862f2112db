package tasks

import (
	"time"

	"github.com/studybuddy/studybuddy-backend/internal/model"
)

type taskDTO struct {
	ID        int64
	UserID    int64
	CourseID  int64
	Date      time.Time
	StartTime string
	EndTime   string
	Topic     string
	Methods   []string
	Completed bool
}

func mapToTask(dto *taskDTO) *model.Task {
	return &model.Task{
		ID:        dto.ID,
		Completed: dto.Completed,
		TaskCreate: model.TaskCreate{
			UserID:    dto.UserID,
			CourseID:  dto.CourseID,
			Date:      dto.Date.UTC(),
			StartTime: dto.StartTime,
			EndTime:   dto.EndTime,
			Topic:     dto.Topic,
			Methods:   dto.Methods,
		},
	}
}
