package tasks

import (
	"context"
	"fmt"

	"github.com/studybuddy/studybuddy-backend/internal/database"
	"github.com/studybuddy/studybuddy-backend/internal/model"
)

func (*Repository) CreateTask(ctx context.Context, q database.Queryable, info *model.TaskCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.StudyTasksTable).
		Columns(
			"user_id",
			"course_id",
			"date",
			"start_time",
			"end_time",
			"topic",
			"methods",
			"completed",
		).
		Values(
			info.UserID,
			info.CourseID,
			info.Date,
			info.StartTime,
			info.EndTime,
			info.Topic,
			info.Methods,
			false,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
