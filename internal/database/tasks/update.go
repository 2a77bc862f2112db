package tasks

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/studybuddy/studybuddy-backend/internal/database"
	"github.com/studybuddy/studybuddy-backend/internal/model"
)

func (*Repository) UpdateTask(ctx context.Context, q database.Queryable, task *model.Task) error {
	qb := database.PSQL.
		Update(database.StudyTasksTable).
		SetMap(map[string]interface{}{
			"date":       task.Date,
			"start_time": task.StartTime,
			"end_time":   task.EndTime,
			"topic":      task.Topic,
			"methods":    task.Methods,
			"completed":  task.Completed,
		}).
		Where(sq.Eq{"id": task.ID})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}

func (*Repository) SetCompleted(ctx context.Context, q database.Queryable, id int64, completed bool) error {
	qb := database.PSQL.
		Update(database.StudyTasksTable).
		Set("completed", completed).
		Where(sq.Eq{"id": id})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
