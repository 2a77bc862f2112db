package tasks

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v4"
	"github.com/studybuddy/studybuddy-backend/internal/database"
	"github.com/studybuddy/studybuddy-backend/internal/model"
)

func (*Repository) GetTaskByID(ctx context.Context, q database.Queryable, id int64) (*model.Task, error) {
	qb := baseQuery.
		Where(sq.Eq{"id": id})

	dto := &taskDTO{}
	if err := q.Get(ctx, dto, qb); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	return mapToTask(dto), nil
}

func (*Repository) GetTasks(ctx context.Context, q database.Queryable, filter model.TasksFilter) ([]*model.Task, error) {
	qb := baseQuery.
		Where(sq.Eq{"user_id": filter.UserID}).
		OrderBy("date", "start_time", "id")

	if len(filter.CourseIDs) != 0 {
		qb = qb.Where(sq.Eq{"course_id": filter.CourseIDs})
	}

	var dtos []*taskDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Task, len(dtos))
	for i, d := range dtos {
		res[i] = mapToTask(d)
	}

	return res, nil
}
