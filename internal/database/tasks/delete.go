package tasks

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/studybuddy/studybuddy-backend/internal/database"
)

func (*Repository) DeleteTask(ctx context.Context, q database.Queryable, id int64) error {
	qb := database.PSQL.
		Delete(database.StudyTasksTable).
		Where(sq.Eq{"id": id})

	if _, err := q.Exec(ctx, qb); err != nil {
		return fmt.Errorf("SQL request: %w", err)
	}

	return nil
}
