package events

import (
	"context"
	"fmt"

	"github.com/studybuddy/studybuddy-backend/internal/database"
	"github.com/studybuddy/studybuddy-backend/internal/model"
)

func (*Repository) CreateEvent(ctx context.Context, q database.Queryable, info *model.EventCreate) (int64, error) {
	qb := database.PSQL.
		Insert(database.EventsTable).
		Columns(
			"user_id",
			"type",
			"title",
			"date",
			"start_time",
			"priority",
		).
		Values(
			info.UserID,
			info.EventType,
			info.Title,
			info.Date,
			info.Time,
			info.Priority,
		).
		Suffix("returning id")

	var id int64
	if err := q.Get(ctx, &id, qb); err != nil {
		return 0, fmt.Errorf("SQL request: %w", err)
	}

	return id, nil
}
