package courses

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/studybuddy/studybuddy-backend/internal/database"
	"github.com/studybuddy/studybuddy-backend/internal/model"
)

func (*Repository) GetCourses(ctx context.Context, q database.Queryable, userID int64, ids []int64) ([]*model.Course, error) {
	qb := baseQuery.
		Where(sq.Eq{"user_id": userID}).
		OrderBy("id")

	if len(ids) != 0 {
		qb = qb.Where(sq.Eq{"id": ids})
	}

	var dtos []*courseDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.Course, len(dtos))
	for i, d := range dtos {
		res[i] = mapToCourse(d)
	}

	return res, nil
}

func (*Repository) GetScheduleEntries(ctx context.Context, q database.Queryable, courseIDs []int64) ([]*model.CourseScheduleEntry, error) {
	qb := database.PSQL.
		Select("course_id",
			"start_date",
			"start_time",
			"end_time",
			"room",
		).
		From(database.CourseScheduleTable).
		Where(sq.Eq{"course_id": courseIDs}).
		OrderBy("course_id", "start_date")

	var dtos []*scheduleEntryDTO
	if err := q.Select(ctx, &dtos, qb); err != nil {
		return nil, fmt.Errorf("SQL request: %w", err)
	}

	res := make([]*model.CourseScheduleEntry, len(dtos))
	for i, d := range dtos {
		res[i] = mapToScheduleEntry(d)
	}

	return res, nil
}
