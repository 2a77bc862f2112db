// Package courses reads course and course-schedule records imported from the
// external course API. The scheduler only consumes them, so the repository is
// read-only.
package courses

import "github.com/studybuddy/studybuddy-backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select("id",
		"user_id",
		"code",
		"name",
	).
	From(database.CoursesTable)
