package tasks

import "github.com/studybuddy/studybuddy-backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select("id",
		"user_id",
		"course_id",
		"date",
		"start_time",
		"end_time",
		"topic",
		"methods",
		"completed",
	).
	From(database.StudyTasksTable)
