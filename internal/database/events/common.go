package events

import "github.com/studybuddy/studybuddy-backend/internal/database"

type Repository struct{}

func NewRepository() *Repository {
	return &Repository{}
}

var baseQuery = database.PSQL.
	Select("id",
		"user_id",
		"type",
		"title",
		"date",
		"start_time",
		"priority",
		"external_ref",
	).
	From(database.EventsTable)
