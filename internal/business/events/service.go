package events

import (
	"context"
	"fmt"

	"github.com/studybuddy/studybuddy-backend/internal/database"
	"github.com/studybuddy/studybuddy-backend/internal/model"
)

type Service struct {
	db               database.PGX
	eventsRepository eventsRepository
}

type eventsRepository interface {
	CreateEvent(ctx context.Context, q database.Queryable, info *model.EventCreate) (int64, error)
	GetEventByID(ctx context.Context, q database.Queryable, id int64) (*model.Event, error)
	GetEvents(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.Event, error)
	UpdateEvent(ctx context.Context, q database.Queryable, event *model.Event) error
	SetExternalRef(ctx context.Context, q database.Queryable, id int64, ref string) error
	DeleteEvent(ctx context.Context, q database.Queryable, id int64) error
}

func NewService(db database.PGX, repo eventsRepository) *Service {
	return &Service{
		db:               db,
		eventsRepository: repo,
	}
}

func (s *Service) CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error) {
	id, err := s.eventsRepository.CreateEvent(ctx, s.db, info)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.CreateEvent: %w", err)
	}

	return &model.Event{
		ID:          id,
		EventCreate: *info,
	}, nil
}

func (s *Service) GetEventByID(ctx context.Context, id int64) (*model.Event, error) {
	event, err := s.eventsRepository.GetEventByID(ctx, s.db, id)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEventByID: %w", err)
	}

	return event, nil
}

func (s *Service) GetEvents(ctx context.Context, filter model.EventsFilter) ([]*model.Event, error) {
	events, err := s.eventsRepository.GetEvents(ctx, s.db, filter)
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEvents: %w", err)
	}

	return events, nil
}

func (s *Service) UpdateEvent(ctx context.Context, event *model.Event) error {
	if err := s.eventsRepository.UpdateEvent(ctx, s.db, event); err != nil {
		return fmt.Errorf("eventsRepository.UpdateEvent: %w", err)
	}

	return nil
}

func (s *Service) SetExternalRef(ctx context.Context, id int64, ref string) error {
	if err := s.eventsRepository.SetExternalRef(ctx, s.db, id, ref); err != nil {
		return fmt.Errorf("eventsRepository.SetExternalRef: %w", err)
	}

	return nil
}

func (s *Service) DeleteEvent(ctx context.Context, id int64) error {
	if err := s.eventsRepository.DeleteEvent(ctx, s.db, id); err != nil {
		return fmt.Errorf("eventsRepository.DeleteEvent: %w", err)
	}

	return nil
}
