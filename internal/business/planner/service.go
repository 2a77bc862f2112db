package planner

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/studybuddy/studybuddy-backend/internal/database"
	"github.com/studybuddy/studybuddy-backend/internal/model"
)

type Service struct {
	db         database.PGX
	courses    coursesRepository
	events     eventsRepository
	tasks      tasksRepository
	classifier Classifier
	gen        *Generator
	logger     *zap.SugaredLogger
}

type coursesRepository interface {
	GetCourses(ctx context.Context, q database.Queryable, userID int64, ids []int64) ([]*model.Course, error)
	GetScheduleEntries(ctx context.Context, q database.Queryable, courseIDs []int64) ([]*model.CourseScheduleEntry, error)
}

type eventsRepository interface {
	GetEvents(ctx context.Context, q database.Queryable, filter model.EventsFilter) ([]*model.Event, error)
	CreateEvent(ctx context.Context, q database.Queryable, info *model.EventCreate) (int64, error)
}

type tasksRepository interface {
	CreateTask(ctx context.Context, q database.Queryable, info *model.TaskCreate) (int64, error)
	GetTaskByID(ctx context.Context, q database.Queryable, id int64) (*model.Task, error)
	SetCompleted(ctx context.Context, q database.Queryable, id int64, completed bool) error
}

// Classifier is the external learning-style predictor. The planner treats it
// as opaque and falls back to a neutral style when it is unavailable.
type Classifier interface {
	Classify(ctx context.Context, userID int64) (model.LearningStyle, error)
}

func NewService(
	db database.PGX,
	courses coursesRepository,
	events eventsRepository,
	tasks tasksRepository,
	classifier Classifier,
	gen *Generator,
	logger *zap.SugaredLogger,
) *Service {
	return &Service{
		db:         db,
		courses:    courses,
		events:     events,
		tasks:      tasks,
		classifier: classifier,
		gen:        gen,
		logger:     logger,
	}
}

// Plan is the outcome of one generation run: the persisted study tasks plus
// the target sessions that found no capacity.
type Plan struct {
	Tasks    []*model.Task
	Unplaced []Unplaced
}

// GeneratePlan places study sessions for the selected courses over the given
// range and saves them as study tasks plus calendar events in one transaction.
func (s *Service) GeneratePlan(ctx context.Context, userID int64, courseIDs []int64, startDate time.Time, weeks int) (*Plan, error) {
	courses, err := s.courses.GetCourses(ctx, s.db, userID, courseIDs)
	if err != nil {
		return nil, fmt.Errorf("coursesRepository.GetCourses: %w", err)
	}
	if len(courses) == 0 {
		return nil, model.ErrNoRecord
	}

	from := startDate
	to := startDate.AddDate(0, 0, weeks*7)

	existing, err := s.events.GetEvents(ctx, s.db, model.EventsFilter{UserID: userID, From: from, To: to})
	if err != nil {
		return nil, fmt.Errorf("eventsRepository.GetEvents: %w", err)
	}

	ids := make([]int64, len(courses))
	for i, c := range courses {
		ids[i] = c.ID
	}

	entries, err := s.courses.GetScheduleEntries(ctx, s.db, ids)
	if err != nil {
		return nil, fmt.Errorf("coursesRepository.GetScheduleEntries: %w", err)
	}

	lectures, err := ExpandSchedule(entries, from, to)
	if err != nil {
		return nil, fmt.Errorf("expand schedule: %w", err)
	}
	existing = append(existing, lectures...)

	style := s.classify(ctx, userID)

	sessions, unplaced := s.gen.Generate(courses, startDate, weeks, existing)

	byID := make(map[int64]*model.Course, len(courses))
	for _, c := range courses {
		byID[c.ID] = c
	}
	for _, sess := range sessions {
		sess.Topic, sess.Methods = SessionContent(byID[sess.CourseID], style)
	}

	plan, err := s.savePlan(ctx, userID, sessions)
	if err != nil {
		return nil, err
	}
	plan.Unplaced = unplaced

	return plan, nil
}

func (s *Service) savePlan(ctx context.Context, userID int64, sessions []*Session) (*Plan, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx")
	}
	defer tx.Rollback(ctx)

	tasks := make([]*model.Task, 0, len(sessions))
	for _, sess := range sessions {
		course := sess.CourseID

		if _, err := s.events.CreateEvent(ctx, tx, &model.EventCreate{
			UserID:    userID,
			EventType: model.EventTypeStudySession,
			Title:     sess.Topic,
			Date:      sess.Date,
			Time:      sess.StartTime(),
			Priority:  2,
		}); err != nil {
			return nil, fmt.Errorf("eventsRepository.CreateEvent: %w", err)
		}

		info := &model.TaskCreate{
			UserID:    userID,
			CourseID:  course,
			Date:      sess.Date,
			StartTime: sess.StartTime(),
			EndTime:   sess.EndTime(),
			Topic:     sess.Topic,
			Methods:   sess.Methods,
		}
		id, err := s.tasks.CreateTask(ctx, tx, info)
		if err != nil {
			return nil, fmt.Errorf("tasksRepository.CreateTask: %w", err)
		}

		tasks = append(tasks, &model.Task{ID: id, TaskCreate: *info})
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("commit tx")
	}

	return &Plan{Tasks: tasks}, nil
}

// CompleteTask toggles the completion flag on an owned task.
func (s *Service) CompleteTask(ctx context.Context, userID, taskID int64, completed bool) error {
	task, err := s.tasks.GetTaskByID(ctx, s.db, taskID)
	if err != nil {
		return fmt.Errorf("tasksRepository.GetTaskByID: %w", err)
	}
	if task.UserID != userID {
		return model.ErrNoRecord
	}

	if err := s.tasks.SetCompleted(ctx, s.db, taskID, completed); err != nil {
		return fmt.Errorf("tasksRepository.SetCompleted: %w", err)
	}

	return nil
}

func (s *Service) classify(ctx context.Context, userID int64) model.LearningStyle {
	if s.classifier == nil {
		return model.LearningStyleUnknown
	}

	style, err := s.classifier.Classify(ctx, userID)
	if err != nil {
		s.logger.Warnw("classifier unavailable, using fallback style", "user_id", userID, "err", err)
		return model.LearningStyleUnknown
	}

	return style
}
