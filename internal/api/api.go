package api

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/studybuddy/studybuddy-backend/internal/business/planner"
	"github.com/studybuddy/studybuddy-backend/internal/model"
)

type Api struct {
	handler http.Handler
	logger  *zap.SugaredLogger

	events  eventsService
	planner plannerService
	sync    syncService
}

type eventsService interface {
	GetEvents(ctx context.Context, filter model.EventsFilter) ([]*model.Event, error)
	CreateEvent(ctx context.Context, info *model.EventCreate) (*model.Event, error)
	DeleteEvent(ctx context.Context, id int64) error
}

type plannerService interface {
	GeneratePlan(ctx context.Context, userID int64, courseIDs []int64, startDate time.Time, weeks int) (*planner.Plan, error)
	CompleteTask(ctx context.Context, userID, taskID int64, completed bool) error
}

type syncService interface {
	Reconcile(ctx context.Context, ownerID int64, calendarID string) (model.SyncStats, error)
}

func NewApi(
	logger *zap.SugaredLogger,
	events eventsService,
	planner plannerService,
	sync syncService,
) (*Api, error) {
	a := &Api{
		logger:  logger,
		events:  events,
		planner: planner,
		sync:    sync,
	}
	a.setupHandler()

	return a, nil
}

func (a *Api) setupHandler() {
	middleware.DefaultLogger = func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			a.logger.Debugw(r.URL.RequestURI(),
				"addr", r.RemoteAddr,
				"protocol", r.Proto,
				"method", r.Method,
			)
			next.ServeHTTP(w, r)
		})
	}

	r := chi.NewMux()

	r.Use(middleware.Logger, middleware.Recoverer, middleware.StripSlashes)
	r.NotFound(a.notFoundResponse)
	r.MethodNotAllowed(a.methodNotAllowedResponse)

	r.Get("/healthcheck", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	r.Route("/events", func(r chi.Router) {
		r.Get("/", a.getEventsHandler)
		r.Post("/", a.createEventHandler)
		r.Delete("/{id}", a.deleteEventHandler)
	})

	r.Post("/plan", a.generatePlanHandler)
	r.Post("/tasks/{id}/complete", a.completeTaskHandler)
	r.Post("/sync", a.syncHandler)

	a.handler = r
}

func (a *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	a.handler.ServeHTTP(w, r)
}
