package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"time"

	"github.com/xlab/closer"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/studybuddy/studybuddy-backend/internal/api"
	events_service "github.com/studybuddy/studybuddy-backend/internal/business/events"
	"github.com/studybuddy/studybuddy-backend/internal/business/planner"
	sync_service "github.com/studybuddy/studybuddy-backend/internal/business/sync"
	"github.com/studybuddy/studybuddy-backend/internal/config"
	"github.com/studybuddy/studybuddy-backend/internal/database"
	"github.com/studybuddy/studybuddy-backend/internal/database/courses"
	"github.com/studybuddy/studybuddy-backend/internal/database/events"
	"github.com/studybuddy/studybuddy-backend/internal/database/tasks"
	"github.com/studybuddy/studybuddy-backend/internal/pkg/classifier"
	"github.com/studybuddy/studybuddy-backend/internal/pkg/gcal"
	"github.com/studybuddy/studybuddy-backend/internal/redis"
)

func main() {
	ctx := context.Background()

	logger, err := initLogger()
	if err != nil {
		log.Fatalf("unable to initialize logger: %v", err)
	}

	db, err := database.NewPGX(ctx)
	if err != nil {
		logger.Fatalw("unable to initialize db", "err", err)
	}

	redisPool := redis.NewRedisPool(logger)
	syncLocks := redis.NewSyncLockRepository(redisPool, logger)

	eventsRepository := events.NewRepository()
	tasksRepository := tasks.NewRepository()
	coursesRepository := courses.NewRepository()

	eventsService := events_service.NewService(db, eventsRepository)

	var styleClassifier planner.Classifier
	if config.ClassifierURL() != "" {
		styleClassifier = classifier.NewClient(config.ClassifierURL())
	}

	generator := planner.NewGenerator(
		rand.NewSource(time.Now().UnixNano()),
		planner.Window{Start: config.WorkDayStart(), End: config.WorkDayEnd()},
		config.PlanMaxAttempts(),
		config.SessionsPerWeek(),
		logger,
	)
	plannerService := planner.NewService(db, coursesRepository, eventsRepository, tasksRepository, styleClassifier, generator, logger)

	calendarClient, err := gcal.NewClient(ctx, logger)
	if err != nil {
		logger.Fatalw("unable to initialize calendar client", "err", err)
	}

	syncService := sync_service.NewService(eventsService, calendarClient, syncLocks, config.SyncWindow(), logger)

	api, err := api.NewApi(logger, eventsService, plannerService, syncService)
	if err != nil {
		logger.Fatalw("unable to initialize api", "err", err)
	}

	errLogger, err := zap.NewStdLogAt(logger.Desugar(), zap.ErrorLevel)
	if err != nil {
		logger.Fatalw("error initiating server logger", "err", err)
	}

	server := &http.Server{
		Addr:     ":" + config.Port(),
		Handler:  api,
		ErrorLog: errLogger,
	}

	logger.Infow("Started server", "port", config.Port())
	logger.Fatalw("server error", "err", server.ListenAndServe())
}

func initLogger() (*zap.SugaredLogger, error) {
	var logger *zap.Logger
	var err error

	if config.Production() {
		logger, err = zap.NewProduction()
	} else {
		conf := zap.NewDevelopmentConfig()
		conf.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
		logger, err = conf.Build()
	}

	if err != nil {
		return nil, err
	}

	closer.Bind(func() {
		_ = logger.Sync()
	})

	return logger.Sugar(), nil
}
