package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/studybuddy/studybuddy-backend/internal/business/planner"
	"github.com/studybuddy/studybuddy-backend/internal/model"
	"github.com/studybuddy/studybuddy-backend/internal/pkg/validator"
)

type taskResp struct {
	ID        int64    `json:"id"`
	CourseID  int64    `json:"course_id"`
	Date      date     `json:"date"`
	StartTime string   `json:"start_time"`
	EndTime   string   `json:"end_time"`
	Topic     string   `json:"topic"`
	Methods   []string `json:"methods"`
	Completed bool     `json:"completed"`
}

type unplacedResp struct {
	CourseID int64 `json:"course_id"`
	Week     int   `json:"week"`
	Attempts int   `json:"attempts"`
}

func (a *Api) generatePlanHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		UserID    int64   `json:"user_id"`
		CourseIDs []int64 `json:"course_ids"`
		StartDate date    `json:"start_date"`
		Weeks     int     `json:"weeks"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(req.UserID != 0, "user_id", "user_id must be provided")
	v.Check(len(req.CourseIDs) != 0, "course_ids", "at least one course must be selected")
	v.Check(!time.Time(req.StartDate).IsZero(), "start_date", "start_date must be provided")
	v.Check(req.Weeks >= 1, "weeks", "weeks must be at least 1")

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	plan, err := a.planner.GeneratePlan(r.Context(), req.UserID, req.CourseIDs, time.Time(req.StartDate), req.Weeks)
	if err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("generate plan: %w", err))
		return
	}

	tasks, _ := mapSlice(plan.Tasks, func(t *model.Task) (*taskResp, error) {
		return &taskResp{
			ID:        t.ID,
			CourseID:  t.CourseID,
			Date:      date(t.Date),
			StartTime: t.StartTime,
			EndTime:   t.EndTime,
			Topic:     t.Topic,
			Methods:   t.Methods,
			Completed: t.Completed,
		}, nil
	})
	unplaced, _ := mapSlice(plan.Unplaced, func(u planner.Unplaced) (*unplacedResp, error) {
		return &unplacedResp{CourseID: u.CourseID, Week: u.Week, Attempts: u.Attempts}, nil
	})

	resp := map[string]interface{}{
		"tasks":    tasks,
		"unplaced": unplaced,
	}

	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) completeTaskHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, fmt.Errorf("invalid id"))
		return
	}

	req := &struct {
		UserID    int64 `json:"user_id"`
		Completed bool  `json:"completed"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	if err := a.planner.CompleteTask(r.Context(), req.UserID, id, req.Completed); err != nil {
		if errors.Is(err, model.ErrNoRecord) {
			a.notFoundResponse(w, r)
			return
		}
		a.serverErrorResponse(w, r, fmt.Errorf("complete task: %w", err))
		return
	}

	w.WriteHeader(http.StatusOK)
}
