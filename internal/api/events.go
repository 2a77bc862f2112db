package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/studybuddy/studybuddy-backend/internal/model"
	"github.com/studybuddy/studybuddy-backend/internal/pkg/validator"
)

type eventResp struct {
	ID          int64  `json:"id"`
	Type        int    `json:"type"`
	Title       string `json:"title"`
	Date        date   `json:"date"`
	Time        string `json:"time"`
	Priority    int    `json:"priority"`
	IsDeadline  bool   `json:"is_deadline"`
	Color       string `json:"color"`
	ExternalRef string `json:"external_ref,omitempty"`
}

func mapToEventResp(e *model.Event) (*eventResp, error) {
	return &eventResp{
		ID:          e.ID,
		Type:        int(e.EventType),
		Title:       e.Title,
		Date:        date(e.Date),
		Time:        e.Time,
		Priority:    e.Priority,
		IsDeadline:  e.EventType.IsDeadline(),
		Color:       model.ColorForType(e.EventType),
		ExternalRef: e.ExternalRef,
	}, nil
}

func (a *Api) getEventsHandler(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDParam(r)
	if err != nil {
		a.badRequestResponse(w, r, fmt.Errorf("user_id must be provided"))
		return
	}

	filter := model.EventsFilter{UserID: userID}

	if v := r.URL.Query().Get("from"); v != "" {
		if filter.From, err = time.Parse(model.DateLayout, v); err != nil {
			a.badRequestResponse(w, r, fmt.Errorf("invalid from date: %w", err))
			return
		}
	}
	if v := r.URL.Query().Get("to"); v != "" {
		if filter.To, err = time.Parse(model.DateLayout, v); err != nil {
			a.badRequestResponse(w, r, fmt.Errorf("invalid to date: %w", err))
			return
		}
	}

	events, err := a.events.GetEvents(r.Context(), filter)
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("get events: %w", err))
		return
	}

	resp, _ := mapSlice(events, mapToEventResp)

	if err := a.writeJSON(w, http.StatusOK, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) createEventHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		UserID   int64  `json:"user_id"`
		Type     int    `json:"type"`
		Title    string `json:"title"`
		Date     date   `json:"date"`
		Time     string `json:"time"`
		Priority int    `json:"priority"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(req.UserID != 0, "user_id", "user_id must be provided")
	v.Check(len(req.Title) != 0, "title", "title must be provided")
	v.Check(!time.Time(req.Date).IsZero(), "date", "date must be provided")
	v.Check(validTime(req.Time), "time", "time must be HH:MM")
	v.Check(req.Priority >= 1 && req.Priority <= 3, "priority", "priority must be between 1 and 3")

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	event, err := a.events.CreateEvent(r.Context(), &model.EventCreate{
		UserID:    req.UserID,
		EventType: model.EventType(req.Type),
		Title:     req.Title,
		Date:      time.Time(req.Date),
		Time:      req.Time,
		Priority:  req.Priority,
	})
	if err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("create event: %w", err))
		return
	}

	resp, _ := mapToEventResp(event)
	if err := a.writeJSON(w, http.StatusCreated, resp, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}

func (a *Api) deleteEventHandler(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		a.badRequestResponse(w, r, fmt.Errorf("invalid id"))
		return
	}

	if err := a.events.DeleteEvent(r.Context(), id); err != nil {
		a.serverErrorResponse(w, r, fmt.Errorf("delete event: %w", err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
