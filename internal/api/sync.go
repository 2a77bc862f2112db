package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/studybuddy/studybuddy-backend/internal/model"
	"github.com/studybuddy/studybuddy-backend/internal/pkg/validator"
)

func (a *Api) syncHandler(w http.ResponseWriter, r *http.Request) {
	req := &struct {
		UserID     int64  `json:"user_id"`
		CalendarID string `json:"calendar_id"`
	}{}

	if err := a.readJSON(w, r, req); err != nil {
		a.badRequestResponse(w, r, err)
		return
	}

	v := validator.New()
	v.Check(req.UserID != 0, "user_id", "user_id must be provided")
	v.Check(req.CalendarID != "", "calendar_id", "calendar_id must be provided")

	if !v.Valid() {
		a.failedValidationResponse(w, r, v.Errors)
		return
	}

	stats, err := a.sync.Reconcile(r.Context(), req.UserID, req.CalendarID)
	if err != nil {
		if errors.Is(err, model.ErrSyncInProgress) {
			a.conflictResponse(w, r, "sync already in progress for this user")
			return
		}

		// Partial progress is still reported; the client can retry the
		// remainder.
		a.logError(r, fmt.Errorf("reconcile: %w", err))
		resp := map[string]interface{}{
			"stats": stats,
			"error": "synchronization aborted before completion",
		}
		if err := a.writeJSON(w, http.StatusBadGateway, resp, nil); err != nil {
			a.serverErrorResponse(w, r, err)
		}
		return
	}

	if err := a.writeJSON(w, http.StatusOK, map[string]interface{}{"stats": stats}, nil); err != nil {
		a.serverErrorResponse(w, r, err)
	}
}
