package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/studybuddy/studybuddy-backend/internal/model"
)

// date marshals as YYYY-MM-DD on the wire.
type date time.Time

func (d *date) UnmarshalJSON(data []byte) error {
	s, err := strconv.Unquote(string(data))
	if err != nil {
		return fmt.Errorf("unquote date: %w", err)
	}

	t, err := time.Parse(model.DateLayout, s)
	if err != nil {
		return fmt.Errorf("parse date %q: %w", s, err)
	}

	*d = date(t.UTC())
	return nil
}

func (d date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(time.Time(d).Format(model.DateLayout))), nil
}

func validTime(s string) bool {
	_, err := time.Parse(model.TimeLayout, s)
	return err == nil
}

func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}

// userIDParam stands in for the authenticated principal; the product's auth
// stack lives outside this service.
func userIDParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.URL.Query().Get("user_id"), 10, 64)
}
