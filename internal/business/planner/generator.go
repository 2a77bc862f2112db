package planner

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/studybuddy/studybuddy-backend/internal/model"
)

// Session is one placed study slot. Content fields are filled by the service
// after classification; placement only cares about course, date and hour.
type Session struct {
	CourseID  int64
	Date      time.Time
	StartHour int
	Topic     string
	Methods   []string
}

// Unplaced reports a target session the generator could not fit within its
// attempt budget. It is returned to the caller instead of being dropped.
type Unplaced struct {
	CourseID int64
	Week     int
	Attempts int
}

type Generator struct {
	rng             *rand.Rand
	window          Window
	maxAttempts     int
	sessionsPerWeek int
	logger          *zap.SugaredLogger
}

// NewGenerator builds a generator around an injected random source so that
// placement is reproducible under test.
func NewGenerator(src rand.Source, window Window, maxAttempts, sessionsPerWeek int, logger *zap.SugaredLogger) *Generator {
	return &Generator{
		rng:             rand.New(src),
		window:          window,
		maxAttempts:     maxAttempts,
		sessionsPerWeek: sessionsPerWeek,
		logger:          logger,
	}
}

// busySet tracks occupied hours per calendar day within a single run.
type busySet map[string]map[int]struct{}

func (b busySet) mark(date time.Time, hour int) {
	key := date.Format(model.DateLayout)
	if b[key] == nil {
		b[key] = map[int]struct{}{}
	}
	b[key][hour] = struct{}{}
}

func (b busySet) hours(date time.Time) map[int]struct{} {
	return b[date.Format(model.DateLayout)]
}

// Generate places the target sessions for every (course, week) pair against
// the owner's existing events. Successfully placed slots join the working set
// and constrain later placements within the same run.
func (g *Generator) Generate(courses []*model.Course, startDate time.Time, weeks int, existing []*model.Event) ([]*Session, []Unplaced) {
	busy := busySet{}
	for _, e := range existing {
		h, err := e.StartHour()
		if err != nil {
			g.logger.Warnw("skipping event with malformed time", "event_id", e.ID, "time", e.Time)
			continue
		}
		busy.mark(e.Date, h)
		busy.mark(e.Date, h+1)
	}

	day := startDate.Truncate(24 * time.Hour)

	var sessions []*Session
	var unplaced []Unplaced

	for _, course := range courses {
		for week := 0; week < weeks; week++ {
			for n := 0; n < g.sessionsPerWeek; n++ {
				s, attempts := g.place(course.ID, day, week, busy)
				if s == nil {
					unplaced = append(unplaced, Unplaced{CourseID: course.ID, Week: week, Attempts: attempts})
					g.logger.Infow("no capacity for session",
						"course_id", course.ID,
						"week", week,
						"attempts", attempts,
					)
					continue
				}
				sessions = append(sessions, s)
			}
		}
	}

	sort.SliceStable(sessions, func(i, j int) bool {
		if !sessions[i].Date.Equal(sessions[j].Date) {
			return sessions[i].Date.Before(sessions[j].Date)
		}
		return sessions[i].StartHour < sessions[j].StartHour
	})

	return sessions, unplaced
}

// place tries up to maxAttempts random (day, hour) picks for one session and
// marks the chosen hours busy on success.
func (g *Generator) place(courseID int64, startDay time.Time, week int, busy busySet) (*Session, int) {
	for attempt := 1; attempt <= g.maxAttempts; attempt++ {
		date := startDay.AddDate(0, 0, week*7+g.rng.Intn(7))

		free := FreeStarts(busy.hours(date), g.window)
		if len(free) == 0 {
			continue
		}

		hour := free[g.rng.Intn(len(free))]
		busy.mark(date, hour)
		busy.mark(date, hour+1)

		return &Session{
			CourseID:  courseID,
			Date:      date,
			StartHour: hour,
		}, attempt
	}

	return nil, g.maxAttempts
}

// StartTime formats the session start as a clock time.
func (s *Session) StartTime() string {
	return fmt.Sprintf("%02d:00", s.StartHour)
}

// EndTime formats the session end as a clock time.
func (s *Session) EndTime() string {
	return fmt.Sprintf("%02d:00", s.StartHour+sessionHours)
}
