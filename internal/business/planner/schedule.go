package planner

import (
	"fmt"
	"time"

	"github.com/teambition/rrule-go"

	"github.com/studybuddy/studybuddy-backend/internal/model"
)

// ExpandSchedule unrolls weekly course-schedule entries over [from, to) into
// synthetic lecture events, one per two-hour block, so that lecture hours
// count as busy during placement. Entries with malformed times are skipped.
func ExpandSchedule(entries []*model.CourseScheduleEntry, from, to time.Time) ([]*model.Event, error) {
	var res []*model.Event

	for _, entry := range entries {
		start, err := time.Parse(model.TimeLayout, entry.StartTime)
		if err != nil {
			continue
		}
		end, err := time.Parse(model.TimeLayout, entry.EndTime)
		if err != nil || !end.After(start) {
			continue
		}

		d := entry.StartDate
		dtstart := time.Date(d.Year(), d.Month(), d.Day(), start.Hour(), start.Minute(), 0, 0, time.UTC)

		rule, err := rrule.NewRRule(rrule.ROption{
			Freq:     rrule.WEEKLY,
			Interval: 1,
			Dtstart:  dtstart,
		})
		if err != nil {
			return nil, fmt.Errorf("creating rule: %w", err)
		}

		for _, occ := range rule.Between(from, to.Add(-1), true) {
			day := time.Date(occ.Year(), occ.Month(), occ.Day(), 0, 0, 0, 0, time.UTC)
			for h := start.Hour(); h < end.Hour(); h += sessionHours {
				res = append(res, &model.Event{
					EventCreate: model.EventCreate{
						EventType: model.EventTypeLecture,
						Title:     entry.Room,
						Date:      day,
						Time:      fmt.Sprintf("%02d:00", h),
					},
				})
			}
		}
	}

	return res, nil
}
