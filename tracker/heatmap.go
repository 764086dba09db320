package tracker

import (
	"errors"
	"time"

	"github.com/focusflow-app/focusflow_api/model"
)

// ErrInvalidDateRange is returned when a heat-map is requested with the end
// date before the start date. The range is never silently swapped.
var ErrInvalidDateRange = errors.New("end date is before start date")

// Intensity buckets for heat-map rendering. Every day falls into exactly
// one bucket; colour and opacity mapping is the client's concern.
const (
	IntensityNone       = "none"
	IntensityHabitsOnly = "habits_only"
	IntensitySkillsOnly = "skills_only"
	IntensityBoth       = "both"
)

// DailyActivity is one heat-map cell: the activity totals for a single
// calendar day, present for every day in the requested range.
type DailyActivity struct {
	Date            string `json:"date"`
	HabitsCompleted int    `json:"habits_completed"`
	SkillMinutes    int    `json:"skill_minutes"`
	Intensity       string `json:"intensity"`
}

// ClassifyDay buckets a day by which activity types it saw.
func ClassifyDay(habitsCompleted, skillMinutes int) string {
	switch {
	case habitsCompleted > 0 && skillMinutes > 0:
		return IntensityBoth
	case habitsCompleted > 0:
		return IntensityHabitsOnly
	case skillMinutes > 0:
		return IntensitySkillsOnly
	default:
		return IntensityNone
	}
}

// BuildHeatmap produces one DailyActivity per calendar day in
// [start, end] inclusive, gap-filling days with no recorded activity.
// Runs in O(days + events): one pass to bucket events by day, one pass
// over the range.
func BuildHeatmap(entries []model.HabitEntry, sessions []model.SkillSession, start, end time.Time) ([]DailyActivity, error) {
	start = Day(start)
	end = Day(end)
	if end.Before(start) {
		return nil, ErrInvalidDateRange
	}

	habitsByDay := make(map[string]int)
	for _, entry := range entries {
		if entry.Completed {
			habitsByDay[entry.Date]++
		}
	}

	minutesByDay := make(map[string]int)
	for _, session := range sessions {
		if session.Duration > 0 {
			minutesByDay[session.Date] += session.Duration
		}
	}

	days := int(end.Sub(start).Hours()/24) + 1
	grid := make([]DailyActivity, 0, days)
	for day := start; !day.After(end); day = day.AddDate(0, 0, 1) {
		date := FormatDay(day)
		habits := habitsByDay[date]
		minutes := minutesByDay[date]
		grid = append(grid, DailyActivity{
			Date:            date,
			HabitsCompleted: habits,
			SkillMinutes:    minutes,
			Intensity:       ClassifyDay(habits, minutes),
		})
	}

	return grid, nil
}
