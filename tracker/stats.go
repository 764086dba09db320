package tracker

import (
	"time"

	"github.com/focusflow-app/focusflow_api/model"
)

// TodayStats is the dashboard summary for one calendar day.
type TodayStats struct {
	HabitsCompleted       int     `json:"habits_completed"`
	TotalHabits           int     `json:"total_habits"`
	SkillsTimeSpentHours  float64 `json:"skills_time_spent_hours"`
	TotalSkills           int     `json:"total_skills"`
	WeeklyProgressPercent float64 `json:"weekly_progress_percent"`
}

// ComputeTodayStats summarises activity for the given day. The caller
// supplies today explicitly so results are deterministic under test.
func ComputeTodayStats(habits []model.Habit, skills []model.Skill, entries []model.HabitEntry, sessions []model.SkillSession, today time.Time) TodayStats {
	today = Day(today)
	todayStr := FormatDay(today)

	activeHabits := make(map[string]bool, len(habits))
	for _, habit := range habits {
		if habit.IsActive {
			activeHabits[habit.ID] = true
		}
	}

	completedToday := make(map[string]bool)
	for _, entry := range entries {
		if entry.Completed && entry.Date == todayStr && activeHabits[entry.HabitID] {
			completedToday[entry.HabitID] = true
		}
	}

	minutesToday := 0
	for _, session := range sessions {
		if session.Date == todayStr && session.Duration > 0 {
			minutesToday += session.Duration
		}
	}

	totalSkills := 0
	for _, skill := range skills {
		if skill.IsActive {
			totalSkills++
		}
	}

	return TodayStats{
		HabitsCompleted:       len(completedToday),
		TotalHabits:           len(activeHabits),
		SkillsTimeSpentHours:  float64(minutesToday) / 60,
		TotalSkills:           totalSkills,
		WeeklyProgressPercent: WeeklyProgress(entries, today),
	}
}

// WeeklyProgress is the percentage change in completed habit-days between
// the trailing 7-day window ending today and the preceding 7-day window.
// An empty prior window yields 0 rather than an undefined growth rate.
func WeeklyProgress(entries []model.HabitEntry, today time.Time) float64 {
	today = Day(today)
	currentStart := today.AddDate(0, 0, -6)
	previousStart := today.AddDate(0, 0, -13)

	// Distinct (habit, day) pairs; the unique index on entries guarantees
	// this already, but derived values should not trust it.
	seen := make(map[string]bool, len(entries))
	current, previous := 0, 0
	for _, entry := range entries {
		if !entry.Completed {
			continue
		}
		day, ok := ParseDay(entry.Date)
		if !ok || day.After(today) || day.Before(previousStart) {
			continue
		}
		key := entry.HabitID + "|" + entry.Date
		if seen[key] {
			continue
		}
		seen[key] = true
		if !day.Before(currentStart) {
			current++
		} else {
			previous++
		}
	}

	if previous == 0 {
		return 0
	}
	return float64(current-previous) / float64(previous) * 100
}
