package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/focusflow-app/focusflow_api/model"
)

func TestComputeTodayStats_DashboardSummary(t *testing.T) {
	habits := []model.Habit{
		{ID: "h1", IsActive: true},
		{ID: "h2", IsActive: true},
		{ID: "h3", IsActive: false},
	}
	skills := []model.Skill{
		{ID: "s1", IsActive: true},
		{ID: "s2", IsActive: true},
	}
	entries := []model.HabitEntry{
		{HabitID: "h1", Date: "2025-06-10", Completed: true},
		{HabitID: "h2", Date: "2025-06-09", Completed: true},
		{HabitID: "h3", Date: "2025-06-10", Completed: true}, // archived habit, not counted
	}
	sessions := []model.SkillSession{
		{SkillID: "s1", Date: "2025-06-10", Duration: 60},
		{SkillID: "s2", Date: "2025-06-10", Duration: 30},
		{SkillID: "s1", Date: "2025-06-09", Duration: 120},
	}

	stats := ComputeTodayStats(habits, skills, entries, sessions, day("2025-06-10"))

	assert.Equal(t, 1, stats.HabitsCompleted)
	assert.Equal(t, 2, stats.TotalHabits)
	assert.InDelta(t, 1.5, stats.SkillsTimeSpentHours, 0.0001)
	assert.Equal(t, 2, stats.TotalSkills)
}

func TestComputeTodayStats_EmptyStore(t *testing.T) {
	stats := ComputeTodayStats(nil, nil, nil, nil, day("2025-06-10"))
	assert.Equal(t, TodayStats{}, stats)
}

func TestComputeTodayStats_DuplicateEntriesCountOneHabit(t *testing.T) {
	habits := []model.Habit{{ID: "h1", IsActive: true}}
	entries := []model.HabitEntry{
		{HabitID: "h1", Date: "2025-06-10", Completed: true},
		{HabitID: "h1", Date: "2025-06-10", Completed: true},
	}

	stats := ComputeTodayStats(habits, nil, entries, nil, day("2025-06-10"))

	assert.Equal(t, 1, stats.HabitsCompleted)
}

func TestWeeklyProgress_EmptyPriorWindowIsZero(t *testing.T) {
	entries := []model.HabitEntry{
		{HabitID: "h1", Date: "2025-06-10", Completed: true},
		{HabitID: "h1", Date: "2025-06-09", Completed: true},
	}

	assert.Equal(t, 0.0, WeeklyProgress(entries, day("2025-06-10")))
}

func TestWeeklyProgress_Growth(t *testing.T) {
	// Two completed days in the prior window, four in the current one.
	entries := []model.HabitEntry{
		{HabitID: "h1", Date: "2025-05-29", Completed: true},
		{HabitID: "h1", Date: "2025-05-31", Completed: true},
		{HabitID: "h1", Date: "2025-06-05", Completed: true},
		{HabitID: "h1", Date: "2025-06-06", Completed: true},
		{HabitID: "h2", Date: "2025-06-06", Completed: true},
		{HabitID: "h1", Date: "2025-06-08", Completed: true},
	}

	assert.InDelta(t, 100.0, WeeklyProgress(entries, day("2025-06-08")), 0.0001)
}

func TestWeeklyProgress_Decline(t *testing.T) {
	entries := []model.HabitEntry{
		{HabitID: "h1", Date: "2025-05-28", Completed: true},
		{HabitID: "h1", Date: "2025-05-29", Completed: true},
		{HabitID: "h1", Date: "2025-05-30", Completed: true},
		{HabitID: "h1", Date: "2025-05-31", Completed: true},
		{HabitID: "h1", Date: "2025-06-05", Completed: true},
	}

	assert.InDelta(t, -75.0, WeeklyProgress(entries, day("2025-06-08")), 0.0001)
}

func TestWeeklyProgress_IgnoresEntriesOutsideBothWindows(t *testing.T) {
	entries := []model.HabitEntry{
		{HabitID: "h1", Date: "2025-01-01", Completed: true},
		{HabitID: "h1", Date: "2025-06-20", Completed: true}, // future
		{HabitID: "h1", Date: "2025-06-01", Completed: true},
	}

	// Only the 06-01 entry lands in a window (prior), so change is negative
	// from 1 to 0: -100%.
	assert.InDelta(t, -100.0, WeeklyProgress(entries, day("2025-06-08")), 0.0001)
}
