package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusflow-app/focusflow_api/model"
)

func TestBuildHeatmap_TenDayRange(t *testing.T) {
	entries := []model.HabitEntry{
		{HabitID: "h1", Date: "2025-06-03", Completed: true},
	}
	sessions := []model.SkillSession{
		{SkillID: "s1", Date: "2025-06-07", Duration: 45},
	}

	grid, err := BuildHeatmap(entries, sessions, day("2025-06-01"), day("2025-06-10"))
	require.NoError(t, err)
	require.Len(t, grid, 10)

	for i, cell := range grid {
		switch cell.Date {
		case "2025-06-03":
			assert.Equal(t, IntensityHabitsOnly, cell.Intensity)
			assert.Equal(t, 1, cell.HabitsCompleted)
			assert.Equal(t, 0, cell.SkillMinutes)
		case "2025-06-07":
			assert.Equal(t, IntensitySkillsOnly, cell.Intensity)
			assert.Equal(t, 0, cell.HabitsCompleted)
			assert.Equal(t, 45, cell.SkillMinutes)
		default:
			assert.Equal(t, IntensityNone, cell.Intensity, "cell %d (%s)", i, cell.Date)
			assert.Equal(t, 0, cell.HabitsCompleted)
			assert.Equal(t, 0, cell.SkillMinutes)
		}
	}
}

func TestBuildHeatmap_DaysAreOrderedAndContiguous(t *testing.T) {
	grid, err := BuildHeatmap(nil, nil, day("2025-02-26"), day("2025-03-03"))
	require.NoError(t, err)

	want := []string{"2025-02-26", "2025-02-27", "2025-02-28", "2025-03-01", "2025-03-02", "2025-03-03"}
	got := make([]string, len(grid))
	for i, cell := range grid {
		got[i] = cell.Date
	}
	assert.Equal(t, want, got)
}

func TestBuildHeatmap_BothBucket(t *testing.T) {
	entries := []model.HabitEntry{
		{HabitID: "h1", Date: "2025-06-05", Completed: true},
		{HabitID: "h2", Date: "2025-06-05", Completed: true},
	}
	sessions := []model.SkillSession{
		{SkillID: "s1", Date: "2025-06-05", Duration: 30},
		{SkillID: "s1", Date: "2025-06-05", Duration: 15},
	}

	grid, err := BuildHeatmap(entries, sessions, day("2025-06-05"), day("2025-06-05"))
	require.NoError(t, err)
	require.Len(t, grid, 1)

	assert.Equal(t, IntensityBoth, grid[0].Intensity)
	assert.Equal(t, 2, grid[0].HabitsCompleted)
	assert.Equal(t, 45, grid[0].SkillMinutes)
}

func TestBuildHeatmap_IncompleteEntriesDoNotCount(t *testing.T) {
	entries := []model.HabitEntry{
		{HabitID: "h1", Date: "2025-06-05", Completed: false},
	}

	grid, err := BuildHeatmap(entries, nil, day("2025-06-05"), day("2025-06-05"))
	require.NoError(t, err)
	assert.Equal(t, IntensityNone, grid[0].Intensity)
}

func TestBuildHeatmap_InvalidRange(t *testing.T) {
	_, err := BuildHeatmap(nil, nil, day("2025-06-10"), day("2025-06-01"))
	assert.ErrorIs(t, err, ErrInvalidDateRange)
}

func TestBuildHeatmap_FullYear(t *testing.T) {
	end := day("2025-06-10")
	start := end.AddDate(0, 0, -364)

	grid, err := BuildHeatmap(nil, nil, start, end)
	require.NoError(t, err)
	assert.Len(t, grid, 365)
	assert.Equal(t, FormatDay(start), grid[0].Date)
	assert.Equal(t, "2025-06-10", grid[364].Date)
}

func TestClassifyDay_Total(t *testing.T) {
	assert.Equal(t, IntensityNone, ClassifyDay(0, 0))
	assert.Equal(t, IntensityHabitsOnly, ClassifyDay(3, 0))
	assert.Equal(t, IntensitySkillsOnly, ClassifyDay(0, 90))
	assert.Equal(t, IntensityBoth, ClassifyDay(1, 1))
}
