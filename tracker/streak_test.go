package tracker

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusflow-app/focusflow_api/model"
)

func day(s string) time.Time {
	t, ok := ParseDay(s)
	if !ok {
		panic("bad test date: " + s)
	}
	return t
}

func entriesOn(habitID string, dates ...string) []model.HabitEntry {
	entries := make([]model.HabitEntry, 0, len(dates))
	for i, d := range dates {
		entries = append(entries, model.HabitEntry{
			ID:        habitID + "-" + d,
			HabitID:   habitID,
			Date:      d,
			Completed: true,
			CreatedAt: time.Now().Add(time.Duration(i) * time.Second),
		})
	}
	return entries
}

func TestComputeStreaks_NoEntries(t *testing.T) {
	result := ComputeStreaks(nil, day("2025-06-10"))
	assert.Equal(t, StreakResult{}, result)
}

func TestComputeStreaks_ConsecutiveDays(t *testing.T) {
	entries := entriesOn("h1", "2025-06-08", "2025-06-09", "2025-06-10")

	result := ComputeStreaks(entries, day("2025-06-10"))

	assert.Equal(t, 3, result.CurrentStreak)
	assert.Equal(t, 3, result.LongestStreak)
	assert.Equal(t, 3, result.TotalDaysCompleted)
}

func TestComputeStreaks_GapResetsRun(t *testing.T) {
	// D and D+2 completed, D+1 missed.
	entries := entriesOn("h1", "2025-06-08", "2025-06-10")

	result := ComputeStreaks(entries, day("2025-06-10"))

	assert.Equal(t, 1, result.CurrentStreak)
	assert.Equal(t, 1, result.LongestStreak)
	assert.Equal(t, 2, result.TotalDaysCompleted)
}

func TestComputeStreaks_YesterdayKeepsStreakCurrent(t *testing.T) {
	// Today not marked yet; the run ending yesterday is still current.
	entries := entriesOn("h1", "2025-06-07", "2025-06-08", "2025-06-09")

	result := ComputeStreaks(entries, day("2025-06-10"))

	assert.Equal(t, 3, result.CurrentStreak)
	assert.Equal(t, 3, result.LongestStreak)
}

func TestComputeStreaks_BrokenStreakIsNotCurrent(t *testing.T) {
	entries := entriesOn("h1", "2025-06-05", "2025-06-06", "2025-06-07")

	result := ComputeStreaks(entries, day("2025-06-10"))

	assert.Equal(t, 0, result.CurrentStreak)
	assert.Equal(t, 3, result.LongestStreak)
	assert.Equal(t, 3, result.TotalDaysCompleted)
}

func TestComputeStreaks_LongestSurvivesLaterShorterRun(t *testing.T) {
	entries := entriesOn("h1",
		"2025-05-01", "2025-05-02", "2025-05-03", "2025-05-04",
		"2025-06-09", "2025-06-10",
	)

	result := ComputeStreaks(entries, day("2025-06-10"))

	assert.Equal(t, 2, result.CurrentStreak)
	assert.Equal(t, 4, result.LongestStreak)
	assert.Equal(t, 6, result.TotalDaysCompleted)
}

func TestComputeStreaks_DuplicateDatesCollapse(t *testing.T) {
	entries := append(entriesOn("h1", "2025-06-09", "2025-06-10"), entriesOn("h1", "2025-06-10")...)

	result := ComputeStreaks(entries, day("2025-06-10"))

	assert.Equal(t, 2, result.CurrentStreak)
	assert.Equal(t, 2, result.TotalDaysCompleted)
}

func TestComputeStreaks_FutureEntriesExcluded(t *testing.T) {
	entries := entriesOn("h1", "2025-06-09", "2025-06-10", "2025-06-11", "2025-07-01")

	result := ComputeStreaks(entries, day("2025-06-10"))

	assert.Equal(t, 2, result.CurrentStreak)
	assert.Equal(t, 2, result.LongestStreak)
	assert.Equal(t, 2, result.TotalDaysCompleted)
}

func TestComputeStreaks_IgnoresIncompleteAndMalformed(t *testing.T) {
	entries := entriesOn("h1", "2025-06-09", "2025-06-10")
	entries = append(entries,
		model.HabitEntry{HabitID: "h1", Date: "2025-06-08", Completed: false},
		model.HabitEntry{HabitID: "h1", Date: "not-a-date", Completed: true},
	)

	result := ComputeStreaks(entries, day("2025-06-10"))

	assert.Equal(t, 2, result.CurrentStreak)
	assert.Equal(t, 2, result.TotalDaysCompleted)
}

func TestComputeStreaks_MonthBoundary(t *testing.T) {
	entries := entriesOn("h1", "2025-05-30", "2025-05-31", "2025-06-01")

	result := ComputeStreaks(entries, day("2025-06-01"))

	assert.Equal(t, 3, result.CurrentStreak)
	assert.Equal(t, 3, result.LongestStreak)
}

func TestComputeStreaks_InvariantLongestAtLeastCurrent(t *testing.T) {
	cases := [][]string{
		{"2025-06-10"},
		{"2025-06-09", "2025-06-10"},
		{"2025-06-01", "2025-06-02", "2025-06-09", "2025-06-10"},
		{"2025-06-04", "2025-06-05", "2025-06-06", "2025-06-07", "2025-06-08", "2025-06-09", "2025-06-10"},
	}
	for _, dates := range cases {
		result := ComputeStreaks(entriesOn("h1", dates...), day("2025-06-10"))
		require.GreaterOrEqual(t, result.LongestStreak, result.CurrentStreak, "dates: %v", dates)
		require.GreaterOrEqual(t, result.TotalDaysCompleted, result.CurrentStreak, "dates: %v", dates)
	}
}
