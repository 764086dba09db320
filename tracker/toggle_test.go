package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/focusflow-app/focusflow_api/model"
)

func toggleOn(habitID, date string) model.HabitEntry {
	return model.HabitEntry{
		ID:      habitID + "-" + date,
		HabitID: habitID,
		Date:    date,
	}
}

func TestToggleDay_InsertsWhenAbsent(t *testing.T) {
	entries := entriesOn("h1", "2025-06-08", "2025-06-09")

	toggled, completed := ToggleDay(entries, toggleOn("h1", "2025-06-10"))

	assert.True(t, completed)
	require.Len(t, toggled, 3)
	assert.True(t, toggled[2].Completed, "inserted entry must be marked completed")
	assert.Equal(t, "2025-06-10", toggled[2].Date)
}

func TestToggleDay_RemovesWhenPresent(t *testing.T) {
	entries := entriesOn("h1", "2025-06-08", "2025-06-09", "2025-06-10")

	toggled, completed := ToggleDay(entries, toggleOn("h1", "2025-06-09"))

	assert.False(t, completed)
	require.Len(t, toggled, 2)
	for _, e := range toggled {
		assert.NotEqual(t, "2025-06-09", e.Date)
	}
}

func TestToggleDay_OnOffOnRestoresEntrySet(t *testing.T) {
	entries := entriesOn("h1", "2025-06-08")

	afterOn, completed := ToggleDay(entries, toggleOn("h1", "2025-06-10"))
	require.True(t, completed)

	afterOff, completed := ToggleDay(afterOn, toggleOn("h1", "2025-06-10"))
	require.False(t, completed)
	require.Len(t, afterOff, 1)
	assert.Equal(t, "2025-06-08", afterOff[0].Date)

	afterSecondOn, completed := ToggleDay(afterOff, toggleOn("h1", "2025-06-10"))
	require.True(t, completed)

	dates := func(es []model.HabitEntry) map[string]bool {
		out := make(map[string]bool, len(es))
		for _, e := range es {
			out[e.Date] = e.Completed
		}
		return out
	}
	assert.Equal(t, dates(afterOn), dates(afterSecondOn))
}

func TestToggleDay_StreakCountersFollowToggles(t *testing.T) {
	asOf := day("2025-06-10")
	entries := entriesOn("h1", "2025-06-08", "2025-06-09")

	afterOn, _ := ToggleDay(entries, toggleOn("h1", "2025-06-10"))
	result := ComputeStreaks(afterOn, asOf)
	assert.Equal(t, 3, result.CurrentStreak)
	assert.Equal(t, 3, result.TotalDaysCompleted)

	afterOff, _ := ToggleDay(afterOn, toggleOn("h1", "2025-06-10"))
	result = ComputeStreaks(afterOff, asOf)
	assert.Equal(t, 2, result.CurrentStreak, "yesterday's run still counts when today is cleared")
	assert.Equal(t, 2, result.TotalDaysCompleted)

	afterSecondOn, _ := ToggleDay(afterOff, toggleOn("h1", "2025-06-10"))
	result = ComputeStreaks(afterSecondOn, asOf)
	assert.Equal(t, 3, result.CurrentStreak)
	assert.Equal(t, 3, result.TotalDaysCompleted)
}

func TestToggleDay_RemovesDuplicateRowsForDay(t *testing.T) {
	// The unique index prevents duplicates, but derived logic must not
	// trust it.
	entries := append(entriesOn("h1", "2025-06-09", "2025-06-09"), entriesOn("h1", "2025-06-08")...)

	toggled, completed := ToggleDay(entries, toggleOn("h1", "2025-06-09"))

	assert.False(t, completed)
	require.Len(t, toggled, 1)
	assert.Equal(t, "2025-06-08", toggled[0].Date)
}
