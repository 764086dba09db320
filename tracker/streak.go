package tracker

import (
	"sort"
	"time"

	"github.com/focusflow-app/focusflow_api/model"
	"github.com/focusflow-app/focusflow_api/shared"
)

// StreakResult is derived entirely from a habit's entry log; the habit's
// cached counters are updated by the caller from these values.
type StreakResult struct {
	CurrentStreak      int `json:"current_streak"`
	LongestStreak      int `json:"longest_streak"`
	TotalDaysCompleted int `json:"total_days_completed"`
}

// Day truncates t to midnight UTC so calendar arithmetic is stable across
// callers in different locations.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ParseDay parses a YYYY-MM-DD string into a normalised day.
func ParseDay(s string) (time.Time, bool) {
	t, err := time.Parse(shared.DateLayout, s)
	if err != nil {
		return time.Time{}, false
	}
	return Day(t), true
}

// FormatDay renders a day back into the stored YYYY-MM-DD form.
func FormatDay(t time.Time) string {
	return t.Format(shared.DateLayout)
}

// completedDays collects the distinct completed entry days at or before asOf.
// Unparseable dates and future-dated rows are skipped rather than failing
// the whole computation.
func completedDays(entries []model.HabitEntry, asOf time.Time) map[time.Time]bool {
	days := make(map[time.Time]bool, len(entries))
	for _, entry := range entries {
		if !entry.Completed {
			continue
		}
		day, ok := ParseDay(entry.Date)
		if !ok || day.After(asOf) {
			continue
		}
		days[day] = true
	}
	return days
}

// ComputeStreaks derives the current streak, longest streak and total
// completed days for one habit's entries, relative to asOf. A streak is a
// maximal run of consecutive calendar days; it still counts as current when
// yesterday was completed but today has not been marked yet.
func ComputeStreaks(entries []model.HabitEntry, asOf time.Time) StreakResult {
	asOf = Day(asOf)
	days := completedDays(entries, asOf)
	if len(days) == 0 {
		return StreakResult{}
	}

	sorted := make([]time.Time, 0, len(days))
	for day := range days {
		sorted = append(sorted, day)
	}
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Before(sorted[j]) })

	longest := 1
	run := 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i].Sub(sorted[i-1]) == 24*time.Hour {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}

	// The current run anchors on today, or on yesterday if today is not
	// marked yet; anything older means the streak is broken.
	anchor := asOf
	if !days[anchor] {
		anchor = asOf.AddDate(0, 0, -1)
	}
	current := 0
	for days[anchor] {
		current++
		anchor = anchor.AddDate(0, 0, -1)
	}

	return StreakResult{
		CurrentStreak:      current,
		LongestStreak:      longest,
		TotalDaysCompleted: len(days),
	}
}
