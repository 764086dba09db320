package tracker

import "github.com/focusflow-app/focusflow_api/model"

// HabitProgress returns percent complete toward the habit's target days,
// clamped to [0, 100]. A zero or negative target is defined as 0%, never a
// division error.
func HabitProgress(totalDaysCompleted, targetDays int) float64 {
	return clampPercent(float64(totalDaysCompleted), float64(targetDays))
}

// SkillProgress returns percent complete toward the skill's target hours,
// clamped to [0, 100].
func SkillProgress(currentHours, targetHours float64) float64 {
	return clampPercent(currentHours, targetHours)
}

func clampPercent(numerator, denominator float64) float64 {
	if denominator <= 0 {
		return 0
	}
	percent := numerator / denominator * 100
	if percent < 0 {
		return 0
	}
	if percent > 100 {
		return 100
	}
	return percent
}

// TotalHours sums a skill's session durations in hours. The skill's cached
// current_hours column must always equal this value.
func TotalHours(sessions []model.SkillSession) float64 {
	minutes := 0
	for _, session := range sessions {
		if session.Duration > 0 {
			minutes += session.Duration
		}
	}
	return float64(minutes) / 60
}
