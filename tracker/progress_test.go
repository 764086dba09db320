package tracker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/focusflow-app/focusflow_api/model"
)

func TestHabitProgress_ZeroTargetGuarded(t *testing.T) {
	assert.Equal(t, 0.0, HabitProgress(25, 0))
	assert.Equal(t, 0.0, HabitProgress(25, -3))
}

func TestHabitProgress_ClampedAtHundred(t *testing.T) {
	assert.Equal(t, 100.0, HabitProgress(25, 21))
}

func TestHabitProgress_Partial(t *testing.T) {
	assert.InDelta(t, 50.0, HabitProgress(10, 20), 0.0001)
	assert.InDelta(t, 100.0/3, HabitProgress(7, 21), 0.0001)
}

func TestHabitProgress_ZeroCompleted(t *testing.T) {
	assert.Equal(t, 0.0, HabitProgress(0, 21))
}

func TestSkillProgress_Halfway(t *testing.T) {
	assert.InDelta(t, 50.0, SkillProgress(10, 20), 0.0001)
}

func TestSkillProgress_OvershootClamped(t *testing.T) {
	assert.Equal(t, 100.0, SkillProgress(45.5, 20))
}

func TestSkillProgress_ZeroTargetGuarded(t *testing.T) {
	assert.Equal(t, 0.0, SkillProgress(10, 0))
}

func TestTotalHours_SumsDurations(t *testing.T) {
	sessions := []model.SkillSession{
		{SkillID: "s1", Date: "2025-06-10", Duration: 60},
		{SkillID: "s1", Date: "2025-06-10", Duration: 30},
		{SkillID: "s1", Date: "2025-06-11", Duration: 45},
	}
	assert.InDelta(t, 2.25, TotalHours(sessions), 0.0001)
}

func TestTotalHours_IgnoresNonPositiveDurations(t *testing.T) {
	sessions := []model.SkillSession{
		{SkillID: "s1", Date: "2025-06-10", Duration: 60},
		{SkillID: "s1", Date: "2025-06-10", Duration: 0},
		{SkillID: "s1", Date: "2025-06-10", Duration: -15},
	}
	assert.InDelta(t, 1.0, TotalHours(sessions), 0.0001)
}

func TestTotalHours_Empty(t *testing.T) {
	assert.Equal(t, 0.0, TotalHours(nil))
}
