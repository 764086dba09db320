package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToggleHabitEntryRequest_RequiresDate(t *testing.T) {
	req := ToggleHabitEntryRequest{}

	err := req.Validate()
	require.Error(t, err)

	fields := FormatValidationErrors(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "Date", fields[0].Field)
}

func TestToggleHabitEntryRequest_RejectsMalformedDate(t *testing.T) {
	for _, date := range []string{"06/10/2025", "2025-13-01", "2025-06-10T00:00:00Z", "not-a-date"} {
		req := ToggleHabitEntryRequest{Date: date}
		assert.Error(t, req.Validate(), "date %q should be rejected", date)
	}
}

func TestToggleHabitEntryRequest_AcceptsDateWithOptionalMood(t *testing.T) {
	req := ToggleHabitEntryRequest{Date: "2025-06-10"}
	assert.NoError(t, req.Validate())

	req.Mood = "great"
	assert.NoError(t, req.Validate())

	req.Mood = "ecstatic"
	assert.Error(t, req.Validate())
}

func TestCreateHabitRequest_CategoryAndDifficulty(t *testing.T) {
	req := CreateHabitRequest{
		Title:      "Morning meditation",
		Category:   "mindfulness",
		Difficulty: "medium",
		TargetDays: 21,
	}
	require.NoError(t, req.Validate())

	req.Category = "gardening"
	assert.Error(t, req.Validate())

	req.Category = "mindfulness"
	req.Difficulty = "impossible"
	assert.Error(t, req.Validate())
}

func TestCreateHabitRequest_OmittedTargetDaysIsValid(t *testing.T) {
	// Zero means "not supplied"; the service fills in the default target.
	req := CreateHabitRequest{
		Title:      "Morning meditation",
		Category:   "mindfulness",
		Difficulty: "medium",
	}
	assert.NoError(t, req.Validate())

	req.TargetDays = -3
	assert.Error(t, req.Validate())
}

func TestCreateSkillRequest_OmittedTargetHoursIsValid(t *testing.T) {
	req := CreateSkillRequest{
		Title:      "Jazz guitar",
		Category:   "music",
		Difficulty: "beginner",
	}
	assert.NoError(t, req.Validate())
}

func TestCreateSkillRequest_TargetHoursMustBePositive(t *testing.T) {
	req := CreateSkillRequest{
		Title:       "Jazz guitar",
		Category:    "music",
		Difficulty:  "beginner",
		TargetHours: -5,
	}
	assert.Error(t, req.Validate())

	req.TargetHours = 20
	assert.NoError(t, req.Validate())
}

func TestRecordSessionRequest_DurationAndFocus(t *testing.T) {
	req := RecordSessionRequest{Date: "2025-06-10", DurationMinutes: 45}
	require.NoError(t, req.Validate())

	req.DurationMinutes = 0
	assert.Error(t, req.Validate())

	req.DurationMinutes = 45
	req.FocusLevel = 6
	assert.Error(t, req.Validate())
}

func TestRegisterRequest_Validation(t *testing.T) {
	req := RegisterRequest{Email: "user@example.com", Username: "flowstate", Password: "SecurePass123"}
	require.NoError(t, req.Validate())

	req.Email = "not-an-email"
	assert.Error(t, req.Validate())

	req.Email = "user@example.com"
	req.Username = "ab"
	assert.Error(t, req.Validate())

	req.Username = "flow state"
	assert.Error(t, req.Validate())
}
