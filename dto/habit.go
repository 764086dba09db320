package dto

import "time"

type CreateHabitRequest struct {
	Title        string `json:"title" validate:"required,min=1,max=120" example:"Morning meditation"`
	Description  string `json:"description" validate:"max=2000"`
	Category     string `json:"category" validate:"required,oneof=health productivity learning social mindfulness other" example:"mindfulness"`
	Difficulty   string `json:"difficulty" validate:"required,oneof=easy medium hard" example:"medium"`
	TargetDays   int    `json:"target_days" validate:"omitempty,gt=0" example:"21"`
	StartDate    string `json:"start_date" validate:"omitempty,calendar_date" example:"2025-06-01"`
	TargetDate   string `json:"target_date" validate:"omitempty,calendar_date" example:"2025-06-22"`
	ReminderTime string `json:"reminder_time" validate:"omitempty" example:"09:00"`
	Color        string `json:"color" example:"#10B981"`
	Icon         string `json:"icon" example:"lotus"`
}

func (r CreateHabitRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateHabitRequest struct {
	Title        *string `json:"title" validate:"omitempty,min=1,max=120"`
	Description  *string `json:"description" validate:"omitempty,max=2000"`
	Category     *string `json:"category" validate:"omitempty,oneof=health productivity learning social mindfulness other"`
	Difficulty   *string `json:"difficulty" validate:"omitempty,oneof=easy medium hard"`
	TargetDays   *int    `json:"target_days" validate:"omitempty,gt=0"`
	TargetDate   *string `json:"target_date" validate:"omitempty,calendar_date"`
	ReminderTime *string `json:"reminder_time"`
	Color        *string `json:"color"`
	Icon         *string `json:"icon"`
}

func (r UpdateHabitRequest) Validate() error {
	return GetValidator().Struct(r)
}

type ToggleHabitEntryRequest struct {
	Date  string `json:"date" validate:"required,calendar_date" example:"2025-06-10"`
	Mood  string `json:"mood" validate:"omitempty,oneof=great good okay bad terrible" example:"good"`
	Notes string `json:"notes" validate:"max=2000"`
}

func (r ToggleHabitEntryRequest) Validate() error {
	return GetValidator().Struct(r)
}

type HabitResponse struct {
	ID                 string     `json:"id"`
	Title              string     `json:"title"`
	Description        string     `json:"description,omitempty"`
	Category           string     `json:"category"`
	Difficulty         string     `json:"difficulty"`
	TargetDays         int        `json:"target_days"`
	CurrentStreak      int        `json:"current_streak"`
	LongestStreak      int        `json:"longest_streak"`
	TotalDaysCompleted int        `json:"total_days_completed"`
	ProgressPercent    float64    `json:"progress_percent"`
	StartDate          time.Time  `json:"start_date"`
	TargetDate         *time.Time `json:"target_date,omitempty"`
	IsActive           bool       `json:"is_active"`
	ReminderTime       string     `json:"reminder_time,omitempty"`
	Color              string     `json:"color,omitempty"`
	Icon               string     `json:"icon,omitempty"`
	CreatedAt          time.Time  `json:"created_at"`
}

type HabitCollectionResponse struct {
	Habits []HabitResponse `json:"habits"`
	Total  int             `json:"total"`
}

type ToggleHabitEntryResponse struct {
	Habit     HabitResponse       `json:"habit"`
	Completed bool                `json:"completed"`
	Entry     *HabitEntryResponse `json:"entry,omitempty"`
}

type HabitEntryResponse struct {
	ID        string `json:"id"`
	HabitID   string `json:"habit_id"`
	Date      string `json:"date"`
	Completed bool   `json:"completed"`
	Mood      string `json:"mood,omitempty"`
	Notes     string `json:"notes,omitempty"`
}

type HabitEntryCollectionResponse struct {
	Entries []HabitEntryResponse `json:"entries"`
	Total   int                  `json:"total"`
}
