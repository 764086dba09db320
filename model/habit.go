package model

import "time"

// Habit is a recurring commitment tracked by daily completion entries.
// The streak and total counters are caches over the entry log; they are
// refreshed inside every service call that mutates entries.
type Habit struct {
	ID                 string `json:"id" gorm:"primaryKey"`
	UserID             string `json:"user_id" gorm:"not null;index"`
	Title              string `json:"title" gorm:"not null"`
	Description        string `json:"description" gorm:"type:text"`
	Category           string `json:"category"`   // health, productivity, learning, social, mindfulness, other
	Difficulty         string `json:"difficulty"` // easy, medium, hard
	TargetDays         int    `json:"target_days" gorm:"default:21"`
	CurrentStreak      int    `json:"current_streak" gorm:"default:0"`
	LongestStreak      int    `json:"longest_streak" gorm:"default:0"`
	TotalDaysCompleted int    `json:"total_days_completed" gorm:"default:0"`
	StartDate          time.Time  `json:"start_date"`
	TargetDate         *time.Time `json:"target_date"`
	IsActive           bool       `json:"is_active" gorm:"default:true"`
	ReminderTime       string     `json:"reminder_time"` // e.g. "09:00", display only
	Color              string     `json:"color"`
	Icon               string     `json:"icon"`
	CreatedAt          time.Time  `json:"created_at"`
	UpdatedAt          time.Time  `json:"updated_at"`
}

// HabitEntry is one habit's completion record for one calendar day.
// At most one entry exists per (habit_id, date); toggling an existing date
// removes the row instead of duplicating it.
type HabitEntry struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	HabitID   string    `json:"habit_id" gorm:"not null;index:idx_habit_date,unique"`
	UserID    string    `json:"user_id" gorm:"not null;index"`
	Date      string    `json:"date" gorm:"not null;index:idx_habit_date,unique"` // YYYY-MM-DD
	Completed bool      `json:"completed" gorm:"not null"`
	Mood      string    `json:"mood,omitempty"` // great, good, okay, bad, terrible
	Notes     string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt time.Time `json:"created_at"`
}
