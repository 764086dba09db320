package model

import "time"

// Skill is a practice commitment tracked by cumulative logged hours.
// CurrentHours is a cache equal to the sum of session durations; it is
// recomputed from the session log after every insert.
type Skill struct {
	ID           string  `json:"id" gorm:"primaryKey"`
	UserID       string  `json:"user_id" gorm:"not null;index"`
	Title        string  `json:"title" gorm:"not null"`
	Description  string  `json:"description" gorm:"type:text"`
	Category     string  `json:"category"`   // programming, design, language, music, sports, art, business, other
	Difficulty   string  `json:"difficulty"` // beginner, intermediate, advanced
	TargetHours  float64 `json:"target_hours" gorm:"default:20"`
	CurrentHours float64 `json:"current_hours" gorm:"default:0"`
	StartDate    time.Time  `json:"start_date"`
	TargetDate   *time.Time `json:"target_date"`
	IsActive     bool       `json:"is_active" gorm:"default:true"`
	Color        string     `json:"color"`
	Icon         string     `json:"icon"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// SkillSession is one timed practice interval logged against a skill.
// Sessions are append-only; multiple sessions per day are allowed.
type SkillSession struct {
	ID         string    `json:"id" gorm:"primaryKey"`
	SkillID    string    `json:"skill_id" gorm:"not null;index"`
	UserID     string    `json:"user_id" gorm:"not null;index"`
	Date       string    `json:"date" gorm:"not null;index"` // YYYY-MM-DD
	Duration   int       `json:"duration" gorm:"not null"`   // in minutes
	FocusLevel int       `json:"focus_level"`                // 1 = distracted, 5 = deep focus
	Notes      string    `json:"notes,omitempty" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`
}
