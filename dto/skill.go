package dto

import "time"

type CreateSkillRequest struct {
	Title       string  `json:"title" validate:"required,min=1,max=120" example:"Jazz guitar"`
	Description string  `json:"description" validate:"max=2000"`
	Category    string  `json:"category" validate:"required,oneof=programming design language music sports art business other" example:"music"`
	Difficulty  string  `json:"difficulty" validate:"required,oneof=beginner intermediate advanced" example:"beginner"`
	TargetHours float64 `json:"target_hours" validate:"omitempty,gt=0" example:"20"`
	StartDate   string  `json:"start_date" validate:"omitempty,calendar_date" example:"2025-06-01"`
	TargetDate  string  `json:"target_date" validate:"omitempty,calendar_date"`
	Color       string  `json:"color" example:"#3B82F6"`
	Icon        string  `json:"icon" example:"guitar"`
}

func (r CreateSkillRequest) Validate() error {
	return GetValidator().Struct(r)
}

type UpdateSkillRequest struct {
	Title       *string  `json:"title" validate:"omitempty,min=1,max=120"`
	Description *string  `json:"description" validate:"omitempty,max=2000"`
	Category    *string  `json:"category" validate:"omitempty,oneof=programming design language music sports art business other"`
	Difficulty  *string  `json:"difficulty" validate:"omitempty,oneof=beginner intermediate advanced"`
	TargetHours *float64 `json:"target_hours" validate:"omitempty,gt=0"`
	TargetDate  *string  `json:"target_date" validate:"omitempty,calendar_date"`
	Color       *string  `json:"color"`
	Icon        *string  `json:"icon"`
}

func (r UpdateSkillRequest) Validate() error {
	return GetValidator().Struct(r)
}

type RecordSessionRequest struct {
	Date            string `json:"date" validate:"required,calendar_date" example:"2025-06-10"`
	DurationMinutes int    `json:"duration_minutes" validate:"required,gt=0" example:"45"`
	FocusLevel      int    `json:"focus_level" validate:"omitempty,gte=1,lte=5" example:"4"`
	Notes           string `json:"notes" validate:"max=2000"`
}

func (r RecordSessionRequest) Validate() error {
	return GetValidator().Struct(r)
}

type SkillResponse struct {
	ID              string     `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description,omitempty"`
	Category        string     `json:"category"`
	Difficulty      string     `json:"difficulty"`
	TargetHours     float64    `json:"target_hours"`
	CurrentHours    float64    `json:"current_hours"`
	ProgressPercent float64    `json:"progress_percent"`
	StartDate       time.Time  `json:"start_date"`
	TargetDate      *time.Time `json:"target_date,omitempty"`
	IsActive        bool       `json:"is_active"`
	Color           string     `json:"color,omitempty"`
	Icon            string     `json:"icon,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

type SkillCollectionResponse struct {
	Skills []SkillResponse `json:"skills"`
	Total  int             `json:"total"`
}

type SkillSessionResponse struct {
	ID         string    `json:"id"`
	SkillID    string    `json:"skill_id"`
	Date       string    `json:"date"`
	Duration   int       `json:"duration"`
	FocusLevel int       `json:"focus_level,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type SkillSessionCollectionResponse struct {
	Sessions []SkillSessionResponse `json:"sessions"`
	Total    int                    `json:"total"`
}

type RecordSessionResponse struct {
	Skill   SkillResponse        `json:"skill"`
	Session SkillSessionResponse `json:"session"`
}
