package seeders

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/focusflow-app/focusflow_api/model"
	"github.com/focusflow-app/focusflow_api/tracker"
)

// SkillSeeder creates demo skills with a backlog of practice sessions.
type SkillSeeder struct {
	db *gorm.DB
}

func NewSkillSeeder(db *gorm.DB) *SkillSeeder {
	return &SkillSeeder{db: db}
}

type sessionTemplate struct {
	offset     int // days before today
	duration   int // minutes
	focusLevel int
	notes      string
}

type skillTemplate struct {
	title       string
	description string
	category    string
	difficulty  string
	targetHours float64
	color       string
	icon        string
	sessions    []sessionTemplate
}

func (s *SkillSeeder) SeedSkills(userID string) error {
	var count int64
	s.db.Model(&model.Skill{}).Where("user_id = ?", userID).Count(&count)
	if count > 0 {
		log.Println("Skills already seeded, skipping")
		return nil
	}

	today := tracker.Day(time.Now().UTC())

	templates := []skillTemplate{
		{
			title:       "Jazz guitar",
			description: "Working through chord melody arrangements",
			category:    "music",
			difficulty:  "intermediate",
			targetHours: 50,
			color:       "#3B82F6",
			icon:        "guitar",
			sessions: []sessionTemplate{
				{offset: 0, duration: 45, focusLevel: 4, notes: "Autumn Leaves, bars 1-16"},
				{offset: 1, duration: 30, focusLevel: 3},
				{offset: 3, duration: 60, focusLevel: 5, notes: "Full run-through"},
				{offset: 5, duration: 25, focusLevel: 2},
				{offset: 8, duration: 50, focusLevel: 4},
				{offset: 12, duration: 40, focusLevel: 3},
			},
		},
		{
			title:       "Spanish",
			description: "Conversational fluency for travel",
			category:    "language",
			difficulty:  "beginner",
			targetHours: 20,
			color:       "#F59E0B",
			icon:        "globe",
			sessions: []sessionTemplate{
				{offset: 0, duration: 20, focusLevel: 3},
				{offset: 2, duration: 35, focusLevel: 4, notes: "Past tense drills"},
				{offset: 4, duration: 20, focusLevel: 3},
				{offset: 7, duration: 30, focusLevel: 4},
			},
		},
	}

	for _, tpl := range templates {
		skillID, err := uuid.NewV7()
		if err != nil {
			return err
		}

		skill := model.Skill{
			ID:          skillID.String(),
			UserID:      userID,
			Title:       tpl.title,
			Description: tpl.description,
			Category:    tpl.category,
			Difficulty:  tpl.difficulty,
			TargetHours: tpl.targetHours,
			StartDate:   today.AddDate(0, 0, -30),
			IsActive:    true,
			Color:       tpl.color,
			Icon:        tpl.icon,
		}

		sessions := make([]model.SkillSession, 0, len(tpl.sessions))
		for _, st := range tpl.sessions {
			sessionID, err := uuid.NewV7()
			if err != nil {
				return err
			}
			sessions = append(sessions, model.SkillSession{
				ID:         sessionID.String(),
				SkillID:    skill.ID,
				UserID:     userID,
				Date:       tracker.FormatDay(today.AddDate(0, 0, -st.offset)),
				Duration:   st.duration,
				FocusLevel: st.focusLevel,
				Notes:      st.notes,
			})
		}

		skill.CurrentHours = tracker.TotalHours(sessions)

		if err := s.db.Create(&skill).Error; err != nil {
			return err
		}
		if len(sessions) > 0 {
			if err := s.db.Create(&sessions).Error; err != nil {
				return err
			}
		}

		log.Printf("Seeded skill %q with %d sessions (%.1fh)", skill.Title, len(sessions), skill.CurrentHours)
	}

	return nil
}
