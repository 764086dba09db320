package seeders

import (
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/focusflow-app/focusflow_api/model"
	"github.com/focusflow-app/focusflow_api/tracker"
)

// HabitSeeder creates demo habits with a month of completion history.
type HabitSeeder struct {
	db *gorm.DB
}

func NewHabitSeeder(db *gorm.DB) *HabitSeeder {
	return &HabitSeeder{db: db}
}

type habitTemplate struct {
	title       string
	description string
	category    string
	difficulty  string
	targetDays  int
	color       string
	icon        string
	// offsets (days before today) that were completed
	completedOffsets []int
}

func (s *HabitSeeder) SeedHabits(userID string) error {
	var count int64
	s.db.Model(&model.Habit{}).Where("user_id = ?", userID).Count(&count)
	if count > 0 {
		log.Println("Habits already seeded, skipping")
		return nil
	}

	today := tracker.Day(time.Now().UTC())

	templates := []habitTemplate{
		{
			title:            "Morning meditation",
			description:      "10 minutes of mindfulness before breakfast",
			category:         "mindfulness",
			difficulty:       "easy",
			targetDays:       21,
			color:            "#10B981",
			icon:             "lotus",
			completedOffsets: []int{0, 1, 2, 3, 4, 5, 6, 8, 9, 12, 13, 14, 15, 20, 21, 22},
		},
		{
			title:            "Read 20 pages",
			description:      "Non-fiction before bed",
			category:         "learning",
			difficulty:       "medium",
			targetDays:       30,
			color:            "#F59E0B",
			icon:             "book",
			completedOffsets: []int{1, 2, 4, 5, 7, 8, 10, 11, 13, 16, 17, 19, 23, 25},
		},
		{
			title:            "Evening run",
			description:      "5km around the park",
			category:         "health",
			difficulty:       "hard",
			targetDays:       60,
			color:            "#EF4444",
			icon:             "running",
			completedOffsets: []int{0, 2, 4, 6, 9, 11, 14, 18, 24},
		},
	}

	for _, tpl := range templates {
		habitID, err := uuid.NewV7()
		if err != nil {
			return err
		}

		habit := model.Habit{
			ID:          habitID.String(),
			UserID:      userID,
			Title:       tpl.title,
			Description: tpl.description,
			Category:    tpl.category,
			Difficulty:  tpl.difficulty,
			TargetDays:  tpl.targetDays,
			StartDate:   today.AddDate(0, 0, -30),
			IsActive:    true,
			Color:       tpl.color,
			Icon:        tpl.icon,
		}

		entries := make([]model.HabitEntry, 0, len(tpl.completedOffsets))
		for _, offset := range tpl.completedOffsets {
			entryID, err := uuid.NewV7()
			if err != nil {
				return err
			}
			entries = append(entries, model.HabitEntry{
				ID:        entryID.String(),
				HabitID:   habit.ID,
				UserID:    userID,
				Date:      tracker.FormatDay(today.AddDate(0, 0, -offset)),
				Completed: true,
			})
		}

		result := tracker.ComputeStreaks(entries, today)
		habit.CurrentStreak = result.CurrentStreak
		habit.LongestStreak = result.LongestStreak
		habit.TotalDaysCompleted = result.TotalDaysCompleted

		if err := s.db.Create(&habit).Error; err != nil {
			return err
		}
		if len(entries) > 0 {
			if err := s.db.Create(&entries).Error; err != nil {
				return err
			}
		}

		log.Printf("Seeded habit %q with %d entries (streak %d)", habit.Title, len(entries), habit.CurrentStreak)
	}

	return nil
}
