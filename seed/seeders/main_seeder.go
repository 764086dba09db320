package seeders

import (
	"log"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/focusflow-app/focusflow_api/model"
)

// MainSeeder coordinates all seeding operations
type MainSeeder struct {
	db *gorm.DB
}

// NewMainSeeder creates a new main seeder
func NewMainSeeder(db *gorm.DB) *MainSeeder {
	return &MainSeeder{db: db}
}

// SeedAll runs all seeders in the correct order
func (s *MainSeeder) SeedAll() error {
	log.Println("Starting database seeding...")

	userID, err := s.seedDemoUser()
	if err != nil {
		log.Printf("Demo user seeding failed: %v", err)
		return err
	}

	habitSeeder := NewHabitSeeder(s.db)
	if err := habitSeeder.SeedHabits(userID); err != nil {
		log.Printf("Habit seeding failed: %v", err)
		return err
	}

	skillSeeder := NewSkillSeeder(s.db)
	if err := skillSeeder.SeedSkills(userID); err != nil {
		log.Printf("Skill seeding failed: %v", err)
		return err
	}

	log.Println("Database seeding completed successfully!")
	return nil
}

// SeedHabitsOnly seeds only habits for the demo user
func (s *MainSeeder) SeedHabitsOnly() error {
	userID, err := s.seedDemoUser()
	if err != nil {
		return err
	}
	return NewHabitSeeder(s.db).SeedHabits(userID)
}

// SeedSkillsOnly seeds only skills for the demo user
func (s *MainSeeder) SeedSkillsOnly() error {
	userID, err := s.seedDemoUser()
	if err != nil {
		return err
	}
	return NewSkillSeeder(s.db).SeedSkills(userID)
}

// seedDemoUser creates the demo account if it does not already exist and
// returns its id.
func (s *MainSeeder) seedDemoUser() (string, error) {
	var existing model.User
	err := s.db.Where("email = ?", "demo@focusflow.app").First(&existing).Error
	if err == nil {
		log.Println("Demo user already exists, reusing")
		return existing.ID, nil
	}
	if err != gorm.ErrRecordNotFound {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("demo1234"), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}

	user := model.User{
		ID:       id.String(),
		Email:    "demo@focusflow.app",
		Username: "demo",
		Password: string(hash),
		IsActive: true,
	}

	if err := s.db.Create(&user).Error; err != nil {
		return "", err
	}

	log.Printf("Created demo user %s", user.ID)
	return user.ID, nil
}
