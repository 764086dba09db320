package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/focusflow-app/focusflow_api/model"
	"github.com/focusflow-app/focusflow_api/tracker"
)

type PostgresService struct {
	context.DefaultService
	db *gorm.DB

	database string
}

const POSTGRES_SVC = "postgres_svc"

func (ds PostgresService) Id() string {
	return POSTGRES_SVC
}

func (ds PostgresService) Db() *gorm.DB {
	return ds.db
}

func (ds *PostgresService) Configure(ctx *context.Context) error {
	ds.database = os.Getenv("DATABASE_URL")
	if ds.database == "" {
		host := os.Getenv("DB_HOST")
		if host == "" {
			host = "localhost"
		}
		port := os.Getenv("DB_PORT")
		if port == "" {
			port = "5432"
		}
		user := os.Getenv("DB_USER")
		if user == "" {
			user = "postgres"
		}
		password := os.Getenv("DB_PASSWORD")
		if password == "" {
			password = "postgres"
		}
		dbname := os.Getenv("DB_NAME")
		if dbname == "" {
			dbname = "focusflow"
		}
		sslmode := os.Getenv("DB_SSLMODE")
		if sslmode == "" {
			sslmode = "disable"
		}

		ds.database = fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC",
			host, user, password, dbname, port, sslmode)
	}

	return ds.DefaultService.Configure(ctx)
}

func (ds *PostgresService) Start() (err error) {
	maxRetries := 10
	retryDelay := time.Second

	for attempt := 1; attempt <= maxRetries; attempt++ {
		log.Printf("Attempting to connect to database (attempt %d/%d)...", attempt, maxRetries)

		ds.db, err = gorm.Open(postgres.Open(ds.database), &gorm.Config{
			Logger:         logger.Default.LogMode(logger.Error),
			TranslateError: true,
		})
		if err == nil {
			if sqlDB, dbErr := ds.db.DB(); dbErr == nil && sqlDB.Ping() == nil {
				log.Println("Successfully connected to database")
				break
			}
		}

		if attempt == maxRetries {
			return fmt.Errorf("failed to connect to database after %d attempts: %w", maxRetries, err)
		}

		time.Sleep(retryDelay)
		retryDelay *= 2
	}

	err = ds.db.AutoMigrate(
		&model.User{},
		&model.Habit{},
		&model.HabitEntry{},
		&model.Skill{},
		&model.SkillSession{},
	)
	if err != nil {
		log.Printf("Failed to migrate database: %v", err)
		return err
	}

	log.Println("Database connected and migrated successfully")
	return nil
}

func (ds *PostgresService) Shutdown() {
	if ds.db != nil {
		if sqlDB, err := ds.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
}

// HandleError maps database failures onto transport-level errors so
// handlers can return them directly.
func (ds *PostgresService) HandleError(err error) error {
	if err == nil {
		return nil
	}

	var statusCode int
	var errorType string

	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		statusCode = http.StatusNotFound
		errorType = "NOT_FOUND"
	case errors.Is(err, gorm.ErrDuplicatedKey):
		statusCode = http.StatusConflict
		errorType = "CONFLICT"
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		statusCode = http.StatusBadRequest
		errorType = "FOREIGN_KEY_VIOLATION"
	case errors.Is(err, gorm.ErrInvalidTransaction):
		statusCode = http.StatusInternalServerError
		errorType = "TRANSACTION_ERROR"
	default:
		if strings.Contains(err.Error(), "duplicate key value") {
			statusCode = http.StatusConflict
			errorType = "UNIQUE_CONSTRAINT"
		} else {
			statusCode = http.StatusInternalServerError
			errorType = "INTERNAL_ERROR"
		}
	}

	logEntry := log.WithFields(log.Fields{
		"status_code": statusCode,
		"error_type":  errorType,
		"error":       err.Error(),
	})

	if statusCode >= 500 {
		logEntry.Error("Database error occurred")
	} else {
		logEntry.Warn("Database operation failed")
	}

	return err
}

// ==================== USERS ====================

func (ds *PostgresService) CreateUser(user *model.User) error {
	return ds.db.Create(user).Error
}

func (ds *PostgresService) GetUserByID(userID string) (*model.User, error) {
	var user model.User
	if err := ds.db.First(&user, "id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *PostgresService) GetUserByEmailOrUsername(identifier string) (*model.User, error) {
	var user model.User
	err := ds.db.Where("LOWER(email) = LOWER(?) OR LOWER(username) = LOWER(?)", identifier, identifier).
		First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (ds *PostgresService) UpdateLastLogin(userID string, at time.Time) error {
	return ds.db.Model(&model.User{}).Where("id = ?", userID).
		Update("last_login_at", at).Error
}

// ==================== HABITS ====================

func (ds *PostgresService) CreateHabit(habit *model.Habit) error {
	return ds.db.Create(habit).Error
}

func (ds *PostgresService) GetHabit(userID, habitID string) (*model.Habit, error) {
	var habit model.Habit
	if err := ds.db.First(&habit, "id = ? AND user_id = ?", habitID, userID).Error; err != nil {
		return nil, err
	}
	return &habit, nil
}

func (ds *PostgresService) GetHabitsByUser(userID string) ([]model.Habit, error) {
	var habits []model.Habit
	err := ds.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&habits).Error
	return habits, err
}

func (ds *PostgresService) UpdateHabit(habit *model.Habit) error {
	return ds.db.Save(habit).Error
}

// DeleteHabit removes a habit and all of its entries in one transaction.
func (ds *PostgresService) DeleteHabit(userID, habitID string) error {
	return ds.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("habit_id = ?", habitID).Delete(&model.HabitEntry{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ? AND user_id = ?", habitID, userID).Delete(&model.Habit{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ==================== HABIT ENTRIES ====================

// ToggleHabitEntry flips one day's completion and stores the refreshed
// streak counters in the same transaction, so the entry log and the
// habit's caches can never diverge on a partial failure.
func (ds *PostgresService) ToggleHabitEntry(habit *model.Habit, entry model.HabitEntry, asOf time.Time) (bool, error) {
	var completed bool
	err := ds.db.Transaction(func(tx *gorm.DB) error {
		var entries []model.HabitEntry
		if err := tx.Where("habit_id = ?", habit.ID).Find(&entries).Error; err != nil {
			return err
		}

		toggled, on := tracker.ToggleDay(entries, entry)
		if on {
			entry.Completed = true
			if err := tx.Create(&entry).Error; err != nil {
				return err
			}
		} else {
			if err := tx.Where("habit_id = ? AND date = ?", habit.ID, entry.Date).
				Delete(&model.HabitEntry{}).Error; err != nil {
				return err
			}
		}

		result := tracker.ComputeStreaks(toggled, asOf)
		habit.CurrentStreak = result.CurrentStreak
		habit.LongestStreak = result.LongestStreak
		habit.TotalDaysCompleted = result.TotalDaysCompleted

		completed = on
		return tx.Save(habit).Error
	})
	return completed, err
}

func (ds *PostgresService) GetEntriesByHabit(habitID string) ([]model.HabitEntry, error) {
	var entries []model.HabitEntry
	err := ds.db.Where("habit_id = ?", habitID).Order("date ASC").Find(&entries).Error
	return entries, err
}

func (ds *PostgresService) GetEntriesByUser(userID string) ([]model.HabitEntry, error) {
	var entries []model.HabitEntry
	err := ds.db.Where("user_id = ?", userID).Find(&entries).Error
	return entries, err
}

func (ds *PostgresService) GetEntriesByUserInRange(userID, startDate, endDate string) ([]model.HabitEntry, error) {
	var entries []model.HabitEntry
	err := ds.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Find(&entries).Error
	return entries, err
}

// ==================== SKILLS ====================

func (ds *PostgresService) CreateSkill(skill *model.Skill) error {
	return ds.db.Create(skill).Error
}

func (ds *PostgresService) GetSkill(userID, skillID string) (*model.Skill, error) {
	var skill model.Skill
	if err := ds.db.First(&skill, "id = ? AND user_id = ?", skillID, userID).Error; err != nil {
		return nil, err
	}
	return &skill, nil
}

func (ds *PostgresService) GetSkillsByUser(userID string) ([]model.Skill, error) {
	var skills []model.Skill
	err := ds.db.Where("user_id = ?", userID).Order("created_at ASC").Find(&skills).Error
	return skills, err
}

func (ds *PostgresService) UpdateSkill(skill *model.Skill) error {
	return ds.db.Save(skill).Error
}

// DeleteSkill removes a skill and all of its sessions in one transaction.
func (ds *PostgresService) DeleteSkill(userID, skillID string) error {
	return ds.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("skill_id = ?", skillID).Delete(&model.SkillSession{}).Error; err != nil {
			return err
		}
		result := tx.Where("id = ? AND user_id = ?", skillID, userID).Delete(&model.Skill{})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

// ==================== SKILL SESSIONS ====================

func (ds *PostgresService) CreateSkillSession(session *model.SkillSession) error {
	return ds.db.Create(session).Error
}

func (ds *PostgresService) GetSessionsBySkill(skillID string) ([]model.SkillSession, error) {
	var sessions []model.SkillSession
	err := ds.db.Where("skill_id = ?", skillID).Order("date ASC, created_at ASC").Find(&sessions).Error
	return sessions, err
}

func (ds *PostgresService) GetSessionsByUser(userID string) ([]model.SkillSession, error) {
	var sessions []model.SkillSession
	err := ds.db.Where("user_id = ?", userID).Find(&sessions).Error
	return sessions, err
}

func (ds *PostgresService) GetSessionsByUserInRange(userID, startDate, endDate string) ([]model.SkillSession, error) {
	var sessions []model.SkillSession
	err := ds.db.Where("user_id = ? AND date >= ? AND date <= ?", userID, startDate, endDate).
		Find(&sessions).Error
	return sessions, err
}
