package services

import (
	"errors"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/focusflow-app/focusflow_api/dto"
	"github.com/focusflow-app/focusflow_api/model"
	"github.com/focusflow-app/focusflow_api/shared"
	"github.com/focusflow-app/focusflow_api/tracker"
)

// HabitService owns the habit lifecycle: creation, edits, archival and
// the daily completion toggle that drives streak recomputation.
type HabitService struct {
	context.DefaultService

	postgres   *PostgresService
	stats      *StatsService
	monitoring *MonitoringService
}

const HABIT_SVC = "habit_svc"

func (svc HabitService) Id() string {
	return HABIT_SVC
}

func (svc *HabitService) Start() error {
	svc.postgres = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.stats = svc.Service(STATS_SVC).(*StatsService)
	svc.monitoring = svc.Service(MONITORING_SVC).(*MonitoringService)
	return nil
}

func (svc *HabitService) Create(userID string, req *dto.CreateHabitRequest) (*dto.HabitResponse, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to generate habit id")
	}

	startDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.StartDate != "" {
		if d, ok := tracker.ParseDay(req.StartDate); ok {
			startDate = d
		}
	}

	targetDays := req.TargetDays
	if targetDays == 0 {
		targetDays = 21
	}

	habit := &model.Habit{
		ID:           id.String(),
		UserID:       userID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Difficulty:   req.Difficulty,
		TargetDays:   targetDays,
		StartDate:    startDate,
		IsActive:     true,
		ReminderTime: req.ReminderTime,
		Color:        req.Color,
		Icon:         req.Icon,
	}
	if req.TargetDate != "" {
		if d, ok := tracker.ParseDay(req.TargetDate); ok {
			habit.TargetDate = &d
		}
	}

	if err := svc.postgres.CreateHabit(habit); err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to create habit")
	}

	svc.stats.InvalidateUser(userID)
	log.WithFields(log.Fields{"user_id": userID, "habit_id": habit.ID}).Info("Habit created")

	resp := habitToResponse(habit)
	return &resp, nil
}

func (svc *HabitService) List(userID string) (*dto.HabitCollectionResponse, error) {
	habits, err := svc.postgres.GetHabitsByUser(userID)
	if err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to list habits")
	}

	out := make([]dto.HabitResponse, 0, len(habits))
	for i := range habits {
		out = append(out, habitToResponse(&habits[i]))
	}
	return &dto.HabitCollectionResponse{Habits: out, Total: len(out)}, nil
}

func (svc *HabitService) Get(userID, habitID string) (*dto.HabitResponse, error) {
	habit, err := svc.getOwned(userID, habitID)
	if err != nil {
		return nil, err
	}
	resp := habitToResponse(habit)
	return &resp, nil
}

func (svc *HabitService) Update(userID, habitID string, req *dto.UpdateHabitRequest) (*dto.HabitResponse, error) {
	habit, err := svc.getOwned(userID, habitID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		habit.Title = *req.Title
	}
	if req.Description != nil {
		habit.Description = *req.Description
	}
	if req.Category != nil {
		habit.Category = *req.Category
	}
	if req.Difficulty != nil {
		habit.Difficulty = *req.Difficulty
	}
	if req.TargetDays != nil {
		habit.TargetDays = *req.TargetDays
	}
	if req.TargetDate != nil {
		if d, ok := tracker.ParseDay(*req.TargetDate); ok {
			habit.TargetDate = &d
		}
	}
	if req.ReminderTime != nil {
		habit.ReminderTime = *req.ReminderTime
	}
	if req.Color != nil {
		habit.Color = *req.Color
	}
	if req.Icon != nil {
		habit.Icon = *req.Icon
	}

	if err := svc.postgres.UpdateHabit(habit); err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to update habit")
	}

	svc.stats.InvalidateUser(userID)
	resp := habitToResponse(habit)
	return &resp, nil
}

// Archive deactivates a habit without touching its history.
func (svc *HabitService) Archive(userID, habitID string) (*dto.HabitResponse, error) {
	habit, err := svc.getOwned(userID, habitID)
	if err != nil {
		return nil, err
	}

	habit.IsActive = false
	if err := svc.postgres.UpdateHabit(habit); err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to archive habit")
	}

	svc.stats.InvalidateUser(userID)
	log.WithFields(log.Fields{"user_id": userID, "habit_id": habitID}).Info("Habit archived")

	resp := habitToResponse(habit)
	return &resp, nil
}

func (svc *HabitService) Delete(userID, habitID string) error {
	if err := svc.postgres.DeleteHabit(userID, habitID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewNotFoundError(err, "Habit not found")
		}
		return shared.NewInternalError(svc.postgres.HandleError(err), "Failed to delete habit")
	}

	svc.stats.InvalidateUser(userID)
	log.WithFields(log.Fields{"user_id": userID, "habit_id": habitID}).Info("Habit deleted")
	return nil
}

// ToggleEntry flips a day's completion: a completed day becomes empty,
// an empty day becomes completed. The habit's streak caches are
// recomputed from the full entry history on every flip.
func (svc *HabitService) ToggleEntry(userID, habitID string, req *dto.ToggleHabitEntryRequest) (*dto.ToggleHabitEntryResponse, error) {
	habit, err := svc.getOwned(userID, habitID)
	if err != nil {
		return nil, err
	}

	day, ok := tracker.ParseDay(req.Date)
	if !ok {
		return nil, shared.NewBadRequestError(nil, "Date must be a YYYY-MM-DD date")
	}

	today := tracker.Day(time.Now().UTC())
	if day.After(today) {
		return nil, shared.NewBadRequestError(nil, "Cannot record a completion in the future")
	}

	entryID, err := uuid.NewV7()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to generate entry id")
	}
	entry := model.HabitEntry{
		ID:      entryID.String(),
		HabitID: habitID,
		UserID:  userID,
		Date:    req.Date,
		Mood:    req.Mood,
		Notes:   req.Notes,
	}

	completed, err := svc.postgres.ToggleHabitEntry(habit, entry, today)
	if err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to toggle completion")
	}

	var entryResp *dto.HabitEntryResponse
	if completed {
		entryResp = &dto.HabitEntryResponse{
			ID:        entry.ID,
			HabitID:   entry.HabitID,
			Date:      entry.Date,
			Completed: true,
			Mood:      entry.Mood,
			Notes:     entry.Notes,
		}
	}

	svc.stats.InvalidateUser(userID)
	svc.monitoring.RecordHabitToggle(completed)

	log.WithFields(log.Fields{
		"user_id":   userID,
		"habit_id":  habitID,
		"date":      req.Date,
		"completed": completed,
	}).Info("Habit entry toggled")

	return &dto.ToggleHabitEntryResponse{
		Habit:     habitToResponse(habit),
		Completed: completed,
		Entry:     entryResp,
	}, nil
}

func (svc *HabitService) Entries(userID, habitID string) (*dto.HabitEntryCollectionResponse, error) {
	if _, err := svc.getOwned(userID, habitID); err != nil {
		return nil, err
	}

	entries, err := svc.postgres.GetEntriesByHabit(habitID)
	if err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to list entries")
	}

	out := make([]dto.HabitEntryResponse, 0, len(entries))
	for _, e := range entries {
		out = append(out, dto.HabitEntryResponse{
			ID:        e.ID,
			HabitID:   e.HabitID,
			Date:      e.Date,
			Completed: e.Completed,
			Mood:      e.Mood,
			Notes:     e.Notes,
		})
	}
	return &dto.HabitEntryCollectionResponse{Entries: out, Total: len(out)}, nil
}

func (svc *HabitService) getOwned(userID, habitID string) (*model.Habit, error) {
	habit, err := svc.postgres.GetHabit(userID, habitID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Habit not found")
		}
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to load habit")
	}
	return habit, nil
}

func habitToResponse(h *model.Habit) dto.HabitResponse {
	return dto.HabitResponse{
		ID:                 h.ID,
		Title:              h.Title,
		Description:        h.Description,
		Category:           h.Category,
		Difficulty:         h.Difficulty,
		TargetDays:         h.TargetDays,
		CurrentStreak:      h.CurrentStreak,
		LongestStreak:      h.LongestStreak,
		TotalDaysCompleted: h.TotalDaysCompleted,
		ProgressPercent:    tracker.HabitProgress(h.TotalDaysCompleted, h.TargetDays),
		StartDate:          h.StartDate,
		TargetDate:         h.TargetDate,
		IsActive:           h.IsActive,
		ReminderTime:       h.ReminderTime,
		Color:              h.Color,
		Icon:               h.Icon,
		CreatedAt:          h.CreatedAt,
	}
}
