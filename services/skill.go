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

// SkillService manages skills and their practice sessions. A skill's
// current_hours is a cache over its session log, recomputed whenever a
// session is appended.
type SkillService struct {
	context.DefaultService

	postgres   *PostgresService
	stats      *StatsService
	monitoring *MonitoringService
}

const SKILL_SVC = "skill_svc"

func (svc SkillService) Id() string {
	return SKILL_SVC
}

func (svc *SkillService) Start() error {
	svc.postgres = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.stats = svc.Service(STATS_SVC).(*StatsService)
	svc.monitoring = svc.Service(MONITORING_SVC).(*MonitoringService)
	return nil
}

func (svc *SkillService) Create(userID string, req *dto.CreateSkillRequest) (*dto.SkillResponse, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to generate skill id")
	}

	startDate := time.Now().UTC().Truncate(24 * time.Hour)
	if req.StartDate != "" {
		if d, ok := tracker.ParseDay(req.StartDate); ok {
			startDate = d
		}
	}

	targetHours := req.TargetHours
	if targetHours == 0 {
		targetHours = 20
	}

	skill := &model.Skill{
		ID:          id.String(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		Category:    req.Category,
		Difficulty:  req.Difficulty,
		TargetHours: targetHours,
		StartDate:   startDate,
		IsActive:    true,
		Color:       req.Color,
		Icon:        req.Icon,
	}
	if req.TargetDate != "" {
		if d, ok := tracker.ParseDay(req.TargetDate); ok {
			skill.TargetDate = &d
		}
	}

	if err := svc.postgres.CreateSkill(skill); err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to create skill")
	}

	svc.stats.InvalidateUser(userID)
	log.WithFields(log.Fields{"user_id": userID, "skill_id": skill.ID}).Info("Skill created")

	resp := skillToResponse(skill)
	return &resp, nil
}

func (svc *SkillService) List(userID string) (*dto.SkillCollectionResponse, error) {
	skills, err := svc.postgres.GetSkillsByUser(userID)
	if err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to list skills")
	}

	out := make([]dto.SkillResponse, 0, len(skills))
	for i := range skills {
		out = append(out, skillToResponse(&skills[i]))
	}
	return &dto.SkillCollectionResponse{Skills: out, Total: len(out)}, nil
}

func (svc *SkillService) Get(userID, skillID string) (*dto.SkillResponse, error) {
	skill, err := svc.getOwned(userID, skillID)
	if err != nil {
		return nil, err
	}
	resp := skillToResponse(skill)
	return &resp, nil
}

func (svc *SkillService) Update(userID, skillID string, req *dto.UpdateSkillRequest) (*dto.SkillResponse, error) {
	skill, err := svc.getOwned(userID, skillID)
	if err != nil {
		return nil, err
	}

	if req.Title != nil {
		skill.Title = *req.Title
	}
	if req.Description != nil {
		skill.Description = *req.Description
	}
	if req.Category != nil {
		skill.Category = *req.Category
	}
	if req.Difficulty != nil {
		skill.Difficulty = *req.Difficulty
	}
	if req.TargetHours != nil {
		skill.TargetHours = *req.TargetHours
	}
	if req.TargetDate != nil {
		if d, ok := tracker.ParseDay(*req.TargetDate); ok {
			skill.TargetDate = &d
		}
	}
	if req.Color != nil {
		skill.Color = *req.Color
	}
	if req.Icon != nil {
		skill.Icon = *req.Icon
	}

	if err := svc.postgres.UpdateSkill(skill); err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to update skill")
	}

	svc.stats.InvalidateUser(userID)
	resp := skillToResponse(skill)
	return &resp, nil
}

func (svc *SkillService) Delete(userID, skillID string) error {
	if err := svc.postgres.DeleteSkill(userID, skillID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return shared.NewNotFoundError(err, "Skill not found")
		}
		return shared.NewInternalError(svc.postgres.HandleError(err), "Failed to delete skill")
	}

	svc.stats.InvalidateUser(userID)
	log.WithFields(log.Fields{"user_id": userID, "skill_id": skillID}).Info("Skill deleted")
	return nil
}

// RecordSession appends a practice session and rolls its duration into
// the skill's hour total.
func (svc *SkillService) RecordSession(userID, skillID string, req *dto.RecordSessionRequest) (*dto.RecordSessionResponse, error) {
	skill, err := svc.getOwned(userID, skillID)
	if err != nil {
		return nil, err
	}

	day, ok := tracker.ParseDay(req.Date)
	if !ok {
		return nil, shared.NewBadRequestError(nil, "Date must be a YYYY-MM-DD date")
	}
	today := tracker.Day(time.Now().UTC())
	if day.After(today) {
		return nil, shared.NewBadRequestError(nil, "Cannot record a session in the future")
	}

	id, err := uuid.NewV7()
	if err != nil {
		return nil, shared.NewInternalError(err, "Failed to generate session id")
	}

	session := &model.SkillSession{
		ID:         id.String(),
		SkillID:    skillID,
		UserID:     userID,
		Date:       req.Date,
		Duration:   req.DurationMinutes,
		FocusLevel: req.FocusLevel,
		Notes:      req.Notes,
	}

	if err := svc.postgres.CreateSkillSession(session); err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to record session")
	}

	sessions, err := svc.postgres.GetSessionsBySkill(skillID)
	if err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to load session history")
	}

	skill.CurrentHours = tracker.TotalHours(sessions)
	if err := svc.postgres.UpdateSkill(skill); err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to store hour total")
	}

	svc.stats.InvalidateUser(userID)
	svc.monitoring.RecordSkillSession(req.DurationMinutes)

	log.WithFields(log.Fields{
		"user_id":  userID,
		"skill_id": skillID,
		"date":     req.Date,
		"duration": req.DurationMinutes,
	}).Info("Skill session recorded")

	return &dto.RecordSessionResponse{
		Skill:   skillToResponse(skill),
		Session: sessionToResponse(session),
	}, nil
}

func (svc *SkillService) Sessions(userID, skillID string) (*dto.SkillSessionCollectionResponse, error) {
	if _, err := svc.getOwned(userID, skillID); err != nil {
		return nil, err
	}

	sessions, err := svc.postgres.GetSessionsBySkill(skillID)
	if err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to list sessions")
	}

	out := make([]dto.SkillSessionResponse, 0, len(sessions))
	for i := range sessions {
		out = append(out, sessionToResponse(&sessions[i]))
	}
	return &dto.SkillSessionCollectionResponse{Sessions: out, Total: len(out)}, nil
}

func (svc *SkillService) getOwned(userID, skillID string) (*model.Skill, error) {
	skill, err := svc.postgres.GetSkill(userID, skillID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.NewNotFoundError(err, "Skill not found")
		}
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to load skill")
	}
	return skill, nil
}

func skillToResponse(s *model.Skill) dto.SkillResponse {
	return dto.SkillResponse{
		ID:              s.ID,
		Title:           s.Title,
		Description:     s.Description,
		Category:        s.Category,
		Difficulty:      s.Difficulty,
		TargetHours:     s.TargetHours,
		CurrentHours:    s.CurrentHours,
		ProgressPercent: tracker.SkillProgress(s.CurrentHours, s.TargetHours),
		StartDate:       s.StartDate,
		TargetDate:      s.TargetDate,
		IsActive:        s.IsActive,
		Color:           s.Color,
		Icon:            s.Icon,
		CreatedAt:       s.CreatedAt,
	}
}

func sessionToResponse(s *model.SkillSession) dto.SkillSessionResponse {
	return dto.SkillSessionResponse{
		ID:         s.ID,
		SkillID:    s.SkillID,
		Date:       s.Date,
		Duration:   s.Duration,
		FocusLevel: s.FocusLevel,
		Notes:      s.Notes,
		CreatedAt:  s.CreatedAt,
	}
}
