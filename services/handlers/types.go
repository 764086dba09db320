package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/focusflow-app/focusflow_api/dto"
)

type AuthServiceInterface interface {
	Register(req *dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(req *dto.LoginRequest) (*dto.LoginResponse, error)
	RequiredAuth() fiber.Handler
}

type HabitServiceInterface interface {
	Create(userID string, req *dto.CreateHabitRequest) (*dto.HabitResponse, error)
	List(userID string) (*dto.HabitCollectionResponse, error)
	Get(userID, habitID string) (*dto.HabitResponse, error)
	Update(userID, habitID string, req *dto.UpdateHabitRequest) (*dto.HabitResponse, error)
	Archive(userID, habitID string) (*dto.HabitResponse, error)
	Delete(userID, habitID string) error
	ToggleEntry(userID, habitID string, req *dto.ToggleHabitEntryRequest) (*dto.ToggleHabitEntryResponse, error)
	Entries(userID, habitID string) (*dto.HabitEntryCollectionResponse, error)
}

type SkillServiceInterface interface {
	Create(userID string, req *dto.CreateSkillRequest) (*dto.SkillResponse, error)
	List(userID string) (*dto.SkillCollectionResponse, error)
	Get(userID, skillID string) (*dto.SkillResponse, error)
	Update(userID, skillID string, req *dto.UpdateSkillRequest) (*dto.SkillResponse, error)
	Delete(userID, skillID string) error
	RecordSession(userID, skillID string, req *dto.RecordSessionRequest) (*dto.RecordSessionResponse, error)
	Sessions(userID, skillID string) (*dto.SkillSessionCollectionResponse, error)
}

type StatsServiceInterface interface {
	Today(userID string, today time.Time) (*dto.TodayStatsResponse, error)
	Heatmap(userID string, start, end time.Time) (*dto.HeatmapResponse, error)
}

type ExportServiceInterface interface {
	CreateExport(userID string) (*dto.ExportResponse, error)
}
