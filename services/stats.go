package services

import (
	ctx "context"
	"fmt"
	"time"

	"github.com/alphabatem/common/context"
	log "github.com/sirupsen/logrus"

	"github.com/focusflow-app/focusflow_api/dto"
	"github.com/focusflow-app/focusflow_api/shared"
	"github.com/focusflow-app/focusflow_api/tracker"
)

// StatsService serves the dashboard aggregates (today summary and
// activity heat-map), with a short-lived redis cache in front of the
// calculators. Mutating services call InvalidateUser after every write.
type StatsService struct {
	context.DefaultService

	postgres *PostgresService
	redis    *RedisService

	cacheTTL time.Duration
}

const STATS_SVC = "stats_svc"

func (svc StatsService) Id() string {
	return STATS_SVC
}

func (svc *StatsService) Configure(ctx *context.Context) error {
	svc.cacheTTL = 5 * time.Minute
	return svc.DefaultService.Configure(ctx)
}

func (svc *StatsService) Start() error {
	svc.postgres = svc.Service(POSTGRES_SVC).(*PostgresService)
	svc.redis = svc.Service(REDIS_SVC).(*RedisService)
	return nil
}

func (svc *StatsService) Today(userID string, today time.Time) (*dto.TodayStatsResponse, error) {
	today = tracker.Day(today)
	cacheKey := fmt.Sprintf("stats:%s:today:%s", userID, tracker.FormatDay(today))

	var cached dto.TodayStatsResponse
	if hit, err := svc.redis.GetJSON(ctx.Background(), cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	habits, err := svc.postgres.GetHabitsByUser(userID)
	if err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to load habits")
	}
	skills, err := svc.postgres.GetSkillsByUser(userID)
	if err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to load skills")
	}

	// Two trailing weeks cover both the today summary and the
	// week-over-week comparison.
	rangeStart := tracker.FormatDay(today.AddDate(0, 0, -13))
	rangeEnd := tracker.FormatDay(today)

	entries, err := svc.postgres.GetEntriesByUserInRange(userID, rangeStart, rangeEnd)
	if err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to load entries")
	}
	sessions, err := svc.postgres.GetSessionsByUserInRange(userID, rangeEnd, rangeEnd)
	if err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to load sessions")
	}

	resp := &dto.TodayStatsResponse{
		Date:  tracker.FormatDay(today),
		Stats: tracker.ComputeTodayStats(habits, skills, entries, sessions, today),
	}

	if err := svc.redis.SetJSON(ctx.Background(), cacheKey, resp, svc.cacheTTL); err != nil {
		log.WithError(err).Warn("Failed to cache today stats")
	}

	return resp, nil
}

func (svc *StatsService) Heatmap(userID string, start, end time.Time) (*dto.HeatmapResponse, error) {
	start = tracker.Day(start)
	end = tracker.Day(end)

	startStr := tracker.FormatDay(start)
	endStr := tracker.FormatDay(end)
	cacheKey := fmt.Sprintf("stats:%s:heatmap:%s:%s", userID, startStr, endStr)

	var cached dto.HeatmapResponse
	if hit, err := svc.redis.GetJSON(ctx.Background(), cacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	entries, err := svc.postgres.GetEntriesByUserInRange(userID, startStr, endStr)
	if err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to load entries")
	}
	sessions, err := svc.postgres.GetSessionsByUserInRange(userID, startStr, endStr)
	if err != nil {
		return nil, shared.NewInternalError(svc.postgres.HandleError(err), "Failed to load sessions")
	}

	days, err := tracker.BuildHeatmap(entries, sessions, start, end)
	if err != nil {
		return nil, shared.NewBadRequestError(err, "End date must not be before start date")
	}

	resp := &dto.HeatmapResponse{
		StartDate: startStr,
		EndDate:   endStr,
		Days:      days,
	}

	if err := svc.redis.SetJSON(ctx.Background(), cacheKey, resp, svc.cacheTTL); err != nil {
		log.WithError(err).Warn("Failed to cache heatmap")
	}

	return resp, nil
}

// InvalidateUser drops every cached aggregate for the user. Called after
// any mutation that can change derived values.
func (svc *StatsService) InvalidateUser(userID string) {
	if err := svc.redis.DeletePattern(ctx.Background(), fmt.Sprintf("stats:%s:*", userID)); err != nil {
		log.WithError(err).WithField("user_id", userID).Warn("Failed to invalidate stats cache")
	}
}
