package main

import (
	"github.com/focusflow-app/focusflow_api/services"

	"github.com/alphabatem/common/context"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// @title FocusFlow API
// @version 1.0
// @description Habit and skill tracking with streaks, progress and activity heat-maps.
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
func main() {
	err := godotenv.Load()
	if err != nil {
		log.Warn().Err(err).Msg("No .env file loaded")
	}

	ctx, err := context.NewCtx(
		&services.MonitoringService{},
		&services.PostgresService{},
		&services.RedisService{},
		&services.JWTService{},

		&services.AuthService{},
		&services.StatsService{},
		&services.HabitService{},
		&services.SkillService{},
		&services.ExportService{},
		&services.RateLimitService{},

		&services.HttpService{},
	)
	if err != nil {
		log.Fatal().Err(err)
		return
	}

	err = ctx.Run()
	if err != nil {
		log.Fatal().Err(err)
		return
	}
}
