package services

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	log "github.com/sirupsen/logrus"
	"gorm.io/gorm"

	docs "github.com/focusflow-app/focusflow_api/docs"
	"github.com/focusflow-app/focusflow_api/services/handlers"
	"github.com/focusflow-app/focusflow_api/shared"
)

type HttpService struct {
	context.DefaultService

	authSvc      *AuthService
	habitSvc     *HabitService
	skillSvc     *SkillService
	statsSvc     *StatsService
	exportSvc    *ExportService
	rateLimitSvc *RateLimitService
	monitoring   *MonitoringService

	port int
	app  *fiber.App
}

const HTTP_SVC = "http_svc"

func (svc HttpService) Id() string {
	return HTTP_SVC
}

func (svc *HttpService) Configure(ctx *context.Context) error {
	if port := os.Getenv("HTTP_PORT"); port != "" {
		var err error
		if svc.port, err = strconv.Atoi(port); err != nil {
			return err
		}
	} else {
		svc.port = 8000
	}

	return svc.DefaultService.Configure(ctx)
}

func (svc *HttpService) Start() error {
	svc.authSvc = svc.Service(AUTH_SVC).(*AuthService)
	svc.habitSvc = svc.Service(HABIT_SVC).(*HabitService)
	svc.skillSvc = svc.Service(SKILL_SVC).(*SkillService)
	svc.statsSvc = svc.Service(STATS_SVC).(*StatsService)
	svc.exportSvc = svc.Service(EXPORT_SVC).(*ExportService)
	svc.rateLimitSvc = svc.Service(RATE_LIMIT_SVC).(*RateLimitService)
	svc.monitoring = svc.Service(MONITORING_SVC).(*MonitoringService)

	docs.SwaggerInfo.BasePath = ""

	svc.app = fiber.New(fiber.Config{
		ErrorHandler:          svc.handleError,
		DisableStartupMessage: os.Getenv("LOG_LEVEL") == "INFO",
	})

	svc.app.Use(recover.New())
	svc.app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
	}))
	svc.app.Use(svc.monitoring.Middleware())

	svc.registerRoutes()

	log.WithField("port", svc.port).Info("HTTP server listening")
	return svc.app.Listen(fmt.Sprintf(":%v", svc.port))
}

func (svc *HttpService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}

func (svc *HttpService) registerRoutes() {
	authHandler := handlers.NewAuthHandler(svc.authSvc)
	habitHandler := handlers.NewHabitHandler(svc.habitSvc)
	skillHandler := handlers.NewSkillHandler(svc.skillSvc)
	statsHandler := handlers.NewStatsHandler(svc.statsSvc, svc.exportSvc)

	svc.app.Get("/ping", svc.ping)
	svc.app.Get("/swagger/*", swagger.HandlerDefault)

	v1 := svc.app.Group("/api/v1")
	v1.Get("/ping", svc.ping)

	authLimit := svc.rateLimitSvc.Limit(RateLimitConfig{Name: "auth", MaxRequests: 10, Window: time.Minute})
	v1.Post("/register", authLimit, authHandler.Register)
	v1.Post("/login", authLimit, authHandler.Login)

	protected := v1.Group("", svc.authSvc.RequiredAuth())

	protected.Post("/habits", habitHandler.CreateHabit)
	protected.Get("/habits", habitHandler.GetHabits)
	protected.Get("/habits/:habitId", habitHandler.GetHabit)
	protected.Put("/habits/:habitId", habitHandler.UpdateHabit)
	protected.Delete("/habits/:habitId", habitHandler.DeleteHabit)
	protected.Post("/habits/:habitId/archive", habitHandler.ArchiveHabit)
	protected.Post("/habits/:habitId/toggle", habitHandler.ToggleHabitEntry)
	protected.Get("/habits/:habitId/entries", habitHandler.GetHabitEntries)

	protected.Post("/skills", skillHandler.CreateSkill)
	protected.Get("/skills", skillHandler.GetSkills)
	protected.Get("/skills/:skillId", skillHandler.GetSkill)
	protected.Put("/skills/:skillId", skillHandler.UpdateSkill)
	protected.Delete("/skills/:skillId", skillHandler.DeleteSkill)
	protected.Post("/skills/:skillId/sessions", skillHandler.RecordSession)
	protected.Get("/skills/:skillId/sessions", skillHandler.GetSessions)

	protected.Get("/stats/today", statsHandler.GetTodayStats)
	protected.Get("/stats/heatmap", statsHandler.GetHeatmap)
	protected.Post("/export", statsHandler.CreateExport)

	svc.app.Use(func(c *fiber.Ctx) error {
		return shared.ResponseNotFound(c)
	})
}

// @Summary Ping
// @Description This endpoint checks the health of the service
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} shared.Response{data=string}
// @Router /ping [get]
func (svc *HttpService) ping(c *fiber.Ctx) error {
	c.Set("Cache-Control", "max-age=10")
	return shared.ResponseJSON(c, http.StatusOK, "Success", "pong")
}

func (svc *HttpService) handleError(c *fiber.Ctx, err error) error {
	if appErr, ok := shared.GetAppError(err); ok {
		return shared.ResponseJSON(c, appErr.StatusCode, appErr.Message, appErr.Data)
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return shared.ResponseNotFound(c)
	}

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return shared.ResponseJSON(c, fiberErr.Code, fiberErr.Message, nil)
	}

	log.WithError(err).Error("Unhandled request error")
	return shared.ResponseInternalError(c, err)
}
