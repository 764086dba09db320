package services

import (
	"os"
	"strconv"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	zlog "github.com/rs/zerolog/log"
)

const serviceName = "focusflow_api"

// MonitoringService exposes Prometheus metrics and a liveness probe on a
// side port, away from the public API.
type MonitoringService struct {
	context.DefaultService

	registry *prometheus.Registry
	app      *fiber.App
	port     string

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	habitTogglesTotal   *prometheus.CounterVec
	skillSessionsTotal  prometheus.Counter
	skillMinutesTotal   prometheus.Counter
}

const MONITORING_SVC = "monitoring_svc"

func (svc MonitoringService) Id() string {
	return MONITORING_SVC
}

func (svc *MonitoringService) Configure(ctx *context.Context) error {
	svc.port = os.Getenv("PROMETHEUS_PORT")
	if svc.port == "" {
		svc.port = "9090"
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	svc.registry = prometheus.NewRegistry()
	svc.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	svc.httpRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "http_requests_total",
		Help:      "HTTP requests by method, route and status code.",
	}, []string{"method", "route", "status"})

	svc.httpRequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: serviceName,
		Name:      "http_request_duration_seconds",
		Help:      "HTTP request latency by method and route.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"method", "route"})

	svc.habitTogglesTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "habit_toggles_total",
		Help:      "Habit day toggles by resulting state.",
	}, []string{"state"})

	svc.skillSessionsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "skill_sessions_total",
		Help:      "Skill practice sessions recorded.",
	})

	svc.skillMinutesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: serviceName,
		Name:      "skill_minutes_total",
		Help:      "Total practice minutes recorded.",
	})

	svc.registry.MustRegister(
		svc.httpRequestsTotal,
		svc.httpRequestDuration,
		svc.habitTogglesTotal,
		svc.skillSessionsTotal,
		svc.skillMinutesTotal,
	)

	return svc.DefaultService.Configure(ctx)
}

func (svc *MonitoringService) Start() error {
	svc.app = fiber.New(fiber.Config{DisableStartupMessage: true})

	svc.app.Get("/metrics", adaptor.HTTPHandler(promhttp.HandlerFor(svc.registry, promhttp.HandlerOpts{})))
	svc.app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": serviceName})
	})

	go func() {
		zlog.Info().Str("port", svc.port).Msg("metrics server listening")
		if err := svc.app.Listen(":" + svc.port); err != nil {
			zlog.Error().Err(err).Msg("metrics server stopped")
		}
	}()

	return nil
}

func (svc *MonitoringService) Shutdown() {
	if svc.app != nil {
		_ = svc.app.Shutdown()
	}
}

// Middleware records request counts and latency for the public API.
func (svc *MonitoringService) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		route := c.Route().Path
		method := c.Method()
		status := strconv.Itoa(c.Response().StatusCode())

		svc.httpRequestsTotal.WithLabelValues(method, route, status).Inc()
		svc.httpRequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())

		return err
	}
}

func (svc *MonitoringService) RecordHabitToggle(completed bool) {
	state := "uncompleted"
	if completed {
		state = "completed"
	}
	svc.habitTogglesTotal.WithLabelValues(state).Inc()
}

func (svc *MonitoringService) RecordSkillSession(minutes int) {
	svc.skillSessionsTotal.Inc()
	svc.skillMinutesTotal.Add(float64(minutes))
}
