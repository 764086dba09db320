package services

import (
	ctx "context"
	"fmt"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/gofiber/fiber/v2"
	log "github.com/sirupsen/logrus"

	"github.com/focusflow-app/focusflow_api/shared"
)

// RateLimitService throttles the auth endpoints with a redis
// fixed-window counter keyed on client IP.
type RateLimitService struct {
	context.DefaultService

	redis *RedisService
}

const RATE_LIMIT_SVC = "rate_limit_svc"

type RateLimitConfig struct {
	Name        string
	MaxRequests int64
	Window      time.Duration
}

func (svc RateLimitService) Id() string {
	return RATE_LIMIT_SVC
}

func (svc *RateLimitService) Start() error {
	svc.redis = svc.Service(REDIS_SVC).(*RedisService)
	return nil
}

func (svc *RateLimitService) Limit(cfg RateLimitConfig) fiber.Handler {
	return func(c *fiber.Ctx) error {
		window := time.Now().Unix() / int64(cfg.Window.Seconds())
		key := fmt.Sprintf("ratelimit:%s:%s:%d", cfg.Name, c.IP(), window)

		count, err := svc.redis.Increment(ctx.Background(), key)
		if err != nil {
			// Fail open; auth still holds the line.
			log.WithError(err).Warn("Rate limit check failed")
			return c.Next()
		}

		if count == 1 {
			if err := svc.redis.Expire(ctx.Background(), key, cfg.Window); err != nil {
				log.WithError(err).Warn("Failed to set rate limit expiry")
			}
		}

		if count > cfg.MaxRequests {
			log.WithFields(log.Fields{
				"limit": cfg.Name,
				"ip":    c.IP(),
			}).Warn("Rate limit exceeded")
			return shared.ResponseJSON(c, fiber.StatusTooManyRequests, "Too Many Requests", nil)
		}

		return c.Next()
	}
}
