package services

import (
	ctx "context"
	"fmt"
	"os"
	"time"

	"github.com/alphabatem/common/context"
	"github.com/redis/go-redis/v9"
	log "github.com/sirupsen/logrus"

	"github.com/focusflow-app/focusflow_api/shared"
)

type RedisService struct {
	context.DefaultService
	client *redis.Client

	addr     string
	password string
	db       int
}

const REDIS_SVC = "redis_svc"

func (rs RedisService) Id() string {
	return REDIS_SVC
}

func (rs RedisService) Client() *redis.Client {
	return rs.client
}

func (rs *RedisService) Configure(ctx *context.Context) error {
	rs.addr = os.Getenv("REDIS_ADDR")
	if rs.addr == "" {
		rs.addr = "localhost:6379"
	}
	rs.password = os.Getenv("REDIS_PASSWORD")
	rs.db = 0

	return rs.DefaultService.Configure(ctx)
}

func (rs *RedisService) Start() error {
	rs.client = redis.NewClient(&redis.Options{
		Addr:     rs.addr,
		Password: rs.password,
		DB:       rs.db,
	})

	pingCtx, cancel := ctx.WithTimeout(ctx.Background(), 5*time.Second)
	defer cancel()

	if err := rs.client.Ping(pingCtx).Err(); err != nil {
		return fmt.Errorf("failed to connect to redis at %s: %w", rs.addr, err)
	}

	log.WithField("addr", rs.addr).Info("Connected to redis")
	return nil
}

func (rs *RedisService) Shutdown() {
	if rs.client != nil {
		_ = rs.client.Close()
	}
}

func (rs *RedisService) Set(c ctx.Context, key string, value interface{}, ttl time.Duration) error {
	return rs.client.Set(c, key, value, ttl).Err()
}

func (rs *RedisService) SetJSON(c ctx.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := shared.MarshalJSON(value)
	if err != nil {
		return err
	}
	return rs.client.Set(c, key, data, ttl).Err()
}

// Get returns the raw value, or redis.Nil when the key is absent.
func (rs *RedisService) Get(c ctx.Context, key string) (string, error) {
	return rs.client.Get(c, key).Result()
}

func (rs *RedisService) GetJSON(c ctx.Context, key string, out interface{}) (bool, error) {
	data, err := rs.client.Get(c, key).Bytes()
	if err == redis.Nil {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if err := shared.UnmarshalJSON(data, out); err != nil {
		return false, err
	}
	return true, nil
}

func (rs *RedisService) Delete(c ctx.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return rs.client.Del(c, keys...).Err()
}

// DeletePattern removes every key matching the glob pattern. Used for
// cache invalidation after mutations; scans instead of KEYS to avoid
// blocking the server.
func (rs *RedisService) DeletePattern(c ctx.Context, pattern string) error {
	iter := rs.client.Scan(c, 0, pattern, 100).Iterator()
	for iter.Next(c) {
		if err := rs.client.Del(c, iter.Val()).Err(); err != nil {
			return err
		}
	}
	return iter.Err()
}

func (rs *RedisService) Increment(c ctx.Context, key string) (int64, error) {
	return rs.client.Incr(c, key).Result()
}

func (rs *RedisService) Expire(c ctx.Context, key string, ttl time.Duration) error {
	return rs.client.Expire(c, key, ttl).Err()
}

func (rs *RedisService) TTL(c ctx.Context, key string) (time.Duration, error) {
	return rs.client.TTL(c, key).Result()
}
