package redis

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	goredis "github.com/redis/go-redis/v9"

	"github.com/fitfi/style-engine/internal/logger"
	"github.com/fitfi/style-engine/internal/types"
	"github.com/fitfi/style-engine/internal/utils"
)

// ProfileCache stores computed style profiles keyed by a digest of the
// quiz answers, so the same answers never pay for a recompute.
type ProfileCache interface {
	Get(ctx context.Context, key string) (*types.StyleProfileResult, bool, error)
	Set(ctx context.Context, key string, result *types.StyleProfileResult) error
	Close() error
}

type profileCache struct {
	log *logger.Logger
	rdb *goredis.Client
	ttl time.Duration
}

func NewProfileCache(log *logger.Logger) (ProfileCache, error) {
	if log == nil {
		return nil, fmt.Errorf("logger required")
	}

	addr := strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	if addr == "" {
		return nil, fmt.Errorf("missing REDIS_ADDR")
	}

	ttlSeconds := utils.GetEnvAsInt("PROFILE_CACHE_TTL", 86400, log)

	rdb := goredis.NewClient(&goredis.Options{
		Addr:        addr,
		DialTimeout: 5 * time.Second,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	return &profileCache{
		log: log.With("service", "RedisProfileCache"),
		rdb: rdb,
		ttl: time.Duration(ttlSeconds) * time.Second,
	}, nil
}

// CacheKey digests an answer map into a stable cache key. encoding/json
// marshals map keys in sorted order, so equal maps always digest equal.
func CacheKey(answers types.AnswerMap) (string, error) {
	raw, err := json.Marshal(answers)
	if err != nil {
		return "", fmt.Errorf("marshal answers: %w", err)
	}
	sum := sha256.Sum256(raw)
	return "styleprofile:" + hex.EncodeToString(sum[:]), nil
}

func (c *profileCache) Get(ctx context.Context, key string) (*types.StyleProfileResult, bool, error) {
	if c == nil || c.rdb == nil {
		return nil, false, fmt.Errorf("profile cache not initialized")
	}
	raw, err := c.rdb.Get(ctx, key).Bytes()
	if err == goredis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	var result types.StyleProfileResult
	if err := json.Unmarshal(raw, &result); err != nil {
		c.log.Warn("bad cached profile payload", "key", key, "error", err)
		return nil, false, nil
	}
	return &result, true, nil
}

func (c *profileCache) Set(ctx context.Context, key string, result *types.StyleProfileResult) error {
	if c == nil || c.rdb == nil {
		return fmt.Errorf("profile cache not initialized")
	}
	raw, err := json.Marshal(result)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, raw, c.ttl).Err()
}

func (c *profileCache) Close() error {
	if c == nil || c.rdb == nil {
		return nil
	}
	return c.rdb.Close()
}
