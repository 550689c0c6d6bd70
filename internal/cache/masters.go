package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/salon-scheduler/internal/config"
)

const (
	mastersKey = "masters:list"
	mastersTTL = 5 * time.Minute
)

// Masters caches the serialized public master list. Appointments and
// working hours are never cached; the engine re-reads them inside its
// transaction.
type Masters struct {
	rdb *redis.Client
	log *zap.Logger
}

func NewMasters(cfg *config.Config, log *zap.Logger) *Masters {
	opt, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Warn("invalid REDIS_URL, using localhost", zap.Error(err))
		opt = &redis.Options{Addr: "localhost:6379"}
	}

	return &Masters{
		rdb: redis.NewClient(opt),
		log: log,
	}
}

// Get returns the cached payload, or nil on miss or any redis failure.
func (c *Masters) Get(ctx context.Context) []byte {
	payload, err := c.rdb.Get(ctx, mastersKey).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.log.Warn("masters cache read failed", zap.Error(err))
		}
		return nil
	}
	return payload
}

func (c *Masters) Set(ctx context.Context, payload []byte) {
	if err := c.rdb.Set(ctx, mastersKey, payload, mastersTTL).Err(); err != nil {
		c.log.Warn("masters cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached list; called by every admin master write.
func (c *Masters) Invalidate(ctx context.Context) {
	if err := c.rdb.Del(ctx, mastersKey).Err(); err != nil {
		c.log.Warn("masters cache invalidation failed", zap.Error(err))
	}
}
