package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
)

// NewRedis connects to redisURL. It returns a nil client and no error when
// the URL is empty so callers can fall back to in-process state.
func NewRedis(ctx context.Context, redisURL string, log *logrus.Logger) (*redis.Client, error) {
	if redisURL == "" {
		log.Info("redis url not provided, using in-memory session revocation")
		return nil, nil
	}

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("ping redis: %w", err)
	}

	log.WithField("addr", opt.Addr).Info("redis connected")
	return client, nil
}
