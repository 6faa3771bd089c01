package store

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
)

// Redis wraps the client backing the activity-event queue.
type Redis struct {
	Client *redis.Client
}

// NewRedis connects with short timeouts. The read timeout stays above
// the queue's BRPOP blocking window so an idle consumer does not churn
// connection errors.
func NewRedis(addr string) *Redis {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  7 * time.Second,
		WriteTimeout: 2 * time.Second,
	})
	return &Redis{Client: client}
}

// Healthy reports whether the queue backend is reachable; /healthz
// folds this into its response.
func (r *Redis) Healthy(ctx context.Context) bool {
	if r == nil || r.Client == nil {
		return false
	}
	return r.Client.Ping(ctx).Err() == nil
}
