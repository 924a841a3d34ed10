package main

import (
	"context"
	"sync/atomic"

	goredis "github.com/redis/go-redis/v9"
)

const visitsKey = "sark:visits"

// State is shared by every request. Fields are set once at startup;
// Visits synchronises itself.
type State struct {
	Message string
	Visits  Counter
}

// Counter is a monotonically increasing hit counter.
type Counter interface {
	Incr(ctx context.Context) (int64, error)
}

type memoryCounter struct {
	n atomic.Int64
}

func (c *memoryCounter) Incr(context.Context) (int64, error) {
	return c.n.Add(1), nil
}

// redisCounter shares the count across instances.
type redisCounter struct {
	client goredis.Cmdable
	key    string
}

func (c *redisCounter) Incr(ctx context.Context) (int64, error) {
	return c.client.Incr(ctx, c.key).Result()
}
