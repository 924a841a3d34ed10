// Package redis connects to Redis and exposes a health check.
//
// Connect parses a redis:// or rediss:// URL, pings with exponential backoff
// and returns a ready client:
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer client.Close()
//
//	r.Get("/health/ready", health.Readiness[*State](log, redis.Healthcheck(client)))
//
// Settings come from REDIS_URL, REDIS_RETRY_ATTEMPTS, REDIS_RETRY_INTERVAL
// and REDIS_CONNECT_TIMEOUT.
package redis
