// Package redis opens the Redis connection behind the shared result cache.
//
//	client, err := redis.Open(ctx, redis.Config{URL: "redis://localhost:6379/0"}, log)
//	if err != nil {
//		return err
//	}
//	defer redis.Shutdown(client)(ctx)
//
// Open pings the server and retries with a growing delay, so the service can
// start alongside Redis. Healthcheck plugs into the readiness endpoint.
package redis
