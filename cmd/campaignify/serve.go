package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/campaignify"
	"github.com/dmitrymomot/campaignify/internal/server"
	"github.com/dmitrymomot/campaignify/pkg/cache"
	"github.com/dmitrymomot/campaignify/pkg/health"
	"github.com/dmitrymomot/campaignify/pkg/redis"
	"github.com/dmitrymomot/campaignify/pkg/storage"
)

const redisCachePrefix = "campaignify:"

func newServeCmd(c *cli) *cobra.Command {
	var addr string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the rewrite API over HTTP",
		Long: `Starts the HTTP API (POST /v1/campaignify) with liveness and readiness
probes. Results are cached in Redis when REDIS_URL is set, in memory
otherwise, unless CACHE_DISABLED is true.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if addr != "" {
				c.cfg.Server.Addr = addr
			}
			return c.serve(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default from HTTP_ADDR)")
	return cmd
}

func (c *cli) serve(ctx context.Context) error {
	checks := health.Checks{}
	runOpts := []server.RunOption{
		server.Address(c.cfg.Server.Addr),
		server.Logger(c.logger),
		server.ShutdownTimeout(c.cfg.Server.ShutdownTimeout),
	}

	var store cache.Cache[campaignify.Result]
	if c.cfg.Redis.Enabled() {
		client, err := redis.Open(ctx, c.cfg.Redis, c.logger)
		if err != nil {
			return err
		}
		checks["redis"] = redis.Healthcheck(client)
		runOpts = append(runOpts, server.ShutdownHook(redis.Shutdown(client)))
		store = cache.NewRedis[campaignify.Result](client, nil,
			cache.WithPrefix(redisCachePrefix),
			cache.WithRedisDefaultTTL(c.cfg.Cache.TTL),
		)
	} else if !c.cfg.Cache.Disabled {
		mem := cache.NewMemory[campaignify.Result](
			cache.WithDefaultTTL(c.cfg.Cache.TTL),
			cache.WithMaxEntries(c.cfg.Cache.MaxEntries),
		)
		runOpts = append(runOpts, server.ShutdownHook(func(context.Context) error { return mem.Close() }))
		store = mem
	}

	if c.cfg.Storage.Bucket != "" {
		s3, err := storage.New(c.cfg.Storage)
		if err != nil {
			return err
		}
		checks["s3"] = s3.Healthcheck
	}

	opts := []server.Option{
		server.WithLogger(c.logger),
		server.WithBodyLimit(c.cfg.Server.BodyLimit),
		server.WithChecker(health.NewChecker(checks,
			health.WithTimeout(c.cfg.Server.HealthTimeout),
			health.WithLogger(c.logger),
		)),
	}
	if store != nil && !c.cfg.Cache.Disabled {
		opts = append(opts, server.WithCache(cache.NewLoader(store, c.cfg.Cache.TTL)))
	}

	return server.Run(ctx, server.New(c.engine(), opts...).Handler(), runOpts...)
}
