package cli

import (
	"context"
	"time"

	"github.com/go-redis/cache/v8"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"github.com/paramdrift/paramdrift/pkg/awsrds"
	"github.com/paramdrift/paramdrift/pkg/config"
	"github.com/paramdrift/paramdrift/pkg/resolver"
)

// LoadConfig reads the tool configuration from the environment on top of
// the built-in defaults.
func LoadConfig() (*config.Config, error) {
	cfg := config.Default
	if err := config.ReadFromEnv(&cfg, config.Default); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// BuildResolver wires the control-plane client, the optional redis-backed
// group cache and the resolver from configuration. Without a redis address
// the resolver runs uncached.
func BuildResolver(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*resolver.Resolver, *awsrds.Client, error) {
	rdsClient, err := awsrds.NewClient(ctx, cfg.AWS.Region, cfg.AWS.AccessKey, cfg.AWS.SecretKey)
	if err != nil {
		return nil, nil, err
	}

	var groupCache *cache.Cache
	if cfg.Redis.Address != "" {
		rdb := redis.NewClient(&redis.Options{Addr: cfg.Redis.Address})
		groupCache = cache.New(&cache.Options{Redis: rdb})
	}

	ttl := time.Duration(cfg.Cache.TTLSeconds) * time.Second
	return resolver.New(rdsClient, groupCache, ttl, logger), rdsClient, nil
}
