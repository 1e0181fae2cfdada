// Package resolver turns collaborator responses into parameter collections.
package resolver

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/rds/types"
	"github.com/go-redis/cache/v8"
	"go.uber.org/zap"

	"github.com/paramdrift/paramdrift/pkg/parameter"
)

// DefaultGroupTTL bounds how long a fetched parameter group is reused. An
// audit run across many instances sharing a group should fetch it once.
const DefaultGroupTTL = time.Hour

// ControlPlane is the subset of the RDS control-plane API the resolver
// needs.
type ControlPlane interface {
	ListParameters(ctx context.Context, groupName string) ([]types.Parameter, error)
	InstanceParameterGroup(ctx context.Context, id string) (string, error)
}

// SettingsSource is a live engine that can report its settings table.
type SettingsSource interface {
	Settings(ctx context.Context) ([]parameter.SettingRow, error)
}

// Resolver produces parameter collections from a parameter group or a live
// engine. The cache handle is explicit; a nil cache disables caching and
// every group resolution goes to the control plane.
type Resolver struct {
	cp     ControlPlane
	cache  *cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

func New(cp ControlPlane, groupCache *cache.Cache, ttl time.Duration, logger *zap.Logger) *Resolver {
	if ttl <= 0 {
		ttl = DefaultGroupTTL
	}
	return &Resolver{
		cp:     cp,
		cache:  groupCache,
		ttl:    ttl,
		logger: logger,
	}
}

func groupKey(name string) string {
	return "paramdrift:group:" + name
}

// ResolveGroup fetches the named parameter group and wraps each entry as a
// control-plane parameter. The raw response is cached by group name; cache
// misses or a missing cache only cost latency, never correctness.
func (r *Resolver) ResolveGroup(ctx context.Context, groupName string) (parameter.Collection, error) {
	var entries []types.Parameter
	if r.cache != nil {
		if err := r.cache.Get(ctx, groupKey(groupName), &entries); err == nil {
			return wrapGroup(entries)
		}
	}

	entries, err := r.cp.ListParameters(ctx, groupName)
	if err != nil {
		return nil, err
	}

	if r.cache != nil {
		err := r.cache.Set(&cache.Item{
			Ctx:   ctx,
			Key:   groupKey(groupName),
			Value: entries,
			TTL:   r.ttl,
		})
		if err != nil {
			r.logger.Warn("failed to cache parameter group",
				zap.String("group", groupName),
				zap.Error(err))
		}
	}

	return wrapGroup(entries)
}

// ResolveLiveSettings queries the engine's settings table and wraps each
// row as an engine-queried parameter.
func (r *Resolver) ResolveLiveSettings(ctx context.Context, db SettingsSource) (parameter.Collection, error) {
	rows, err := db.Settings(ctx)
	if err != nil {
		return nil, err
	}

	out := make(parameter.Collection, 0, len(rows))
	for i := range rows {
		p, err := parameter.NewEngineParameter(&rows[i])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// ResolveGroupForInstance resolves which parameter group a named instance
// currently uses.
func (r *Resolver) ResolveGroupForInstance(ctx context.Context, id string) (string, error) {
	return r.cp.InstanceParameterGroup(ctx, id)
}

func wrapGroup(entries []types.Parameter) (parameter.Collection, error) {
	out := make(parameter.Collection, 0, len(entries))
	for i := range entries {
		p, err := parameter.NewRDSParameter(&entries[i])
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}
