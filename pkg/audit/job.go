// Package audit reports the value of a named set of parameters across a
// fleet of database instances.
package audit

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/rds/types"
	"go.uber.org/zap"

	"github.com/paramdrift/paramdrift/pkg/concurrency"
	"github.com/paramdrift/paramdrift/pkg/parameter"
	"github.com/paramdrift/paramdrift/pkg/resolver"
)

// InstanceLister enumerates the fleet.
type InstanceLister interface {
	ListInstances(ctx context.Context, engine string) ([]types.DBInstance, error)
}

// Row is one parameter observation on one instance.
type Row struct {
	Instance   string
	Group      string
	Parameter  string
	Value      string
	Normalized string
	Unit       string
}

// Job audits parameters over the fleet with bounded concurrency. Instances
// sharing a parameter group hit the resolver's cache, so the group is
// fetched once per run.
type Job struct {
	lister   InstanceLister
	resolver *resolver.Resolver
	logger   *zap.Logger

	Engine  string
	Workers int
}

func NewJob(lister InstanceLister, res *resolver.Resolver, logger *zap.Logger, engine string, workers int) *Job {
	return &Job{
		lister:   lister,
		resolver: res,
		logger:   logger,
		Engine:   engine,
		Workers:  workers,
	}
}

// Run audits the named parameters on every instance. A failing instance is
// logged and skipped; it does not abort the rest of the fleet.
func (j *Job) Run(ctx context.Context, names []string) ([]Row, error) {
	instances, err := j.lister.ListInstances(ctx, j.Engine)
	if err != nil {
		return nil, err
	}

	pool := concurrency.NewWorkPool(j.Workers)
	for _, instance := range instances {
		instance := instance
		pool.AddJob(func() (interface{}, error) {
			return j.auditInstance(ctx, instance, names)
		})
	}

	var rows []Row
	for _, result := range pool.Run() {
		if result.Error != nil {
			j.logger.Error("instance audit failed", zap.Error(result.Error))
			continue
		}
		rows = append(rows, result.Value.([]Row)...)
	}

	sort.Slice(rows, func(i, k int) bool {
		if rows[i].Instance != rows[k].Instance {
			return rows[i].Instance < rows[k].Instance
		}
		return rows[i].Parameter < rows[k].Parameter
	})
	return rows, nil
}

func (j *Job) auditInstance(ctx context.Context, instance types.DBInstance, names []string) ([]Row, error) {
	id := aws.ToString(instance.DBInstanceIdentifier)
	if len(instance.DBParameterGroups) == 0 {
		return nil, fmt.Errorf("instance %s has no parameter group", id)
	}
	group := aws.ToString(instance.DBParameterGroups[0].DBParameterGroupName)

	coll, err := j.resolver.ResolveGroup(ctx, group)
	if err != nil {
		return nil, fmt.Errorf("instance %s: %w", id, err)
	}

	rows := make([]Row, 0, len(names))
	for _, name := range names {
		p := coll.Find(name)
		if p == nil {
			p = parameter.NewUnknownParameter(name)
		}
		normalized, err := p.Normalize()
		if err != nil {
			return nil, fmt.Errorf("instance %s: %w", id, err)
		}
		rows = append(rows, Row{
			Instance:   id,
			Group:      group,
			Parameter:  name,
			Value:      parameter.Display(p.Value()),
			Normalized: parameter.Display(normalized),
			Unit:       strings.ToLower(string(p.Unit())),
		})
	}
	return rows, nil
}
