// Package compare diffs the parameters of a target database or group
// against a comparison database or group.
package compare

import (
	"context"

	"github.com/paramdrift/paramdrift/pkg/diff"
	"github.com/paramdrift/paramdrift/pkg/internal/postgres"
	"github.com/paramdrift/paramdrift/pkg/resolver"
)

// Result is the outcome of one comparison run.
type Result struct {
	Header []string
	Rows   []diff.Row
}

func (r *Result) Count() int {
	return len(r.Rows)
}

// Groups compares the parameter group of the target instance against a
// named group, or against the group of another instance when no group name
// is given.
func Groups(ctx context.Context, res *resolver.Resolver, targetDB, parameterGroup, otherDB string) (*Result, error) {
	targetGroup, err := res.ResolveGroupForInstance(ctx, targetDB)
	if err != nil {
		return nil, err
	}
	collA, err := res.ResolveGroup(ctx, targetGroup)
	if err != nil {
		return nil, err
	}

	otherGroup := parameterGroup
	otherLabel := parameterGroup
	if otherGroup == "" {
		otherGroup, err = res.ResolveGroupForInstance(ctx, otherDB)
		if err != nil {
			return nil, err
		}
		otherLabel = otherDB
	}
	collB, err := res.ResolveGroup(ctx, otherGroup)
	if err != nil {
		return nil, err
	}

	return &Result{
		Header: []string{"Name", targetDB, otherLabel, "Unit"},
		Rows:   diff.Diff(collA, collB),
	}, nil
}

// Live compares the current settings of two running engines. The walk is
// driven by the target's settings; names present only on the other side
// are not reported.
func Live(ctx context.Context, res *resolver.Resolver, targetURL, otherURL string) (*Result, error) {
	target, err := postgres.NewDatabaseFromURL(ctx, targetURL)
	if err != nil {
		return nil, err
	}
	defer target.Close()

	other, err := postgres.NewDatabaseFromURL(ctx, otherURL)
	if err != nil {
		return nil, err
	}
	defer other.Close()

	collA, err := res.ResolveLiveSettings(ctx, target)
	if err != nil {
		return nil, err
	}
	collB, err := res.ResolveLiveSettings(ctx, other)
	if err != nil {
		return nil, err
	}

	return &Result{
		Header: []string{"Name", "target", "other", "Unit"},
		Rows:   diff.Diff(collA, collB),
	}, nil
}
