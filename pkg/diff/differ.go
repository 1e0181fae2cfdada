// Package diff reports divergences between two parameter collections.
package diff

import (
	"strings"

	"github.com/paramdrift/paramdrift/pkg/parameter"
)

// Row is one divergence between two parameter collections. ValueA and
// ValueB are raw source values and may be nil (undefined).
type Row struct {
	Name   string
	ValueA *string
	ValueB *string
	Unit   string
}

// Diff walks a and reports every parameter whose counterpart in b compares
// unequal, substituting the unknown sentinel when b has no entry of that
// name. The walk is one-directional: names present only in b are not
// reported, and a name duplicated in b matches its first entry every time.
// Diff never mutates its inputs and is safe to call concurrently over
// independently-owned collections.
func Diff(a, b parameter.Collection) []Row {
	var rows []Row
	for _, pa := range a {
		pb := b.Find(pa.Name())
		if pb == nil {
			pb = parameter.NewUnknownParameter(pa.Name())
		}
		if parameter.Equal(pa, pb) {
			continue
		}
		rows = append(rows, Row{
			Name:   pa.Name(),
			ValueA: pa.Value(),
			ValueB: pb.Value(),
			Unit:   strings.ToLower(string(pb.Unit())),
		})
	}
	return rows
}

// Count is the number of divergences Diff would report.
func Count(a, b parameter.Collection) int {
	return len(Diff(a, b))
}
