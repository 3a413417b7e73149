package reclaim

import (
	"context"
	"time"

	"github.com/matzehuels/venvkit/pkg/envmgr"
	"github.com/matzehuels/venvkit/pkg/observability"
)

// Failure is one environment that could not be deleted.
type Failure struct {
	Name string
	Err  error
}

// BatchResult summarises a deletion batch.
type BatchResult struct {
	Deleted []string
	Failed  []Failure

	// Skipped lists names never attempted because ctx was cancelled.
	Skipped []string
}

// OK reports whether every target was deleted.
func (r BatchResult) OK() bool {
	return len(r.Failed) == 0 && len(r.Skipped) == 0
}

// DeleteAll deletes names in order. A failed deletion is recorded and the
// batch continues; cancellation of ctx stops before the next name.
func DeleteAll(ctx context.Context, m envmgr.Manager, names []string) BatchResult {
	hooks := observability.Reclaim()
	var res BatchResult

	for i, name := range names {
		if ctx.Err() != nil {
			res.Skipped = append(res.Skipped, names[i:]...)
			break
		}

		hooks.OnDeleteStart(ctx, name)
		start := time.Now()
		err := m.Delete(ctx, name)
		hooks.OnDeleteComplete(ctx, name, time.Since(start), err)

		if err != nil {
			res.Failed = append(res.Failed, Failure{Name: name, Err: err})
			continue
		}
		res.Deleted = append(res.Deleted, name)
	}
	return res
}
