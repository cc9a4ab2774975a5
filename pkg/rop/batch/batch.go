package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/ropenv/pkg/rop"
	"github.com/ib-77/ropenv/pkg/rop/core"
	"github.com/ib-77/ropenv/pkg/rop/reader"
)

// RunAll runs c once per environment and returns the results in input order.
//
// With core.WithFailFast(ctx, true) the first failed run cancels the runs that
// have not started yet; those report cancel results and the returned error is
// the first failure. Otherwise the error is always nil and every failure is
// left in its result.
func RunAll[Env, Out any](ctx context.Context, c reader.Computation[Env, Out], envs []Env) ([]rop.Result[Out], error) {
	results := make([]rop.Result[Out], len(envs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers(ctx, len(envs)))
	failFast := core.IsFailFastEnabled(ctx, false)

	for i, env := range envs {
		g.Go(func() error {
			runCtx := ctx
			if failFast {
				runCtx = gctx
			}

			results[i] = reader.Run(runCtx, c, env)
			if failFast && results[i].IsFailure() && !results[i].IsCancel() {
				return results[i].Err()
			}
			return nil
		})
	}

	return results, g.Wait()
}

func workers(ctx context.Context, n int) int {
	limit := core.GetWorkerMaxCount(ctx, runtime.NumCPU())
	if n > 0 && limit > n {
		return n
	}
	return limit
}
