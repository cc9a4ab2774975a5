package reader

import (
	"context"
	"time"

	"github.com/ib-77/ropenv/pkg/rop"
	"github.com/ib-77/ropenv/pkg/rop/core"
	"github.com/ib-77/ropenv/pkg/rop/solo"
)

// Named reports the outcome of c under name to the core.StageObserver carried
// by the context. Without an observer it is c itself.
func Named[Env, Out any](name string, c Computation[Env, Out]) Computation[Env, Out] {
	return func(ctx context.Context, env Env) rop.Result[Out] {
		observer := core.GetObserver(ctx)
		if observer == nil {
			return c(ctx, env)
		}

		observer.StageStarted(ctx, name)
		start := time.Now()

		return solo.DoubleTee(ctx, c(ctx, env),
			func(ctx context.Context, out Out) {
				observer.StageSucceeded(ctx, name, out, time.Since(start))
			},
			func(ctx context.Context, err error) {
				observer.StageFailed(ctx, name, err, false, time.Since(start))
			},
			func(ctx context.Context, err error) {
				observer.StageFailed(ctx, name, err, true, time.Since(start))
			})
	}
}
