package reader

import (
	"context"

	"github.com/ib-77/ropenv/pkg/rop"
)

// Extend runs inner against the environment produced by project and returns
// its result unchanged. project is applied on every run and must build a new
// value; the outer environment stays as it was, and steps chained after the
// returned computation see only Outer.
func Extend[Outer, Inner, Out any](project func(env Outer) Inner, inner Computation[Inner, Out]) Computation[Outer, Out] {
	return func(ctx context.Context, env Outer) rop.Result[Out] {
		return inner(ctx, project(env))
	}
}

// Local is Extend under its conventional reader-monad name.
func Local[Outer, Inner, Out any](project func(env Outer) Inner, inner Computation[Inner, Out]) Computation[Outer, Out] {
	return Extend(project, inner)
}
