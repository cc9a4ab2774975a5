package reader

import (
	"context"

	"github.com/ib-77/ropenv/pkg/rop"
	"github.com/ib-77/ropenv/pkg/rop/solo"
)

// Computation produces a Result[Out] from an environment of type Env.
type Computation[Env, Out any] func(ctx context.Context, env Env) rop.Result[Out]

// Stage is one pipeline step: it takes the previous step's output and
// describes the next computation.
type Stage[Env, In, Out any] func(in In) Computation[Env, Out]

// Ask yields the environment unchanged.
func Ask[Env any]() Computation[Env, Env] {
	return func(_ context.Context, env Env) rop.Result[Env] {
		return rop.Success(env)
	}
}

// Asks yields f applied to the environment.
func Asks[Env, Out any](f func(env Env) Out) Computation[Env, Out] {
	return Map(Ask[Env](), f)
}

func Succeed[Env, Out any](value Out) Computation[Env, Out] {
	return func(_ context.Context, _ Env) rop.Result[Out] {
		return rop.Success(value)
	}
}

func Fail[Env, Out any](err error) Computation[Env, Out] {
	return func(_ context.Context, _ Env) rop.Result[Out] {
		return rop.Fail[Out](err)
	}
}

func FromResult[Env, Out any](result rop.Result[Out]) Computation[Env, Out] {
	return func(_ context.Context, _ Env) rop.Result[Out] {
		return result
	}
}

// Try turns the error of f into a failure.
func Try[Env, Out any](f func(env Env) (Out, error)) Computation[Env, Out] {
	return func(ctx context.Context, env Env) rop.Result[Out] {
		return solo.Try(ctx, rop.Success(env), func(_ context.Context, env Env) (Out, error) {
			return f(env)
		})
	}
}

// Map transforms a successful output. f is never called on failure.
func Map[Env, In, Out any](c Computation[Env, In], f func(in In) Out) Computation[Env, Out] {
	return func(ctx context.Context, env Env) rop.Result[Out] {
		return solo.Map(ctx, c(ctx, env), func(_ context.Context, in In) Out {
			return f(in)
		})
	}
}

// Chain runs c and feeds its output to f, running the computation f returns.
// A failure of c is returned as is and f is not called. A context cancelled
// while c was running stops the chain before f.
func Chain[Env, In, Out any](c Computation[Env, In], f func(in In) Computation[Env, Out]) Computation[Env, Out] {
	return func(ctx context.Context, env Env) rop.Result[Out] {
		return solo.Switch(ctx, c(ctx, env), func(ctx context.Context, in In) rop.Result[Out] {
			if err := ctx.Err(); err != nil {
				return rop.Cancel[Out](err)
			}
			return f(in)(ctx, env)
		})
	}
}

// ChainTry sequences a fallible step that needs both the environment and the
// previous output.
func ChainTry[Env, In, Out any](c Computation[Env, In], f func(env Env, in In) (Out, error)) Computation[Env, Out] {
	return Chain(c, func(in In) Computation[Env, Out] {
		return Try(func(env Env) (Out, error) {
			return f(env, in)
		})
	})
}

// Then composes two stages: the output of f feeds g.
func Then[Env, A, B, C any](f Stage[Env, A, B], g Stage[Env, B, C]) Stage[Env, A, C] {
	return func(a A) Computation[Env, C] {
		return Chain[Env, B, C](f(a), g)
	}
}

// Catch replaces a failure of c with the computation returned by handler.
// Successes and cancellations are returned unchanged.
func Catch[Env, Out any](c Computation[Env, Out], handler func(err error) Computation[Env, Out]) Computation[Env, Out] {
	return func(ctx context.Context, env Env) rop.Result[Out] {
		return solo.Recover(ctx, c(ctx, env), func(ctx context.Context, err error) rop.Result[Out] {
			return handler(err)(ctx, env)
		})
	}
}

// Run executes c with env. Nothing runs if ctx is already done.
func Run[Env, Out any](ctx context.Context, c Computation[Env, Out], env Env) rop.Result[Out] {
	if err := ctx.Err(); err != nil {
		return rop.Cancel[Out](err)
	}
	return c(ctx, env)
}

// RunE is Run returning the usual (value, error) pair.
func RunE[Env, Out any](ctx context.Context, c Computation[Env, Out], env Env) (Out, error) {
	return Run(ctx, c, env).Get()
}
