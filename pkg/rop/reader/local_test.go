package reader

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type extra struct {
	Bonus int
}

type widened struct {
	env
	extra
}

func TestExtend_InnerSeesWidenedEnvironment(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	inner := Asks(func(w widened) int { return w.Base + w.Bonus })
	c := Chain(Succeed[env](extra{Bonus: 10}), func(x extra) Computation[env, int] {
		return Extend(func(e env) widened { return widened{env: e, extra: x} }, inner)
	})

	out := Run(ctx, c, env{Base: 5})
	require.True(t, out.IsSuccess(), "unexpected error: %v", out.Err())
	assert.Equal(t, 15, out.Result())
}

func TestExtend_OuterEnvironmentUnchangedAfterScope(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	var seenInside widened
	inner := Chain(Ask[widened](), func(w widened) Computation[widened, int] {
		seenInside = w
		w.Base = 1000 // local copy only
		return Succeed[widened](w.Bonus)
	})

	c := Chain(
		Extend(func(e env) widened { return widened{env: e, extra: extra{Bonus: 7}} }, inner),
		func(in int) Computation[env, env] { return Ask[env]() },
	)

	out := Run(ctx, c, env{Base: 2, Name: "outer"})
	require.True(t, out.IsSuccess())
	assert.Equal(t, env{Base: 2, Name: "outer"}, out.Result())
	assert.Equal(t, 7, seenInside.Bonus)
	assert.Equal(t, 2, seenInside.Base)
}

func TestExtend_ProjectsOnEveryRun(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	projections := 0
	c := Extend(func(e env) widened {
		projections++
		return widened{env: e}
	}, Asks(func(w widened) int { return w.Base }))

	for i := 1; i <= 3; i++ {
		out := Run(ctx, c, env{Base: i})
		require.True(t, out.IsSuccess())
		assert.Equal(t, i, out.Result())
	}
	assert.Equal(t, 3, projections)
}

func TestExtend_PropagatesInnerFailure(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	boom := errors.New("inner failed")
	after := false

	c := Chain(
		Extend(func(e env) widened { return widened{env: e} }, Fail[widened, int](boom)),
		func(in int) Computation[env, int] {
			after = true
			return Succeed[env](in)
		},
	)

	out := Run(ctx, c, env{})
	assert.False(t, out.IsSuccess())
	assert.ErrorIs(t, out.Err(), boom)
	assert.False(t, after, "stage after the scope must not run")
}

func TestLocal_SameAsExtend(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	project := func(e env) widened { return widened{env: e, extra: extra{Bonus: e.Base * 2}} }
	inner := Asks(func(w widened) int { return w.Bonus })

	a := Run(ctx, Local(project, inner), env{Base: 4})
	b := Run(ctx, Extend(project, inner), env{Base: 4})
	assert.Equal(t, a.Result(), b.Result())
	assert.Equal(t, 8, a.Result())
}
