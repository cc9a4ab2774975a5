package rop

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestError_IsMatchesKind(t *testing.T) {
	t.Parallel()

	err := InvalidInput("a=%q is not a number", "abc")
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.NotErrorIs(t, err, ErrComputationFailed)
	assert.Equal(t, KindInvalidInput, KindOf(err))
	assert.Equal(t, `invalid input: a="abc" is not a number`, err.Error())
}

func TestWrap_KeepsCause(t *testing.T) {
	t.Parallel()

	_, cause := strconv.ParseFloat("x", 64)
	err := Wrap(KindInvalidInput, cause, "parse a")

	var numErr *strconv.NumError
	assert.True(t, errors.As(err, &numErr))
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestKindOf_ForeignError(t *testing.T) {
	t.Parallel()
	assert.Equal(t, Kind(0), KindOf(errors.New("plain")))
	assert.Equal(t, "unknown", Kind(0).String())
}

func TestResult_Get(t *testing.T) {
	t.Parallel()

	v, err := Success(3).Get()
	assert.NoError(t, err)
	assert.Equal(t, 3, v)

	v, err = Fail[int](ErrComputationFailed).Get()
	assert.ErrorIs(t, err, ErrComputationFailed)
	assert.Zero(t, v)
}

func TestPropagate_KeepsIdentity(t *testing.T) {
	t.Parallel()

	in := Cancel[int](errors.New("stop"))
	out := Propagate[int, string](in)
	assert.True(t, out.IsCancel())
	assert.True(t, out.IsFailure())
	assert.Equal(t, in.Id(), out.Id())
	assert.Equal(t, in.CreatedAt(), out.CreatedAt())
}
