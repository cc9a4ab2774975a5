package reader

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ib-77/ropenv/pkg/rop/core"
	"github.com/stretchr/testify/assert"
)

type event struct {
	kind   string
	stage  string
	output any
	err    error
}

type recordingObserver struct {
	mu     sync.Mutex
	events []event
}

func (o *recordingObserver) StageStarted(_ context.Context, stage string) {
	o.add(event{kind: "start", stage: stage})
}

func (o *recordingObserver) StageSucceeded(_ context.Context, stage string, output any, _ time.Duration) {
	o.add(event{kind: "ok", stage: stage, output: output})
}

func (o *recordingObserver) StageFailed(_ context.Context, stage string, err error, cancelled bool, _ time.Duration) {
	kind := "fail"
	if cancelled {
		kind = "cancel"
	}
	o.add(event{kind: kind, stage: stage, err: err})
}

func (o *recordingObserver) add(e event) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.events = append(o.events, e)
}

func TestNamed_WithoutObserver(t *testing.T) {
	t.Parallel()

	out := Run(context.Background(), Named("one", Succeed[env](1)), env{})
	assert.True(t, out.IsSuccess())
	assert.Equal(t, 1, out.Result())
}

func TestNamed_ReportsStages(t *testing.T) {
	t.Parallel()

	obs := &recordingObserver{}
	ctx := core.WithObserver(context.Background(), obs)
	boom := errors.New("boom")

	c := Chain(Named("first", Succeed[env](3)), func(in int) Computation[env, int] {
		return Named("second", Fail[env, int](boom))
	})
	c = Chain(c, func(in int) Computation[env, int] {
		return Named("third", Succeed[env](in))
	})

	out := Run(ctx, c, env{})
	assert.ErrorIs(t, out.Err(), boom)

	assert.Equal(t, []event{
		{kind: "start", stage: "first"},
		{kind: "ok", stage: "first", output: 3},
		{kind: "start", stage: "second"},
		{kind: "fail", stage: "second", err: boom},
	}, obs.events)
}
