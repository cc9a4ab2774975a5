package trace

import (
	"context"
	"sync"
	"time"

	"github.com/ib-77/ropenv/pkg/rop/core"
)

// Step is the recorded outcome of one named stage.
type Step struct {
	Stage     string
	Depth     int
	Output    any
	Err       error
	Cancelled bool
	Elapsed   time.Duration
}

func (s Step) Succeeded() bool {
	return s.Err == nil
}

// Recorder keeps steps in completion order. Depth counts the stages still
// open when a stage started, so stages of an extended scope nest under it.
type Recorder struct {
	mu    sync.Mutex
	open  int
	steps []Step
}

var _ core.StageObserver = (*Recorder)(nil)

func NewRecorder() *Recorder {
	return &Recorder{}
}

func (r *Recorder) StageStarted(context.Context, string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.open++
}

func (r *Recorder) StageSucceeded(_ context.Context, stage string, output any, elapsed time.Duration) {
	r.finish(Step{Stage: stage, Output: output, Elapsed: elapsed})
}

func (r *Recorder) StageFailed(_ context.Context, stage string, err error, cancelled bool, elapsed time.Duration) {
	r.finish(Step{Stage: stage, Err: err, Cancelled: cancelled, Elapsed: elapsed})
}

func (r *Recorder) finish(s Step) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.open--
	s.Depth = r.open
	r.steps = append(r.steps, s)
}

// Steps returns a copy of the recorded steps.
func (r *Recorder) Steps() []Step {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Step, len(r.steps))
	copy(out, r.steps)
	return out
}

type multi []core.StageObserver

// Multi fans every event out to all non-nil observers in order.
func Multi(observers ...core.StageObserver) core.StageObserver {
	m := make(multi, 0, len(observers))
	for _, o := range observers {
		if o != nil {
			m = append(m, o)
		}
	}
	return m
}

func (m multi) StageStarted(ctx context.Context, stage string) {
	for _, o := range m {
		o.StageStarted(ctx, stage)
	}
}

func (m multi) StageSucceeded(ctx context.Context, stage string, output any, elapsed time.Duration) {
	for _, o := range m {
		o.StageSucceeded(ctx, stage, output, elapsed)
	}
}

func (m multi) StageFailed(ctx context.Context, stage string, err error, cancelled bool, elapsed time.Duration) {
	for _, o := range m {
		o.StageFailed(ctx, stage, err, cancelled, elapsed)
	}
}
