package core

import (
	"context"
	"time"
)

type OptionKey string

const (
	ProcessOptionKey  OptionKey = "process_options"
	WorkerOptionKey   OptionKey = "worker_options"
	ObserverOptionKey OptionKey = "observer_options"
)

type MaxLimitOption struct {
	Value int
}

type WorkerOptions struct {
	MaxCount MaxLimitOption
}

type ProcessOptions struct {
	FailFast bool
}

// StageObserver receives the outcome of every named stage of a run.
// Implementations shared between concurrent runs must be safe for concurrent use.
type StageObserver interface {
	StageStarted(ctx context.Context, stage string)
	StageSucceeded(ctx context.Context, stage string, output any, elapsed time.Duration)
	StageFailed(ctx context.Context, stage string, err error, cancelled bool, elapsed time.Duration)
}

func WithFailFast(ctx context.Context, failFast bool) context.Context {
	return context.WithValue(ctx, ProcessOptionKey, ProcessOptions{FailFast: failFast})
}

func WithWorkerOptions(ctx context.Context, maxWorkers int) context.Context {
	return context.WithValue(ctx, WorkerOptionKey, WorkerOptions{MaxLimitOption{Value: maxWorkers}})
}

func WithObserver(ctx context.Context, observer StageObserver) context.Context {
	return context.WithValue(ctx, ObserverOptionKey, observer)
}

func GetWorkerMaxCount(ctx context.Context, defaultMaxWorkers int) int {
	options, ok := ctx.Value(WorkerOptionKey).(WorkerOptions)
	if ok && options.MaxCount.Value > 0 {
		return options.MaxCount.Value
	}
	return defaultMaxWorkers
}

func IsFailFastEnabled(ctx context.Context, defaultFailFast bool) bool {
	options, ok := ctx.Value(ProcessOptionKey).(ProcessOptions)
	if ok {
		return options.FailFast
	}
	return defaultFailFast
}

// GetObserver returns the observer attached to ctx, or nil.
func GetObserver(ctx context.Context) StageObserver {
	observer, _ := ctx.Value(ObserverOptionKey).(StageObserver)
	return observer
}
