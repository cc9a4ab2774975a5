package trace

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/ib-77/ropenv/pkg/rop/core"
)

// ZapObserver logs stage events.
type ZapObserver struct {
	logger *zap.Logger
}

var _ core.StageObserver = (*ZapObserver)(nil)

func NewZapObserver(logger *zap.Logger) *ZapObserver {
	return &ZapObserver{logger: logger.Named("stage")}
}

func (o *ZapObserver) StageStarted(_ context.Context, stage string) {
	o.logger.Debug("Stage started", zap.String("stage", stage))
}

func (o *ZapObserver) StageSucceeded(_ context.Context, stage string, output any, elapsed time.Duration) {
	o.logger.Debug("Stage succeeded",
		zap.String("stage", stage),
		zap.Any("output", output),
		zap.Duration("elapsed", elapsed))
}

func (o *ZapObserver) StageFailed(_ context.Context, stage string, err error, cancelled bool, elapsed time.Duration) {
	o.logger.Warn("Stage failed",
		zap.String("stage", stage),
		zap.Error(err),
		zap.Bool("cancelled", cancelled),
		zap.Duration("elapsed", elapsed))
}
