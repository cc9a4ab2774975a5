package trace

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/ib-77/ropenv/pkg/pipelines/bank"
	"github.com/ib-77/ropenv/pkg/pipelines/number"
	"github.com/ib-77/ropenv/pkg/rop"
	"github.com/ib-77/ropenv/pkg/rop/core"
	"github.com/ib-77/ropenv/pkg/rop/reader"
)

func TestRecorder_NestsScopedStages(t *testing.T) {
	rec := NewRecorder()
	ctx := core.WithObserver(context.Background(), rec)

	cfg := bank.Config{
		Account: bank.AccountConfig{AccountFee: 50, InterestRate: 0.02},
		Bonus:   bank.BonusConfig{BonusMultiplier: 1.5},
	}
	req := bank.NewAccountRequest{InitialDeposit: 1000, AccountType: bank.Savings}
	out := reader.Run(ctx, bank.Pipeline(cfg, req), bank.Env{InitialBalance: 10000, BankCode: "KB"})
	require.True(t, out.IsSuccess())

	steps := rec.Steps()
	require.Len(t, steps, 7)

	depths := map[string]int{}
	for _, s := range steps {
		depths[s.Stage] = s.Depth
		assert.True(t, s.Succeeded())
	}
	assert.Equal(t, 0, depths[bank.StageAccountFees])
	assert.Equal(t, 1, depths[bank.StageMonthlyInterest])
	assert.Equal(t, 1, depths[bank.StageInterestBonus])
	assert.Equal(t, 0, depths[bank.StageFinalInterest])
}

func TestMulti_SkipsNil(t *testing.T) {
	a, b := NewRecorder(), NewRecorder()
	ctx := core.WithObserver(context.Background(), Multi(a, nil, b))

	_ = reader.Run(ctx, reader.Named("only", reader.Succeed[struct{}](1)), struct{}{})

	assert.Len(t, a.Steps(), 1)
	assert.Len(t, b.Steps(), 1)
}

func TestZapObserver_LogsFailure(t *testing.T) {
	zcore, logs := observer.New(zap.DebugLevel)
	obs := NewZapObserver(zap.New(zcore))
	ctx := withObserver(obs)

	out := reader.Run(ctx, number.Pipeline(number.Config{}), number.Env{A: "abc"})
	require.True(t, out.IsFailure())

	failed := logs.FilterMessage("Stage failed").All()
	require.Len(t, failed, 1)
	assert.Equal(t, number.StageSum, failed[0].ContextMap()["stage"])
	assert.Equal(t, 1, logs.FilterMessage("Stage succeeded").Len())
}

func TestPrinter_PlainOutput(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf, false)

	p.Header("number a=%s", "5")
	p.Steps([]Step{
		{Stage: "seed", Output: number.Seeded{NewA: "5", NewNumber: 2}},
		{Stage: "sub_total", Depth: 1, Output: 18.0},
		{Stage: "final", Err: errors.New("boom")},
	})
	Outcome[float64](p, "default", rop.Success(41.0))
	Outcome[float64](p, "broken", rop.Fail[float64](errors.New("bad")))

	text := buf.String()
	assert.Contains(t, text, "number a=5\n")
	assert.Contains(t, text, "  1. seed: {NewA:5 NewNumber:2}")
	assert.Contains(t, text, "    2. sub_total: 18 ")
	assert.Contains(t, text, "3. final: failed: boom")
	assert.Contains(t, text, "ok    default: 41\n")
	assert.Contains(t, text, "error broken: bad\n")
	assert.False(t, strings.Contains(text, "\x1b["), "plain printer must not emit ANSI codes")
}

func TestFormatValue(t *testing.T) {
	assert.Equal(t, "10027.375", FormatValue(10027.375))
	assert.Equal(t, `"KB"`, FormatValue("KB"))
	assert.Equal(t, "3", FormatValue(3))
}

func withObserver(o core.StageObserver) context.Context {
	return core.WithObserver(context.Background(), o)
}
