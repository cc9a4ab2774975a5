package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/ib-77/ropenv/internal/config"
	"github.com/ib-77/ropenv/internal/trace"
	"github.com/ib-77/ropenv/pkg/pipelines/bank"
	"github.com/ib-77/ropenv/pkg/pipelines/number"
	"github.com/ib-77/ropenv/pkg/rop/batch"
	"github.com/ib-77/ropenv/pkg/rop/core"
	"github.com/ib-77/ropenv/pkg/rop/reader"
)

// bankCase runs one configured case: the preset is looked up from the case
// and the pipeline runs against the case's own environment.
func bankCase(cfg *config.Config) reader.Computation[config.BankCase, float64] {
	preset := reader.Try(func(c config.BankCase) (bank.Config, error) {
		return cfg.BankPreset(c.Preset)
	})
	return reader.Chain(preset, func(p bank.Config) reader.Computation[config.BankCase, float64] {
		request := reader.Asks(func(c config.BankCase) bank.NewAccountRequest { return c.Request })
		return reader.Chain(request, func(req bank.NewAccountRequest) reader.Computation[config.BankCase, float64] {
			return reader.Extend(func(c config.BankCase) bank.Env { return c.Env }, bank.Pipeline(p, req))
		})
	})
}

func numberCase(cfg *config.Config) reader.Computation[config.NumberCase, float64] {
	preset := reader.Try(func(c config.NumberCase) (number.Config, error) {
		return cfg.NumberPreset(c.Preset)
	})
	return reader.Chain(preset, func(p number.Config) reader.Computation[config.NumberCase, float64] {
		return reader.Extend(func(c config.NumberCase) number.Env { return c.Env }, number.Pipeline(p))
	})
}

func newDemoCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "demo",
		Short: "Run every configured bank and number case in parallel",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := core.WithObserver(contextOf(cmd), trace.NewZapObserver(a.logger))
			ctx = core.WithWorkerOptions(ctx, a.cfg.Workers)
			ctx = core.WithFailFast(ctx, a.cfg.FailFast)

			printer := trace.NewPrinter(cmd.OutOrStdout())
			failed := 0

			bankResults, bankErr := batch.RunAll(ctx, bankCase(a.cfg), a.cfg.Bank.Cases)
			printer.Header("bank")
			for i, res := range bankResults {
				c := a.cfg.Bank.Cases[i]
				trace.Outcome[float64](printer, fmt.Sprintf("%s/%s/%s", c.Env.BankCode, c.Preset, c.Request.AccountType), res)
				if res.IsFailure() {
					failed++
				}
			}

			numberResults, numberErr := batch.RunAll(ctx, numberCase(a.cfg), a.cfg.Number.Cases)
			printer.Header("number")
			for i, res := range numberResults {
				c := a.cfg.Number.Cases[i]
				trace.Outcome[float64](printer, fmt.Sprintf("a=%s/%s", c.Env.A, c.Preset), res)
				if res.IsFailure() {
					failed++
				}
			}

			a.logger.Info("Demo finished",
				zap.Int("runs", len(bankResults)+len(numberResults)),
				zap.Int("failed", failed))

			if bankErr != nil {
				return fmt.Errorf("bank cases: %w", bankErr)
			}
			if numberErr != nil {
				return fmt.Errorf("number cases: %w", numberErr)
			}
			if failed > 0 {
				return fmt.Errorf("%d demo runs failed", failed)
			}
			return nil
		},
	}
}

func newPresetsCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "presets",
		Short: "Print the effective presets and demo cases as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := yaml.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent(2)
			if err := enc.Encode(struct {
				Bank   config.BankConfig   `yaml:"bank"`
				Number config.NumberConfig `yaml:"number"`
			}{a.cfg.Bank, a.cfg.Number}); err != nil {
				return fmt.Errorf("encoding presets: %w", err)
			}
			return enc.Close()
		},
	}
}
