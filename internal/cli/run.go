package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ib-77/ropenv/internal/trace"
	"github.com/ib-77/ropenv/pkg/pipelines/bank"
	"github.com/ib-77/ropenv/pkg/pipelines/number"
	"github.com/ib-77/ropenv/pkg/rop/core"
	"github.com/ib-77/ropenv/pkg/rop/reader"
)

func newBankCmd(a *app) *cobra.Command {
	var (
		preset      string
		env         bank.Env
		req         bank.NewAccountRequest
		accountType string
		showSteps   bool
	)

	cmd := &cobra.Command{
		Use:   "bank",
		Short: "Open an account and compute the balance after bonus interest",
		Example: `  ropenv bank --initial-balance 10000 --deposit 1000 --bank-code KB
  ropenv bank --preset premium --account-type CHECKING --deposit 2000`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.cfg.BankPreset(preset)
			if err != nil {
				return err
			}
			req.AccountType = bank.AccountType(accountType)
			if req.CustomerName == "" {
				req.CustomerName = env.CustomerName
			}

			a.logger.Info("Running bank pipeline",
				zap.String("preset", preset),
				zap.String("bank_code", env.BankCode),
				zap.Float64("initial_balance", env.InitialBalance),
				zap.Float64("deposit", req.InitialDeposit))

			return runTraced(cmd, a, "bank", bank.Pipeline(cfg, req), env, showSteps)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&preset, "preset", "p", "", "bank preset name (default from config)")
	flags.Float64Var(&env.InitialBalance, "initial-balance", 10000, "balance already held by the customer")
	flags.StringVar(&env.CustomerName, "customer", "customer", "customer name")
	flags.StringVar(&env.BankCode, "bank-code", "KB", "bank code used in account numbers")
	flags.Float64Var(&req.InitialDeposit, "deposit", 1000, "initial deposit")
	flags.StringVar(&accountType, "account-type", string(bank.Savings), "SAVINGS or CHECKING")
	flags.BoolVar(&showSteps, "steps", true, "print every stage output")
	return cmd
}

func newNumberCmd(a *app) *cobra.Command {
	var (
		preset    string
		env       number.Env
		showSteps bool
	)

	cmd := &cobra.Command{
		Use:     "number",
		Short:   "Run the number pipeline for a textual value a",
		Example: `  ropenv number --a 5`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.cfg.NumberPreset(preset)
			if err != nil {
				return err
			}

			a.logger.Info("Running number pipeline", zap.String("preset", preset), zap.String("a", env.A))
			return runTraced(cmd, a, "number", number.Pipeline(cfg), env, showSteps)
		},
	}

	flags := cmd.Flags()
	flags.StringVarP(&preset, "preset", "p", "", "number preset name (default from config)")
	flags.StringVar(&env.A, "a", "5", "the number a, as text")
	flags.BoolVar(&showSteps, "steps", true, "print every stage output")
	return cmd
}

// runTraced runs c once with a recorder attached and prints the breakdown.
// A failed run is returned as the command error.
func runTraced[Env any](cmd *cobra.Command, a *app, name string, c reader.Computation[Env, float64], env Env, showSteps bool) error {
	rec := trace.NewRecorder()
	ctx := core.WithObserver(contextOf(cmd), trace.Multi(rec, trace.NewZapObserver(a.logger)))

	res := reader.Run(ctx, c, env)

	printer := trace.NewPrinter(cmd.OutOrStdout())
	if showSteps {
		printer.Header("%s steps", name)
		printer.Steps(rec.Steps())
	}
	trace.Outcome[float64](printer, name, res)

	if res.IsFailure() {
		return fmt.Errorf("%s pipeline: %w", name, res.Err())
	}
	return nil
}

func contextOf(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
