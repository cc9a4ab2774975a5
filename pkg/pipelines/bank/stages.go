package bank

import (
	"context"
	"math"

	"github.com/google/uuid"

	"github.com/ib-77/ropenv/pkg/rop"
	"github.com/ib-77/ropenv/pkg/rop/reader"
	"github.com/ib-77/ropenv/pkg/rop/solo"
)

const (
	StageCreateAccount   = "create_account"
	StageInitialDeposit  = "initial_deposit"
	StageAccountFees     = "account_fees"
	StageMonthlyInterest = "monthly_interest"
	StageInterestBonus   = "interest_bonus"
	StageFinalInterest   = "final_interest"
	StageFinalBalance    = "final_balance"
)

// OpenAccount validates the request against the environment and opens
// the account. The account number comes from nextID and is for display only.
func OpenAccount(req NewAccountRequest, nextID func() string) Process[AccountCreation] {
	if nextID == nil {
		nextID = uuid.NewString
	}

	return reader.Named(StageCreateAccount, func(ctx context.Context, env Env) rop.Result[AccountCreation] {
		checked := solo.ValidateAll(ctx, rop.Success(req), false,
			func(_ context.Context, r NewAccountRequest) (bool, string) {
				return env.BankCode != "", "bank code is empty"
			},
			func(_ context.Context, r NewAccountRequest) (bool, string) {
				return finite(env.InitialBalance), "initial balance is not a finite number"
			},
			func(_ context.Context, r NewAccountRequest) (bool, string) {
				return finite(r.InitialDeposit) && r.InitialDeposit >= 0, "initial deposit must be a non-negative number"
			},
			func(_ context.Context, r NewAccountRequest) (bool, string) {
				return r.AccountType.Valid(), "unknown account type " + string(r.AccountType)
			},
		)

		return solo.Map(ctx, checked, func(_ context.Context, r NewAccountRequest) AccountCreation {
			return AccountCreation{
				AccountNumber: env.BankCode + "-" + nextID(),
				DepositAmount: r.InitialDeposit,
				CustomerName:  r.CustomerName,
				AccountType:   r.AccountType,
			}
		})
	})
}

func BookDeposit(in AccountCreation) Process[float64] {
	return reader.Named(StageInitialDeposit, reader.Asks(func(env Env) float64 {
		return env.InitialBalance + in.DepositAmount
	}))
}

// ChargeFees charges the configured fee. A balance that would go
// negative fails the run.
func ChargeFees(cfg AccountConfig) reader.Stage[Env, float64, DepositProcessing] {
	return func(currentBalance float64) Process[DepositProcessing] {
		return reader.Named(StageAccountFees, reader.Try(func(env Env) (DepositProcessing, error) {
			finalBalance := currentBalance - cfg.AccountFee
			if finalBalance < 0 {
				return DepositProcessing{}, rop.ComputationFailed(
					"balance %.2f does not cover account fee %.2f", currentBalance, cfg.AccountFee)
			}

			return DepositProcessing{
				AccountNumber: env.BankCode + "-ACCOUNT",
				DepositAmount: finalBalance,
				TotalBalance:  finalBalance,
				InterestRate:  cfg.InterestRate,
			}, nil
		}))
	}
}

func MonthlyInterest() InterestProcess[float64] {
	return reader.Named(StageMonthlyInterest, reader.Asks(func(env InterestEnv) float64 {
		return env.TotalBalance * env.InterestRate / 12
	}))
}

func ApplyBonus(cfg BonusConfig) reader.Stage[InterestEnv, float64, float64] {
	return func(monthlyInterest float64) InterestProcess[float64] {
		return reader.Named(StageInterestBonus, reader.Succeed[InterestEnv](monthlyInterest*cfg.BonusMultiplier))
	}
}

// BonusInterest runs the interest sub-chain with the fee stage's
// output merged into the environment.
func BonusInterest(cfg BonusConfig) reader.Stage[Env, DepositProcessing, float64] {
	return func(in DepositProcessing) Process[float64] {
		return reader.Named(StageFinalInterest, reader.Extend(
			func(env Env) InterestEnv {
				return InterestEnv{Env: env, DepositProcessing: in}
			},
			reader.Chain(MonthlyInterest(), ApplyBonus(cfg)),
		))
	}
}

func Settle(interest float64) Process[float64] {
	return reader.Named(StageFinalBalance, reader.Asks(func(env Env) float64 {
		return env.InitialBalance + interest
	}))
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
