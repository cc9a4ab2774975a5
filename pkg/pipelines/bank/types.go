package bank

import "github.com/ib-77/ropenv/pkg/rop/reader"

// Env is supplied once per run.
type Env struct {
	InitialBalance float64 `yaml:"initial_balance" json:"initial_balance"`
	CustomerName   string  `yaml:"customer_name" json:"customer_name"`
	BankCode       string  `yaml:"bank_code" json:"bank_code"`
}

type Process[Out any] = reader.Computation[Env, Out]

type AccountType string

const (
	Savings  AccountType = "SAVINGS"
	Checking AccountType = "CHECKING"
)

func (t AccountType) Valid() bool {
	return t == Savings || t == Checking
}

type NewAccountRequest struct {
	CustomerName   string      `yaml:"customer_name" json:"customer_name"`
	InitialDeposit float64     `yaml:"initial_deposit" json:"initial_deposit"`
	AccountType    AccountType `yaml:"account_type" json:"account_type"`
}

type AccountCreation struct {
	AccountNumber string
	DepositAmount float64
	CustomerName  string
	AccountType   AccountType
}

type DepositProcessing struct {
	AccountNumber string
	DepositAmount float64
	TotalBalance  float64
	InterestRate  float64
}

// InterestEnv is Env widened with the fee stage's output.
type InterestEnv struct {
	Env
	DepositProcessing
}

type InterestProcess[Out any] = reader.Computation[InterestEnv, Out]

type AccountConfig struct {
	AccountFee   float64 `yaml:"account_fee" json:"account_fee"`
	InterestRate float64 `yaml:"interest_rate" json:"interest_rate"`
}

type BonusConfig struct {
	BonusMultiplier float64 `yaml:"bonus_multiplier" json:"bonus_multiplier"`
}

type Config struct {
	Account AccountConfig `yaml:"account" json:"account"`
	Bonus   BonusConfig   `yaml:"bonus" json:"bonus"`
}
