package bank

import (
	"github.com/ib-77/ropenv/pkg/rop/reader"
)

type options struct {
	nextID func() string
}

type Option func(*options)

// WithAccountNumbers replaces the random account-number suffix source.
func WithAccountNumbers(next func() string) Option {
	return func(o *options) {
		o.nextID = next
	}
}

// Pipeline assembles the banking run for one request. The returned
// computation does nothing until it is run with an Env.
func Pipeline(cfg Config, req NewAccountRequest, opts ...Option) Process[float64] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}

	created := OpenAccount(req, o.nextID)
	deposited := reader.Chain(created, BookDeposit)
	charged := reader.Chain(deposited, ChargeFees(cfg.Account))
	interest := reader.Chain(charged, BonusInterest(cfg.Bonus))
	return reader.Chain(interest, Settle)
}
