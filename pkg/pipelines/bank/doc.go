// Package bank is the account-opening pipeline: create the account, book the
// initial deposit, charge the account fee, compute the bonus monthly interest
// and settle the final balance.
//
// The interest stage runs in an extended environment (InterestEnv) that adds
// the fee stage's output to Env; no other stage can see those fields.
package bank
