// Package reader provides Computation[Env, Out]: a deferred step that reads an
// immutable environment, may fail, and produces a Result[Out]. Computations
// are plain function values; building and composing them does no work until
// Run supplies the environment.
//
// Key operations:
// - Ask/Asks: read the environment (or a projection of it)
// - Succeed/Fail/FromResult/Try: lift values, errors and (Out, error) calls
// - Map: transform a successful output
// - Chain/ChainTry: sequence steps left to right, stopping at the first failure
// - Then: compose two stages into one
// - Extend/Local: run a sub-chain against a widened environment
// - Catch: recover from a failure at the call site
// - Named: report a stage's outcome to the observer attached to the context
// - Run/RunE: execute with an environment
//
// A cancelled context is honoured between stages only; a stage body that has
// started always runs to completion.
package reader
