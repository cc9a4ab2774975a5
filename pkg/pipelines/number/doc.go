// Package number is the numeric demonstration pipeline over an environment
// holding a single textual number A.
//
// Stage formulas are arbitrary; the package exists to show configuration
// closed over by stages and a sub-chain that runs in an extended environment
// (SpreadEnv).
package number
