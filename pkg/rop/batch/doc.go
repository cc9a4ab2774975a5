// Package batch runs one computation against many environments. Each run is
// independent and sequential inside; runs are spread over a bounded number of
// goroutines taken from core.GetWorkerMaxCount.
package batch
