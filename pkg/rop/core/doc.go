// Package core carries run options through a context: the worker limit and
// fail-fast switch used by batch runs, and the stage observer that the reader
// package reports named stages to. It defines no business logic.
package core
