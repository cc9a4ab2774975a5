// Package trace holds the stage observers attached to pipeline runs: a
// recorder that keeps every stage outcome for later display, a zap observer
// that logs them, and a console printer for the recorded breakdown.
package trace
