// Package orchestration runs independent sequence generation tasks
// concurrently and aggregates their results. Tasks never cancel each other:
// one failing request is reported in its own Result while the others finish.
package orchestration
