// Package engine holds the pure decision logic of the task list: priority
// derivation, ranking and suggestion. Nothing here mutates its input or reads
// the wall clock; callers pass now explicitly.
package engine
