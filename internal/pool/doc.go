// Package pool implements the bounded worker pool that executes bcrypt
// jobs off the host thread.
//
// # Design
//
// A fixed number of goroutines consume from an unbounded FIFO guarded by a
// mutex and condition variable. Submission therefore never blocks the
// caller: bcrypt jobs are short-lived and CPU-bound, so the bound that
// matters is concurrency, not backlog depth.
//
// # Shutdown
//
// [Pool.Close] stops intake, wakes the workers, and waits until every
// queued and in-flight task has finished. Nothing is abandoned.
//
// # What this package must NOT do
//
//   - Know what a task computes — tasks are opaque closures.
//   - Offer priorities, delays, or cancellation.
//   - Be imported outside the goBcrypt module.
package pool
