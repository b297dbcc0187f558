// Package job defines the value types that flow through the bridge: the
// [Job] handed to a worker and the [Result] it appends to the queue.
//
// # Ownership
//
//   - A [Job] is owned by the Engine call that creates it and consumed by
//     exactly one pool worker.
//   - A [Result] is owned by the result queue until a drain cycle takes it.
//
// # What this package must NOT do
//
//   - Perform hashing, locking, or delivery — it is data only.
//   - Be imported outside the goBcrypt module.
package job
