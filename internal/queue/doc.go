// Package queue implements the result queue: the single rendezvous point
// between pool workers (producers) and the host-driven drain loop
// (consumer).
//
// # Guarantees
//
//   - [Queue.Append] is safe for any number of concurrent producers.
//   - [Queue.TakeAll] snapshots and clears atomically under one lock, so a
//     result appended concurrently with a drain lands in either the current
//     snapshot or the next one — never lost, never duplicated.
//   - [Queue.Len] is lock-free so an idle drain tick costs no lock
//     acquisition. A racing producer may make it read stale; that only
//     defers delivery by one tick.
//
// # What this package must NOT do
//
//   - Know about contexts, callbacks, or delivery order across ticks.
//   - Be imported outside the goBcrypt module.
package queue
