// Package goBcrypt provides non-blocking bcrypt hashing and verification
// for hosts that run a single cooperative execution thread and cannot
// stall on slow cryptographic work.
//
// Submissions are fire-and-forget: [Engine.SubmitHash] and
// [Engine.SubmitCheck] validate, hand the job to a bounded worker pool,
// and return immediately. Completed results accumulate in a locked queue
// until the host's own scheduling tick calls [Engine.Tick], which drains
// the queue and delivers every result to every attached receiver.
//
// # Architecture boundaries
//
// goBcrypt is the public surface. It exposes [Engine], [Builder],
// [Config], the receiver interfaces, and the audit and metrics value
// types. All internal coordination — the worker pool, the result queue,
// the submit throttle, job records — lives under internal/ and is never
// exported. The bcrypt primitive lives in the password sub-package.
//
// # Threading contract
//
// SubmitHash and SubmitCheck are safe from any goroutine. Attach, Detach,
// and Tick belong to the host thread: they share no lock, exactly as a
// cooperative script host drives its lifecycle hooks and process tick
// from one thread. Callbacks run synchronously inside Tick on that thread.
//
// # What this package must NOT do
//
//   - Invoke receiver callbacks from worker goroutines.
//   - Block a submission on hashing work or on a full pool.
//   - Expose Redis clients, pool internals, or queue contents in its
//     public API.
package goBcrypt
