// Package internal groups the machinery that is intentionally private to
// goBcrypt.
//
// # Sub-packages
//
//   - job — Job and Result value types shared by the bridge
//   - pool — bounded worker pool with graceful shutdown
//   - queue — mutex-guarded result queue with snapshot-and-clear drain
//   - rate — Redis-backed fixed-window submit throttle
//
// # What this package must NOT do
//
//   - Export types that appear in the public goBcrypt API.
//   - Be imported by any package outside the goBcrypt module.
package internal
