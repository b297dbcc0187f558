// Package rate provides the Redis-backed submit throttle: fixed-window
// counters that cap how many hash and check jobs a single caller context
// may dispatch per window.
//
// # Window semantics
//
// Fixed-window counters: INCR + conditional EXPIRE on first hit. Key
// prefixes:
//   - bh: — hash submissions per context index
//   - bc: — check submissions per context index
//
// # What this package must NOT do
//
//   - Decide whether throttling is enabled (the Engine does, based on
//     configuration and whether a Redis client was supplied).
//   - Be imported outside the goBcrypt module.
package rate
