// Package password implements bcrypt hashing and verification.
//
// # Output format
//
// Digests are standard 60-character bcrypt strings:
//
//	$2y$<cost>$<22-char salt><31-char checksum>
//
// The version identifier is configurable ("2y" by default for
// compatibility with crypt(3)-style consumers; "2a" and "2b" are also
// accepted). Verification accepts any of the three identifiers since they
// describe the same key schedule.
//
// # What this package must NOT do
//
//   - Enforce cost policy — callers validate the work factor before
//     invoking [Bcrypt.Hash].
//   - Spawn goroutines or hold locks; hashing is synchronous here.
package password
