// Package cache implements the tagged, TTL-bounded read cache shared by all
// concurrent requests of a goCertify deployment.
//
// # Stores
//
//   - [RedisStore] — entries plus per-tag Redis sets; invalidation runs a
//     server-side script so each tag is dropped atomically.
//   - [MemoryStore] — mutex-guarded map for tests and single-replica use.
//
// # Tags
//
// [Tag] is a closed sum of invalidation labels ([Events], [Event],
// [Participants], [Users], [User]). Invalidating a tag drops every entry
// carrying it, regardless of key; entries carrying only other tags are
// never touched.
//
// # Architecture boundaries
//
// This package stores opaque bytes. It does not know about sessions, cache
// keys' composition, or the backend API — the engine owns key derivation
// and the only-cache-successful-reads policy.
package cache
