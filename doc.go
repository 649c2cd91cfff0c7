// Package goCertify provides a request-scoped data-access engine for certificate
// platform frontends: memoized identity resolution, tagged TTL-bounded read caching
// over a remote backend API, and a validated mutation pipeline with tag fan-out
// invalidation.
//
// The package is designed for concurrent server workloads: Engine methods are safe to call
// from multiple goroutines after initialization through [Builder.Build].
//
// # Architecture boundaries
//
// goCertify is the public surface. It exposes [Engine], [Builder], [Config], and value
// types (Event, Participant, User, MutationResult, MetricsSnapshot, etc.). The
// collaborating subsystems live in sub-packages — [session] for identity resolution,
// [cache] for the tagged store, [gateway] for backend HTTP calls, [middleware] for
// HTTP adapters — and never re-import the root package except middleware and the
// metric exporters, which sit above it.
//
// # What this package must NOT do
//
//   - Store domain data itself. The backend API owns events, participants, and users;
//     the engine only caches and invalidates.
//   - Authenticate credentials. Identity is resolved through a [session.Provider];
//     password and verification flows belong to the external identity provider.
//   - Retry failed backend calls. A failure is reported once; the caller owns retry.
//
// # Consistency contract
//
// Reads are eventually consistent across requests: a read started before a mutation's
// tag invalidation completes may observe pre-write data. A read started after
// invalidation must not be served from cache. Within one request, every component
// observes the same resolved identity.
package goCertify
