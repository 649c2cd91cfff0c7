// Package gateway is the HTTP edge between goCertify and the backend API
// that owns events, participants, and users.
//
// # Normalization
//
// Every call returns an [Envelope] — {success, status, message, data} — no
// matter what happened on the wire. Transport errors, non-JSON bodies, and
// a missing base URL all produce the synthetic unknown-error envelope;
// non-2xx responses carrying a parseable envelope pass through so callers
// can inspect Status for overrides.
//
// # Architecture boundaries
//
// The bearer token is a parameter on every authenticated call and is never
// looked up here — identity concerns stay in the session package. No
// retries, no idempotency keys: a call that times out mid-flight may or
// may not have been applied, and callers must not assume at-most-once
// semantics.
package gateway
