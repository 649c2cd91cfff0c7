// Package middleware adapts HTTP requests to goCertify's session and
// routing contracts.
//
// # Adapters
//
//   - [WithSession] — builds the per-request identity scope from the
//     session cookie or Authorization header and attaches it, plus a
//     request id, to the context.
//   - [Gate] — classifies the request path as protected, auth, or public
//     and redirects on the two mismatch cases.
//
// Gate must run inside WithSession; it reads the scope the outer adapter
// installed.
//
// # What this package must NOT do
//
//   - Verify credentials itself (the session provider does).
//   - Call the backend API or touch the cache.
//   - Block public routes: an unknown path is public by default, so a
//     misconfigured prefix list fails open for reads and the backend's own
//     authorization remains the real boundary for data.
package middleware
