// Package session resolves and memoizes the caller identity for exactly one
// request.
//
// # Resolution contract
//
// A [Scope] wraps a [Provider] and guarantees at most one upstream lookup
// per request, with every [Scope.Get] returning the identical *Session.
// nil is the single "not authenticated" signal: missing credential, invalid
// token, and upstream lookup failure all collapse into it.
//
// # What this package must NOT do
//
//   - Persist sessions. The identity provider owns credential storage;
//     a Scope dies with its request.
//   - Redirect or reject requests. Authorization is the route gate's job;
//     this package only reports identity.
//   - Reach the backend API. The token is carried, never exercised, here.
package session
