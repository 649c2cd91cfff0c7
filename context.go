package goCertify

import (
	"context"

	"github.com/MrEthical07/goCertify/session"
)

type sessionScopeContextKey struct{}
type requestIDContextKey struct{}

// WithSessionScope attaches the request's identity scope to ctx. Every
// engine operation on the derived context shares the scope, which is what
// bounds identity resolution to at most one provider call per request.
func WithSessionScope(ctx context.Context, scope *session.Scope) context.Context {
	return context.WithValue(ctx, sessionScopeContextKey{}, scope)
}

// SessionScopeFromContext describes the sessionscopefromcontext operation and its observable behavior.
//
// SessionScopeFromContext may return an error when input validation, dependency calls, or security checks fail.
// SessionScopeFromContext does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func SessionScopeFromContext(ctx context.Context) (*session.Scope, bool) {
	if ctx == nil {
		return nil, false
	}

	scope, ok := ctx.Value(sessionScopeContextKey{}).(*session.Scope)
	if !ok || scope == nil {
		return nil, false
	}
	return scope, true
}

// WithRequestID attaches a correlation identifier to ctx. The Engine copies
// it onto every audit event emitted for the request.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDContextKey{}, requestID)
}

// RequestIDFromContext describes the requestidfromcontext operation and its observable behavior.
//
// RequestIDFromContext may return an error when input validation, dependency calls, or security checks fail.
// RequestIDFromContext does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}

	requestID, _ := ctx.Value(requestIDContextKey{}).(string)
	return requestID
}
