package middleware

import (
	"net/http"
	"strings"

	goCertify "github.com/MrEthical07/goCertify"
	"github.com/MrEthical07/goCertify/session"
	"github.com/google/uuid"
)

// SessionCookieName is the cookie carrying the identity provider's token.
const SessionCookieName = "session"

// RequestIDHeader is echoed on the response so a failing request can be
// matched against audit output.
const RequestIDHeader = "X-Request-Id"

// WithSession builds the request's identity scope and installs it, along
// with a request id, on the context. The scope is lazy: no provider call
// happens until something asks for the session, and at most one happens
// no matter how many engine operations the handler performs.
func WithSession(provider session.Provider) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" {
				requestID = uuid.NewString()
			}
			w.Header().Set(RequestIDHeader, requestID)

			scope := session.NewScope(provider, credentialFromRequest(r))

			ctx := goCertify.WithSessionScope(r.Context(), scope)
			ctx = goCertify.WithRequestID(ctx, requestID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// credentialFromRequest prefers the session cookie and falls back to a
// bearer Authorization header. An empty return means anonymous.
func credentialFromRequest(r *http.Request) string {
	if c, err := r.Cookie(SessionCookieName); err == nil && c.Value != "" {
		return c.Value
	}

	const bearer = "Bearer "
	if v := r.Header.Get("Authorization"); strings.HasPrefix(v, bearer) {
		return v[len(bearer):]
	}
	return ""
}
