package session

import (
	"context"
	"sync"
)

// Scope memoizes one identity resolution for the lifetime of a single
// request. The first Get performs the upstream lookup through the Provider;
// every later Get — from any goroutine — returns the identical result
// without re-invoking the provider. A Scope must not outlive its request.
type Scope struct {
	provider   Provider
	credential string

	once sync.Once
	sess *Session
}

// NewScope creates a Scope bound to the request's raw credential. The
// credential may be empty; resolution then short-circuits to nil.
func NewScope(provider Provider, credential string) *Scope {
	return &Scope{
		provider:   provider,
		credential: credential,
	}
}

// Get returns the request's resolved [Session], or nil when the request
// carries no valid identity. Upstream lookup errors resolve to nil as well,
// so callers have exactly one "not authenticated" signal. Get never
// redirects or rejects — authorization decisions belong to the route gate.
func (s *Scope) Get(ctx context.Context) *Session {
	if s == nil {
		return nil
	}

	s.once.Do(func() {
		if s.provider == nil || s.credential == "" {
			return
		}
		sess, err := s.provider.Resolve(ctx, s.credential)
		if err != nil {
			return
		}
		s.sess = sess
	})

	return s.sess
}

// Static returns a Scope that always resolves to the given session without
// any provider call. Intended for tests and trusted internal jobs.
func Static(sess *Session) *Scope {
	s := &Scope{}
	s.once.Do(func() {})
	s.sess = sess
	return s
}
