package goCertify

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MrEthical07/goCertify/cache"
	"github.com/MrEthical07/goCertify/gateway"
	"github.com/MrEthical07/goCertify/session"
	"github.com/go-playground/validator/v10"
)

// Engine defines a public type used by goCertify APIs.
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config   Config
	store    cache.Store
	provider session.Provider
	gateway  *gateway.Client
	audit    *auditDispatcher
	metrics  *Metrics
	validate *validator.Validate
}

// Close describes the close operation and its observable behavior.
//
// Close may return an error when input validation, dependency calls, or security checks fail.
// Close does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.audit != nil {
		e.audit.Close()
	}
}

// SessionProvider returns the identity provider the engine resolves
// request credentials with. HTTP middleware uses it to build per-request
// scopes.
func (e *Engine) SessionProvider() session.Provider {
	if e == nil {
		return nil
	}
	return e.provider
}

// AuditDropped describes the auditdropped operation and its observable behavior.
//
// AuditDropped may return an error when input validation, dependency calls, or security checks fail.
// AuditDropped does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot describes the metricssnapshot operation and its observable behavior.
//
// MetricsSnapshot may return an error when input validation, dependency calls, or security checks fail.
// MetricsSnapshot does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

func (e *Engine) metricInc(id MetricID) {
	if e == nil || e.metrics == nil {
		return
	}
	e.metrics.Inc(id)
}

// session resolves the caller identity through the request's scope. nil
// means "not authenticated"; the scope guarantees at most one provider
// call per request no matter how many operations ask.
func (e *Engine) session(ctx context.Context) *session.Session {
	scope, ok := SessionScopeFromContext(ctx)
	if !ok {
		e.metricInc(MetricSessionMissing)
		return nil
	}

	sess := scope.Get(ctx)
	if sess == nil {
		e.metricInc(MetricSessionMissing)
		return nil
	}

	e.metricInc(MetricSessionResolved)
	return sess
}

// readKey builds the cache key of one read: the operation name, a short
// digest of the bearer token, and any positional arguments. Hashing the
// token keeps per-identity entries separate without persisting the
// credential itself in key space.
func readKey(op, token string, parts ...string) string {
	sum := sha256.Sum256([]byte(token))

	var b strings.Builder
	b.WriteString(op)
	b.WriteByte(':')
	b.WriteString(hex.EncodeToString(sum[:8]))
	for _, p := range parts {
		b.WriteByte(':')
		b.WriteString(p)
	}
	return b.String()
}

// call times one backend round-trip and records gateway metrics.
func (e *Engine) call(ctx context.Context, fn func(context.Context) gateway.Envelope) gateway.Envelope {
	start := time.Now()
	env := fn(ctx)
	if e.metrics.LatencyEnabled() {
		e.metrics.Observe(MetricGatewayLatency, time.Since(start))
	}
	if !env.Success {
		e.metricInc(MetricGatewayFailure)
	}
	return env
}

// fetchData performs a backend read and unwraps the envelope. A failure
// envelope becomes an error carrying the backend's message, so read
// callers have a single error path and nothing poisonous to cache.
func (e *Engine) fetchData(ctx context.Context, fn func(context.Context) gateway.Envelope) (json.RawMessage, error) {
	env := e.call(ctx, fn)
	if !env.Success {
		e.metricInc(MetricReadFailure)
		return nil, fmt.Errorf("%w: %s", ErrBackendFailure, env.Message.String())
	}
	return env.Data, nil
}

const (
	msgSessionNotFound   = "Session not found."
	msgEventLimitReached = "You've met the maximum limit for creating events"
)

func messageOr(m gateway.Message, fallback string) string {
	if s := m.String(); s != "" {
		return s
	}
	return fallback
}

// failMutation is the terminal for every local mutation failure: session
// missing, invalid input, nothing sent to the backend.
func (e *Engine) failMutation(ctx context.Context, eventType string, sess *session.Session, msg string) MutationResult {
	e.metricInc(MetricMutationFailure)
	res := failure(msg)
	e.auditMutation(ctx, eventType, sess, res, nil)
	return res
}

// finishMutation translates the backend envelope into the mutation result
// and, only on success, invalidates the operation's tag set. Ordering is
// load-bearing: a failed mutation must leave the cache untouched.
func (e *Engine) finishMutation(
	ctx context.Context,
	eventType string,
	sess *session.Session,
	env gateway.Envelope,
	okMsg string,
	tags ...cache.Tag,
) MutationResult {
	if !env.Success {
		e.metricInc(MetricMutationFailure)
		res := failure(messageOr(env.Message, gateway.UnknownErrorMessage))
		e.auditMutation(ctx, eventType, sess, res, nil)
		return res
	}

	e.invalidate(ctx, tags...)
	e.metricInc(MetricMutationSuccess)
	res := success(messageOr(env.Message, okMsg))
	e.auditMutation(ctx, eventType, sess, res, tags)
	return res
}

// cachedRead is the shared read path: serve from the store when a fresh
// entry exists, otherwise fetch and populate. Only successful payloads are
// ever written back, and a ttl <= 0 bypasses the store entirely. Store
// infrastructure failures degrade to a fetch, never to a request failure.
func (e *Engine) cachedRead(
	ctx context.Context,
	key string,
	tags []cache.Tag,
	ttl time.Duration,
	fetch func(context.Context) (json.RawMessage, error),
) (json.RawMessage, error) {
	if e.store == nil || ttl <= 0 {
		e.metricInc(MetricCacheBypass)
		return fetch(ctx)
	}

	data, err := e.store.Get(ctx, key)
	switch {
	case err == nil:
		e.metricInc(MetricCacheHit)
		return data, nil
	case errors.Is(err, cache.ErrEntryNotFound):
		e.metricInc(MetricCacheMiss)
	default:
		e.metricInc(MetricCacheStoreFailure)
	}

	data, err = fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := e.store.Set(ctx, key, data, tags, ttl); err != nil {
		e.metricInc(MetricCacheStoreFailure)
	}
	return data, nil
}

// invalidate drops every cached entry carrying any of the given tags.
// Called only after a confirmed backend success; an invalidation failure
// is counted but does not undo the mutation result.
func (e *Engine) invalidate(ctx context.Context, tags ...cache.Tag) {
	if e == nil || e.store == nil || len(tags) == 0 {
		return
	}
	if err := e.store.Invalidate(ctx, tags...); err != nil {
		e.metricInc(MetricInvalidationFailure)
		return
	}
	e.metricInc(MetricTagInvalidation)
}

func (e *Engine) decode(data json.RawMessage, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		e.metricInc(MetricReadFailure)
		return fmt.Errorf("%w: %v", ErrMalformedPayload, err)
	}
	e.metricInc(MetricReadSuccess)
	return nil
}
