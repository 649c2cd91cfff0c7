package goCertify

import (
	"errors"

	"github.com/MrEthical07/goCertify/cache"
	"github.com/MrEthical07/goCertify/gateway"
	"github.com/MrEthical07/goCertify/session"
	"github.com/redis/go-redis/v9"
)

// Builder defines a public type used by goCertify APIs.
//
// Builder instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Builder struct {
	config Config
	redis  *redis.Client
	store  cache.Store

	provider session.Provider
	gateway  *gateway.Client

	auditSink AuditSink

	built bool
}

// New describes the new operation and its observable behavior.
//
// New may return an error when input validation, dependency calls, or security checks fail.
// New does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func New() *Builder {
	return &Builder{
		config: defaultConfig(),
	}
}

// WithConfig describes the withconfig operation and its observable behavior.
//
// WithConfig may return an error when input validation, dependency calls, or security checks fail.
// WithConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithConfig(cfg Config) *Builder {
	b.config = cloneConfig(cfg)
	return b
}

// WithRedis describes the withredis operation and its observable behavior.
//
// WithRedis may return an error when input validation, dependency calls, or security checks fail.
// WithRedis does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithRedis(client *redis.Client) *Builder {
	b.redis = client
	return b
}

// WithCacheStore installs a cache.Store directly, overriding WithRedis.
// Intended for the in-memory store in tests and single-process deployments.
func (b *Builder) WithCacheStore(store cache.Store) *Builder {
	b.store = store
	return b
}

// WithSessionProvider describes the withsessionprovider operation and its observable behavior.
//
// WithSessionProvider may return an error when input validation, dependency calls, or security checks fail.
// WithSessionProvider does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithSessionProvider(p session.Provider) *Builder {
	b.provider = p
	return b
}

// WithGateway installs a prebuilt backend client, overriding the one Build
// would derive from Config.Backend.
func (b *Builder) WithGateway(client *gateway.Client) *Builder {
	b.gateway = client
	return b
}

// WithAuditSink describes the withauditsink operation and its observable behavior.
//
// WithAuditSink may return an error when input validation, dependency calls, or security checks fail.
// WithAuditSink does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithAuditSink(sink AuditSink) *Builder {
	b.auditSink = sink
	if sink != nil {
		b.config.Audit.Enabled = true
	}
	return b
}

// WithMetricsEnabled describes the withmetricsenabled operation and its observable behavior.
//
// WithMetricsEnabled may return an error when input validation, dependency calls, or security checks fail.
// WithMetricsEnabled does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithMetricsEnabled(enabled bool) *Builder {
	b.config.Metrics.Enabled = enabled
	return b
}

// WithLatencyHistograms describes the withlatencyhistograms operation and its observable behavior.
//
// WithLatencyHistograms may return an error when input validation, dependency calls, or security checks fail.
// WithLatencyHistograms does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) WithLatencyHistograms(enabled bool) *Builder {
	b.config.Metrics.EnableLatencyHistograms = enabled
	return b
}

// Build describes the build operation and its observable behavior.
//
// Build may return an error when input validation, dependency calls, or security checks fail.
// Build does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (b *Builder) Build() (*Engine, error) {
	if b.built {
		return nil, errors.New("builder already used")
	}

	cfg := cloneConfig(b.config)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	store := b.store
	if store == nil {
		if b.redis == nil {
			return nil, errors.New("cache store required (WithRedis or WithCacheStore)")
		}
		store = cache.NewRedisStore(b.redis, cfg.Cache.RedisPrefix)
	}

	provider := b.provider
	if provider == nil {
		if len(cfg.Session.SigningKey) == 0 {
			return nil, errors.New("session provider required (WithSessionProvider or Session.SigningKey)")
		}
		jp, err := session.NewJWTProvider(cfg.Session.SigningKey)
		if err != nil {
			return nil, err
		}
		provider = jp
	}

	client := b.gateway
	if client == nil {
		client = gateway.NewClient(cfg.Backend.BaseURL, cfg.Backend.Timeout)
	}

	engine := &Engine{
		config:   cfg,
		store:    store,
		provider: provider,
		gateway:  client,
		audit:    newAuditDispatcher(cfg.Audit, b.auditSink),
		metrics:  NewMetrics(cfg.Metrics),
		validate: newValidator(),
	}

	b.built = true

	return engine, nil
}
