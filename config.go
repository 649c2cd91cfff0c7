package goCertify

import (
	"errors"
	"os"
	"time"

	"github.com/MrEthical07/goCertify/gateway"
)

// BackendConfig defines a public type used by goCertify APIs.
//
// BackendConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type BackendConfig struct {
	// BaseURL is the backend API origin, including any mount prefix.
	// Empty is allowed: every backend call then fails with the synthetic
	// unknown-error envelope instead of crashing the process.
	BaseURL string

	// Timeout bounds each backend round-trip. Zero selects
	// gateway.DefaultTimeout.
	Timeout time.Duration
}

// CacheConfig defines a public type used by goCertify APIs.
//
// CacheConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CacheConfig struct {
	// RedisPrefix namespaces every cache key and tag set.
	RedisPrefix string

	// EventListTTL is the freshness window of the event list read.
	EventListTTL time.Duration

	// EventDetailTTL is the freshness window of single-event reads.
	EventDetailTTL time.Duration

	// ParticipantsTTL is the freshness window of participant list reads.
	ParticipantsTTL time.Duration

	// UserListTTL is the freshness window of the account list read. The
	// default is zero: account data changes rarely but must be exact when
	// an administrator looks at it, so the read bypasses the cache.
	UserListTTL time.Duration
}

// SessionConfig defines a public type used by goCertify APIs.
//
// SessionConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type SessionConfig struct {
	// SigningKey verifies HS256 session tokens when no explicit session
	// provider is installed on the builder.
	SigningKey []byte
}

// AuditConfig defines a public type used by goCertify APIs.
//
// AuditConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type AuditConfig struct {
	Enabled    bool
	BufferSize int

	// DropIfFull drops events instead of blocking the caller when the
	// dispatch buffer is saturated. Dropped counts are observable through
	// Engine.AuditDropped.
	DropIfFull bool
}

// MetricsConfig defines a public type used by goCertify APIs.
//
// MetricsConfig instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type MetricsConfig struct {
	Enabled                 bool
	EnableLatencyHistograms bool
}

// Config defines a public type used by goCertify APIs.
//
// Config instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Config struct {
	Backend BackendConfig
	Cache   CacheConfig
	Session SessionConfig
	Audit   AuditConfig
	Metrics MetricsConfig
}

func defaultConfig() Config {
	return Config{
		Backend: BackendConfig{
			Timeout: gateway.DefaultTimeout,
		},
		Cache: CacheConfig{
			RedisPrefix:     "cc",
			EventListTTL:    5 * time.Minute,
			EventDetailTTL:  5 * time.Minute,
			ParticipantsTTL: time.Minute,
			UserListTTL:     0,
		},
		Audit: AuditConfig{
			Enabled:    false,
			BufferSize: 256,
			DropIfFull: true,
		},
		Metrics: MetricsConfig{
			Enabled:                 true,
			EnableLatencyHistograms: false,
		},
	}
}

// DefaultConfig describes the defaultconfig operation and its observable behavior.
//
// DefaultConfig may return an error when input validation, dependency calls, or security checks fail.
// DefaultConfig does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func DefaultConfig() Config {
	return defaultConfig()
}

// ConfigFromEnv describes the configfromenv operation and its observable behavior.
//
// ConfigFromEnv may return an error when input validation, dependency calls, or security checks fail.
// ConfigFromEnv does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
//
// The backend origin is taken from BACKEND_URL, falling back to
// FRONTEND_URL for deployments where the frontend proxies the API. An
// unset origin is not an error; calls fail cleanly at request time.
func ConfigFromEnv() Config {
	cfg := defaultConfig()

	if v := os.Getenv("BACKEND_URL"); v != "" {
		cfg.Backend.BaseURL = v
	} else if v := os.Getenv("FRONTEND_URL"); v != "" {
		cfg.Backend.BaseURL = v
	}
	if v := os.Getenv("SESSION_SIGNING_KEY"); v != "" {
		cfg.Session.SigningKey = []byte(v)
	}

	return cfg
}

func cloneConfig(cfg Config) Config {
	out := cfg
	out.Session.SigningKey = cloneBytes(cfg.Session.SigningKey)
	return out
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

// Validate describes the validate operation and its observable behavior.
//
// Validate may return an error when input validation, dependency calls, or security checks fail.
// Validate does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("nil config")
	}
	if c.Backend.Timeout < 0 {
		return errors.New("Backend.Timeout must not be negative")
	}
	if c.Cache.RedisPrefix == "" {
		return errors.New("Cache.RedisPrefix must not be empty")
	}
	if c.Cache.EventListTTL < 0 ||
		c.Cache.EventDetailTTL < 0 ||
		c.Cache.ParticipantsTTL < 0 ||
		c.Cache.UserListTTL < 0 {
		return errors.New("cache TTLs must not be negative")
	}
	if c.Audit.Enabled && c.Audit.BufferSize <= 0 {
		return errors.New("Audit.BufferSize must be positive when audit is enabled")
	}
	return nil
}
