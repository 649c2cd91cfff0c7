package internaldefs

import (
	goCertify "github.com/MrEthical07/goCertify"
)

// CounterDef defines a public type used by goCertify APIs.
//
// CounterDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type CounterDef struct {
	ID   goCertify.MetricID
	Name string
	Help string
}

// HistogramDef defines a public type used by goCertify APIs.
//
// HistogramDef instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type HistogramDef struct {
	ID   goCertify.MetricID
	Name string
	Help string
}

// CounterDefs is an exported constant or variable used by the certificate engine.
var CounterDefs = []CounterDef{
	{ID: goCertify.MetricCacheHit, Name: "gocertify_cache_hit_total", Help: "Reads served from the cache store."},
	{ID: goCertify.MetricCacheMiss, Name: "gocertify_cache_miss_total", Help: "Reads that fell through to the backend."},
	{ID: goCertify.MetricCacheBypass, Name: "gocertify_cache_bypass_total", Help: "Reads configured to skip the cache store."},
	{ID: goCertify.MetricCacheStoreFailure, Name: "gocertify_cache_store_failure_total", Help: "Cache store operations that failed."},
	{ID: goCertify.MetricTagInvalidation, Name: "gocertify_tag_invalidation_total", Help: "Successful tag invalidation operations."},
	{ID: goCertify.MetricInvalidationFailure, Name: "gocertify_invalidation_failure_total", Help: "Tag invalidation operations that failed."},
	{ID: goCertify.MetricSessionResolved, Name: "gocertify_session_resolved_total", Help: "Operations that resolved a caller identity."},
	{ID: goCertify.MetricSessionMissing, Name: "gocertify_session_missing_total", Help: "Operations with no resolvable caller identity."},
	{ID: goCertify.MetricValidationFailure, Name: "gocertify_validation_failure_total", Help: "Mutations rejected by input validation."},
	{ID: goCertify.MetricMutationSuccess, Name: "gocertify_mutation_success_total", Help: "Mutations confirmed by the backend."},
	{ID: goCertify.MetricMutationFailure, Name: "gocertify_mutation_failure_total", Help: "Mutations that failed locally or on the backend."},
	{ID: goCertify.MetricReadSuccess, Name: "gocertify_read_success_total", Help: "Reads that produced a decoded payload."},
	{ID: goCertify.MetricReadFailure, Name: "gocertify_read_failure_total", Help: "Reads that failed before producing a payload."},
	{ID: goCertify.MetricGatewayFailure, Name: "gocertify_gateway_failure_total", Help: "Backend calls that returned a failure envelope."},
}

// HistogramDefs is an exported constant or variable used by the certificate engine.
var HistogramDefs = []HistogramDef{
	{ID: goCertify.MetricGatewayLatency, Name: "gocertify_gateway_latency_seconds", Help: "Backend round-trip latency histogram."},
}

// HistogramBounds is an exported constant or variable used by the certificate engine.
var HistogramBounds = []string{
	"0.005",
	"0.01",
	"0.025",
	"0.05",
	"0.1",
	"0.25",
	"0.5",
	"+Inf",
}

// HistogramBoundSuffix is an exported constant or variable used by the certificate engine.
var HistogramBoundSuffix = []string{
	"0_005",
	"0_01",
	"0_025",
	"0_05",
	"0_1",
	"0_25",
	"0_5",
	"inf",
}

// NormalizeBuckets describes the normalizebuckets operation and its observable behavior.
//
// NormalizeBuckets may return an error when input validation, dependency calls, or security checks fail.
// NormalizeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets describes the cumulativebuckets operation and its observable behavior.
//
// CumulativeBuckets may return an error when input validation, dependency calls, or security checks fail.
// CumulativeBuckets does not mutate shared global state and can be used concurrently when the receiver and dependencies are concurrently safe.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
