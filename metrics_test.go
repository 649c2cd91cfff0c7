package goCertify

import (
	"testing"
	"time"
)

func TestMetricsDisabledCountsNothing(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: false})

	m.Inc(MetricCacheHit)
	m.Observe(MetricGatewayLatency, 10*time.Millisecond)

	if got := m.Value(MetricCacheHit); got != 0 {
		t.Fatalf("disabled metrics must stay zero, got %d", got)
	}
	snap := m.Snapshot()
	if len(snap.Counters) != 0 || len(snap.Histograms) != 0 {
		t.Fatalf("disabled snapshot must be empty, got %+v", snap)
	}
}

func TestMetricsIncAndSnapshot(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, EnableLatencyHistograms: true})

	m.Inc(MetricCacheHit)
	m.Inc(MetricCacheHit)
	m.Inc(MetricMutationSuccess)
	m.Observe(MetricGatewayLatency, 3*time.Millisecond)
	m.Observe(MetricGatewayLatency, 700*time.Millisecond)

	if got := m.Value(MetricCacheHit); got != 2 {
		t.Fatalf("expected 2 cache hits, got %d", got)
	}

	snap := m.Snapshot()
	if snap.Counters[MetricMutationSuccess] != 1 {
		t.Fatalf("unexpected snapshot counters: %+v", snap.Counters)
	}

	buckets := snap.Histograms[MetricGatewayLatency]
	if len(buckets) != histBucketCount {
		t.Fatalf("expected %d buckets, got %d", histBucketCount, len(buckets))
	}
	if buckets[0] != 1 || buckets[histBucketCount-1] != 1 {
		t.Fatalf("unexpected bucket distribution: %v", buckets)
	}
}

func TestObserveIgnoresNonLatencyIDs(t *testing.T) {
	m := NewMetrics(MetricsConfig{Enabled: true, EnableLatencyHistograms: true})

	m.Observe(MetricCacheHit, time.Millisecond)

	snap := m.Snapshot()
	if _, ok := snap.Histograms[MetricCacheHit]; ok {
		t.Fatal("counter IDs must not accumulate histogram samples")
	}
}

func TestBucketIndexBoundaries(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want int
	}{
		{time.Millisecond, 0},
		{5 * time.Millisecond, 0},
		{6 * time.Millisecond, 1},
		{25 * time.Millisecond, 2},
		{50 * time.Millisecond, 3},
		{100 * time.Millisecond, 4},
		{250 * time.Millisecond, 5},
		{500 * time.Millisecond, 6},
		{2 * time.Second, 7},
	}

	for _, tc := range cases {
		if got := bucketIndex(tc.d); got != tc.want {
			t.Fatalf("bucketIndex(%v) = %d, want %d", tc.d, got, tc.want)
		}
	}
}
