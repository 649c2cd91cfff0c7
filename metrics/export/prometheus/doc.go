// Package prometheus provides Prometheus collectors for goCertify metrics.
//
// [NewPrometheusExporter] accepts a [goCertify.Engine] and exposes an [http.Handler]
// that renders all goCertify counters and histograms in Prometheus text exposition format.
// Counter names are prefixed gocertify_*_total; the single histogram is
// gocertify_gateway_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount the Handler.
//   - Mutate engine state.
package prometheus
