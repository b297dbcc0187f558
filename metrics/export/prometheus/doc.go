// Package prometheus renders goBcrypt metrics in Prometheus text
// exposition format.
//
// [NewPrometheusExporter] accepts a [goBcrypt.Engine] and exposes an
// http.Handler that renders all counters and the job-latency histogram.
// Counter names are prefixed gobcrypt_*_total; the single histogram is
// gobcrypt_job_latency_seconds.
//
// # What this package must NOT do
//
//   - Register metrics in a global Prometheus registry — callers mount
//     the Handler.
//   - Mutate engine state.
package prometheus
