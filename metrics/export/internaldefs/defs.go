package internaldefs

import (
	goBcrypt "github.com/MrEthical07/goBcrypt"
)

// CounterDef binds one engine counter to its exported name.
type CounterDef struct {
	ID   goBcrypt.MetricID
	Name string
	Help string
}

// HistogramDef binds one engine histogram to its exported name.
type HistogramDef struct {
	ID   goBcrypt.MetricID
	Name string
	Help string
}

// CounterDefs lists every exported counter in a stable order.
var CounterDefs = []CounterDef{
	{ID: goBcrypt.MetricHashSubmitted, Name: "gobcrypt_hash_submitted_total", Help: "Accepted hash submissions."},
	{ID: goBcrypt.MetricHashRejected, Name: "gobcrypt_hash_rejected_total", Help: "Hash submissions rejected at validation."},
	{ID: goBcrypt.MetricCheckSubmitted, Name: "gobcrypt_check_submitted_total", Help: "Accepted check submissions."},
	{ID: goBcrypt.MetricCheckRejected, Name: "gobcrypt_check_rejected_total", Help: "Check submissions rejected at validation."},
	{ID: goBcrypt.MetricSubmitThrottled, Name: "gobcrypt_submit_throttled_total", Help: "Submissions denied by the per-context throttle."},
	{ID: goBcrypt.MetricHashCompleted, Name: "gobcrypt_hash_completed_total", Help: "Hash jobs that produced a result."},
	{ID: goBcrypt.MetricCheckCompleted, Name: "gobcrypt_check_completed_total", Help: "Check jobs that produced a result."},
	{ID: goBcrypt.MetricJobFailed, Name: "gobcrypt_job_failed_total", Help: "Jobs whose bcrypt primitive call errored."},
	{ID: goBcrypt.MetricCallbacksDelivered, Name: "gobcrypt_callbacks_delivered_total", Help: "Receiver callback invocations."},
	{ID: goBcrypt.MetricDrainCycles, Name: "gobcrypt_drain_cycles_total", Help: "Tick invocations that drained results."},
	{ID: goBcrypt.MetricDrainEmpty, Name: "gobcrypt_drain_empty_total", Help: "Tick invocations that found nothing pending."},
}

// HistogramDefs lists every exported histogram in a stable order.
var HistogramDefs = []HistogramDef{
	{ID: goBcrypt.MetricJobLatency, Name: "gobcrypt_job_latency_seconds", Help: "Submit-to-result latency of bcrypt jobs."},
}

// HistogramBounds are the upper bucket bounds in seconds, matching the
// engine's fixed 8-bucket layout.
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

// HistogramBoundSuffix carries the bounds in instrument-name-safe form.
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

// NormalizeBuckets pads or truncates a raw bucket slice to the fixed width.
func NormalizeBuckets(raw []uint64) [8]uint64 {
	var out [8]uint64
	for i := 0; i < len(out) && i < len(raw); i++ {
		out[i] = raw[i]
	}
	return out
}

// CumulativeBuckets converts per-bucket counts to cumulative counts.
func CumulativeBuckets(raw [8]uint64) [8]uint64 {
	var out [8]uint64
	var running uint64
	for i := 0; i < len(raw); i++ {
		running += raw[i]
		out[i] = running
	}
	return out
}
