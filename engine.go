package goBcrypt

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/MrEthical07/goBcrypt/internal/job"
	"github.com/MrEthical07/goBcrypt/internal/pool"
	"github.com/MrEthical07/goBcrypt/internal/queue"
	"github.com/MrEthical07/goBcrypt/internal/rate"
	"github.com/MrEthical07/goBcrypt/password"
)

// Engine is the async bcrypt bridge. Construct it through [Builder.Build].
//
// Engine instances are intended to be configured during initialization and then treated as immutable unless documented otherwise.
type Engine struct {
	config  Config
	hasher  password.Hasher
	workers *pool.Pool
	results *queue.Queue
	limiter *rate.Limiter
	audit   *auditDispatcher
	metrics *Metrics
	closed  atomic.Bool

	// contexts is host-thread state: mutated only by Attach/Detach and
	// read only by Tick, all on the host's single execution thread.
	contexts []Receiver
}

// Close stops accepting submissions, waits for in-flight jobs to finish,
// and shuts down the audit dispatcher. Results completed before Close
// remain drainable by further Tick calls. Close is idempotent.
func (e *Engine) Close() {
	if e == nil {
		return
	}
	if e.closed.Swap(true) {
		return
	}

	e.audit.Emit(context.Background(), AuditEvent{
		Timestamp: time.Now(),
		EventType: AuditEngineClosed,
	})

	e.workers.Close()
	e.audit.Close()
}

// Workers reports the size of the worker pool.
func (e *Engine) Workers() int {
	if e == nil {
		return 0
	}
	return e.workers.Workers()
}

// PendingResults reports results waiting for the next drain cycle.
func (e *Engine) PendingResults() int {
	if e == nil {
		return 0
	}
	return e.results.Len()
}

// AuditDropped reports audit events discarded under backpressure.
func (e *Engine) AuditDropped() uint64 {
	if e == nil || e.audit == nil {
		return 0
	}
	return e.audit.Dropped()
}

// MetricsSnapshot copies the current counters and histograms.
func (e *Engine) MetricsSnapshot() MetricsSnapshot {
	if e == nil || e.metrics == nil {
		return MetricsSnapshot{
			Counters:   map[MetricID]uint64{},
			Histograms: map[MetricID][]uint64{},
		}
	}
	return e.metrics.Snapshot()
}

// runJob executes one job on a pool worker and appends its result.
func (e *Engine) runJob(j job.Job) {
	switch j.Op {
	case job.OpHash:
		digest, err := e.hasher.Hash(j.Password, j.Cost)
		if err != nil {
			// Unreachable for a validated cost; surfaced instead of
			// vanishing so operators can see the dropped job.
			e.jobFailed(j, err)
			return
		}
		e.results.Append(job.Result{
			Op:            job.OpHash,
			ContextIdx:    j.ContextIdx,
			CorrelationID: j.CorrelationID,
			Hash:          digest,
		})
		e.metrics.Inc(MetricHashCompleted)

	case job.OpCheck:
		match, err := e.hasher.Verify(j.Password, j.Hash)
		if err != nil {
			// A digest the primitive cannot parse is a no-match, not a
			// lost job: the result still flows so delivery stays
			// exactly-once, and the parse failure is audited.
			e.jobFailed(j, err)
		}
		e.results.Append(job.Result{
			Op:            job.OpCheck,
			ContextIdx:    j.ContextIdx,
			CorrelationID: j.CorrelationID,
			Match:         match,
		})
		e.metrics.Inc(MetricCheckCompleted)
	}

	e.metrics.Observe(MetricJobLatency, time.Since(j.SubmittedAt))
}

func (e *Engine) jobFailed(j job.Job, err error) {
	e.metrics.Inc(MetricJobFailed)
	e.audit.Emit(context.Background(), AuditEvent{
		Timestamp:     time.Now(),
		EventType:     AuditJobFailed,
		Operation:     j.Op.String(),
		JobID:         j.ID,
		ContextIdx:    j.ContextIdx,
		CorrelationID: j.CorrelationID,
		Error:         err.Error(),
	})
}
