package goBcrypt

import (
	"errors"
	"testing"
	"time"
)

func TestSubmitHashRejectsCostBounds(t *testing.T) {
	cfg := defaultConfig()
	cfg.Metrics.Enabled = true
	engine := buildTestEngine(t, cfg)

	rcv := &captureReceiver{}
	engine.Attach(rcv)

	for _, cost := range []int{3, 32, 0, -1, 100} {
		if err := engine.SubmitHash(1, 10, "secret", cost); !errors.Is(err, ErrInvalidCost) {
			t.Fatalf("SubmitHash(cost=%d) = %v, want ErrInvalidCost", cost, err)
		}
	}

	// Rejections spawn no work: nothing to drain, ever.
	time.Sleep(10 * time.Millisecond)
	if engine.PendingResults() != 0 {
		t.Fatalf("rejected submissions produced pending results")
	}
	if engine.Tick() != 0 {
		t.Fatalf("rejected submissions produced deliveries")
	}

	if got := engine.MetricsSnapshot().Counters[MetricHashRejected]; got != 5 {
		t.Fatalf("MetricHashRejected = %d, want 5", got)
	}
}

func TestSubmitHashAcceptsCostBounds(t *testing.T) {
	engine := buildTestEngine(t, defaultConfig())

	rcv := &captureReceiver{}
	engine.Attach(rcv)

	if err := engine.SubmitHash(1, 1, "secret", MinCost); err != nil {
		t.Fatalf("SubmitHash(cost=4) rejected: %v", err)
	}
	if err := engine.SubmitHash(1, 2, "secret", MaxCost); err != nil {
		t.Fatalf("SubmitHash(cost=31) rejected: %v", err)
	}

	drainUntil(t, engine, time.Second, func() bool { return len(rcv.hashed) == 2 })
}

func TestSubmitEmptyPayloadsAccepted(t *testing.T) {
	engine := buildTestEngine(t, defaultConfig())

	rcv := &captureReceiver{}
	engine.Attach(rcv)

	if err := engine.SubmitHash(1, 1, "", 4); err != nil {
		t.Fatalf("SubmitHash with empty password rejected: %v", err)
	}
	if err := engine.SubmitCheck(1, 2, "", ""); err != nil {
		t.Fatalf("SubmitCheck with empty payloads rejected: %v", err)
	}

	drainUntil(t, engine, time.Second, func() bool {
		return len(rcv.hashed) == 1 && len(rcv.checked) == 1
	})

	// An unparseable (empty) stored digest is a no-match, not a lost job.
	if rcv.checked[0].match {
		t.Fatalf("empty stored digest reported a match")
	}
}

func TestSubmitAfterCloseRejected(t *testing.T) {
	engine := buildTestEngine(t, defaultConfig())
	engine.Close()

	if err := engine.SubmitHash(1, 1, "secret", 10); !errors.Is(err, ErrEngineClosed) {
		t.Fatalf("SubmitHash after Close = %v, want ErrEngineClosed", err)
	}
	if err := engine.SubmitCheck(1, 2, "secret", "hash"); !errors.Is(err, ErrEngineClosed) {
		t.Fatalf("SubmitCheck after Close = %v, want ErrEngineClosed", err)
	}
}

func TestCloseWaitsForInFlightJobs(t *testing.T) {
	gate := make(chan struct{})

	engine, err := New().
		WithHasher(gateHasher{gate: gate}).
		WithWorkers(2).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	if err := engine.SubmitHash(1, 1, "secret", 10); err != nil {
		t.Fatalf("SubmitHash failed: %v", err)
	}

	go func() {
		time.Sleep(20 * time.Millisecond)
		close(gate)
	}()

	engine.Close()

	// The in-flight job finished before Close returned; its result is
	// still drainable.
	rcv := &captureReceiver{}
	engine.Attach(rcv)
	if got := engine.Tick(); got != 1 {
		t.Fatalf("Tick after Close delivered %d callbacks, want 1", got)
	}
}

func TestJobFailedDropsHashResult(t *testing.T) {
	cfg := defaultConfig()
	cfg.Metrics.Enabled = true
	cfg.Audit.Enabled = true

	sink := NewChannelSink(8)
	engine, err := New().
		WithConfig(cfg).
		WithHasher(failingHasher{}).
		WithWorkers(1).
		WithAuditSink(sink).
		Build()
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	t.Cleanup(engine.Close)

	if err := engine.SubmitHash(3, 7, "secret", 10); err != nil {
		t.Fatalf("SubmitHash failed: %v", err)
	}

	select {
	case event := <-sink.Events():
		if event.EventType != AuditJobFailed {
			t.Fatalf("event type = %q, want %q", event.EventType, AuditJobFailed)
		}
		if event.Operation != "hash" || event.ContextIdx != 3 || event.CorrelationID != 7 {
			t.Fatalf("unexpected event payload: %+v", event)
		}
		if event.JobID == "" {
			t.Fatalf("job_failed event missing job id")
		}
	case <-time.After(time.Second):
		t.Fatalf("no job_failed audit event emitted")
	}

	if engine.Tick() != 0 {
		t.Fatalf("failed hash job still produced a delivery")
	}
	if got := engine.MetricsSnapshot().Counters[MetricJobFailed]; got != 1 {
		t.Fatalf("MetricJobFailed = %d, want 1", got)
	}
}
