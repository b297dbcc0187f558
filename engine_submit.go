package goBcrypt

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MrEthical07/goBcrypt/internal/job"
	"github.com/MrEthical07/goBcrypt/internal/rate"
)

// SubmitHash dispatches a hash job and returns without waiting for it.
// contextIdx and correlationID are opaque caller-chosen values carried
// through to the matching OnBcryptHashed delivery. cost must lie in
// [MinCost, MaxCost]; violations return [ErrInvalidCost] and schedule no
// work. An empty password is a legal payload.
//
// SubmitHash is safe to call from any goroutine.
func (e *Engine) SubmitHash(contextIdx, correlationID int, password string, cost int) error {
	if e == nil || e.closed.Load() {
		return ErrEngineClosed
	}

	if cost < MinCost || cost > MaxCost {
		e.metrics.Inc(MetricHashRejected)
		e.reject(AuditHashRejected, "hash", contextIdx, correlationID, ErrInvalidCost)
		return ErrInvalidCost
	}

	if err := e.allowSubmit(contextIdx, correlationID, job.OpHash); err != nil {
		return err
	}

	j := job.NewHash(contextIdx, correlationID, password, cost)
	if !e.workers.Submit(func() { e.runJob(j) }) {
		return ErrEngineClosed
	}

	e.metrics.Inc(MetricHashSubmitted)
	return nil
}

// SubmitCheck dispatches a verification job and returns without waiting
// for it. The outcome arrives through OnBcryptChecked on a later Tick.
// Empty password and hash payloads are legal; a hash the primitive
// cannot parse yields match == false.
//
// SubmitCheck is safe to call from any goroutine.
func (e *Engine) SubmitCheck(contextIdx, correlationID int, password, hash string) error {
	if e == nil || e.closed.Load() {
		return ErrEngineClosed
	}

	if err := e.allowSubmit(contextIdx, correlationID, job.OpCheck); err != nil {
		return err
	}

	j := job.NewCheck(contextIdx, correlationID, password, hash)
	if !e.workers.Submit(func() { e.runJob(j) }) {
		return ErrEngineClosed
	}

	e.metrics.Inc(MetricCheckSubmitted)
	return nil
}

func (e *Engine) allowSubmit(contextIdx, correlationID int, op job.Operation) error {
	if e.limiter == nil {
		return nil
	}

	var err error
	if op == job.OpHash {
		err = e.limiter.AllowHash(context.Background(), contextIdx)
	} else {
		err = e.limiter.AllowCheck(context.Background(), contextIdx)
	}
	if err == nil {
		return nil
	}

	if errors.Is(err, rate.ErrThrottled) {
		e.metrics.Inc(MetricSubmitThrottled)
		e.reject(AuditSubmitThrottled, op.String(), contextIdx, correlationID, ErrSubmitThrottled)
		return ErrSubmitThrottled
	}

	return fmt.Errorf("%w: %v", ErrThrottleUnavailable, err)
}

func (e *Engine) reject(eventType, operation string, contextIdx, correlationID int, cause error) {
	e.audit.Emit(context.Background(), AuditEvent{
		Timestamp:     time.Now(),
		EventType:     eventType,
		Operation:     operation,
		ContextIdx:    contextIdx,
		CorrelationID: correlationID,
		Error:         cause.Error(),
	})
}
