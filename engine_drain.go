package goBcrypt

import (
	"github.com/MrEthical07/goBcrypt/internal/job"
)

// Attach registers a receiver at the end of the registry. Receivers
// should be pointer types so [Engine.Detach] can find them by identity.
//
// Attach belongs to the host thread; it must not race with Tick.
func (e *Engine) Attach(receiver Receiver) {
	if e == nil || receiver == nil {
		return
	}
	e.contexts = append(e.contexts, receiver)
}

// Detach removes the first registry entry identical to receiver. A
// receiver that was never attached is ignored.
//
// Detach belongs to the host thread; it must not race with Tick.
func (e *Engine) Detach(receiver Receiver) {
	if e == nil || receiver == nil {
		return
	}
	for i, ctx := range e.contexts {
		if ctx == receiver {
			e.contexts = append(e.contexts[:i], e.contexts[i+1:]...)
			return
		}
	}
}

// ContextCount reports the number of attached receivers.
func (e *Engine) ContextCount() int {
	if e == nil {
		return 0
	}
	return len(e.contexts)
}

// Tick is the drain loop, invoked once per host scheduling tick. It
// snapshots and clears the result queue, then offers every result to
// every attached receiver in registry order: hash results through
// [HashReceiver], check results through [CheckReceiver]. Receivers
// lacking the matching interface are skipped. Tick returns the number of
// callback invocations made this cycle.
//
// The empty fast path reads a lock-free length; a producer racing it
// only defers delivery to the next tick. Callbacks run synchronously on
// the calling thread, so a slow receiver stalls later deliveries within
// the same cycle.
//
// Tick belongs to the host thread; it must not race with Attach/Detach.
func (e *Engine) Tick() int {
	if e == nil {
		return 0
	}

	if e.results.Len() == 0 {
		e.metrics.Inc(MetricDrainEmpty)
		return 0
	}

	snapshot := e.results.TakeAll()
	if len(snapshot) == 0 {
		e.metrics.Inc(MetricDrainEmpty)
		return 0
	}
	e.metrics.Inc(MetricDrainCycles)

	delivered := 0
	for _, ctx := range e.contexts {
		for _, r := range snapshot {
			switch r.Op {
			case job.OpHash:
				if h, ok := ctx.(HashReceiver); ok {
					h.OnBcryptHashed(r.ContextIdx, r.CorrelationID, r.Hash)
					delivered++
				}
			case job.OpCheck:
				if c, ok := ctx.(CheckReceiver); ok {
					c.OnBcryptChecked(r.ContextIdx, r.CorrelationID, r.Match)
					delivered++
				}
			}
		}
	}

	e.metrics.Add(MetricCallbacksDelivered, uint64(delivered))
	return delivered
}
