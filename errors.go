package goBcrypt

import "errors"

var (
	// ErrInvalidCost rejects hash submissions with a work factor outside [4, 31].
	ErrInvalidCost = errors.New("invalid work factor (cost). allowed range: 4-31")
	// ErrEngineClosed rejects submissions after [Engine.Close].
	ErrEngineClosed = errors.New("engine closed")
	// ErrSubmitThrottled rejects submissions over the per-context window budget.
	ErrSubmitThrottled = errors.New("submit throttled")
	// ErrThrottleUnavailable reports a Redis failure while checking the throttle.
	ErrThrottleUnavailable = errors.New("throttle backend unavailable")
)
