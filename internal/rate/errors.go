package rate

import "errors"

var (
	// ErrThrottled signals that the caller context exhausted its window budget.
	ErrThrottled = errors.New("submit throttled")
	// ErrRedisUnavailable wraps transport failures talking to Redis.
	ErrRedisUnavailable = errors.New("redis unavailable")
)
