package queue

import (
	"sync"
	"sync/atomic"

	"github.com/MrEthical07/goBcrypt/internal/job"
)

// Queue is an ordered collection of pending results guarded by a single
// mutex. Order is producer-completion order, not submission order.
type Queue struct {
	mu      sync.Mutex
	pending []job.Result
	size    atomic.Int64
}

// New returns an empty queue.
func New() *Queue {
	return &Queue{}
}

// Append adds one result to the tail of the queue.
func (q *Queue) Append(r job.Result) {
	q.mu.Lock()
	q.pending = append(q.pending, r)
	q.size.Store(int64(len(q.pending)))
	q.mu.Unlock()
}

// TakeAll returns the current contents and empties the queue in one
// critical section. The returned slice is owned by the caller.
func (q *Queue) TakeAll() []job.Result {
	q.mu.Lock()
	taken := q.pending
	q.pending = nil
	q.size.Store(0)
	q.mu.Unlock()
	return taken
}

// Len reports the number of pending results without taking the lock.
func (q *Queue) Len() int {
	return int(q.size.Load())
}
