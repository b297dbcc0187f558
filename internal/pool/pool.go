package pool

import (
	"sync"
)

// Task is one unit of work executed by a pool worker.
type Task func()

// Pool runs tasks on a fixed number of worker goroutines fed by an
// unbounded FIFO. Submit never blocks.
type Pool struct {
	mu      sync.Mutex
	cond    *sync.Cond
	backlog []Task
	closed  bool

	workers   int
	wg        sync.WaitGroup
	closeOnce sync.Once
}

// New starts a pool with the given number of workers. Worker counts
// below one are clamped to one.
func New(workers int) *Pool {
	if workers < 1 {
		workers = 1
	}

	p := &Pool{workers: workers}
	p.cond = sync.NewCond(&p.mu)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.run()
	}

	return p
}

// Workers reports the configured worker count.
func (p *Pool) Workers() int {
	return p.workers
}

// Submit enqueues a task for execution. It returns false if the pool has
// been closed, in which case the task is not scheduled.
func (p *Pool) Submit(task Task) bool {
	if task == nil {
		return false
	}

	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return false
	}
	p.backlog = append(p.backlog, task)
	p.mu.Unlock()

	p.cond.Signal()
	return true
}

// Backlog reports the number of tasks waiting for a worker.
func (p *Pool) Backlog() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.backlog)
}

// Close stops intake and waits for every queued and running task to
// finish. It is safe to call more than once.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.mu.Lock()
		p.closed = true
		p.mu.Unlock()

		p.cond.Broadcast()
		p.wg.Wait()
	})
}

func (p *Pool) run() {
	defer p.wg.Done()

	for {
		p.mu.Lock()
		for len(p.backlog) == 0 && !p.closed {
			p.cond.Wait()
		}
		if len(p.backlog) == 0 {
			// Closed with nothing left to do.
			p.mu.Unlock()
			return
		}
		task := p.backlog[0]
		p.backlog = p.backlog[1:]
		p.mu.Unlock()

		task()
	}
}
