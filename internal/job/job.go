package job

import (
	"time"

	"github.com/google/uuid"
)

// Operation discriminates hash jobs from check jobs.
type Operation uint8

const (
	// OpHash produces a bcrypt digest from a plaintext password.
	OpHash Operation = iota
	// OpCheck compares a plaintext password against a stored digest.
	OpCheck
)

// String returns the operation name used in audit events.
func (op Operation) String() string {
	switch op {
	case OpHash:
		return "hash"
	case OpCheck:
		return "check"
	default:
		return "unknown"
	}
}

// Job is an immutable description of one unit of work. ContextIdx and
// CorrelationID are opaque to the bridge: they are chosen by the submitter
// and carried through to the matching Result unchanged.
type Job struct {
	ID            string
	Op            Operation
	ContextIdx    int
	CorrelationID int
	Password      string
	Hash          string // check only
	Cost          int    // hash only
	SubmittedAt   time.Time
}

// NewHash builds a hash job. Cost validation happens upstream.
func NewHash(contextIdx, correlationID int, password string, cost int) Job {
	return Job{
		ID:            uuid.NewString(),
		Op:            OpHash,
		ContextIdx:    contextIdx,
		CorrelationID: correlationID,
		Password:      password,
		Cost:          cost,
		SubmittedAt:   time.Now(),
	}
}

// NewCheck builds a check job.
func NewCheck(contextIdx, correlationID int, password, hash string) Job {
	return Job{
		ID:            uuid.NewString(),
		Op:            OpCheck,
		ContextIdx:    contextIdx,
		CorrelationID: correlationID,
		Password:      password,
		Hash:          hash,
		SubmittedAt:   time.Now(),
	}
}

// Result is the outcome of one completed job. Hash is set for OpHash
// results, Match for OpCheck results; the other field stays zero.
type Result struct {
	Op            Operation
	ContextIdx    int
	CorrelationID int
	Hash          string
	Match         bool
}
