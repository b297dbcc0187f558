package goBcrypt

import (
	"context"
	"encoding/json"
	"io"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Audit event types emitted by the engine.
const (
	AuditHashRejected    = "hash_rejected"
	AuditCheckRejected   = "check_rejected"
	AuditSubmitThrottled = "submit_throttled"
	AuditJobFailed       = "job_failed"
	AuditEngineClosed    = "engine_closed"
)

// AuditEvent is one structured diagnostic record. Rejections carry the
// operation name and a human-readable reason; job failures also carry
// the job ID assigned at submission.
type AuditEvent struct {
	Timestamp     time.Time `json:"timestamp"`
	EventType     string    `json:"event_type"`
	Operation     string    `json:"operation,omitempty"`
	JobID         string    `json:"job_id,omitempty"`
	ContextIdx    int       `json:"context_idx"`
	CorrelationID int       `json:"correlation_id"`
	Error         string    `json:"error,omitempty"`
}

// AuditSink consumes audit events. Emit is called from the dispatcher
// goroutine, never from the host thread or worker goroutines.
type AuditSink interface {
	Emit(ctx context.Context, event AuditEvent)
}

// NoOpSink discards every event.
type NoOpSink struct{}

// Emit implements [AuditSink].
func (NoOpSink) Emit(context.Context, AuditEvent) {}

// ChannelSink forwards events to a buffered channel for consumption by
// the embedding application.
type ChannelSink struct {
	events chan AuditEvent
}

// NewChannelSink creates a [ChannelSink] with the given buffer.
func NewChannelSink(buffer int) *ChannelSink {
	if buffer <= 0 {
		buffer = 1
	}
	return &ChannelSink{
		events: make(chan AuditEvent, buffer),
	}
}

// Emit implements [AuditSink].
func (s *ChannelSink) Emit(ctx context.Context, event AuditEvent) {
	select {
	case s.events <- event:
	case <-ctx.Done():
	}
}

// Events returns the receive side of the sink.
func (s *ChannelSink) Events() <-chan AuditEvent {
	return s.events
}

// JSONWriterSink writes one JSON object per line to the wrapped writer.
type JSONWriterSink struct {
	writer io.Writer
	mu     sync.Mutex
}

// NewJSONWriterSink creates a [JSONWriterSink] over w.
func NewJSONWriterSink(w io.Writer) *JSONWriterSink {
	return &JSONWriterSink{
		writer: w,
	}
}

// Emit implements [AuditSink].
func (s *JSONWriterSink) Emit(ctx context.Context, event AuditEvent) {
	if s == nil || s.writer == nil {
		return
	}
	data, err := json.Marshal(event)
	if err != nil {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, _ = s.writer.Write(data)
	_, _ = s.writer.Write([]byte("\n"))
}

// ZerologSink logs events through a zerolog logger at warn level, which
// matches their diagnostic nature (rejections and failures only).
type ZerologSink struct {
	logger zerolog.Logger
}

// NewZerologSink creates a [ZerologSink] over the given logger.
func NewZerologSink(logger zerolog.Logger) *ZerologSink {
	return &ZerologSink{logger: logger}
}

// Emit implements [AuditSink].
func (s *ZerologSink) Emit(_ context.Context, event AuditEvent) {
	if s == nil {
		return
	}
	e := s.logger.Warn().
		Str("event_type", event.EventType).
		Int("context_idx", event.ContextIdx).
		Int("correlation_id", event.CorrelationID)
	if event.Operation != "" {
		e = e.Str("operation", event.Operation)
	}
	if event.JobID != "" {
		e = e.Str("job_id", event.JobID)
	}
	if event.Error != "" {
		e = e.Str("error", event.Error)
	}
	e.Msg("bcrypt audit event")
}
