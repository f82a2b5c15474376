// Package auditlog persists audit events as JSON lines and reads them back.
package auditlog

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/heartmarshall/twitter-backend/internal/config"
	"github.com/heartmarshall/twitter-backend/internal/domain"
)

// Counter is the metric surface the sink reports to.
type Counter interface {
	Inc()
}

// SinkMetrics counts written and dropped events.
type SinkMetrics struct {
	Written Counter
	Dropped Counter
}

type nopCounter struct{}

func (nopCounter) Inc() {}

// Sink appends audit events to a rotating JSON-lines file.
// Emit never blocks: events go through a bounded queue drained by a single
// writer goroutine, so lines keep the order in which they were emitted.
type Sink struct {
	log     *slog.Logger
	out     *lumberjack.Logger
	handler slog.Handler
	queue   chan domain.AuditEvent
	done    chan struct{}
	metrics SinkMetrics

	mu     sync.RWMutex
	closed bool
}

// NewSink opens the log file described by cfg and starts the writer.
// The caller must Close the sink on shutdown.
func NewSink(cfg config.AuditLogConfig, logger *slog.Logger, metrics SinkMetrics) (*Sink, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.Path), 0o755); err != nil {
		return nil, fmt.Errorf("auditlog: create dir: %w", err)
	}
	f, err := os.OpenFile(cfg.Path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("auditlog: open %s: %w", cfg.Path, err)
	}
	_ = f.Close()

	if metrics.Written == nil {
		metrics.Written = nopCounter{}
	}
	if metrics.Dropped == nil {
		metrics.Dropped = nopCounter{}
	}

	out := &lumberjack.Logger{
		Filename:   cfg.Path,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
		MaxAge:     cfg.MaxAgeDays,
		LocalTime:  true,
	}

	s := &Sink{
		log:     logger.With("component", "auditlog"),
		out:     out,
		handler: newLineHandler(out),
		queue:   make(chan domain.AuditEvent, cfg.QueueSize),
		done:    make(chan struct{}),
		metrics: metrics,
	}
	go s.run()

	return s, nil
}

// Emit enqueues ev. A full queue or a closed sink drops the event.
func (s *Sink) Emit(ctx context.Context, ev domain.AuditEvent) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.closed {
		s.drop(ctx, ev, "sink closed")
		return
	}

	select {
	case s.queue <- ev:
	default:
		s.drop(ctx, ev, "queue full")
	}
}

func (s *Sink) drop(ctx context.Context, ev domain.AuditEvent, reason string) {
	s.metrics.Dropped.Inc()
	s.log.WarnContext(ctx, "audit event dropped",
		slog.String("reason", reason),
		slog.String("log_type", string(ev.LogType)),
		slog.String("message", ev.Message),
	)
}

// Close stops accepting events, writes everything still queued and closes the file.
func (s *Sink) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	close(s.queue)
	s.mu.Unlock()

	<-s.done
	return s.out.Close()
}

func (s *Sink) run() {
	defer close(s.done)

	for ev := range s.queue {
		if err := s.handler.Handle(context.Background(), toRecord(ev)); err != nil {
			s.log.Error("audit event write failed", slog.String("error", err.Error()))
			continue
		}
		s.metrics.Written.Inc()
	}
}

func toRecord(ev domain.AuditEvent) slog.Record {
	rec := slog.NewRecord(ev.At, slog.LevelInfo, ev.Message, 0)
	rec.AddAttrs(
		slog.String("source", ev.Source),
		slog.String("log_type", string(ev.LogType)),
	)
	if ev.Object != "" {
		rec.AddAttrs(slog.String("object", ev.Object))
	}
	return rec
}
