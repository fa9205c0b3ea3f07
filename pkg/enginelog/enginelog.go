// Package enginelog is the engine's logging backend. It wraps
// github.com/decred/slog with a Backend that mints subsystem-tagged
// Loggers, and additionally keeps an in-memory ring of emitted records
// so tests can introspect exactly what the engine logged without
// scraping stdout.
package enginelog

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/decred/slog"
)

// Verbosity is the engine's four output levels.
type Verbosity int

const (
	Silent Verbosity = iota
	Minimal
	Normal
	Verbose
)

func (v Verbosity) slogLevel() slog.Level {
	switch v {
	case Silent:
		return slog.LevelOff
	case Minimal:
		return slog.LevelError
	case Normal:
		return slog.LevelInfo
	case Verbose:
		return slog.LevelTrace
	default:
		return slog.LevelInfo
	}
}

// Record is one captured log line, kept for test introspection.
type Record struct {
	Time      time.Time
	Subsystem string
	Level     slog.Level
	Message   string
}

// Backend mints subsystem loggers and remembers every record emitted
// through them, bounded to capacity entries (oldest dropped first).
type Backend struct {
	mu       sync.Mutex
	backend  *slog.Backend
	records  []Record
	capacity int
}

// NewBackend creates a logging backend that writes to w (use io.Discard
// for Silent runs), retaining up to capacity records in memory for
// introspection. capacity <= 0 means unbounded.
func NewBackend(w io.Writer, capacity int) *Backend {
	if w == nil {
		w = os.Stdout
	}
	return &Backend{
		backend:  slog.NewBackend(w),
		capacity: capacity,
	}
}

// Logger returns a slog.Logger tagged with subsystem, at the given
// verbosity, that also appends to the in-memory ring.
func (b *Backend) Logger(subsystem string, verbosity Verbosity) slog.Logger {
	l := b.backend.Logger(subsystem)
	l.SetLevel(verbosity.slogLevel())
	return &recordingLogger{Logger: l, backend: b, subsystem: subsystem}
}

// Records returns a copy of the retained log records, oldest first.
func (b *Backend) Records() []Record {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Record, len(b.records))
	copy(out, b.records)
	return out
}

func (b *Backend) append(subsystem string, level slog.Level, msg string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.records = append(b.records, Record{Time: time.Now(), Subsystem: subsystem, Level: level, Message: msg})
	if b.capacity > 0 && len(b.records) > b.capacity {
		b.records = b.records[len(b.records)-b.capacity:]
	}
}

// recordingLogger decorates a slog.Logger so every formatted call also
// lands in the backend's ring buffer.
type recordingLogger struct {
	slog.Logger
	backend   *Backend
	subsystem string
}

func (l *recordingLogger) Tracef(format string, args ...interface{}) {
	l.backend.append(l.subsystem, slog.LevelTrace, fmt.Sprintf(format, args...))
	l.Logger.Tracef(format, args...)
}

func (l *recordingLogger) Debugf(format string, args ...interface{}) {
	l.backend.append(l.subsystem, slog.LevelDebug, fmt.Sprintf(format, args...))
	l.Logger.Debugf(format, args...)
}

func (l *recordingLogger) Infof(format string, args ...interface{}) {
	l.backend.append(l.subsystem, slog.LevelInfo, fmt.Sprintf(format, args...))
	l.Logger.Infof(format, args...)
}

func (l *recordingLogger) Warnf(format string, args ...interface{}) {
	l.backend.append(l.subsystem, slog.LevelWarn, fmt.Sprintf(format, args...))
	l.Logger.Warnf(format, args...)
}

func (l *recordingLogger) Errorf(format string, args ...interface{}) {
	l.backend.append(l.subsystem, slog.LevelError, fmt.Sprintf(format, args...))
	l.Logger.Errorf(format, args...)
}
