// Package sink provides arith.Sink implementations: the leveled logger, a
// line writer, an in-memory capture, fan-out, and a JetStream-backed log.
package sink

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/mark3labs/mathbridge/internal/arith"
	"github.com/mark3labs/mathbridge/internal/logger"
)

// warningPrefix marks messages that LoggerSink records at WARN.
const warningPrefix = "Warning:"

// LoggerSink forwards messages to a leveled logger.
type LoggerSink struct {
	l *logger.Logger
}

// NewLoggerSink returns a sink writing to l, or to logger.Default when l is nil.
func NewLoggerSink(l *logger.Logger) *LoggerSink {
	if l == nil {
		l = logger.Default
	}
	return &LoggerSink{l: l}
}

// Log implements arith.Sink.
func (s *LoggerSink) Log(msg string) {
	if strings.HasPrefix(msg, warningPrefix) {
		s.l.Warn("%s", msg)
		return
	}
	s.l.Info("%s", msg)
}

// WriterSink writes one line per message to an io.Writer.
type WriterSink struct {
	mu sync.Mutex
	w  io.Writer
}

// NewWriterSink returns a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Log implements arith.Sink. Write errors are reported to the default logger.
func (s *WriterSink) Log(msg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := fmt.Fprintln(s.w, msg); err != nil {
		logger.Warn("sink write failed: %v", err)
	}
}

// Capture records messages in memory.
type Capture struct {
	mu   sync.Mutex
	msgs []string
}

// Log implements arith.Sink.
func (c *Capture) Log(msg string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = append(c.msgs, msg)
}

// Messages returns a copy of the recorded messages in call order.
func (c *Capture) Messages() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, len(c.msgs))
	copy(out, c.msgs)
	return out
}

// Reset discards recorded messages.
func (c *Capture) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.msgs = nil
}

// Multi delivers each message to every sink in order.
type Multi []arith.Sink

// Log implements arith.Sink.
func (m Multi) Log(msg string) {
	for _, s := range m {
		if s != nil {
			s.Log(msg)
		}
	}
}

var (
	_ arith.Sink = (*LoggerSink)(nil)
	_ arith.Sink = (*WriterSink)(nil)
	_ arith.Sink = (*Capture)(nil)
	_ arith.Sink = Multi(nil)
)
