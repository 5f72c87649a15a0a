package sink

import (
	"context"
	"time"

	"github.com/mark3labs/mathbridge/internal/logger"
	mbnats "github.com/mark3labs/mathbridge/internal/nats"
	"github.com/nats-io/nats.go/jetstream"
)

const publishTimeout = 2 * time.Second

// JetStreamSink appends each message to a JetStream subject. Publishing
// waits for the stream ack, so consecutive calls are stored in call order.
type JetStreamSink struct {
	js      jetstream.JetStream
	subject string
}

// NewJetStreamSink returns a sink publishing to the subject for channel.
func NewJetStreamSink(js jetstream.JetStream, channel string) *JetStreamSink {
	return &JetStreamSink{
		js:      js,
		subject: mbnats.SubjectForChannel(channel),
	}
}

// Subject returns the subject messages are published on.
func (s *JetStreamSink) Subject() string {
	return s.subject
}

// Log implements arith.Sink. Publish failures are logged, never returned.
func (s *JetStreamSink) Log(msg string) {
	ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
	defer cancel()

	if _, err := s.js.Publish(ctx, s.subject, []byte(msg)); err != nil {
		logger.Error("publishing to %s: %v", s.subject, err)
	}
}
