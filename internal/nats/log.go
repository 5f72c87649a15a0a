package nats

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gosimple/slug"
	"github.com/nats-io/nats.go/jetstream"
)

const (
	// StreamName is the JetStream stream holding every log channel.
	StreamName = "mathbridge_log"

	subjectRoot = "mathbridge"

	// DefaultChannel is used when no channel name is configured.
	DefaultChannel = "console"
)

// SubjectForChannel returns the subject a channel's messages are published on.
// Channel names are slugged so that any text yields a valid single token.
// Example: "Web Console" -> "mathbridge.web-console.log"
func SubjectForChannel(channel string) string {
	token := slug.Make(channel)
	if token == "" {
		token = DefaultChannel
	}
	return fmt.Sprintf("%s.%s.log", subjectRoot, token)
}

// SetupStream creates or updates the log stream. Messages are kept for 7 days.
func SetupStream(ctx context.Context, js jetstream.JetStream) (jetstream.Stream, error) {
	return js.CreateOrUpdateStream(ctx, jetstream.StreamConfig{
		Name:     StreamName,
		Subjects: []string{subjectRoot + ".>"},
		Storage:  jetstream.FileStorage,
		MaxAge:   7 * 24 * time.Hour,
	})
}

// Replay returns every message stored for channel, oldest first.
func Replay(ctx context.Context, stream jetstream.Stream, channel string) ([]string, error) {
	info, err := stream.Info(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading stream info: %w", err)
	}
	if info.State.Msgs == 0 {
		return nil, nil
	}

	subject := SubjectForChannel(channel)
	var msgs []string
	for seq := info.State.FirstSeq; seq <= info.State.LastSeq; seq++ {
		raw, err := stream.GetMsg(ctx, seq)
		if err != nil {
			if errors.Is(err, jetstream.ErrMsgNotFound) {
				continue
			}
			return nil, fmt.Errorf("reading message %d: %w", seq, err)
		}
		if raw.Subject != subject {
			continue
		}
		msgs = append(msgs, string(raw.Data))
	}
	return msgs, nil
}
