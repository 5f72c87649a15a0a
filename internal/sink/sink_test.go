package sink

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/mark3labs/mathbridge/internal/arith"
	"github.com/mark3labs/mathbridge/internal/logger"
	mbnats "github.com/mark3labs/mathbridge/internal/nats"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCapture_Order(t *testing.T) {
	c := &Capture{}
	svc := arith.New(c)

	svc.Greet("World")
	svc.Div(7, 0)
	svc.Mod(7, 0)

	assert.Equal(t, []string{
		"Hello, World!",
		arith.DivByZeroWarning,
		arith.ModByZeroWarning,
	}, c.Messages())
}

func TestCapture_MessagesIsCopy(t *testing.T) {
	c := &Capture{}
	c.Log("one")

	msgs := c.Messages()
	msgs[0] = "changed"

	assert.Equal(t, []string{"one"}, c.Messages())

	c.Reset()
	assert.Empty(t, c.Messages())
}

func TestLoggerSink_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)
	l.SetLevel(logger.LevelInfo)

	s := NewLoggerSink(l)
	s.Log("Hello, World!")
	s.Log(arith.DivByZeroWarning)

	out := buf.String()
	assert.Contains(t, out, "[INFO] Hello, World!")
	assert.Contains(t, out, "[WARN] Warning: Division by zero!")
}

func TestLoggerSink_PercentIsVerbatim(t *testing.T) {
	var buf bytes.Buffer
	l := logger.New()
	l.SetOutput(&buf)

	NewLoggerSink(l).Log("Hello, 100%d!")

	assert.Contains(t, buf.String(), "Hello, 100%d!")
}

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf)

	s.Log("first")
	s.Log("second")

	assert.Equal(t, "first\nsecond\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestWriterSink_ErrorDoesNotPanic(t *testing.T) {
	s := NewWriterSink(failingWriter{})
	assert.NotPanics(t, func() { s.Log("lost") })
}

func TestMulti(t *testing.T) {
	a, b := &Capture{}, &Capture{}
	m := Multi{a, nil, b}

	m.Log("x")
	m.Log("y")

	assert.Equal(t, []string{"x", "y"}, a.Messages())
	assert.Equal(t, []string{"x", "y"}, b.Messages())
}

func TestJetStreamSink_ReplayInOrder(t *testing.T) {
	ctx := context.Background()

	ns, err := mbnats.StartEmbeddedNATS(t.TempDir())
	require.NoError(t, err)
	nc, err := mbnats.ConnectInProcess(ns)
	require.NoError(t, err)
	defer func() { _ = mbnats.Shutdown(nc, ns) }()

	js, err := mbnats.CreateJetStream(nc)
	require.NoError(t, err)
	stream, err := mbnats.SetupStream(ctx, js)
	require.NoError(t, err)

	s := NewJetStreamSink(js, "Web Console")
	assert.Equal(t, "mathbridge.web-console.log", s.Subject())

	other := NewJetStreamSink(js, "other")
	svc := arith.New(s)

	svc.Greet("World")
	other.Log("unrelated")
	svc.Div(1, 0)
	svc.Mod(1, 0)

	msgs, err := mbnats.Replay(ctx, stream, "Web Console")
	require.NoError(t, err)
	assert.Equal(t, []string{
		"Hello, World!",
		arith.DivByZeroWarning,
		arith.ModByZeroWarning,
	}, msgs)

	otherMsgs, err := mbnats.Replay(ctx, stream, "other")
	require.NoError(t, err)
	assert.Equal(t, []string{"unrelated"}, otherMsgs)
}

func TestJetStreamSink_PublishFailureIsSwallowed(t *testing.T) {
	ns, err := mbnats.StartEmbeddedNATS(t.TempDir())
	require.NoError(t, err)
	nc, err := mbnats.ConnectInProcess(ns)
	require.NoError(t, err)
	defer func() { _ = mbnats.Shutdown(nil, ns) }()

	js, err := mbnats.CreateJetStream(nc)
	require.NoError(t, err)
	nc.Close()

	var buf bytes.Buffer
	logger.Default.SetOutput(&buf)
	defer logger.Default.SetOutput(io.Discard)

	s := NewJetStreamSink(js, "closed")
	assert.NotPanics(t, func() { s.Log("dropped") })
	assert.True(t, strings.Contains(buf.String(), "publishing to mathbridge.closed.log"))
}
