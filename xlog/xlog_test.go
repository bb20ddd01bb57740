package xlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AwakeLion-Robot-Lab/awakelion-logger/event"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/logger"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/sink"
)

type capturingSink struct {
	events []*event.Event
}

func (c *capturingSink) Append(e *event.Event) error {
	c.events = append(c.events, e)
	return nil
}
func (c *capturingSink) Flush() error { return nil }
func (c *capturingSink) Close() error { return nil }

var _ sink.Sink = (*capturingSink)(nil)

func TestInfoFormatsAndCapturesCallSite(t *testing.T) {
	l := logger.New("test")
	c := &capturingSink{}
	require.NoError(t, l.AddSink(c))

	Info(l, "disk at %d%%", 87)
	require.NoError(t, l.Flush())

	require.Len(t, c.events, 1)
	assert.Equal(t, "disk at 87%", c.events[0].Message())
	assert.Contains(t, c.events[0].Source().File, "xlog_test.go")
	require.NoError(t, l.Close())
}

func TestBelowThresholdIsNotFormattedOrSubmitted(t *testing.T) {
	l := logger.New("test", logger.WithThreshold(event.Warn))
	c := &capturingSink{}
	require.NoError(t, l.AddSink(c))

	Debug(l, "noisy %d", 1)
	require.NoError(t, l.Flush())
	assert.Empty(t, c.events)
	require.NoError(t, l.Close())
}

func TestNilLoggerIsSafeNoOp(t *testing.T) {
	assert.NotPanics(t, func() { Info(nil, "hello") })
}
