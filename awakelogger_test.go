package awakelogger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AwakeLion-Robot-Lab/awakelion-logger/event"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/registry"
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

func TestInfoCapturesCallersFileNotFacadeFile(t *testing.T) {
	Root().ClearSinks()
	defer Root().ClearSinks()

	c := &capturingSink{}
	require.NoError(t, Root().AddSink(c))

	Info("disk at %d%%", 87)
	require.NoError(t, Root().Flush())

	require.Len(t, c.events, 1)
	assert.Equal(t, "disk at 87%", c.events[0].Message())
	assert.Contains(t, c.events[0].Source().File, "awakelogger_test.go")
	assert.NotContains(t, c.events[0].Source().File, "awakelogger.go")
}

func TestSetThresholdFiltersBelowRootThreshold(t *testing.T) {
	SetThreshold(registry.RootName, event.Warn)
	defer SetThreshold(registry.RootName, event.Debug)

	Root().ClearSinks()
	defer Root().ClearSinks()

	c := &capturingSink{}
	require.NoError(t, Root().AddSink(c))

	Debug("noisy %d", 1)
	require.NoError(t, Root().Flush())
	assert.Empty(t, c.events)
}
