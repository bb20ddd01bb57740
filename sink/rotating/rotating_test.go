package rotating

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AwakeLion-Robot-Lab/awakelion-logger/event"
)

func TestAppendWritesRenderedLineToFile(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, "app", "log", WithLayout("[%l] %m"))

	require.NoError(t, s.Append(event.Capture(event.Info, "started", 0)))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Equal(t, "[INFO] started\n", string(data))
}

func TestAppendHexEncodesNonPrintableMessage(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, "app", "log", WithLayout("%m"))

	require.NoError(t, s.Append(event.Capture(event.Info, "a\x01b", 0)))
	require.NoError(t, s.Close())

	data, err := os.ReadFile(filepath.Join(dir, "app.log"))
	require.NoError(t, err)
	assert.Equal(t, "a<01>b\n", string(data))
}

func TestCloseIsIdempotentOnUnopenedFile(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, "app", "log")
	assert.NoError(t, s.Close())
	assert.NoError(t, s.Close())
}

func TestAppendRotatesFileOnceMaxSizeExceeded(t *testing.T) {
	dir := t.TempDir()
	s := New(dir, "app", "log", WithMaxSizeMB(1), WithLayout("%m"))

	line := strings.Repeat("x", 1024)
	for i := 0; i < 1100; i++ {
		require.NoError(t, s.Append(event.Capture(event.Info, line, 0)))
	}
	require.NoError(t, s.Close())

	matches, err := filepath.Glob(filepath.Join(dir, "app-*.log"))
	require.NoError(t, err)
	assert.NotEmpty(t, matches, "expected a rotated backup file once MaxSizeMB was exceeded")
}
