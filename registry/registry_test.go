package registry

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AwakeLion-Robot-Lab/awakelion-logger/logger"
)

func TestGetRootNameAlwaysReturnsSharedRoot(t *testing.T) {
	r := New()
	defer func() { _ = r.Shutdown() }()

	first := r.Get(RootName)
	second := r.Get(RootName)
	require.NotNil(t, first)
	assert.Same(t, first, second)
	assert.Same(t, first, r.Root())
}

func TestInitIsIdempotent(t *testing.T) {
	r := New()
	defer func() { _ = r.Shutdown() }()

	r.Init()
	before := r.Root()
	r.Init()
	after := r.Root()
	assert.Same(t, before, after)
}

func TestGetCreatesNamedLoggerOnFirstRequest(t *testing.T) {
	r := New()
	defer func() { _ = r.Shutdown() }()

	l := r.Get("worker")
	require.NotNil(t, l)
	assert.Contains(t, r.Names(), "worker")
}

func TestGetReturnsSameLoggerForRepeatedName(t *testing.T) {
	r := New()
	defer func() { _ = r.Shutdown() }()

	first := r.Get("worker")
	second := r.Get("worker")
	assert.Same(t, first, second)
}

func TestGetIsSafeUnderConcurrentCreationOfSameName(t *testing.T) {
	r := New()
	defer func() { _ = r.Shutdown() }()

	const goroutines = 32
	results := make([]*logger.Logger, goroutines)
	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		i := i
		go func() {
			defer wg.Done()
			results[i] = r.Get("shared")
		}()
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		assert.Same(t, results[0], results[i])
	}
}

func TestShutdownClearsRegistryAndClosesLoggers(t *testing.T) {
	r := New()
	_ = r.Get("a")
	_ = r.Get("b")

	require.NoError(t, r.Shutdown())
	assert.Empty(t, r.Names())
}

func TestNamesIncludesRootAndNamedLoggers(t *testing.T) {
	r := New()
	defer func() { _ = r.Shutdown() }()

	r.Init()
	_ = r.Get("child")
	names := r.Names()
	assert.Contains(t, names, RootName)
	assert.Contains(t, names, "child")
}
