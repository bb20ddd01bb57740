package ring

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoundsCapacityToPowerOfTwo(t *testing.T) {
	b, err := New(5)
	require.NoError(t, err)
	assert.Equal(t, 8, b.Cap())

	b, err = New(1)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Cap())

	b, err = New(0)
	require.NoError(t, err)
	assert.Equal(t, 2, b.Cap())
}

func TestNewRejectsNegativeCapacity(t *testing.T) {
	_, err := New(-1)
	require.Error(t, err)
}

func TestPushPopFIFO(t *testing.T) {
	b, err := New(4)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		assert.True(t, b.Push(i))
	}

	for i := 0; i < 4; i++ {
		v, ok := b.Pop()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
}

func TestDropOnFull(t *testing.T) {
	b, err := New(4)
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		require.True(t, b.Push(i))
	}
	assert.False(t, b.Push(99))

	for i := 0; i < 4; i++ {
		v, ok := b.Pop()
		require.True(t, ok)
		assert.Equal(t, i, v)
	}
	_, ok := b.Pop()
	assert.False(t, ok)
}

func TestPopOnEmpty(t *testing.T) {
	b, err := New(4)
	require.NoError(t, err)
	_, ok := b.Pop()
	assert.False(t, ok)
}

func TestWrapAroundReuseAfterDrain(t *testing.T) {
	b, err := New(4)
	require.NoError(t, err)

	for round := 0; round < 100; round++ {
		for i := 0; i < 4; i++ {
			require.True(t, b.Push(round*10+i))
		}
		for i := 0; i < 4; i++ {
			v, ok := b.Pop()
			require.True(t, ok)
			assert.Equal(t, round*10+i, v)
		}
	}
}

// TestConcurrentLinearizability exercises P producers and C consumers against a
// single ring and checks that the multiset of popped values is exactly the
// multiset of values that reported a successful push.
func TestConcurrentLinearizability(t *testing.T) {
	const producers = 4
	const perProducer = 10000
	const capacity = 1024

	b, err := New(capacity)
	require.NoError(t, err)

	type tagged struct {
		producer int
		seq      int
	}

	var pushedMu sync.Mutex
	pushed := make(map[tagged]bool)

	var wg sync.WaitGroup
	for p := 0; p < producers; p++ {
		wg.Add(1)
		go func(p int) {
			defer wg.Done()
			for i := 0; i < perProducer; i++ {
				v := tagged{producer: p, seq: i}
				if b.Push(v) {
					pushedMu.Lock()
					pushed[v] = true
					pushedMu.Unlock()
				}
			}
		}(p)
	}

	popped := make(chan tagged, producers*perProducer)
	done := make(chan struct{})
	var consumerWg sync.WaitGroup
	for c := 0; c < 2; c++ {
		consumerWg.Add(1)
		go func() {
			defer consumerWg.Done()
			for {
				select {
				case <-done:
					// Drain whatever remains before exiting.
					for {
						v, ok := b.Pop()
						if !ok {
							return
						}
						popped <- v.(tagged)
					}
				default:
					if v, ok := b.Pop(); ok {
						popped <- v.(tagged)
					}
				}
			}
		}()
	}

	wg.Wait()
	close(done)
	consumerWg.Wait()
	close(popped)

	seen := make(map[tagged]bool)
	lastSeqByProducer := make(map[int]int, producers)
	for v := range popped {
		assert.False(t, seen[v], "value popped twice: %+v", v)
		seen[v] = true
		assert.Greater(t, v.seq, lastSeqByProducer[v.producer]-1)
		lastSeqByProducer[v.producer] = v.seq + 1
	}

	pushedMu.Lock()
	defer pushedMu.Unlock()
	assert.Equal(t, len(pushed), len(seen), "popped multiset must equal pushed multiset")
	for v := range seen {
		assert.True(t, pushed[v], "popped value %+v was never reported pushed", v)
	}
}

func TestLenNeverExceedsCapacity(t *testing.T) {
	b, err := New(4)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		b.Push(i)
	}
	assert.LessOrEqual(t, b.Len(), b.Cap())
}
