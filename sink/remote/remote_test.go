package remote

import (
	"encoding/json"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"

	"github.com/AwakeLion-Robot-Lab/awakelion-logger/event"
)

type capturingServer struct {
	mu      sync.Mutex
	batches [][]byte
}

func (c *capturingServer) handler(ctx *fasthttp.RequestCtx) {
	c.mu.Lock()
	c.batches = append(c.batches, append([]byte(nil), ctx.PostBody()...))
	c.mu.Unlock()
	ctx.SetStatusCode(fasthttp.StatusOK)
}

func TestAppendFlushesAtBatchSize(t *testing.T) {
	server := &capturingServer{}
	ln := fasthttputil.NewInmemoryListener()
	srv := &fasthttp.Server{Handler: server.handler}
	go func() { _ = srv.Serve(ln) }()
	defer ln.Close()

	s := New("http://remote/logs", WithBatchSize(2), WithFlushInterval(time.Hour))
	s.client.Dial = func(addr string) (net.Conn, error) { return ln.Dial() }

	require.NoError(t, s.Append(event.Capture(event.Info, "one", 0)))
	require.NoError(t, s.Append(event.Capture(event.Info, "two", 0)))

	var got [][]byte
	for i := 0; i < 50; i++ {
		server.mu.Lock()
		got = server.batches
		server.mu.Unlock()
		if len(got) > 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.Len(t, got, 1)

	var decoded []wireEvent
	require.NoError(t, json.Unmarshal(got[0], &decoded))
	require.Len(t, decoded, 2)
	assert.Equal(t, "one", decoded[0].Message)
	assert.Equal(t, "two", decoded[1].Message)

	require.NoError(t, s.Close())
}

func TestSetThresholdFiltersLowerLevelEvents(t *testing.T) {
	s := New("http://remote/logs", WithFlushInterval(time.Hour))
	s.SetThreshold(event.Warn)

	require.NoError(t, s.Append(event.Capture(event.Debug, "ignored", 0)))
	s.mu.Lock()
	pending := len(s.pending)
	s.mu.Unlock()
	assert.Equal(t, 0, pending)
}
