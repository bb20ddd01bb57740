// Command server is a tiny gnet echo server that logs through this
// module's compat.GnetAdapter, exercising the gnet dependency from the
// client side the way the teacher's example/gnet/main.go did.
//
// Grounded on _examples/lixenwraith-log/example/gnet/main.go's
// echoServer/gnet.Run shape, adapted to construct the adapter from a
// registry-owned logger instead of the teacher's package-level default
// logger.
package main

import (
	"fmt"
	"os"

	"github.com/panjf2000/gnet/v2"

	"github.com/AwakeLion-Robot-Lab/awakelion-logger/compat"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/registry"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/sink/console"
)

type echoServer struct {
	gnet.BuiltinEventEngine
}

func (es *echoServer) OnTraffic(c gnet.Conn) gnet.Action {
	buf, _ := c.Next(-1)
	_, _ = c.Write(buf)
	return gnet.None
}

func main() {
	r := registry.New()
	defer func() { _ = r.Shutdown() }()

	netLogger := r.Get("gnet")
	_ = netLogger.AddSink(console.New())

	adapter := compat.NewGnetAdapter(netLogger)

	err := gnet.Run(
		&echoServer{},
		"tcp://127.0.0.1:9000",
		gnet.WithMulticore(true),
		gnet.WithLogger(adapter),
		gnet.WithReusePort(true),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, "gnet: ", err)
		os.Exit(1)
	}
}
