// Command demo exercises the registry end to end: a named logger with a
// rotating file sink, logging through the xlog helpers, then a clean
// shutdown.
//
// Grounded on the teacher's example/sink/main.go and example/raw/main.go
// (construct a logger, attach sinks, log at a few levels, shut down),
// adapted to this module's registry and xlog call surface.
package main

import (
	"fmt"
	"os"

	"github.com/AwakeLion-Robot-Lab/awakelion-logger/registry"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/sink/rotating"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/xlog"
)

func main() {
	r := registry.New()
	defer func() {
		if err := r.Shutdown(); err != nil {
			fmt.Fprintln(os.Stderr, "shutdown:", err)
		}
	}()

	app := r.Get("app")
	if err := app.AddSink(rotating.New("./logs", "demo", "log")); err != nil {
		fmt.Fprintln(os.Stderr, "add sink:", err)
		os.Exit(1)
	}

	xlog.Info(app, "starting demo, pid=%d", os.Getpid())
	xlog.Debug(app, "this debug line only reaches the file sink if the threshold allows it")
	xlog.Warn(app, "disk usage at %d%%", 81)

	if err := app.Flush(); err != nil {
		fmt.Fprintln(os.Stderr, "flush:", err)
	}
}
