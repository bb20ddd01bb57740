package logconfig

import (
	"fmt"

	"github.com/AwakeLion-Robot-Lab/awakelion-logger/event"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/registry"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/sink"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/sink/console"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/sink/remote"
	"github.com/AwakeLion-Robot-Lab/awakelion-logger/sink/rotating"
)

// Apply configures r's named loggers (creating them through r.Get as
// needed) to match cfg: their threshold and attached sinks. It is
// additive — sinks already present on a logger before Apply runs are left
// alone. Every call builds and attaches a fresh set of the declared sinks
// to every logger in cfg; it does not check for sinks an earlier Apply
// attached, so applying the same logger's entry twice gives it two copies
// of each of its sinks.
func Apply(r *registry.Registry, cfg *Config) error {
	for name, lc := range cfg.Loggers {
		level, err := event.ParseLevel(lc.Threshold)
		if err != nil {
			return fmt.Errorf("logconfig: logger %q: %w", name, err)
		}

		l := r.Get(name)
		l.SetThreshold(level)

		for _, sc := range lc.Sinks {
			s, err := buildSink(sc)
			if err != nil {
				return fmt.Errorf("logconfig: logger %q: %w", name, err)
			}
			if err := l.AddSink(s); err != nil {
				return fmt.Errorf("logconfig: logger %q: %w", name, err)
			}
		}
	}
	return nil
}

func buildSink(sc SinkConfig) (sink.Sink, error) {
	switch sc.Type {
	case "console":
		if sc.Target == "stderr" {
			return console.New(console.WithTarget(console.Stderr)), nil
		}
		return console.New(), nil

	case "rotating":
		directory, name, extension := sc.Directory, sc.Name, sc.Extension
		if directory == "" {
			directory = "./logs"
		}
		if name == "" {
			name = "app"
		}
		if extension == "" {
			extension = "log"
		}
		opts := []rotating.Option{}
		if sc.MaxSizeMB > 0 {
			opts = append(opts, rotating.WithMaxSizeMB(sc.MaxSizeMB))
		}
		return rotating.New(directory, name, extension, opts...), nil

	case "remote":
		if sc.URL == "" {
			return nil, fmt.Errorf("remote sink requires url")
		}
		return remote.New(sc.URL), nil
	}
	return nil, fmt.Errorf("unknown sink type %q", sc.Type)
}
