package pattern

import (
	"strconv"

	"github.com/AwakeLion-Robot-Lab/awakelion-logger/event"
)

// Render appends the formatted line for e, following components, to buf and
// returns the extended buffer. It does not append a trailing newline; sinks
// add their own line terminator so that Render can also be reused for
// single-field extraction (e.g. a remote sink picking just %m for a JSON
// field).
func Render(buf []byte, components []Component, e *event.Event) []byte {
	for _, c := range components {
		switch c.Kind {
		case Literal:
			buf = append(buf, c.Text...)
		case Timestamp:
			buf = e.Timestamp().AppendFormat(buf, c.Text)
		case Level:
			buf = append(buf, e.LevelString()...)
		case Message:
			buf = append(buf, e.Message()...)
		case SourceFile:
			buf = append(buf, e.Source().File...)
		case SourceFunction:
			buf = append(buf, e.Source().Function...)
		case SourceLine:
			buf = strconv.AppendInt(buf, int64(e.Source().Line), 10)
		case Goroutine:
			buf = strconv.AppendInt(buf, e.GoroutineID(), 10)
		}
	}
	return buf
}
