// Package event defines the immutable log occurrence record shared by the
// ring buffer, the logger pipeline, and every sink, along with the call-site
// capture helper that builds one.
//
// Grounded on the level constants and string parsing in
// _examples/lixenwraith-log/constant.go and utility.go's Level(), generalized
// to the six-level total order the specification requires.
package event

import (
	"fmt"
	"strings"
)

// Level is a total-ordered log severity. The zero value is Debug.
type Level int32

const (
	Debug Level = iota
	Info
	Notice
	Warn
	Error
	Fatal
)

var levelNames = [...]string{
	Debug:  "DEBUG",
	Info:   "INFO",
	Notice: "NOTICE",
	Warn:   "WARN",
	Error:  "ERROR",
	Fatal:  "FATAL",
}

// String formats the level as its upper-case name.
func (l Level) String() string {
	if l < Debug || l > Fatal {
		return fmt.Sprintf("LEVEL(%d)", int32(l))
	}
	return levelNames[l]
}

// ParseLevel parses a case-insensitive level name. It returns an error for
// any name outside the six recognized levels.
func ParseLevel(name string) (Level, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "DEBUG":
		return Debug, nil
	case "INFO":
		return Info, nil
	case "NOTICE":
		return Notice, nil
	case "WARN", "WARNING":
		return Warn, nil
	case "ERROR":
		return Error, nil
	case "FATAL":
		return Fatal, nil
	default:
		return 0, fmt.Errorf("event: invalid level name %q (use debug, info, notice, warn, error, fatal)", name)
	}
}
