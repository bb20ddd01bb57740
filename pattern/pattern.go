// Package pattern parses a printf-like layout string into an ordered list
// of render components, used by the console and rotating file sinks to lay
// out a line from an *event.Event.
//
// Grounded on the flag-driven, buffer-append serializer in
// _examples/lixenwraith-log/format.go and
// _examples/lixenwraith-log/formatter/formatter.go, generalized from a
// fixed set of boolean flags (FlagShowTimestamp, FlagShowLevel, ...) to an
// explicit pattern string, the way the specification's "pattern-to-component
// parser" collaborator requires.
package pattern

import (
	"strings"
)

// Kind identifies what a Component renders.
type Kind int

const (
	Literal Kind = iota
	Timestamp
	Level
	Message
	SourceFile
	SourceFunction
	SourceLine
	Goroutine
)

// Component is one piece of a parsed layout: either fixed text (Literal) or
// a placeholder with an optional argument (e.g. a time.Format layout for
// Timestamp).
type Component struct {
	Kind Kind
	Text string // literal text for Literal, time layout for Timestamp
}

// Default is the layout the teacher's default flags correspond to:
// timestamp, level, message, one per line.
const Default = "%t{2006-01-02T15:04:05.000Z07:00} [%l] %m"

// Parse compiles a layout string into an ordered component list.
//
// Recognized placeholders:
//
//	%t{golayout}  timestamp, rendered with the given time.Format layout
//	%t            timestamp, RFC3339Nano
//	%l            level, upper-case name
//	%m            message
//	%f            source file
//	%F            source function
//	%n            source line number
//	%g            goroutine id
//	%%            a literal percent sign
func Parse(layout string) []Component {
	var out []Component
	var literal strings.Builder

	flushLiteral := func() {
		if literal.Len() > 0 {
			out = append(out, Component{Kind: Literal, Text: literal.String()})
			literal.Reset()
		}
	}

	runes := []rune(layout)
	for i := 0; i < len(runes); i++ {
		if runes[i] != '%' || i == len(runes)-1 {
			literal.WriteRune(runes[i])
			continue
		}
		i++
		switch runes[i] {
		case '%':
			literal.WriteRune('%')
		case 't':
			flushLiteral()
			if i+1 < len(runes) && runes[i+1] == '{' {
				end := i + 2
				for end < len(runes) && runes[end] != '}' {
					end++
				}
				out = append(out, Component{Kind: Timestamp, Text: string(runes[i+2 : end])})
				if end < len(runes) {
					i = end
				} else {
					i = end - 1
				}
			} else {
				out = append(out, Component{Kind: Timestamp, Text: "2006-01-02T15:04:05.999999999Z07:00"})
			}
		case 'l':
			flushLiteral()
			out = append(out, Component{Kind: Level})
		case 'm':
			flushLiteral()
			out = append(out, Component{Kind: Message})
		case 'f':
			flushLiteral()
			out = append(out, Component{Kind: SourceFile})
		case 'F':
			flushLiteral()
			out = append(out, Component{Kind: SourceFunction})
		case 'n':
			flushLiteral()
			out = append(out, Component{Kind: SourceLine})
		case 'g':
			flushLiteral()
			out = append(out, Component{Kind: Goroutine})
		default:
			// Unrecognized placeholder: keep the percent and the letter
			// literally rather than erroring, matching the teacher's
			// tolerant-on-unknown-input style elsewhere in format.go.
			literal.WriteRune('%')
			literal.WriteRune(runes[i])
		}
	}
	flushLiteral()
	return out
}
