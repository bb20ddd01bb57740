// Package sanitizer provides a fluent, composable interface for sanitizing
// message text before a sink writes it, based on configurable rules using
// bitwise filter flags and transforms.
//
// Carried over from _examples/lixenwraith-log/sanitizer/sanitizer.go's
// filter/transform/policy core, trimmed of that file's format-specific
// Serializer type — line rendering now belongs to the pattern package,
// which the console and rotating file sinks share, so duplicating it here
// would leave two
// independent renderers to keep in sync for no reason.
package sanitizer

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"unicode"
	"unicode/utf8"
)

// Filter flags for character matching.
const (
	FilterNonPrintable uint64 = 1 << iota // runes not printable per strconv.IsPrint
	FilterControl                         // control characters (unicode.IsControl)
	FilterWhitespace                      // whitespace characters (unicode.IsSpace)
	FilterShellSpecial                    // shell metacharacters: ` $ ; | & > < ( ) #
)

// Transform flags for character transformation.
const (
	TransformStrip      uint64 = 1 << iota // removes the character
	TransformHexEncode                     // encodes UTF-8 bytes as "<XXYY>"
	TransformJSONEscape                    // escapes with JSON-style backslashes
)

// Policy is a pre-configured sanitization policy matched to one of the
// sinks' output formats.
type Policy string

const (
	PolicyRaw     Policy = "raw"     // no-op passthrough
	PolicyConsole Policy = "console" // strip non-printables before a terminal
	PolicyFile    Policy = "file"    // hex-encode non-printables written to disk
	PolicyJSON    Policy = "json"    // escape control characters for embedding in JSON
)

type rule struct {
	filter    uint64
	transform uint64
}

var policyRules = map[Policy][]rule{
	PolicyRaw:     {},
	PolicyConsole: {{filter: FilterNonPrintable, transform: TransformStrip}},
	PolicyFile:    {{filter: FilterNonPrintable, transform: TransformHexEncode}},
	PolicyJSON:    {{filter: FilterControl, transform: TransformJSONEscape}},
}

var filterCheckers = map[uint64]func(rune) bool{
	FilterNonPrintable: func(r rune) bool { return !strconv.IsPrint(r) },
	FilterControl:      unicode.IsControl,
	FilterWhitespace:   unicode.IsSpace,
	FilterShellSpecial: func(r rune) bool {
		switch r {
		case '`', '$', ';', '|', '&', '>', '<', '(', ')', '#':
			return true
		}
		return false
	},
}

// Sanitizer applies an ordered list of filter/transform rules to message
// text. The zero value has no rules and is a no-op passthrough.
type Sanitizer struct {
	rules []rule
	buf   []byte
}

// New creates an empty Sanitizer.
func New() *Sanitizer {
	return &Sanitizer{buf: make([]byte, 0, 256)}
}

// Rule appends a custom filter/transform pair; rules are tried in the order
// added, first match wins.
func (s *Sanitizer) Rule(filter, transform uint64) *Sanitizer {
	s.rules = append(s.rules, rule{filter: filter, transform: transform})
	return s
}

// Policy appends a pre-configured policy's rules.
func (s *Sanitizer) Policy(p Policy) *Sanitizer {
	s.rules = append(s.rules, policyRules[p]...)
	return s
}

// Sanitize applies every configured rule to data and returns the result.
func (s *Sanitizer) Sanitize(data string) string {
	s.buf = s.buf[:0]
	for _, r := range data {
		matched := false
		for _, rl := range s.rules {
			if matchesFilter(r, rl.filter) {
				applyTransform(&s.buf, r, rl.transform)
				matched = true
				break
			}
		}
		if !matched {
			s.buf = utf8.AppendRune(s.buf, r)
		}
	}
	return string(s.buf)
}

func matchesFilter(r rune, filterMask uint64) bool {
	for flag, checker := range filterCheckers {
		if (filterMask&flag) != 0 && checker(r) {
			return true
		}
	}
	return false
}

func applyTransform(buf *[]byte, r rune, transformMask uint64) {
	switch {
	case (transformMask & TransformStrip) != 0:
		// do nothing: the character is dropped

	case (transformMask & TransformHexEncode) != 0:
		var runeBytes [utf8.UTFMax]byte
		n := utf8.EncodeRune(runeBytes[:], r)
		*buf = append(*buf, '<')
		*buf = append(*buf, hex.EncodeToString(runeBytes[:n])...)
		*buf = append(*buf, '>')

	case (transformMask & TransformJSONEscape) != 0:
		switch r {
		case '\n':
			*buf = append(*buf, '\\', 'n')
		case '\r':
			*buf = append(*buf, '\\', 'r')
		case '\t':
			*buf = append(*buf, '\\', 't')
		case '\b':
			*buf = append(*buf, '\\', 'b')
		case '\f':
			*buf = append(*buf, '\\', 'f')
		case '"':
			*buf = append(*buf, '\\', '"')
		case '\\':
			*buf = append(*buf, '\\', '\\')
		default:
			if r < 0x20 || r == 0x7f {
				*buf = append(*buf, fmt.Sprintf("\\u%04x", r)...)
			} else {
				*buf = utf8.AppendRune(*buf, r)
			}
		}
	}
}
