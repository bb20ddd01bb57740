package sanitizer

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeNoRulesIsPassthrough(t *testing.T) {
	s := New()
	assert.Equal(t, "hello\x00world\n", s.Sanitize("hello\x00world\n"))
}

func TestRuleStripRemovesMatchedRunes(t *testing.T) {
	s := New().Rule(FilterNonPrintable, TransformStrip)
	assert.Equal(t, "cleantxt", s.Sanitize("clean\x00\x07txt"))
}

func TestRuleHexEncodeWrapsBytesInAngleBrackets(t *testing.T) {
	s := New().Rule(FilterNonPrintable, TransformHexEncode)
	assert.Equal(t, "test<00>data", s.Sanitize("test\x00data"))
}

func TestRuleHexEncodeMultiByteRune(t *testing.T) {
	s := New().Rule(FilterNonPrintable, TransformHexEncode)
	assert.Equal(t, "line1<c285>line2", s.Sanitize("line1line2"))
}

func TestRuleHexEncodePreservesPrintableUTF8(t *testing.T) {
	s := New().Rule(FilterNonPrintable, TransformHexEncode)
	assert.Equal(t, "Hello 世界 ✓", s.Sanitize("Hello 世界 ✓"))
}

func TestRuleJSONEscapeCommonControlChars(t *testing.T) {
	s := New().Rule(FilterControl, TransformJSONEscape)
	assert.Equal(t, `line1\nline2\ttab\rreturn`, s.Sanitize("line1\nline2\ttab\rreturn"))
}

func TestRuleJSONEscapeUnprintableControlFallsBackToUnicodeEscape(t *testing.T) {
	s := New().Rule(FilterControl, TransformJSONEscape)
	assert.Equal(t, `text\u0001\u001f`, s.Sanitize("text\x01\x1f"))
}

func TestRuleFirstMatchWins(t *testing.T) {
	s := New().
		Rule(FilterNonPrintable, TransformStrip).
		Rule(FilterControl, TransformHexEncode)
	assert.Equal(t, "ab", s.Sanitize("a\x00b"))
}

func TestPolicyRawIsNoOp(t *testing.T) {
	s := New().Policy(PolicyRaw)
	assert.Equal(t, "hello\x00world", s.Sanitize("hello\x00world"))
}

func TestPolicyConsoleStripsNonPrintable(t *testing.T) {
	s := New().Policy(PolicyConsole)
	assert.Equal(t, "hello world", s.Sanitize("hello\x00 world"))
}

func TestPolicyFileHexEncodesNonPrintable(t *testing.T) {
	s := New().Policy(PolicyFile)
	assert.Equal(t, "a<07>b", s.Sanitize("a\x07b"))
}

func TestPolicyJSONEscapesControlChars(t *testing.T) {
	s := New().Policy(PolicyJSON)
	assert.Equal(t, `say "hi"\n`, s.Sanitize(`say "hi"`+"\n"))
}

func TestSanitizeIsReusableAcrossCalls(t *testing.T) {
	s := New().Policy(PolicyConsole)
	first := s.Sanitize("a\x00b")
	second := s.Sanitize("c\x00d")
	assert.Equal(t, "ab", first)
	assert.Equal(t, "cd", second)
}

func BenchmarkSanitize(b *testing.B) {
	input := strings.Repeat("normal text\x00\n\t", 100)

	policies := []Policy{PolicyRaw, PolicyConsole, PolicyFile, PolicyJSON}
	for _, p := range policies {
		b.Run(string(p), func(b *testing.B) {
			s := New().Policy(p)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				_ = s.Sanitize(input)
			}
		})
	}
}
