package linker

import (
	"regexp"

	"doclink/internal/buffer"
)

// symbolChars are the word- and symbol-constituent characters allowed in a
// quoted reference.
const symbolChars = "-A-Za-z0-9_!#$%&*+./:<=>?@^~"

// refPattern is the composite reference pattern: an optional article or
// preposition, an optional disambiguating keyword captured into one named
// group per keyword class, then a quoted symbol. Leading delimiters are
// ` and ‘, trailing delimiters ' and ’. Matching is case-insensitive.
var refPattern = regexp.MustCompile(
	"(?i)" +
		"(?:" +
		"(?:\\b(?:a|an|the|this|that|its|your|of|for|to)[ \t\n]+)?" +
		"\\b(?:" +
		"(?P<variable>variable|option)" +
		"|(?P<function>function|command|call)" +
		"|(?P<face>face)" +
		"|(?P<symbol>symbol|program|property)" +
		"|(?P<definition>source[ \t\n]+(?:code[ \t\n]+)?(?:of|for))" +
		")[ \t\n]+" +
		")?" +
		"[`‘](?P<name>[" + symbolChars + "]+)['’]")

var (
	idxVariable   = refPattern.SubexpIndex("variable")
	idxFunction   = refPattern.SubexpIndex("function")
	idxFace       = refPattern.SubexpIndex("face")
	idxSymbol     = refPattern.SubexpIndex("symbol")
	idxDefinition = refPattern.SubexpIndex("definition")
	idxName       = refPattern.SubexpIndex("name")
)

// Matcher yields MatchRecords over one text snapshot, left to right,
// non-overlapping. It is lazy and restartable: construct it at any offset.
type Matcher struct {
	text string
	pos  int
}

// NewMatcher creates a matcher over text starting at offset start.
func NewMatcher(text string, start int) *Matcher {
	if start < 0 {
		start = 0
	}
	return &Matcher{text: text, pos: start}
}

// Pos returns the current scan offset.
func (m *Matcher) Pos() int { return m.pos }

// Next returns the next match, or ok=false at end of text. The matcher
// advances past the whole match regardless of what the caller does with it.
func (m *Matcher) Next() (MatchRecord, bool) {
	if m.pos >= len(m.text) {
		return MatchRecord{}, false
	}

	loc := refPattern.FindStringSubmatchIndex(m.text[m.pos:])
	if loc == nil {
		m.pos = len(m.text)
		return MatchRecord{}, false
	}

	group := func(i int) (int, int, bool) {
		s, e := loc[2*i], loc[2*i+1]
		if s < 0 {
			return 0, 0, false
		}
		return m.pos + s, m.pos + e, true
	}

	start, end, _ := group(idxName)
	rec := MatchRecord{
		Span:    buffer.Span{Start: start, End: end},
		Symbol:  m.text[start:end],
		Keyword: decodeKeyword(group),
	}

	m.pos += loc[1]
	return rec, true
}

// decodeKeyword maps the first matched keyword group to its class.
func decodeKeyword(group func(int) (int, int, bool)) ContextKeyword {
	switch {
	case matched(group, idxVariable):
		return KeywordVariable
	case matched(group, idxFunction):
		return KeywordFunction
	case matched(group, idxFace):
		return KeywordFace
	case matched(group, idxSymbol):
		return KeywordSymbol
	case matched(group, idxDefinition):
		return KeywordDefinition
	default:
		return KeywordNone
	}
}

func matched(group func(int) (int, int, bool), idx int) bool {
	_, _, ok := group(idx)
	return ok
}
