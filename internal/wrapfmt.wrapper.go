package internal

import "strings"

// WrapperKind identifies the delimiter style enclosing a placeholder.
// The numeric order is the match priority: lower values are tried first.
type WrapperKind int

// Wrapper kinds in match priority order
const (
	WrapperTripleCurly WrapperKind = iota + 1
	WrapperDollarCurly
	WrapperDoubleCurly
	WrapperHashCurly
	WrapperPercentCurly
	WrapperCurly
)

// Wrapper kind names used in logs, config files and CLI flags
const (
	WrapperNameTripleCurly  = "triple_curly"
	WrapperNameDollarCurly  = "dollar_curly"
	WrapperNameDoubleCurly  = "double_curly"
	WrapperNameHashCurly    = "hash_curly"
	WrapperNamePercentCurly = "percent_curly"
	WrapperNameCurly        = "curly"
	WrapperNameUnknown      = "unknown"
)

// wrapperMatcher recognises one delimiter pair
type wrapperMatcher struct {
	kind     WrapperKind
	open     string
	close    string
	excluded string // bytes that end the inner content
}

// matchers is the fixed priority list; longest delimiter first so that
// "{{{x}}}" never tokenizes as nested curly nodes.
var matchers = [...]wrapperMatcher{
	{kind: WrapperTripleCurly, open: "{{{", close: "}}}", excluded: ExcludedCurly},
	{kind: WrapperDollarCurly, open: "${", close: "}", excluded: ExcludedCurly},
	{kind: WrapperDoubleCurly, open: "{{", close: "}}", excluded: ExcludedCurly},
	{kind: WrapperHashCurly, open: "{#", close: "#}", excluded: ExcludedHash},
	{kind: WrapperPercentCurly, open: "{%", close: "%}", excluded: ExcludedPercent},
	{kind: WrapperCurly, open: "{", close: "}", excluded: ExcludedCurly},
}

// match tries the matcher at the start of s.
// It returns the inner text and the total length consumed.
func (m wrapperMatcher) match(s string) (string, int, bool) {
	if !strings.HasPrefix(s, m.open) {
		return "", 0, false
	}
	start := len(m.open)
	end := start
	for end < len(s) && strings.IndexByte(m.excluded, s[end]) < 0 {
		end++
	}
	if !strings.HasPrefix(s[end:], m.close) {
		return "", 0, false
	}
	return s[start:end], end + len(m.close), true
}

// AllWrapperKinds returns every wrapper kind in match priority order.
func AllWrapperKinds() []WrapperKind {
	kinds := make([]WrapperKind, 0, len(matchers))
	for _, m := range matchers {
		kinds = append(kinds, m.kind)
	}
	return kinds
}

// Valid reports whether k is a known wrapper kind.
func (k WrapperKind) Valid() bool {
	return k >= WrapperTripleCurly && k <= WrapperCurly
}

// Open returns the opening delimiter, or "" for an unknown kind.
func (k WrapperKind) Open() string {
	if !k.Valid() {
		return ""
	}
	return matchers[k-1].open
}

// Close returns the closing delimiter, or "" for an unknown kind.
func (k WrapperKind) Close() string {
	if !k.Valid() {
		return ""
	}
	return matchers[k-1].close
}

// Wrap encloses text in the kind's delimiters.
func (k WrapperKind) Wrap(text string) string {
	return k.Open() + text + k.Close()
}

// String returns the wrapper kind name
func (k WrapperKind) String() string {
	switch k {
	case WrapperTripleCurly:
		return WrapperNameTripleCurly
	case WrapperDollarCurly:
		return WrapperNameDollarCurly
	case WrapperDoubleCurly:
		return WrapperNameDoubleCurly
	case WrapperHashCurly:
		return WrapperNameHashCurly
	case WrapperPercentCurly:
		return WrapperNamePercentCurly
	case WrapperCurly:
		return WrapperNameCurly
	default:
		return WrapperNameUnknown
	}
}

// ParseWrapperKind parses a wrapper kind name (case-insensitive).
func ParseWrapperKind(s string) (WrapperKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case WrapperNameTripleCurly:
		return WrapperTripleCurly, true
	case WrapperNameDollarCurly:
		return WrapperDollarCurly, true
	case WrapperNameDoubleCurly:
		return WrapperDoubleCurly, true
	case WrapperNameHashCurly:
		return WrapperHashCurly, true
	case WrapperNamePercentCurly:
		return WrapperPercentCurly, true
	case WrapperNameCurly:
		return WrapperCurly, true
	default:
		return 0, false
	}
}
