package grammar

import "strings"

// EndMarker is the reserved end-of-input terminal appended to every input
// stream and always present in Grammar.Terminals().
const EndMarker = "$"

// EpsilonMarker is the sentinel kept inside FIRST sets to denote
// nullability. It is never itself a grammar symbol; see FirstSets.FIRST.
const EpsilonMarker = "''"

// isEpsilonAlternative reports whether a raw alternative string (already
// trimmed) denotes the empty production: exactly "''" or the Greek letter
// "ε", per spec.md §4.1/§6.1.
func isEpsilonAlternative(alt string) bool {
	return alt == "''" || alt == "ε"
}

// isQuotedLiteral reports whether a raw right-hand-side token is a quoted
// literal like 'x', and if so returns its unquoted spelling.
func isQuotedLiteral(tok string) (spelling string, ok bool) {
	if len(tok) >= 2 && strings.HasPrefix(tok, "'") && strings.HasSuffix(tok, "'") {
		return tok[1 : len(tok)-1], true
	}
	return "", false
}

// normalizeSymbol resolves a raw right-hand-side token to the symbol it
// actually denotes: a quoted literal 'x' denotes the terminal spelled
// exactly x (spec.md §3); any other token denotes itself.
func normalizeSymbol(tok string) string {
	if spelling, ok := isQuotedLiteral(tok); ok {
		return spelling
	}
	return tok
}

// splitFields splits a string on runs of whitespace, discarding empty
// fields, matching the grammar text format's "space-separated sequence of
// symbols" rule (spec.md §4.1, §6.1).
func splitFields(s string) []string {
	return strings.Fields(s)
}
