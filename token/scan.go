package token

import "fmt"

// Next scans value from pos and returns the token that starts there.
//
// The scan is a pure function of (value, pos): calling Next repeatedly,
// feeding each token's End back in as the next pos, partitions value into
// Numeric and Text runs and finishes with a single Empty token at the end.
//
// pos must lie in [0, len(value)]; anything else is a caller bug and
// panics immediately.
//
// Example:
//
//	t := token.Next("abc-1.5x", 0) // Text  "abc"
//	t = token.Next("abc-1.5x", 3)  // Numeric "-1.5"
//	t = token.Next("abc-1.5x", 7)  // Text  "x"
//	t = token.Next("abc-1.5x", 8)  // Empty ""
func Next(value string, pos int) Token {
	if pos < 0 || pos > len(value) {
		panic(fmt.Sprintf("token: position %d out of range [0, %d]", pos, len(value)))
	}
	if pos == len(value) {
		return Token{Source: value, Begin: pos, End: pos, Kind: Empty}
	}

	start, prefix := findNumericStart(value, pos)
	if start > pos {
		// Text up to the next numeric run, or to the end when there is none.
		return Token{Source: value, Begin: pos, End: start, Kind: Text}
	}
	return Token{Source: value, Begin: pos, End: extendNumeric(value, pos, prefix), Kind: Numeric}
}

// findNumericStart returns the first index i ≥ pos at which a numeric run
// could begin, together with the matched prefix length (1 for a digit,
// 2 for ".d" or "-d", 3 for "-.d"). It returns (len(value), 0) when no
// run starts before the end of the string.
func findNumericStart(value string, pos int) (start, prefix int) {
	for i := pos; i < len(value); i++ {
		if n := numericPrefix(value, i); n > 0 {
			return i, n
		}
	}
	return len(value), 0
}

// numericPrefix reports the length of the numeric-run prefix anchored at i,
// or 0 when no run starts there. A lone '-', '.' or "-." with no digit
// behind it does not start a run.
func numericPrefix(value string, i int) int {
	switch {
	case isDigit(value[i]):
		return 1
	case value[i] == '.' && i+1 < len(value) && isDigit(value[i+1]):
		return 2
	case value[i] == '-' && i+1 < len(value) && isDigit(value[i+1]):
		return 2
	case value[i] == '-' && i+2 < len(value) && value[i+1] == '.' && isDigit(value[i+2]):
		return 3
	default:
		return 0
	}
}

// extendNumeric consumes the remainder of a numeric run whose matched
// prefix of length prefix starts at pos: digits freely, plus at most one
// '.' over the whole run (counting one already spent inside the prefix).
// A second '.' terminates the run; it never belongs to it.
func extendNumeric(value string, pos, prefix int) int {
	dotUsed := (prefix == 2 && value[pos] == '.') || prefix == 3
	i := pos + prefix
	for i < len(value) {
		switch {
		case isDigit(value[i]):
		case value[i] == '.' && !dotUsed:
			dotUsed = true
		default:
			return i
		}
		i++
	}
	return i
}

// isDigit reports whether b is an ASCII decimal digit.
func isDigit(b byte) bool { return '0' <= b && b <= '9' }
