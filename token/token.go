package token

// Kind classifies a scanned run.
//
//   - Numeric — the run is a signed decimal literal and compares by magnitude.
//   - Text    — the run is plain text and compares through a collation.
//   - Empty   — the end-of-string marker; Begin == End == len(Source).
type Kind int

const (
	// Numeric marks a run matching the signed-decimal grammar.
	Numeric Kind = iota

	// Text marks a non-numeric run.
	Text

	// Empty marks the zero-width end-of-string token.
	Empty
)

// String returns the kind's name for debugging output.
func (k Kind) String() string {
	switch k {
	case Numeric:
		return "Numeric"
	case Text:
		return "Text"
	case Empty:
		return "Empty"
	default:
		return "Unknown"
	}
}

// Token is one scanned run: a half-open byte span [Begin, End) of Source.
//
// A Token references Source rather than copying from it, and is consumed
// immediately by the caller; it is never mutated or retained.
type Token struct {
	// Source is the string the token was cut from.
	Source string

	// Begin is the byte offset of the first byte of the run.
	Begin int

	// End is the byte offset one past the last byte of the run.
	End int

	// Kind classifies the run.
	Kind Kind
}

// Span returns the substring the token covers.
func (t Token) Span() string {
	return t.Source[t.Begin:t.End]
}
