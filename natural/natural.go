package natural

import (
	"errors"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/katalvlaran/natorder/token"
)

// ErrNilCollation indicates a Comparator was constructed with a nil
// collation capability.
var ErrNilCollation = errors.New("natural: collation must not be nil")

// Comparator compares strings in natural order using an injected Collation
// for the textual runs. It is immutable after construction and safe for
// concurrent Compare calls; each call keeps only two scan positions and
// the current token pair, so extra space is O(1) whatever the inputs.
type Comparator struct {
	coll Collation
}

// New returns a Comparator collating for the process default locale,
// resolved from LC_ALL, LC_COLLATE and LANG.
func New() *Comparator {
	return &Comparator{coll: ForTag(defaultTag())}
}

// NewForTag returns a Comparator collating for the given locale tag,
// passing options such as collate.IgnoreCase through to the collator.
func NewForTag(tag language.Tag, opts ...collate.Option) *Comparator {
	return &Comparator{coll: ForTag(tag, opts...)}
}

// NewWithCollation returns a Comparator using an explicit collation
// capability. coll must be safe for concurrent use and must not be nil;
// a nil coll returns ErrNilCollation.
func NewWithCollation(coll Collation) (*Comparator, error) {
	if coll == nil {
		return nil, ErrNilCollation
	}

	return &Comparator{coll: coll}, nil
}

// Compare returns a negative value if a orders before b in natural order,
// zero if they are equal, and a positive value otherwise. It is suitable
// for slices.SortFunc.
//
// The two strings are tokenized in lock step and decided pair by pair:
//
//  1. Different token kinds (including one string being exhausted): the
//     remainders of both strings, from the current tokens' starts, are
//     compared as plain text and that decides — the token walk does not
//     resume past a kind mismatch.
//  2. Two numeric runs compare by magnitude; equal magnitudes with
//     different spellings ("0.0" vs "0.00000") fall back to the literal
//     bytes so the order is strictly total.
//  3. Two text runs compare through the Collation; collation ties fall
//     back to the literal bytes the same way.
//
// Equal token pairs advance both positions; two strings are equal only by
// simultaneous exhaustion.
func (c *Comparator) Compare(a, b string) int {
	posA, posB := 0, 0
	for posA < len(a) || posB < len(b) {
		tokA := token.Next(a, posA)
		tokB := token.Next(b, posB)

		if tokA.Kind != tokB.Kind {
			return c.compareText(a[tokA.Begin:], b[tokB.Begin:])
		}

		spanA, spanB := tokA.Span(), tokB.Span()
		if tokA.Kind == token.Numeric {
			if r := compareMagnitude(spanA, spanB); r != 0 {
				return r
			}
		} else if r := c.coll.Compare(spanA, spanB); r != 0 {
			return r
		}

		// Primary comparison tied: disambiguate different spellings by
		// raw bytes, or advance when the spans are truly identical.
		if spanA != spanB {
			return strings.Compare(spanA, spanB)
		}
		posA, posB = tokA.End, tokB.End
	}

	return 0
}

// ComparePtr is Compare for optional strings: nil orders after every
// non-nil value, and two nils are equal.
func (c *Comparator) ComparePtr(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	return c.Compare(*a, *b)
}

// compareText orders two plain-text remainders: collation first, raw
// bytes on a collation tie.
func (c *Comparator) compareText(a, b string) int {
	if r := c.coll.Compare(a, b); r != 0 {
		return r
	}

	return strings.Compare(a, b)
}
