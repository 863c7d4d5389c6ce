package natural

import (
	"fmt"
	"slices"
)

// Less reports whether a orders before b in natural order.
func (c *Comparator) Less(a, b string) bool {
	return c.Compare(a, b) < 0
}

// Strings sorts s in place in natural order.
func (c *Comparator) Strings(s []string) {
	slices.SortFunc(s, c.Compare)
}

// StringsAreSorted reports whether s is already in natural order.
func (c *Comparator) StringsAreSorted(s []string) bool {
	return slices.IsSortedFunc(s, c.Compare)
}

// CompareStringer orders any two values by the natural order of their
// textual form. A nil Stringer orders after every non-nil one, matching
// ComparePtr.
func (c *Comparator) CompareStringer(a, b fmt.Stringer) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	}

	return c.Compare(a.String(), b.String())
}
