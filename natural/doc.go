// Package natural compares strings in natural order: embedded numbers by
// magnitude, everything else through a locale-aware collation.
//
// 🚀 What is natural?
//
//	A three-way comparator over the runs produced by the token package.
//	Two strings are walked in lock step, one token pair at a time:
//	  • Numeric vs Numeric — compare by signed decimal magnitude at
//	    unbounded precision; equal magnitudes fall back to the literal
//	    spelling so the order stays strictly total
//	  • Text vs Text       — compare through the injected Collation;
//	    collation ties fall back to raw bytes
//	  • Kind mismatch      — the walk stops and the full remainders of
//	    both strings are collated instead (see below)
//
// The kind-mismatch rule is deliberate: once one string continues with a
// number where the other continues with text, token-wise comparison has
// no meaningful pairing left, so the remainders decide as plain text.
//
// ✨ Key features:
//
//   - "item2" < "item10", "z2.doc" < "z100.doc"
//   - Signed decimals: "-1.1" < "0" < ".5" < "2"
//   - Arbitrarily long digit runs — no integer overflow, ever
//   - Pluggable Collation capability; golang.org/x/text collators built in
//   - Safe for concurrent Compare calls from many goroutines
//
// ⚙️ Usage:
//
//	c := natural.NewForTag(language.English)
//	slices.SortFunc(files, c.Compare)
//	// or simply:
//	c.Strings(files)
//
// Nil handling lives on the pointer adapter: ComparePtr orders nil after
// every non-nil string, so optional values sink to the end of a sort.
package natural
