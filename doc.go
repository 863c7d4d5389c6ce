// Package natorder sorts strings the way a human reads them — "item2"
// before "item10" — with locale-aware ordering for everything that is
// not a number.
//
// 🚀 What is natorder?
//
//	A small, allocation-light library that splits strings into numeric
//	and textual runs and compares them piecewise:
//		• Numeric runs compare by magnitude, at unbounded precision
//		• Textual runs compare through a pluggable, locale-aware collation
//		• Deterministic tie-breaks keep the order strictly total
//
// ✨ Why choose natorder?
//
//   - Human-expected order – "z2.doc" < "z10.doc" < "z100.doc"
//   - Locale-aware – inject any golang.org/x/text collator, or your own
//   - Signed decimals – "-1.1" < "0" < ".5" < "2" < "10"
//   - Concurrency-safe – one Comparator, many goroutines
//   - O(1) extra space – tokens are offsets, never copies
//
// Under the hood, everything is organized under two subpackages:
//
//	token/   — the scanner: maximal Numeric/Text runs over a string
//	natural/ — the Comparator, collation capabilities & sort helpers
//
// Quick example:
//
//	c := natural.New()
//	files := []string{"item2", "item10", "item1"}
//	c.Strings(files) // → [item1 item2 item10]
//
// See each package's doc.go for the full grammar and tie-break rules.
//
//	go get github.com/katalvlaran/natorder/natural
package natorder
