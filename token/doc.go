// Package token splits a string into maximal runs of numeric and
// non-numeric text, one run per call, for natural-order comparison.
//
// 🚀 What is token?
//
//	A stateless scanner. Given a string and a position, Next returns the
//	run that starts there:
//	  • Numeric — a signed decimal literal: digits, optionally preceded
//	    by '-', with at most one '.' anywhere in the run
//	  • Text    — everything up to the next place a numeric run could start
//	  • Empty   — the end-of-string marker, exactly once, at len(value)
//
// A numeric run may start with a digit, ".5", "-5" or "-.5"; a lone '-',
// '.' or "-." with no digit behind it is ordinary text. Inside a run, a
// second '.' ends the run rather than erroring, so "1.2.3" scans as
// Numeric("1.2"), Numeric(".3").
//
// ✨ Key properties:
//
//   - Pure – Next is a function of (value, pos) only; no scanner state
//   - Partitioning – feeding each token's End back as the next pos walks
//     the whole string with no gaps and no overlaps
//   - Zero-copy – a Token carries byte offsets into the original string
//
// ⚙️ Usage:
//
//	for pos := 0; ; {
//	  t := token.Next(s, pos)
//	  if t.Kind == token.Empty {
//	    break
//	  }
//	  fmt.Println(t.Kind, t.Span())
//	  pos = t.End
//	}
//
// Passing a position outside [0, len(value)] is a programming error and
// panics; it is never clamped.
package token
