package natural

import (
	"cmp"
	"strings"
)

// compareMagnitude orders two numeric spans by signed decimal magnitude at
// unbounded precision. Both spans are guaranteed by the tokenizer to match
// the signed-decimal grammar (optional '-', digits, at most one '.'), so
// parsing cannot fail here.
//
// The comparison works on the digit strings directly — leading zeros
// stripped from the integer part, trailing zeros from the fraction —
// which handles arbitrarily long runs without big-integer allocation.
func compareMagnitude(a, b string) int {
	negA, intA, fracA := splitDecimal(a)
	negB, intB, fracB := splitDecimal(b)

	// All spellings of zero ("-0", ".0", "0.000") share one magnitude;
	// the sign on a zero is ignored so -0 never orders below 0 here.
	zeroA := intA == "" && fracA == ""
	zeroB := intB == "" && fracB == ""
	switch {
	case zeroA && zeroB:
		return 0
	case zeroA:
		return sign(negB) // zero is above negatives, below positives
	case zeroB:
		return -sign(negA)
	case negA != negB:
		return -sign(negA)
	}

	r := compareAbs(intA, fracA, intB, fracB)
	if negA {
		return -r
	}

	return r
}

// splitDecimal normalizes a numeric span into a sign flag, the integer
// digits with leading zeros stripped, and the fraction digits with
// trailing zeros stripped.
func splitDecimal(s string) (neg bool, intPart, fracPart string) {
	if strings.HasPrefix(s, "-") {
		neg = true
		s = s[1:]
	}
	intPart = s
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i+1:]
	}

	return neg, strings.TrimLeft(intPart, "0"), strings.TrimRight(fracPart, "0")
}

// compareAbs orders two non-zero normalized magnitudes. With leading zeros
// gone, a longer integer part is strictly larger; equal lengths compare
// digit-wise. With trailing zeros gone, fractions compare byte-wise and a
// fraction extending past a shared prefix is strictly larger.
func compareAbs(intA, fracA, intB, fracB string) int {
	if r := cmp.Compare(len(intA), len(intB)); r != 0 {
		return r
	}
	if r := strings.Compare(intA, intB); r != 0 {
		return r
	}

	return strings.Compare(fracA, fracB)
}

// sign maps a negativity flag to the three-way value of 0 against it:
// +1 when neg (0 > negative), -1 otherwise (0 < positive).
func sign(neg bool) int {
	if neg {
		return 1
	}

	return -1
}
