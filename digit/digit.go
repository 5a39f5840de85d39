// Package digit converts non-negative integers to and from their positional
// digit representation in an arbitrary radix.
package digit // import "luit.eu/numeral/digit"

import "strconv"

// Digits returns the base-b digits of n, most significant first. Every digit
// is in [0, base). The digits of 0 are [0]; any other value yields a sequence
// without leading zeros.
//
// Calling Digits with a negative n or a base below 2 is a programming error
// and panics. There is no upper bound on base.
func Digits(n int64, base int) []int64 {
	if n < 0 {
		panic("numeral/digit: Digits of negative value")
	}
	if base < 2 {
		panic("numeral/digit: base must be at least 2")
	}
	if n == 0 {
		return []int64{0}
	}
	// A 64-bit value has at most 64 digits (base 2). Fill from the back,
	// then copy out the used portion.
	var buf [64]int64
	b := int64(base)
	i := len(buf)
	for n > 0 {
		i--
		buf[i], n = n%b, n/b
	}
	ds := make([]int64, len(buf)-i)
	copy(ds, buf[i:])
	return ds
}

// Undigits folds a digit sequence back into a single integer, treating it as
// a base-b positional number: most significant digit first, accumulating
// acc*base + digit. An empty sequence yields 0.
//
// Digits are not checked against the base. A digit outside [0, base) simply
// contributes its value at its position, so Undigits inverts Digits only for
// sequences whose digits all lie in [0, base). Undigits panics if base is
// below 2.
func Undigits(ds []int64, base int) int64 {
	if base < 2 {
		panic("numeral/digit: base must be at least 2")
	}
	var v int64
	for _, d := range ds {
		v = v*int64(base) + d
	}
	return v
}

// IsOdd reports whether n is odd.
func IsOdd(n int64) bool {
	return n&1 == 1
}

// IsEven reports whether n is even.
func IsEven(n int64) bool {
	return n&1 == 0
}

// String formats n in the given base, 2 through 36, using lowercase letters
// for digits past 9. It defers entirely to strconv.FormatInt, including its
// panic on an out-of-range base.
func String(n int64, base int) string {
	return strconv.FormatInt(n, base)
}

// AppendString appends the base-b text of n to dst, as String would produce
// it, and returns the extended slice.
func AppendString(dst []byte, n int64, base int) []byte {
	return strconv.AppendInt(dst, n, base)
}
