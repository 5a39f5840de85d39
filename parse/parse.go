// Package parse extracts a leading decimal numeral from text, reporting the
// unconsumed remainder. It recognizes an optional + or - sign followed by one
// or more ASCII decimal digits, and stops at the first character that is not
// a digit.
package parse // import "luit.eu/numeral/parse"

import "errors"

// ErrSyntax is returned when the input does not begin with a decimal
// numeral. It is an ordinary, expected outcome for malformed input and the
// only error this package produces.
var ErrSyntax = errors.New("numeral/parse: no leading decimal numeral")

// Parse extracts the longest decimal numeral prefix of s. On success it
// returns the signed value and the suffix of s that did not participate in
// the numeral, which may be empty. A bare sign, an empty string, or a string
// not starting with a (possibly signed) digit fails with ErrSyntax; the sign
// is not part of the remainder in that case.
func Parse(s string) (v int64, rest string, err error) {
	return parse(s)
}

// ParseBytes is Parse for byte slices. The returned remainder aliases b.
func ParseBytes(b []byte) (v int64, rest []byte, err error) {
	return parse(b)
}

func parse[S ~string | ~[]byte](s S) (v int64, rest S, err error) {
	if len(s) == 0 {
		return 0, rest, ErrSyntax
	}
	switch s[0] {
	case '-':
		v, rest, err = parseUnsigned(s[1:])
		if err != nil {
			return 0, rest, err
		}
		return -v, rest, nil
	case '+':
		return parseUnsigned(s[1:])
	}
	return parseUnsigned(s)
}

func parseUnsigned[S ~string | ~[]byte](s S) (v int64, rest S, err error) {
	if len(s) == 0 || s[0] < '0' || s[0] > '9' {
		return 0, rest, ErrSyntax
	}
	i := 0
	for i < len(s) && '0' <= s[i] && s[i] <= '9' {
		v = v*10 + int64(s[i]-'0')
		i++
	}
	return v, s[i:], nil
}
