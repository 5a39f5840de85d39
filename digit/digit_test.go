package digit

import (
	"reflect"
	"testing"
)

var digitsTests = []struct {
	n    int64
	base int
	out  []int64
}{
	{0, 2, []int64{0}},
	{0, 10, []int64{0}},
	{0, 1000, []int64{0}},
	{1, 2, []int64{1}},
	{7, 10, []int64{7}},
	{10, 10, []int64{1, 0}},
	{101, 10, []int64{1, 0, 1}},
	{255, 16, []int64{15, 15}},
	{256, 16, []int64{1, 0, 0}},
	{8, 2, []int64{1, 0, 0, 0}},
	{58127, 2, []int64{1, 1, 1, 0, 0, 0, 1, 1, 0, 0, 0, 0, 1, 1, 1, 1}},
	{35, 36, []int64{35}},
	{36, 36, []int64{1, 0}},
	{999, 1000, []int64{999}},
	{1000, 1000, []int64{1, 0}},
	{9223372036854775807, 10, []int64{9, 2, 2, 3, 3, 7, 2, 0, 3, 6, 8, 5, 4, 7, 7, 5, 8, 0, 7}},
}

func TestDigits(t *testing.T) {
	for _, test := range digitsTests {
		out := Digits(test.n, test.base)
		if !reflect.DeepEqual(out, test.out) {
			t.Errorf("Digits(%d, %d) got %v, expected %v", test.n, test.base, out, test.out)
		}
	}
}

func TestDigitsNoLeadingZero(t *testing.T) {
	for _, test := range digitsTests {
		out := Digits(test.n, test.base)
		if len(out) == 0 {
			t.Errorf("Digits(%d, %d) returned an empty sequence", test.n, test.base)
			continue
		}
		if len(out) > 1 && out[0] == 0 {
			t.Errorf("Digits(%d, %d) got leading zero: %v", test.n, test.base, out)
		}
	}
}

var undigitsTests = []struct {
	ds   []int64
	base int
	out  int64
}{
	{nil, 10, 0},
	{[]int64{}, 2, 0},
	{[]int64{0}, 10, 0},
	{[]int64{1, 0, 1}, 10, 101},
	{[]int64{1, 4}, 16, 20},
	{[]int64{15, 15}, 16, 255},
	{[]int64{1, 1, 1}, 2, 7},
	// Digits outside [0, base) are deliberately not rejected; they just
	// contribute their value at their position.
	{[]int64{10}, 10, 10},
	{[]int64{1, 10}, 10, 20},
	{[]int64{99, 99}, 10, 1089},
	{[]int64{1, -1}, 10, 9},
	{[]int64{-1}, 2, -1},
}

func TestUndigits(t *testing.T) {
	for _, test := range undigitsTests {
		out := Undigits(test.ds, test.base)
		if out != test.out {
			t.Errorf("Undigits(%v, %d) got %d, expected %d", test.ds, test.base, out, test.out)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	values := []int64{0, 1, 2, 7, 10, 58127, 65535, 1 << 40, 9223372036854775807}
	bases := []int{2, 3, 10, 16, 36, 1000}
	for _, n := range values {
		for _, base := range bases {
			ds := Digits(n, base)
			for _, d := range ds {
				if d < 0 || d >= int64(base) {
					t.Errorf("Digits(%d, %d) digit %d out of range", n, base, d)
				}
			}
			if out := Undigits(ds, base); out != n {
				t.Errorf("Undigits(Digits(%d, %d)) got %d", n, base, out)
			}
		}
	}
}

func TestContractViolations(t *testing.T) {
	mustPanic := func(name string, f func()) {
		defer func() {
			if recover() == nil {
				t.Errorf("%s did not panic", name)
			}
		}()
		f()
	}
	mustPanic("Digits(-1, 10)", func() { Digits(-1, 10) })
	mustPanic("Digits(5, 1)", func() { Digits(5, 1) })
	mustPanic("Digits(5, 0)", func() { Digits(5, 0) })
	mustPanic("Digits(5, -2)", func() { Digits(5, -2) })
	mustPanic("Undigits([1], 1)", func() { Undigits([]int64{1}, 1) })
	mustPanic("Undigits(nil, 0)", func() { Undigits(nil, 0) })
}

var parityTests = []struct {
	n    int64
	odd  bool
	even bool
}{
	{0, false, true},
	{1, true, false},
	{2, false, true},
	{-1, true, false},
	{-2, false, true},
	{58127, true, false},
	{9223372036854775807, true, false},
}

func TestParity(t *testing.T) {
	for _, test := range parityTests {
		if out := IsOdd(test.n); out != test.odd {
			t.Errorf("IsOdd(%d) got %v", test.n, out)
		}
		if out := IsEven(test.n); out != test.even {
			t.Errorf("IsEven(%d) got %v", test.n, out)
		}
	}
}

var stringTests = []struct {
	n    int64
	base int
	out  string
}{
	{101, 10, "101"},
	{255, 16, "ff"},
	{-255, 16, "-ff"},
	{58127, 2, "1110001100001111"},
	{35, 36, "z"},
	{0, 2, "0"},
}

func TestString(t *testing.T) {
	for _, test := range stringTests {
		if out := String(test.n, test.base); out != test.out {
			t.Errorf("String(%d, %d) got %q, expected %q", test.n, test.base, out, test.out)
		}
		if out := AppendString([]byte("x="), test.n, test.base); string(out) != "x="+test.out {
			t.Errorf("AppendString(%d, %d) got %q", test.n, test.base, out)
		}
	}
}
