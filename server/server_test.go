package server

import (
	"bufio"
	"net"
	"testing"
)

var evalTests = []struct {
	in  string
	out string
}{
	{"digits 10 101", "1 0 1"},
	{"digits 2 58127", "1 1 1 0 0 0 1 1 0 0 0 0 1 1 1 1"},
	{"digits 16 255", "15 15"},
	{"digits 10 0", "0"},
	{"digits 1000 58127", "58 127"},
	{"undigits 10 1 0 1", "101"},
	{"undigits 16 1 4", "20"},
	{"undigits 16", "0"},
	{"undigits 10 1 10", "20"},
	{"parse 34.5", `34 ".5"`},
	{"parse -5abc", `-5 "abc"`},
	{"parse +5", `5 ""`},
	{"parse 12 34", `12 " 34"`},
	{"parse three", "ERR no leading decimal numeral"},
	{"parse -", "ERR no leading decimal numeral"},
	{"parse", "ERR no leading decimal numeral"},
	{"digits 1 5", "ERR usage: digits <base> <n>, base 2 or more"},
	{"digits ten 5", "ERR usage: digits <base> <n>, base 2 or more"},
	{"digits 10 -1", "ERR usage: digits <base> <n>, n 0 or more"},
	{"digits 10 5 junk", "ERR usage: digits <base> <n>, n 0 or more"},
	{"digits 10", "ERR usage: digits <base> <n>, n 0 or more"},
	{"undigits 1 1", "ERR usage: undigits <base> [digit ...], base 2 or more"},
	{"undigits 10 1 x", "ERR usage: undigits <base> [digit ...]"},
	{"bogus 1 2", "ERR unknown command"},
	{"", "ERR empty command"},
	{"   ", "ERR empty command"},
	{"  digits 10 7  ", "7"},
}

func TestEval(t *testing.T) {
	for _, test := range evalTests {
		out := Eval([]byte(test.in))
		if string(out) != test.out {
			t.Errorf("Eval(%q) got %q, expected %q", test.in, out, test.out)
		}
	}
}

func TestHandle(t *testing.T) {
	client, srv := net.Pipe()
	go Handle(srv)
	defer client.Close()

	r := bufio.NewReader(client)
	for _, test := range []struct{ in, out string }{
		{"digits 2 5\n", "1 0 1\n"},
		{"nonsense\n", "ERR unknown command\n"},
		{"parse 34.5\n", "34 \".5\"\n"},
	} {
		if _, err := client.Write([]byte(test.in)); err != nil {
			t.Fatalf("write %q: %v", test.in, err)
		}
		line, err := r.ReadString('\n')
		if err != nil {
			t.Fatalf("read reply to %q: %v", test.in, err)
		}
		if line != test.out {
			t.Errorf("request %q got reply %q, expected %q", test.in, line, test.out)
		}
	}
}
