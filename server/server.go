// Copyright © 2016 Luit van Drongelen <luit@luit.eu>
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.

// Package server serves numeral conversions over a newline-delimited TCP
// protocol. A request is one line:
//
//	digits <base> <n>
//	undigits <base> [digit ...]
//	parse <text>
//
// and the reply is one line: the space-separated digits, the folded integer,
// or the parsed value followed by the quoted remainder. A request that can't
// be served gets an "ERR <reason>" line; the connection stays open either
// way.
package server // import "luit.eu/numeral/server"

import (
	"bufio"
	"bytes"
	"fmt"
	"log"
	"net"
	"strconv"

	"luit.eu/numeral/digit"
	"luit.eu/numeral/parse"
)

// Handle serves the conversion protocol on conn until the client disconnects
// or the line scanner fails. It is meant to be run in its own goroutine, one
// per accepted connection.
func Handle(conn net.Conn) {
	defer conn.Close()
	s := bufio.NewScanner(conn)
	w := bufio.NewWriter(conn)
	for s.Scan() {
		w.Write(Eval(s.Bytes()))
		w.WriteByte('\n')
		if err := w.Flush(); err != nil {
			return
		}
	}
	if err := s.Err(); err != nil {
		log.Printf("client %v: %v", conn.RemoteAddr(), err)
	}
}

// Eval evaluates a single request line and returns the reply line, without
// trailing newline. Eval never fails: anything it can't serve becomes an ERR
// reply.
func Eval(line []byte) []byte {
	line = bytes.TrimSpace(line)
	verb := line
	var args []byte
	if i := bytes.IndexByte(line, ' '); i >= 0 {
		verb, args = line[:i], line[i+1:]
	}
	switch string(verb) {
	case "digits":
		return evalDigits(args)
	case "undigits":
		return evalUndigits(args)
	case "parse":
		return evalParse(args)
	case "":
		return errReply("empty command")
	}
	return errReply("unknown command")
}

func evalDigits(args []byte) []byte {
	base, rest, err := parse.ParseBytes(skipSpace(args))
	if err != nil || base < 2 {
		return errReply("usage: digits <base> <n>, base 2 or more")
	}
	n, rest, err := parse.ParseBytes(skipSpace(rest))
	if err != nil || n < 0 || len(skipSpace(rest)) != 0 {
		return errReply("usage: digits <base> <n>, n 0 or more")
	}
	ds := digit.Digits(n, int(base))
	out := make([]byte, 0, 2*len(ds))
	for i, d := range ds {
		if i > 0 {
			out = append(out, ' ')
		}
		out = strconv.AppendInt(out, d, 10)
	}
	return out
}

func evalUndigits(args []byte) []byte {
	base, rest, err := parse.ParseBytes(skipSpace(args))
	if err != nil || base < 2 {
		return errReply("usage: undigits <base> [digit ...], base 2 or more")
	}
	// Digits are deliberately unchecked against the base, matching
	// digit.Undigits. Sign and magnitude are up to the client.
	var ds []int64
	for rest = skipSpace(rest); len(rest) > 0; rest = skipSpace(rest) {
		var d int64
		d, rest, err = parse.ParseBytes(rest)
		if err != nil {
			return errReply("usage: undigits <base> [digit ...]")
		}
		ds = append(ds, d)
	}
	return strconv.AppendInt(nil, digit.Undigits(ds, int(base)), 10)
}

func evalParse(args []byte) []byte {
	v, rest, err := parse.ParseBytes(args)
	if err != nil {
		return errReply("no leading decimal numeral")
	}
	return []byte(fmt.Sprintf("%d %q", v, rest))
}

func errReply(reason string) []byte {
	return []byte("ERR " + reason)
}

func skipSpace(b []byte) []byte {
	for len(b) > 0 && b[0] == ' ' {
		b = b[1:]
	}
	return b
}
