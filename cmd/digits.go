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

package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"luit.eu/numeral/digit"
	"luit.eu/numeral/parse"
)

// digitsCmd is the `numeral digits` command
var digitsCmd = &cobra.Command{
	Use:   "digits <integer>",
	Short: "Split a non-negative integer into its digits",
	Long: `digits prints the digits of a non-negative integer in the configured
base, most significant first, separated by spaces. The digits of 0 are just
0; anything else prints without leading zeros.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		base := baseFlag()
		n, rest, err := parse.Parse(args[0])
		if err != nil || rest != "" {
			fatal("not an integer: %q", args[0])
		}
		if n < 0 {
			fatal("digits of a negative value: %d", n)
		}
		var out []byte
		for i, d := range digit.Digits(n, base) {
			if i > 0 {
				out = append(out, ' ')
			}
			out = strconv.AppendInt(out, d, 10)
		}
		fmt.Println(string(out))
	},
}

func init() {
	rootCmd.AddCommand(digitsCmd)
}
