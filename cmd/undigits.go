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

	"github.com/spf13/cobra"
	"luit.eu/numeral/digit"
	"luit.eu/numeral/parse"
)

// undigitsCmd is the `numeral undigits` command
var undigitsCmd = &cobra.Command{
	Use:   "undigits [digit ...]",
	Short: "Fold a digit sequence back into an integer",
	Long: `undigits reads its arguments as a digit sequence, most significant
first, and folds them into a single integer in the configured base. No
arguments folds to 0. Digits are not checked against the base: a digit at or
above it (or below zero) simply contributes its value at its position.`,
	Run: func(cmd *cobra.Command, args []string) {
		base := baseFlag()
		ds := make([]int64, len(args))
		for i, arg := range args {
			d, rest, err := parse.Parse(arg)
			if err != nil || rest != "" {
				fatal("not an integer: %q", arg)
			}
			ds[i] = d
		}
		fmt.Println(digit.Undigits(ds, base))
	},
}

func init() {
	rootCmd.AddCommand(undigitsCmd)
}
