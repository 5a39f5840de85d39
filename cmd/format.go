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

// formatCmd is the `numeral format` command
var formatCmd = &cobra.Command{
	Use:   "format <integer>",
	Short: "Print an integer as text in the configured base",
	Long: `format prints its argument as a single numeral in the configured
base, using lowercase letters for digits past 9. The argument itself is read
as decimal and may be negative. Unlike digits and undigits, format leans on
the native formatter, so the base is limited to 2 through 36.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		base := baseFlag()
		if base > 36 {
			fatal("format needs a base between 2 and 36, got %d", base)
		}
		n, rest, err := parse.Parse(args[0])
		if err != nil || rest != "" {
			fatal("not an integer: %q", args[0])
		}
		fmt.Println(digit.String(n, base))
	},
}

func init() {
	rootCmd.AddCommand(formatCmd)
}
