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
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"luit.eu/numeral/parse"
)

// parseCmd is the `numeral parse` command
var parseCmd = &cobra.Command{
	Use:   "parse <text>",
	Short: "Extract the leading decimal numeral from text",
	Long: `parse reads an optional sign and as many decimal digits as the text
leads with, printing the value and whatever came after it. Text that does not
start with a numeral is an error; a numeral that consumes all of the text
prints the value alone.`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		v, rest, err := parse.Parse(strings.Join(args, " "))
		if err != nil {
			fatal("no leading decimal numeral")
		}
		if rest == "" {
			fmt.Println(v)
			return
		}
		fmt.Printf("%d %s\n", v, color.New(color.Faint).Sprintf("%q", rest))
	},
}

func init() {
	rootCmd.AddCommand(parseCmd)
}
