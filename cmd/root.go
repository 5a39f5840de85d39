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

package cmd // import "luit.eu/numeral/cmd"

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd is the `numeral` command
var rootCmd = &cobra.Command{
	Use:   "numeral",
	Short: "Radix-aware integer conversions on the command line",
	Long: `numeral splits integers into their digits in any radix, folds digit
sequences back into integers, and pulls leading decimal numerals out of
arbitrary text. The same conversions are available to other processes over
TCP through the serve subcommand.`,
}

// Execute activates the `numeral` command. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(64)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.numeral.yaml)")

	rootCmd.PersistentFlags().IntP("base", "b", 10, "Radix to convert with")
	viper.BindPFlag("base", rootCmd.PersistentFlags().Lookup("base"))
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" { // enable ability to specify config file via flag
		viper.SetConfigFile(cfgFile)
	}

	viper.SetConfigName(".numeral")
	viper.AddConfigPath("$HOME")
	viper.SetEnvPrefix("numeral")
	viper.AutomaticEnv()

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			// Probably no config found
		} else {
			fmt.Printf("Unable to read config: %v\n", err)
		}
	}
}

// fatal prints a message in red to stderr and exits with status 1.
func fatal(format string, a ...any) {
	color.New(color.FgRed).Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}

// baseFlag returns the configured radix, refusing anything below 2 so the
// digit package's contract panics stay out of reach of command-line input.
func baseFlag() int {
	base := viper.GetInt("base")
	if base < 2 {
		fatal("base must be at least 2, got %d", base)
	}
	return base
}
