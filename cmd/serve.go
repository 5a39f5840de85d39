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
	"net"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"luit.eu/numeral/server"
)

// serveCmd is the `numeral serve` command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve conversions over a line-oriented TCP protocol",
	Long: `serve listens for TCP connections and answers one conversion per
line: digits, undigits and parse requests as described in the server package.
Each connection is handled independently and stays open across malformed
requests.`,
	Run: func(cmd *cobra.Command, args []string) {
		addrstr := fmt.Sprintf("%s:%d", viper.GetString("bind"), viper.GetInt("port"))
		laddr, err := net.ResolveTCPAddr("tcp", addrstr)
		if err != nil {
			fatal("unable to use address %s as TCP address: %v", addrstr, err)
		}
		l, err := net.ListenTCP("tcp", laddr)
		if err != nil {
			fatal("unable to listen on %s: %v", laddr.String(), err)
		}
		defer l.Close()
		fmt.Printf("Listening on %v\n", laddr)
		for {
			c, err := l.AcceptTCP()
			if err != nil {
				fatal("accept: %v", err)
			}
			go server.Handle(c)
		}
	},
}

func init() {
	serveCmd.Flags().IP("bind", net.IPv4(127, 0, 0, 1), "IP address to bind to")
	viper.BindPFlag("bind", serveCmd.Flags().Lookup("bind"))

	serveCmd.Flags().IntP("port", "p", 7379, "Port to listen on")
	viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))

	rootCmd.AddCommand(serveCmd)
}
