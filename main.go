// Command gotodir resolves directory aliases for a shell wrapper. It prints
// one result line on stdout; see internal/protocol for the format.
package main

import (
	"os"

	"gotodir/internal/cli"
)

func main() {
	os.Exit(cli.Run(os.Args[1:], os.Stdout, os.Stderr))
}
