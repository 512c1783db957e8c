// Command tokenconv converts amounts between a fixed set of crypto tokens
// using live USD prices.
package main

import (
	"os"

	"github.com/tokenconv/tokenconv/internal/cli"
	"github.com/tokenconv/tokenconv/pkg/version"
)

func main() {
	os.Exit(run())
}

func run() int {
	if err := cli.Execute(version.GetVersion()); err != nil {
		return 1
	}
	return 0
}
