// Command datacleaner serves a browser-based CSV exploration and
// cleaning tool.
package main

import (
	"os"

	"github.com/PaulBrytonRaj18/Data-cleaner/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
