// Command help prints usage for the simulation toolkit. Arguments are ignored.
package main

import (
	"fmt"
	"os"

	"github.com/brianbland/simhelp/pkg/help"
)

func main() {
	if err := help.Print(os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
