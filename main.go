// abtrack - a command-line employee absence tracker.
package main

import (
	"os"

	"abtrack/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
