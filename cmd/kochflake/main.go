// Command kochflake renders Koch snowflakes.
//
// Usage:
//
//	kochflake render --level 4 --output flake.png
//	kochflake view
//	kochflake points --level 2
//
// Flags can also be set with KOCH_* environment variables (for example
// KOCH_LINE_WIDTH=2) or in a config file passed with --config.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "kochflake:", err)
		os.Exit(1)
	}
}
