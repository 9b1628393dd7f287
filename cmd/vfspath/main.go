// Command vfspath is a thin illustrative driver over the path algebra and
// tree-delta packages: a canonicalize subcommand, a condense subcommand,
// and a delta dry-run that walks two local directories and logs the
// Editor call trace (shown with --log-level debug or trace). It is not a full working-copy client; spec.md names
// the CLI front-end as an external collaborator out of scope, and this
// exists only to give the library packages a runnable consumer.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
