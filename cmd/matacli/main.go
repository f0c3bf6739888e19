// Command matacli is a thin harness exercising the mata NFA library end to
// end: build a small automaton from flat command-line flags, run one
// operation on it, and print the result as `.mata` or DOT text. It is
// deliberately outside the library's core, split cmd/main from
// internal/runner the way projectdiscovery's CLI tools are.
package main

import "github.com/matalib/mata/internal/runner"

func main() {
	opts := runner.ParseFlags()
	runner.Run(opts)
}
