// The main package for the seolint executable.
package main

import (
	"github.com/seolint/seolint/cmd"
)

// main defers all execution to the Cobra CLI library.
func main() {
	cmd.Execute()
}
