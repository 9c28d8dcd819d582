package main

import (
	"fmt"
	"io"
	"os"

	"github.com/brimdata/calc/cmd/calc/root"
	"github.com/brimdata/calc/pkg/charm"
	"github.com/brimdata/calc/pkg/storage"
)

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}

// run executes calc with args, program name first, and returns the
// process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	charm.Output = stdout
	calc := root.NewSpec(root.Env{
		Program: args[0],
		Stdout:  stdout,
		Engine:  storage.NewLocalEngine(),
	})
	if err := calc.ExecRoot(args[1:]); err != nil {
		fmt.Fprintf(stderr, "Error: %s\n", err)
		return 1
	}
	return 0
}
