package root

import (
	"flag"
	"fmt"
	"io"

	"github.com/brimdata/calc/aggregate"
	"github.com/brimdata/calc/cli"
	"github.com/brimdata/calc/cli/logflags"
	"github.com/brimdata/calc/pkg/charm"
	"github.com/brimdata/calc/pkg/storage"
	"github.com/brimdata/calc/reducer"
)

// Env is what a Command needs from the process that runs it.
type Env struct {
	// Program names the executable in the usage message.
	Program string
	Stdout  io.Writer
	Engine  storage.Engine
}

func NewSpec(env Env) *charm.Spec {
	return &charm.Spec{
		Name:  "calc",
		Usage: "calc [options] <operation> <file_path>",
		Short: "compute the sum or mean of a file of numbers",
		Long: `
calc reads a file with one number per line and prints either the sum or the
arithmetic mean of those numbers.  The operation is "mean" or "sum" and is
matched without regard to case.

Leading and trailing whitespace is trimmed from each line.  Blank lines and
lines that do not parse as a floating point number are skipped and take no
part in either the sum or the count.  The mean of a file with no numbers is 0.

The file path may also be "-" for standard input, an http or https URL,
or an s3://bucket/key URI.  A file that is named "-" can be read as "./-".

If the file cannot be opened or read, calc prints the error and exits with
status 1.  No partial result is printed.`,
		New: func(parent charm.Command, f *flag.FlagSet) (charm.Command, error) {
			c := &Command{env: env}
			c.SetFlags(f)
			c.LogFlags.SetFlags(f)
			return c, nil
		},
		PassUnknownFlags: true,
	}
}

type Command struct {
	cli.Flags
	LogFlags logflags.Flags
	env      Env
}

// Invocation is a validated request to aggregate a file.
type Invocation struct {
	Operation reducer.Operation
	Path      string
}

// Interpret turns the process arguments, with the program name at index 0,
// into an Invocation.  If the arguments are incomplete or name an unknown
// operation, Interpret writes a message to w and returns false.  No file
// is touched either way.
func Interpret(args []string, w io.Writer) (Invocation, bool) {
	if len(args) < 3 {
		var program string
		if len(args) > 0 {
			program = args[0]
		}
		fmt.Fprintf(w, "Usage: %s <operation> <file_path>\n", program)
		fmt.Fprintln(w, "Operations: mean, sum")
		return Invocation{}, false
	}
	op, err := reducer.ParseOperation(args[1])
	if err != nil {
		fmt.Fprintln(w, "Invalid operation. Use 'mean' or 'sum'")
		return Invocation{}, false
	}
	return Invocation{Operation: op, Path: args[2]}, true
}

func (c *Command) Run(args []string) error {
	ctx, cleanup, err := c.Init(&c.LogFlags)
	if err != nil {
		return err
	}
	defer cleanup()
	defer c.LogFlags.Close()
	logger := c.LogFlags.Logger()
	inv, ok := Interpret(append([]string{c.env.Program}, args...), c.env.Stdout)
	if !ok {
		return nil
	}
	result, err := aggregate.New(c.env.Engine, logger).File(ctx, inv.Path, inv.Operation)
	if err != nil {
		return err
	}
	fmt.Fprintln(c.env.Stdout, result)
	return nil
}
