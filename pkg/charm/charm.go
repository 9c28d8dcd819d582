// Package charm is minimilast CLI framework inspired by cobra and urfave/cli.
package charm

import (
	"errors"
	"flag"
	"io"
	"strings"
)

var (
	NeedHelp = errors.New("help")
	ErrNoRun = errors.New("no run method")
)

type Constructor func(Command, *flag.FlagSet) (Command, error)

type Command interface {
	Run([]string) error
}

type Spec struct {
	Name  string
	Usage string
	Short string
	Long  string
	New   Constructor
	// Hidden hides this command from help.
	Hidden bool
	// Hidden flags (comma-separated) marks these flags as hidden.
	HiddenFlags string
	// PassUnknownFlags ends flag parsing at the first undefined flag
	// instead of failing.  That flag and everything after it are
	// passed to Run as positional arguments.
	PassUnknownFlags bool
	children         []*Spec
	parent           *Spec
}

func (c *Spec) Add(child *Spec) {
	c.children = append(c.children, child)
	child.parent = c
}

func (c *Spec) Root() *Spec {
	for c.parent != nil {
		c = c.parent
	}
	return c
}

func (c *Spec) lookupSub(name string) *Spec {
	for _, child := range c.children {
		if name == child.Name {
			return child
		}
	}
	return nil
}

// ExecRoot parses args against s and its sub-commands and runs the command
// they select.  A request for help, whether by -h or by a command returning
// NeedHelp, prints help for the selected command to Output.
func (s *Spec) ExecRoot(args []string) error {
	p, rest, err := parse(s, args)
	if err == nil {
		err = p.run(rest)
	}
	if errors.Is(err, NeedHelp) {
		p, err := parseHelp(s, args)
		if err != nil {
			return err
		}
		displayHelp(Output, p, false)
		return nil
	}
	return err
}

func parse(spec *Spec, args []string) (path, []string, error) {
	inst, err := newInstance(nil, spec)
	if err != nil {
		return nil, nil, err
	}
	p := path{inst}
	rest, err := parseFlags(inst.flags, args, spec.PassUnknownFlags)
	if err != nil {
		return nil, nil, err
	}
	for len(rest) > 0 {
		child := p.last().spec.lookupSub(rest[0])
		if child == nil {
			break
		}
		inst, err = newInstance(p.last().command, child)
		if err != nil {
			return nil, nil, err
		}
		p = append(p, inst)
		if rest, err = parseFlags(inst.flags, rest[1:], child.PassUnknownFlags); err != nil {
			return nil, nil, err
		}
	}
	return p, rest, nil
}

// parseHelp finds the command that help was requested for, ignoring flags
// and any arguments past the last sub-command.
func parseHelp(spec *Spec, args []string) (path, error) {
	inst, err := newInstance(nil, spec)
	if err != nil {
		return nil, err
	}
	p := path{inst}
	for _, arg := range args {
		if strings.HasPrefix(arg, "-") {
			continue
		}
		child := p.last().spec.lookupSub(arg)
		if child == nil {
			break
		}
		if inst, err = newInstance(p.last().command, child); err != nil {
			return nil, err
		}
		p = append(p, inst)
	}
	return p, nil
}

func parseFlags(fs *flag.FlagSet, args []string, passUnknown bool) ([]string, error) {
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, NeedHelp
		}
		if passUnknown && strings.HasPrefix(err.Error(), undefinedFlag) {
			// The flag package consumes only the offending argument.
			return args[len(args)-len(fs.Args())-1:], nil
		}
		return nil, err
	}
	return fs.Args(), nil
}

const undefinedFlag = "flag provided but not defined: "
