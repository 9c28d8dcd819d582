package charm

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/brimdata/calc/pkg/terminal"
	"github.com/kr/text"
)

// Output receives help text.
var Output io.Writer = os.Stdout

// splitFlags is like strings.Split with a comma and also trims whitespace
func splitFlags(flags string) []string {
	var out []string
	for _, flag := range strings.Split(flags, ",") {
		out = append(out, strings.TrimSpace(flag))
	}
	return out
}

// flagMap creates a map that maps a name to a boolean based on the existence
// of that name in the comma-separated string of flags.
func flagMap(flags string) map[string]bool {
	hidden := make(map[string]bool)
	for _, flag := range splitFlags(flags) {
		hidden[flag] = true
	}
	return hidden
}

func formatParagraph(body, tab string, lineWidth int) string {
	paragraphs := strings.Split(body, "\n\n")
	var chunks []string
	for _, paragraph := range paragraphs {
		var chunk string
		if len(paragraph) < lineWidth {
			chunk = strings.TrimRight(paragraph, " \t\n")
		} else {
			paragraph = strings.TrimSpace(paragraph)
			paragraph = text.Wrap(paragraph, lineWidth)
			lines := strings.Split(paragraph, "\n")
			chunk = strings.Join(lines, "\n"+tab)
		}
		chunks = append(chunks, chunk)
	}
	body = strings.Join(chunks, "\n\n"+tab)
	body = strings.TrimRight(body, " \t\n")
	return tab + body + "\n\n"
}

const tab = "    "

type helpWriter struct {
	w    io.Writer
	bold bool
}

func (h *helpWriter) header(heading string) string {
	if !h.bold {
		return heading
	}
	return "\033[1m" + heading + "\033[0m"
}

func (h *helpWriter) item(heading, body string) {
	fmt.Fprint(h.w, h.header(heading)+"\n"+tab+body+"\n\n")
}

func (h *helpWriter) desc(heading, body string) {
	body = tab + strings.TrimSpace(body) + "\n\n"
	lineWidth := terminal.Width() - len(tab) - 5
	if len(body) > lineWidth {
		body = formatParagraph(strings.TrimSpace(body), tab, lineWidth)
	}
	fmt.Fprint(h.w, h.header(heading)+"\n"+body)
}

func (h *helpWriter) list(heading string, lines []string) {
	body := strings.Join(lines, "\n"+tab)
	fmt.Fprint(h.w, h.header(heading)+"\n"+tab+body+"\n\n")
}

func getCommands(target *Spec, vflag bool) []string {
	var lines []string
	for _, cmd := range target.children {
		name := cmd.Name
		if cmd.Hidden {
			if !vflag {
				continue
			}
			name = "[" + name + "]"
		}
		lines = append(lines, name+" - "+cmd.Short)
	}
	return lines
}

func buildOptions(p path, vflag bool) []string {
	options := p.last().options(vflag)
	if len(options) == 0 {
		options = []string{"no flags for this command"}
	}
	// Flags of enclosing commands follow, each set headed by its command.
	for k := len(p) - 2; k >= 0; k-- {
		parentOptions := p[k].options(vflag)
		if len(parentOptions) == 0 {
			continue
		}
		options = append(options, "", "["+p[:k+1].pathname()+" flags]")
		options = append(options, parentOptions...)
	}
	return options
}

func displayHelp(w io.Writer, p path, vflag bool) {
	h := &helpWriter{w: w, bold: terminal.IsTerminal(w)}
	spec := p.last().spec
	h.item("NAME", spec.Name+" - "+spec.Short)
	h.desc("USAGE", spec.Usage)
	h.list("OPTIONS", buildOptions(p, vflag))
	if len(spec.children) > 0 {
		h.list("COMMANDS", getCommands(spec, vflag))
	}
	h.desc("DESCRIPTION", spec.Long)
}
