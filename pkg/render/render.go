// Package render produces the interpreter's help listings (§6 "Help
// rendering") and colorizes error output, using a builder-style writer.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aiseeq/cmdsh/pkg/bind"
)

// TextHelp renders the plain-text form: an alpha-sorted command listing,
// each with its aliases and description, followed by the registered
// options; a command's arguments appear only in its detail form. Hidden commands/options are omitted unless name resolves one
// exactly, in which case only its detail is rendered.
func TextHelp(reg *bind.Registry, name string) string {
	if name != "" {
		if cmd := reg.Command(name); cmd != nil {
			return textCommandDetail(cmd)
		}
		if opt := reg.Option(name); opt != nil {
			return textOptionDetail(opt)
		}
		return fmt.Sprintf("No help available for %q.\r\n", name)
	}

	var b strings.Builder
	b.WriteString("Commands:\r\n")
	for _, cmd := range reg.Commands() {
		if cmd.Hidden {
			continue
		}
		b.WriteString("  ")
		b.WriteString(commandSummaryLine(cmd))
		b.WriteString("\r\n")
	}

	b.WriteString("Options:\r\n")
	for _, opt := range reg.Options() {
		if opt.Hidden {
			continue
		}
		b.WriteString("  ")
		b.WriteString(optionSummaryLine(opt))
		b.WriteString("\r\n")
	}

	return b.String()
}

func commandSummaryLine(cmd *bind.Command) string {
	names := append([]string{cmd.Name}, cmd.Aliases...)
	line := strings.Join(names, ", ")
	if cmd.Description != "" {
		line += " — " + cmd.Description
	}
	return line
}

func optionSummaryLine(opt *bind.Option) string {
	names := append([]string{opt.Name}, opt.Aliases...)
	line := strings.Join(names, ", ")
	if opt.Description != "" {
		line += " — " + opt.Description
	}
	return line
}

func textCommandDetail(cmd *bind.Command) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\r\n", commandSummaryLine(cmd))
	for _, p := range cmd.Params {
		if p.IsInterpreter || p.IsStdIO || p.Hidden {
			continue
		}
		req := "optional"
		if p.Required {
			req = "required"
		}
		fmt.Fprintf(&b, "  %s (%s)\r\n", p.Name, req)
	}
	return b.String()
}

func textOptionDetail(opt *bind.Option) string {
	return fmt.Sprintf("%s = %v\r\n", opt.Name, opt.Get())
}

// HTMLHelp renders the content-only HTML form described in §6: an
// `<html>` root, one section per command, command names upper-cased, no
// styling attached.
func HTMLHelp(reg *bind.Registry) string {
	var b strings.Builder
	b.WriteString("<html><body>\n")

	cmds := reg.Commands()
	sort.Slice(cmds, func(i, j int) bool { return cmds[i].Name < cmds[j].Name })

	for _, cmd := range cmds {
		if cmd.Hidden {
			continue
		}
		fmt.Fprintf(&b, "<section><h1>%s</h1>\n", strings.ToUpper(cmd.Name))
		if cmd.Description != "" {
			fmt.Fprintf(&b, "<p>%s</p>\n", cmd.Description)
		}
		b.WriteString("<ul>\n")
		for _, p := range cmd.Params {
			if p.IsInterpreter || p.IsStdIO || p.Hidden {
				continue
			}
			fmt.Fprintf(&b, "<li>%s</li>\n", p.Name)
		}
		b.WriteString("</ul></section>\n")
	}

	b.WriteString("</body></html>\n")
	return b.String()
}
