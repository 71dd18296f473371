// Package manpage generates a roff-formatted man page for termkit.
//
// The page is built at runtime from the cobra command tree, the preview
// KeyRegistry and the compiled-in version information, so the
// documentation follows the code.
//
// Usage:
//
//	termkit man | man -l -
//	termkit man > ~/.local/share/man/man1/termkit.1
package manpage

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"gitlab.com/tinyland/lab/termkit/display/tui"
)

// Generate produces a complete man(1) page for the command tree rooted at
// root. The version, commit, and date parameters come from the build-time
// linker variables.
func Generate(root *cobra.Command, version, commit, date string) string {
	var b strings.Builder

	writeHeader(&b, root.Name(), version)
	writeName(&b, root)
	writeSynopsis(&b, root)
	writeDescription(&b, root)
	writeCommands(&b, root)
	writeOptions(&b, root)
	writeKeybindings(&b)
	writeDocumentFormat(&b)
	writeEnvironment(&b)
	writeFiles(&b)
	writeExitStatus(&b)
	writeFooter(&b, version, commit, date)

	return b.String()
}

// roffEscape escapes special roff characters in a string.
func roffEscape(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `-`, `\-`)
	s = strings.ReplaceAll(s, `.`, `\&.`)
	return s
}

func writeHeader(b *strings.Builder, name, version string) {
	month := time.Now().Format("January 2006")
	fmt.Fprintf(b, ".TH %s 1 \"%s\" \"%s %s\" \"User Commands\"\n",
		strings.ToUpper(name), month, name, version)
}

func writeName(b *strings.Builder, root *cobra.Command) {
	fmt.Fprintf(b, ".SH NAME\n%s \\- %s\n", roffEscape(root.Name()), roffEscape(root.Short))
}

func writeSynopsis(b *strings.Builder, root *cobra.Command) {
	fmt.Fprintf(b, ".SH SYNOPSIS\n.B %s\n\\fICOMMAND\\fR [\\fIOPTIONS\\fR]\n", roffEscape(root.Name()))
}

func writeDescription(b *strings.Builder, root *cobra.Command) {
	desc := root.Long
	if desc == "" {
		desc = root.Short
	}
	fmt.Fprintf(b, ".SH DESCRIPTION\n%s\n", roffEscape(desc))
}

// writeCommands lists every visible subcommand, depth first, with its own
// flags.
func writeCommands(b *strings.Builder, root *cobra.Command) {
	b.WriteString(".SH COMMANDS\n")
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		for _, sub := range c.Commands() {
			if !sub.IsAvailableCommand() {
				continue
			}
			if sub.Runnable() {
				fmt.Fprintf(b, ".TP\n.B %s\n%s\n", roffEscape(sub.UseLine()), roffEscape(sub.Short))
				sub.LocalNonPersistentFlags().VisitAll(func(f *pflag.Flag) {
					if f.Hidden {
						return
					}
					fmt.Fprintf(b, ".RS\n.TP\n.B %s\n%s\n.RE\n", flagName(f), roffEscape(f.Usage))
				})
			}
			walk(sub)
		}
	}
	walk(root)
}

func writeOptions(b *strings.Builder, root *cobra.Command) {
	b.WriteString(".SH OPTIONS\nThe following options apply to every command.\n")
	root.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		if f.Hidden {
			return
		}
		fmt.Fprintf(b, ".TP\n.B %s\n%s\n", flagName(f), roffEscape(f.Usage))
	})
}

func flagName(f *pflag.Flag) string {
	name := `\-\-` + roffEscape(f.Name)
	if f.Shorthand != "" {
		name = `\-` + f.Shorthand + ", " + name
	}
	if f.Value.Type() != "bool" {
		name += ` \fI` + strings.ToUpper(f.Value.Type()) + `\fR`
	}
	return name
}

func writeKeybindings(b *strings.Builder) {
	b.WriteString(`.SH KEYBINDINGS
The
.B preview
command accepts the following keys. Clicking a block name focuses it and
clicking [\-] or [+] changes the width.
`)
	reg := tui.DefaultRegistry()
	for _, cat := range []tui.KeyCategory{
		tui.CategoryNavigation, tui.CategoryWidth, tui.CategoryScroll, tui.CategorySystem,
	} {
		entries := reg.ByCategory(cat)
		if len(entries) == 0 {
			continue
		}
		fmt.Fprintf(b, ".SS %s\n", strings.ToUpper(string(cat[:1]))+string(cat[1:]))
		for _, e := range entries {
			keys := strings.Join(e.Binding.Keys(), ", ")
			fmt.Fprintf(b, ".TP\n.B %s\n%s\n", roffEscape(keys), roffEscape(e.Binding.Help().Desc))
		}
	}
}

func writeDocumentFormat(b *strings.Builder) {
	b.WriteString(`.SH DOCUMENT FORMAT
A document is a YAML file with a
.B width
(0 detects the terminal), a
.B color
mode and a list of
.BR blocks .
Each block holds exactly one of
.BR rule ,
.BR panel ,
.BR table ,
.B gauge
or
.BR sparkline .
.PP
.nf
width: 0
color: auto
blocks:
  \- rule: {title: Hosts, border: heavy}
  \- table:
      columns: [{header: Name}, {header: Status, align: right}]
      rows: [[web\-1, ok]]
.fi
`)
}

func writeEnvironment(b *strings.Builder) {
	b.WriteString(`.SH ENVIRONMENT
.TP
.B NO_COLOR
When set, color is disabled unless
.B \-\-color always
is given.
.TP
.B COLUMNS
Render width used when stdout is not a terminal.
`)
}

func writeFiles(b *strings.Builder) {
	b.WriteString(`.SH FILES
.TP
.I ~/.cache/termkit/
Default render cache directory, one JSON file per cached render.
`)
}

func writeExitStatus(b *strings.Builder) {
	b.WriteString(`.SH EXIT STATUS
.TP
.B 0
Success.
.TP
.B 1
The document could not be read, parsed or validated, or a flag was invalid.
`)
}

func writeFooter(b *strings.Builder, version, commit, date string) {
	fmt.Fprintf(b, ".SH VERSION\n%s (commit %s, built %s)\n",
		roffEscape(version), roffEscape(commit), roffEscape(date))
}
