package cmd

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/etnz/portal/date"
	"github.com/etnz/portal/renderer"
	"github.com/google/subcommands"
)

type showCmd struct {
	credentials
	html string
}

func (*showCmd) Name() string     { return "show" }
func (*showCmd) Synopsis() string { return "display a section of the student portal" }
func (*showCmd) Usage() string {
	return `studentportal show -u <name_or_student_number> -p <password> [-html <file>] [<section>...]

  Displays sections of the portal, the dashboard by default.
  Sections: ` + strings.Join(renderer.Sections, ", ") + `

Usage Examples:
$ studentportal show -u 2024-0001 -p secret ledger
$ studentportal show -u "Ana Cruz" -p secret -html record.html record

`
}

func (c *showCmd) SetFlags(f *flag.FlagSet) {
	c.credentials.SetFlags(f)
	f.StringVar(&c.html, "html", "", "Write the sections as HTML to this file ('-' for stdout) instead of the terminal")
}

func (c *showCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	sections := f.Args()
	if len(sections) == 0 {
		sections = []string{renderer.SectionDashboard}
	}

	m, closeStore, status := c.open()
	if status != subcommands.ExitSuccess {
		return status
	}
	defer closeStore()

	if c.html == "" {
		for _, s := range sections {
			if err := printSection(m, s); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				return subcommands.ExitUsageError
			}
		}
		return subcommands.ExitSuccess
	}

	v := renderer.NewView(m.Current(), date.Today())
	var md strings.Builder
	for _, s := range sections {
		out, err := renderer.Render(s, v)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
		md.WriteString(out)
		md.WriteString("\n")
	}

	var w io.Writer = os.Stdout
	if c.html != "-" {
		file, err := os.Create(c.html)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error creating %q: %v\n", c.html, err)
			return subcommands.ExitFailure
		}
		defer file.Close()
		w = file
	}
	if err := renderer.HTML(w, md.String()); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
