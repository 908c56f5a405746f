package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/portal"
	"github.com/google/subcommands"
)

type themeCmd struct {
	next bool
}

func (*themeCmd) Name() string     { return "theme" }
func (*themeCmd) Synopsis() string { return "display or change the portal theme" }
func (*themeCmd) Usage() string {
	return `studentportal theme [-next] [light|dark|blue|green]

  Without argument, displays the saved theme. With a theme name, saves it.
  -next saves the theme following the current one.

`
}

func (c *themeCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.next, "next", false, "Switch to the next theme")
}

func (c *themeCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() > 1 || (c.next && f.NArg() > 0) {
		fmt.Fprintln(os.Stderr, "Error: theme takes at most one theme name, and none with -next")
		return subcommands.ExitUsageError
	}

	m, closeStore, err := OpenPortal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	theme := m.Theme()
	switch {
	case c.next:
		theme = theme.Next()
	case f.NArg() == 1:
		theme, err = portal.ParseTheme(f.Arg(0))
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return subcommands.ExitUsageError
		}
	default:
		fmt.Println(theme)
		return subcommands.ExitSuccess
	}

	if err := m.SetTheme(theme); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Printf("Theme set to %s.\n", theme)
	return subcommands.ExitSuccess
}
