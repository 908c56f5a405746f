package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/portal"
	"github.com/etnz/portal/tui"
	"github.com/google/subcommands"
)

type tuiCmd struct{}

func (*tuiCmd) Name() string     { return "tui" }
func (*tuiCmd) Synopsis() string { return "open the interactive student portal" }
func (*tuiCmd) Usage() string {
	return `studentportal tui

  Opens the interactive portal: log in or sign up, then browse the dashboard,
  student record, class schedule, grades, ledger and documents.
  Keys: tab/shift+tab move between sections, t changes the theme,
  ctrl+l logs out, ctrl+c quits.

`
}

func (c *tuiCmd) SetFlags(f *flag.FlagSet) {}

func (c *tuiCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, closeStore, err := OpenPortal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	// Diagnostics would corrupt the screen.
	if !verbose() {
		portal.SetLogger(nil)
	}
	if err := tui.Run(m); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
