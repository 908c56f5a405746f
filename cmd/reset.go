package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type resetCmd struct {
	force bool
}

func (*resetCmd) Name() string     { return "reset" }
func (*resetCmd) Synopsis() string { return "delete every account and preference" }
func (*resetCmd) Usage() string {
	return `studentportal reset -force

  Deletes every account, the session and the theme preference from the store.
  This cannot be undone, hence the mandatory -force.

`
}

func (c *resetCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.force, "force", false, "Confirm the reset")
}

func (c *resetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if !c.force {
		fmt.Fprintln(os.Stderr, "Error: reset deletes all data, use -force to confirm")
		return subcommands.ExitUsageError
	}

	m, closeStore, err := OpenPortal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	n := m.Store().Len()
	if err := m.Reset(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "All data has been reset, %d accounts deleted.\n", n)
	return subcommands.ExitSuccess
}
