package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "repairs every stored account into its canonical form"
}
func (*fmtCmd) Usage() string {
	return `studentportal fmt

  Repairs every stored account, as a login does for one account: ledger
  amounts are rewritten as "P5,000.00", and grade units are copied from the
  class schedule (3 when the subject is not scheduled). Changed accounts are
  saved back to the store.

Usage Examples:
$ studentportal fmt
$ studentportal -v fmt

`
}

func (p *fmtCmd) SetFlags(f *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, closeStore, err := OpenPortal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	if m.Store().Len() == 0 {
		fmt.Fprintf(os.Stderr, "Warning: no accounts found to format.\n")
		return subcommands.ExitSuccess
	}

	changed, err := m.Repair()
	for _, sn := range changed {
		fmt.Fprintf(os.Stderr, "Repaired account %q.\n", sn)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error saving repaired accounts: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "✅ %d of %d accounts repaired.\n", len(changed), m.Store().Len())
	return subcommands.ExitSuccess
}
