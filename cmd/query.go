package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type queryCmd struct{}

func (*queryCmd) Name() string     { return "query" }
func (*queryCmd) Synopsis() string { return "query the stored accounts with a jsonpath expression" }
func (*queryCmd) Usage() string {
	return `studentportal query <jsonpath>

  Evaluates a jsonpath expression on the stored accounts, exactly as they are
  persisted, before any repair. Useful to find records that a login will fix.

Usage Examples:
$ studentportal query '$[*].studentNumber'
$ studentportal query '$[*].ledger[?(@.status == "Paid")].amount'

`
}

func (c *queryCmd) SetFlags(f *flag.FlagSet) {}

func (c *queryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Error: query takes exactly one jsonpath expression")
		return subcommands.ExitUsageError
	}

	m, closeStore, err := OpenPortal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	v, err := m.Store().Query(f.Arg(0))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
