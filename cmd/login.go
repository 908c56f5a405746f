package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/portal"
	"github.com/etnz/portal/renderer"
	"github.com/google/subcommands"
)

// credentials are the login flags shared by the commands that need a session.
type credentials struct {
	identifier string
	password   string
}

func (c *credentials) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.identifier, "u", "", "Name or student number")
	f.StringVar(&c.password, "p", "", "Password")
}

// open opens the portal and logs in.
func (c *credentials) open() (*portal.SessionManager, func(), subcommands.ExitStatus) {
	m, closeStore, err := OpenPortal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return nil, nil, subcommands.ExitFailure
	}
	if _, err := login(m, c.identifier, c.password); err != nil {
		closeStore()
		if errors.Is(err, portal.ErrInvalidCredentials) {
			fmt.Fprintln(os.Stderr, "Invalid credentials. Please try again.")
		} else {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return nil, nil, subcommands.ExitFailure
	}
	return m, closeStore, subcommands.ExitSuccess
}

type loginCmd struct {
	credentials
}

func (*loginCmd) Name() string     { return "login" }
func (*loginCmd) Synopsis() string { return "log in and display the dashboard" }
func (*loginCmd) Usage() string {
	return `studentportal login -u <name_or_student_number> -p <password>

  Logs in with the name or the student number, repairs the account records
  if needed, and displays the dashboard: current balance, due date and GWA.

`
}

func (c *loginCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	m, closeStore, status := c.open()
	if status != subcommands.ExitSuccess {
		return status
	}
	defer closeStore()

	if err := printSection(m, renderer.SectionDashboard); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}
