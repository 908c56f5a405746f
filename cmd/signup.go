package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/etnz/portal"
	"github.com/google/subcommands"
)

type signupCmd struct {
	name          string
	studentNumber string
	course        string
	year          string
	email         string
	password      string
	confirm       string
}

func (*signupCmd) Name() string     { return "signup" }
func (*signupCmd) Synopsis() string { return "create a student account" }
func (*signupCmd) Usage() string {
	return `studentportal signup -name <name> -n <student_number> -course <course> -year <year> -email <email> -p <password> -confirm <password>

  Creates a student account. Its class schedule, grades, ledger, academic
  record and documents are generated from the course and the year level.
  The name and the student number must both be unused.

Usage Examples:
$ studentportal signup -name "Ana Cruz" -n 2024-0001 -course "BS Nursing" -year 2 -email ana@example.com -p secret -confirm secret

`
}

func (c *signupCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "name", "", "Full name")
	f.StringVar(&c.studentNumber, "n", "", "Student number")
	f.StringVar(&c.course, "course", "", "Course, one of: "+strings.Join(portal.Courses, ", ")+" (other courses get a generic curriculum)")
	f.StringVar(&c.year, "year", "", "Year level (1st Year, 2nd, 3...)")
	f.StringVar(&c.email, "email", "", "Email address")
	f.StringVar(&c.password, "p", "", "Password")
	f.StringVar(&c.confirm, "confirm", "", "Password confirmation")
}

func (c *signupCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	year, err := portal.ParseYearLevel(c.year)
	if err != nil {
		// left to the form validation
		year = portal.YearLevel(c.year)
	}

	m, closeStore, err := OpenPortal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	defer closeStore()

	a, err := m.Signup(portal.SignupForm{
		Name:            c.name,
		StudentNumber:   c.studentNumber,
		Course:          c.course,
		Year:            year,
		Email:           c.email,
		Password:        c.password,
		ConfirmPassword: c.confirm,
	})
	switch {
	case errors.Is(err, portal.ErrPasswordMismatch):
		fmt.Fprintln(os.Stderr, "Passwords do not match.")
		return subcommands.ExitFailure
	case errors.Is(err, portal.ErrDuplicateIdentity):
		fmt.Fprintln(os.Stderr, "User already exists with this name or student number.")
		return subcommands.ExitFailure
	case errors.Is(err, portal.ErrInvalidSignup):
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	case err != nil:
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Account created successfully! Please log in with %q or %q.\n", a.Name, a.StudentNumber)
	return subcommands.ExitSuccess
}
