package cmd

import (
	"context"
	"flag"
	"path/filepath"
	"testing"

	"github.com/etnz/portal"
	"github.com/etnz/portal/date"
	"github.com/etnz/portal/storage"
	"github.com/google/subcommands"
)

// run parses args for c and executes it.
func run(t *testing.T, c subcommands.Command, args ...string) subcommands.ExitStatus {
	t.Helper()
	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("%s: cannot parse %v: %v", c.Name(), args, err)
	}
	return c.Execute(context.Background(), f)
}

// useTempStore points the global flags to a fresh dir store.
func useTempStore(t *testing.T) string {
	t.Helper()
	dir := filepath.Join(t.TempDir(), "store")
	*storeFile, *backend = dir, storage.BackendDir
	t.Cleanup(func() { *storeFile, *backend = "", "" })
	return dir
}

var signupArgs = []string{"-name", "Ana Cruz", "-n", "2024-0001", "-course", "BS Nursing", "-year", "2", "-email", "ana@example.com", "-p", "pw", "-confirm", "pw"}

func TestCommands(t *testing.T) {
	dir := useTempStore(t)

	steps := []struct {
		name string
		cmd  subcommands.Command
		args []string
		want subcommands.ExitStatus
	}{
		{"signup", &signupCmd{}, signupArgs, subcommands.ExitSuccess},
		{"signup twice", &signupCmd{}, signupArgs, subcommands.ExitFailure},
		{"signup with mismatching passwords", &signupCmd{}, []string{"-name", "Ben", "-n", "2", "-course", "BS Education", "-year", "1", "-email", "ben@example.com", "-p", "a", "-confirm", "b"}, subcommands.ExitFailure},
		{"signup with an unknown year", &signupCmd{}, []string{"-name", "Ben", "-n", "2", "-course", "BS Education", "-year", "9", "-email", "ben@example.com", "-p", "a", "-confirm", "a"}, subcommands.ExitUsageError},
		{"login", &loginCmd{}, []string{"-u", "2024-0001", "-p", "pw"}, subcommands.ExitSuccess},
		{"login with a wrong password", &loginCmd{}, []string{"-u", "2024-0001", "-p", "nope"}, subcommands.ExitFailure},
		{"login without credentials", &loginCmd{}, nil, subcommands.ExitFailure},
		{"show ledger as html", &showCmd{}, []string{"-u", "Ana Cruz", "-p", "pw", "-html", filepath.Join(t.TempDir(), "ledger.html"), "ledger"}, subcommands.ExitSuccess},
		{"show an unknown section", &showCmd{}, []string{"-u", "Ana Cruz", "-p", "pw", "settings"}, subcommands.ExitUsageError},
		{"fmt", &fmtCmd{}, nil, subcommands.ExitSuccess},
		{"query", &queryCmd{}, []string{"$[*].name"}, subcommands.ExitSuccess},
		{"query without path", &queryCmd{}, nil, subcommands.ExitUsageError},
		{"theme dark", &themeCmd{}, []string{"dark"}, subcommands.ExitSuccess},
		{"theme unknown", &themeCmd{}, []string{"neon"}, subcommands.ExitUsageError},
		{"theme next", &themeCmd{}, []string{"-next"}, subcommands.ExitSuccess},
		{"reset without force", &resetCmd{}, nil, subcommands.ExitUsageError},
	}
	for _, s := range steps {
		if got := run(t, s.cmd, s.args...); got != s.want {
			t.Fatalf("%s: exit status = %v, want %v", s.name, got, s.want)
		}
	}

	b, err := storage.OpenDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	st, err := portal.Open(b)
	if err != nil {
		t.Fatal(err)
	}
	if st.Len() != 1 {
		t.Errorf("store has %d accounts, want 1", st.Len())
	}
	if got := st.Theme(); got != portal.ThemeBlue {
		t.Errorf("theme = %q, want blue (next after dark)", got)
	}

	if got := run(t, &resetCmd{}, "-force"); got != subcommands.ExitSuccess {
		t.Fatalf("reset -force: exit status = %v", got)
	}
	st, _ = portal.Open(b)
	if st.Len() != 0 {
		t.Errorf("store has %d accounts after reset", st.Len())
	}
}

func TestTopicCommand(t *testing.T) {
	tests := []struct {
		args []string
		want subcommands.ExitStatus
	}{
		{nil, subcommands.ExitSuccess},
		{[]string{"-raw", "repair", "theme"}, subcommands.ExitSuccess},
		{[]string{"*"}, subcommands.ExitSuccess},
		{[]string{"nosuchtopic"}, subcommands.ExitFailure},
	}
	for _, tt := range tests {
		if got := run(t, &topicCmd{}, tt.args...); got != tt.want {
			t.Errorf("topic %v: exit status = %v, want %v", tt.args, got, tt.want)
		}
	}
}

func TestInvalidTestingToday(t *testing.T) {
	useTempStore(t)
	t.Setenv(date.TestingTodayEnv, "someday")
	if got := run(t, &signupCmd{}, signupArgs...); got != subcommands.ExitSuccess {
		t.Fatalf("signup: exit status = %v", got)
	}
	if got := run(t, &loginCmd{}, "-u", "2024-0001", "-p", "pw"); got != subcommands.ExitSuccess {
		t.Errorf("login: exit status = %v", got)
	}
}
