// Package cmd implements the CLI application of the student portal.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/etnz/portal"
	"github.com/etnz/portal/date"
	"github.com/etnz/portal/renderer"
	"github.com/etnz/portal/storage"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&signupCmd{}, "account")
	c.Register(&loginCmd{}, "account")
	c.Register(&showCmd{}, "account")
	c.Register(&tuiCmd{}, "account")

	c.Register(&themeCmd{}, "preferences")

	c.Register(&topicCmd{}, "help")

	c.Register(&fmtCmd{}, "maintenance")
	c.Register(&queryCmd{}, "maintenance")
	c.Register(&resetCmd{}, "maintenance")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var storeFile = flag.String("store", "", "Path to the portal store (env "+EnvStore+", defaults to the user config directory)")
var backend = flag.String("backend", "", "Storage backend, bolt or dir (env "+EnvBackend+", defaults to bolt)")

// Verbose enables the diagnostics of the data layer.
var Verbose = flag.Bool("v", false, "Verbose output: log record repairs and storage events (env "+EnvVerbose+")")

// LoadEnv reads an optional .env file of the working directory into the
// environment. Variables already set win.
func LoadEnv() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Warning: cannot read .env: %v\n", err)
	}
}

// setting returns the flag value, else the environment variable, else def.
func setting(flagValue, env, def string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(env); v != "" {
		return v
	}
	return def
}

func verbose() bool {
	if *Verbose {
		return true
	}
	v, _ := strconv.ParseBool(os.Getenv(EnvVerbose))
	return v
}

// configureLogging sets the data layer logger from the global flags.
func configureLogging() {
	l := logrus.New()
	l.SetOutput(os.Stderr)
	l.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	l.SetLevel(logrus.WarnLevel)
	if verbose() {
		l.SetLevel(logrus.DebugLevel)
	}
	portal.SetLogger(l)
	if err := date.CheckTestingToday(); err != nil {
		l.WithError(err).Warn("using the current date")
	}
}

// StorePath returns the store location and backend selected by the flags and the environment.
func StorePath() (kind, path string) {
	kind = setting(*backend, EnvBackend, storage.BackendBolt)
	path = setting(*storeFile, EnvStore, storage.DefaultPath(kind))
	return kind, path
}

// OpenPortal opens the store and returns a session manager over it.
// The returned close function must be called once done.
func OpenPortal() (*portal.SessionManager, func(), error) {
	configureLogging()
	kind, path := StorePath()
	b, err := storage.Open(kind, path)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open the %s store %q: %w", kind, path, err)
	}
	closer := func() {
		if err := b.Close(); err != nil {
			fmt.Fprintf(os.Stderr, "Error closing the store %q: %v\n", path, err)
		}
	}
	st, err := portal.Open(b)
	if err != nil {
		closer()
		return nil, nil, err
	}
	return portal.NewSessionManager(st, nil), closer, nil
}

// login authenticates with the credentials of the command line.
func login(m *portal.SessionManager, identifier, password string) (*portal.Account, error) {
	if identifier == "" || password == "" {
		return nil, errors.New("both -u and -p are required, the session is cleared on every start")
	}
	return m.Login(identifier, password)
}

// printSection renders a section of the session account on the terminal.
func printSection(m *portal.SessionManager, section string) error {
	a := m.Current()
	if a == nil {
		return errors.New("no session, log in first")
	}
	md, err := renderer.Render(section, renderer.NewView(a, date.Today()))
	if err != nil {
		return err
	}
	printMarkdown(md, m.Theme())
	return nil
}

// glamourStyles maps the portal themes to terminal styles.
var glamourStyles = map[portal.Theme]string{
	portal.ThemeLight: "light",
	portal.ThemeDark:  "dark",
	portal.ThemeBlue:  "tokyo-night",
	portal.ThemeGreen: "dracula",
}

// printMarkdown prints md on the terminal, styled for the theme.
func printMarkdown(md string, theme portal.Theme) {
	style, ok := glamourStyles[theme]
	if !ok {
		style = "light"
	}
	r, err := glamour.NewTermRenderer(glamour.WithStandardStyle(style), glamour.WithWordWrap(120))
	if err != nil {
		fmt.Print(md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		fmt.Print(md)
		return
	}
	fmt.Print(out)
}
