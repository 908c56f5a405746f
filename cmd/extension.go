package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"github.com/etnz/portal"
)

const (
	EnvStore   = "STUDENT_PORTAL_STORE"
	EnvBackend = "STUDENT_PORTAL_BACKEND"
	EnvVerbose = "STUDENT_PORTAL_VERBOSE"
)

// RunExtension attempts to find and execute an external studentportal-<subcommand> binary.
// It returns (true, exitCode) if an extension was found and executed,
// and (false, 0) if no extension was found or executed.
func RunExtension(subcommand string, args []string) (bool, int) {
	externalCmdName := "studentportal-" + subcommand

	lp, err := exec.LookPath(externalCmdName)
	if err != nil {
		portal.Logger().WithError(err).Debugf("no external command %q", externalCmdName)
		return false, 0
	}

	cmd := exec.Command(lp, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	// Pass global flags as environment variables
	kind, path := StorePath()
	cmd.Env = os.Environ()
	cmd.Env = append(cmd.Env, EnvStore+"="+path)
	cmd.Env = append(cmd.Env, EnvBackend+"="+kind)
	cmd.Env = append(cmd.Env, EnvVerbose+"="+strconv.FormatBool(verbose()))

	if err := cmd.Run(); err != nil {
		var exitError *exec.ExitError
		if errors.As(err, &exitError) {
			if status, ok := exitError.Sys().(syscall.WaitStatus); ok {
				return true, status.ExitStatus()
			}
		}
		fmt.Fprintf(os.Stderr, "Error executing external command %q: %v\n", externalCmdName, err)
		return true, 1
	}
	return true, 0
}
