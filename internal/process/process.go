// Package process is the single seam through which beniya runs external
// programs.
package process

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// Command describes one external program invocation.
type Command struct {
	Name string
	Args []string
	Dir  string
	Env  []string
	// Stdin is fed to the program when non-nil.
	Stdin *string
	// Interactive commands draw on the terminal and need it for themselves.
	Interactive bool
	// Capture keeps stdout of an interactive command in the Result instead
	// of sending it to the terminal. Non-interactive output is always kept.
	Capture bool
}

func (c Command) String() string {
	return strings.TrimSpace(c.Name + " " + strings.Join(c.Args, " "))
}

// Result is what a finished program left behind.
type Result struct {
	Stdout   string
	ExitCode int
}

// Runner executes commands synchronously.
type Runner interface {
	Run(cmd Command) (Result, error)
}

// LookPathFunc resolves an executable name.
type LookPathFunc func(string) (string, error)

// ExecRunner runs commands with os/exec. A non-zero exit is reported in the
// Result, not as an error.
type ExecRunner struct{}

func (ExecRunner) Run(c Command) (Result, error) {
	cmd := exec.Command(c.Name, c.Args...)
	cmd.Dir = c.Dir
	if len(c.Env) > 0 {
		cmd.Env = append(os.Environ(), c.Env...)
	}

	var tty *os.File
	if c.Interactive && runtime.GOOS != "windows" {
		if f, err := os.OpenFile("/dev/tty", os.O_RDWR, 0); err == nil {
			tty = f
			defer func() {
				_ = tty.Close()
			}()
		}
	}

	switch {
	case c.Stdin != nil:
		cmd.Stdin = strings.NewReader(*c.Stdin)
	case tty != nil:
		cmd.Stdin = tty
	case c.Interactive:
		cmd.Stdin = os.Stdin
	}
	if c.Interactive {
		cmd.Stderr = os.Stderr
		if tty != nil {
			cmd.Stderr = tty
		}
	}

	var stdout bytes.Buffer
	switch {
	case !c.Interactive || c.Capture:
		cmd.Stdout = &stdout
	case tty != nil:
		cmd.Stdout = tty
	default:
		cmd.Stdout = os.Stdout
	}

	err := cmd.Run()
	res := Result{Stdout: stdout.String()}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			res.ExitCode = exitErr.ExitCode()
			return res, nil
		}
		return res, fmt.Errorf("run %s: %w", c.Name, err)
	}
	return res, nil
}

// StringPtr is a convenience for Command.Stdin.
func StringPtr(s string) *string {
	return &s
}
