package process

import (
	"runtime"
	"strings"
	"testing"
)

func TestExecRunnerCapturesOutputAndExitCode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	var r ExecRunner

	res, err := r.Run(Command{Name: "sh", Args: []string{"-c", "cat; echo done; exit 3"}, Stdin: StringPtr("input\n")})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if res.ExitCode != 3 {
		t.Fatalf("expected exit code 3, got %d", res.ExitCode)
	}
	if res.Stdout != "input\ndone\n" {
		t.Fatalf("unexpected stdout %q", res.Stdout)
	}
}

func TestExecRunnerUsesDir(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX shell")
	}
	dir := t.TempDir()
	res, err := ExecRunner{}.Run(Command{Name: "pwd", Dir: dir})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.HasSuffix(strings.TrimSpace(res.Stdout), dir[strings.LastIndex(dir, "/"):]) {
		t.Fatalf("expected to run in %s, got %q", dir, res.Stdout)
	}
}

func TestExecRunnerMissingProgram(t *testing.T) {
	if _, err := (ExecRunner{}).Run(Command{Name: "beniya-definitely-missing-tool"}); err == nil {
		t.Fatalf("expected error for missing program")
	}
}

func TestCommandString(t *testing.T) {
	c := Command{Name: "rga", Args: []string{"--line-number", "needle", "."}}
	if got := c.String(); got != "rga --line-number needle ." {
		t.Fatalf("unexpected String() %q", got)
	}
}
