// Package search drives the external finder tools: fzf for picking, rga for
// content search and zoxide for directory history. Every tool is probed
// before use and each output format has its own small parser.
package search

import (
	"errors"
	"fmt"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/kk-code-lab/beniya/internal/process"
)

const (
	ToolFzf    = "fzf"
	ToolRga    = "rga"
	ToolZoxide = "zoxide"

	// fzf exits with 130 when the picker is dismissed and 1 when nothing
	// matched.
	fzfCancelled = 130
	fzfNoMatch   = 1

	fileListCommand = "find . -type f"
	previewCommand  = "cat {}"
)

// ErrToolUnavailable is returned when a required program is not installed.
var ErrToolUnavailable = errors.New("tool unavailable")

// Tools runs the finder programs through a process.Runner.
type Tools struct {
	runner   process.Runner
	lookPath process.LookPathFunc
	isDir    func(string) bool
}

func NewTools(runner process.Runner, lookPath process.LookPathFunc, isDir func(string) bool) *Tools {
	if lookPath == nil {
		lookPath = exec.LookPath
	}
	return &Tools{runner: runner, lookPath: lookPath, isDir: isDir}
}

// Available reports whether tool can be found on PATH.
func (t *Tools) Available(tool string) bool {
	path, err := t.lookPath(tool)
	return err == nil && path != ""
}

func (t *Tools) require(tool string) error {
	if !t.Available(tool) {
		return fmt.Errorf("%s: %w", tool, ErrToolUnavailable)
	}
	return nil
}

// FindFile lets the user pick a file below dir with fzf. It returns the
// absolute path of the pick, or "" when the picker was dismissed.
func (t *Tools) FindFile(dir string) (string, error) {
	if err := t.require(ToolFzf); err != nil {
		return "", err
	}
	res, err := t.runner.Run(process.Command{
		Name:        ToolFzf,
		Args:        []string{"--preview", previewCommand},
		Dir:         dir,
		Env:         []string{"FZF_DEFAULT_COMMAND=" + fileListCommand},
		Interactive: true,
		Capture:     true,
	})
	if err != nil {
		return "", err
	}
	if picked := pickedLine(res); picked != "" {
		return resolveIn(dir, picked), nil
	}
	return "", nil
}

// SearchContent runs rga for query below dir and returns the raw match
// lines. No matches is not an error.
func (t *Tools) SearchContent(dir, query string) ([]string, error) {
	if err := t.require(ToolRga); err != nil {
		return nil, err
	}
	res, err := t.runner.Run(process.Command{
		Name: ToolRga,
		Args: []string{"--line-number", "--with-filename", "--no-heading", "--color=never", "--", query, "."},
		Dir:  dir,
	})
	if err != nil {
		return nil, err
	}
	if res.ExitCode > 1 {
		return nil, fmt.Errorf("%s exited with status %d", ToolRga, res.ExitCode)
	}
	return splitLines(res.Stdout), nil
}

// PickLine lets the user choose one of lines with fzf and returns it, or ""
// when dismissed.
func (t *Tools) PickLine(dir string, lines []string) (string, error) {
	if err := t.require(ToolFzf); err != nil {
		return "", err
	}
	res, err := t.runner.Run(process.Command{
		Name:        ToolFzf,
		Dir:         dir,
		Stdin:       process.StringPtr(strings.Join(lines, "\n") + "\n"),
		Interactive: true,
		Capture:     true,
	})
	if err != nil {
		return "", err
	}
	return pickedLine(res), nil
}

// ContentSearch combines SearchContent and PickLine. It returns the chosen
// match, ok=false when there was nothing to choose or the picker was
// dismissed, and the number of raw matches.
func (t *Tools) ContentSearch(dir, query string) (Match, int, bool, error) {
	lines, err := t.SearchContent(dir, query)
	if err != nil || len(lines) == 0 {
		return Match{}, 0, false, err
	}
	picked, err := t.PickLine(dir, lines)
	if err != nil || picked == "" {
		return Match{}, len(lines), false, err
	}
	m, ok := ParseContentMatch(picked)
	if !ok {
		return Match{}, len(lines), false, nil
	}
	m.Path = resolveIn(dir, m.Path)
	return m, len(lines), true, nil
}

// History returns zoxide's directory history, best first, keeping only
// directories that still exist.
func (t *Tools) History() ([]HistoryEntry, error) {
	if err := t.require(ToolZoxide); err != nil {
		return nil, err
	}
	res, err := t.runner.Run(process.Command{
		Name: ToolZoxide,
		Args: []string{"query", "--list", "--score"},
	})
	if err != nil {
		return nil, err
	}
	if res.ExitCode != 0 {
		// zoxide exits non-zero when its database is empty.
		return nil, nil
	}

	var entries []HistoryEntry
	for _, line := range splitLines(res.Stdout) {
		entry, ok := ParseHistoryLine(line)
		if !ok {
			continue
		}
		if t.isDir != nil && !t.isDir(entry.Path) {
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func pickedLine(res process.Result) string {
	if res.ExitCode == fzfCancelled || res.ExitCode == fzfNoMatch {
		return ""
	}
	return strings.TrimRight(res.Stdout, "\r\n")
}

func resolveIn(dir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(dir, path)
}

func splitLines(out string) []string {
	var lines []string
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}
	return lines
}
