package app

import (
	"fmt"
	"strings"

	"github.com/kk-code-lab/beniya/internal/i18n"
	"github.com/kk-code-lab/beniya/internal/process"
	"github.com/kk-code-lab/beniya/internal/search"
)

// HealthCheck is one line of the health report.
type HealthCheck struct {
	Label string
	OK    bool
	// Program is what was looked up on PATH.
	Program string
}

// RunHealthChecks probes the optional tools and the platform file opener.
func RunHealthChecks(c i18n.Catalog, lookPath process.LookPathFunc, goos string) []HealthCheck {
	tools := search.NewTools(nil, lookPath, nil)
	checks := []HealthCheck{
		{Label: c.Msg(i18n.HealthFzf), Program: search.ToolFzf, OK: tools.Available(search.ToolFzf)},
		{Label: c.Msg(i18n.HealthRga), Program: search.ToolRga, OK: tools.Available(search.ToolRga)},
		{Label: c.Msg(i18n.HealthZoxide), Program: search.ToolZoxide, OK: tools.Available(search.ToolZoxide)},
	}

	opener := systemOpenerProgram(goos)
	openerOK := opener == "" || tools.Available(opener)
	if opener == "" {
		opener = "explorer"
	}
	checks = append(checks, HealthCheck{Label: c.Msg(i18n.HealthOpener), Program: opener, OK: openerOK})
	return checks
}

// systemOpenerProgram names the program open-golang runs on goos. Windows
// uses a built-in and needs no lookup.
func systemOpenerProgram(goos string) string {
	switch goos {
	case "darwin":
		return "open"
	case "windows":
		return ""
	default:
		return "xdg-open"
	}
}

// FormatHealthReport renders checks for the terminal.
func FormatHealthReport(c i18n.Catalog, checks []HealthCheck) string {
	var b strings.Builder
	b.WriteString(c.Msg(i18n.HealthTitle) + "\n\n")

	failed := 0
	for _, check := range checks {
		if check.OK {
			fmt.Fprintf(&b, "✓ %s: %s\n", check.Label, c.Msg(i18n.HealthOK))
			continue
		}
		failed++
		fmt.Fprintf(&b, "✗ %s: %s %s\n", check.Label, check.Program, c.Msg(i18n.HealthToolNotFound))
	}

	b.WriteString("\n" + c.Msg(i18n.HealthSummary) + "\n")
	if failed == 0 {
		b.WriteString(c.Msg(i18n.HealthAllPassed) + "\n")
	} else {
		b.WriteString(c.Msg(i18n.HealthOptionalMissed) + "\n")
	}
	return b.String()
}
