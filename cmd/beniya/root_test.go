package main

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
)

func TestHealthCommandPrintsReport(t *testing.T) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"health", "--config", filepath.Join(t.TempDir(), "missing.yml"), "--lang", "ja"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("health: %v", err)
	}
	if !strings.Contains(out.String(), "beniya ヘルスチェック") {
		t.Fatalf("expected the localized title, got:\n%s", out.String())
	}
}

func TestRootRejectsUnsupportedLanguage(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetArgs([]string{"health", "--config", filepath.Join(t.TempDir(), "missing.yml"), "--lang", "fr"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an unsupported language error")
	}
}

func TestRootRejectsExtraArguments(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"a", "b"})

	if err := cmd.Execute(); err == nil {
		t.Fatalf("expected an error for two paths")
	}
}
