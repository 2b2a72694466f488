// Package config loads the user's beniya settings once at startup. The
// resulting Config is never mutated afterwards.
package config

import (
	"errors"
	"fmt"
	iofs "io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/kk-code-lab/beniya/internal/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

const (
	appName        = "beniya"
	configFileName = "config.yml"
	// LangEnv selects the interface language. LANG is deliberately ignored.
	LangEnv = "BENIYA_LANG"
)

// Application maps a file-name glob to the command used to open it.
type Application struct {
	Match string `yaml:"match"`
	App   string `yaml:"app"`
}

// Config is the immutable runtime configuration.
type Config struct {
	Language           i18n.Lang
	Applications       []Application
	DefaultApplication string
	BaseDirectory      string
	Colors             map[string]string
	Keybinds           map[string][]string
	BookmarksFile      string
	LogFile            string
	LogLevel           string
	Path               string
}

type fileConfig struct {
	Language           string              `yaml:"language"`
	Applications       []Application       `yaml:"applications"`
	DefaultApplication string              `yaml:"default_application"`
	BaseDirectory      string              `yaml:"base_directory"`
	Colors             map[string]string   `yaml:"colors"`
	Keybinds           map[string][]string `yaml:"keybinds"`
	BookmarksFile      string              `yaml:"bookmarks_file"`
	LogFile            string              `yaml:"log_file"`
	LogLevel           string              `yaml:"log_level"`
}

// Env abstracts the process environment for tests.
type Env struct {
	Getenv  func(string) string
	HomeDir func() (string, error)
	Getwd   func() (string, error)
}

// OSEnv reads from the real process environment.
func OSEnv() Env {
	return Env{Getenv: os.Getenv, HomeDir: os.UserHomeDir, Getwd: os.Getwd}
}

// Overrides carries command-line settings that win over the file.
type Overrides struct {
	Language      string
	BaseDirectory string
	LogLevel      string
}

// DefaultApplications opens common text formats in VS Code.
func DefaultApplications() []Application {
	return []Application{
		{Match: "*.{txt,md,rb,py,js,html,css,json,xml,yaml,yml}", App: "code"},
	}
}

// DefaultColors returns the palette keyed by semantic role.
func DefaultColors() map[string]string {
	return map[string]string{
		"directory":      "blue",
		"file":           "white",
		"executable":     "green",
		"ruby":           "red",
		"script":         "yellow",
		"selected":       "silver",
		"selection_mark": "green",
		"header":         "white",
		"status":         "navy",
		"dialog_border":  "white",
		"dialog_title":   "aqua",
		"success":        "green",
		"warning":        "yellow",
		"error":          "red",
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/beniya/config.yml or its ~/.config
// equivalent.
func DefaultPath(env Env) (string, error) {
	if dir := env.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, appName, configFileName), nil
	}
	home, err := env.HomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".config", appName, configFileName), nil
}

// Load reads the YAML file at path. An empty path means DefaultPath; a
// missing file yields the defaults.
func Load(path string, env Env, overrides Overrides) (*Config, error) {
	if path == "" {
		p, err := DefaultPath(env)
		if err != nil {
			return nil, err
		}
		path = p
	}

	var raw fileConfig
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("cannot parse config %s: %w", path, err)
		}
	case errors.Is(err, iofs.ErrNotExist):
	default:
		return nil, fmt.Errorf("cannot read config %s: %w", path, err)
	}

	cfg, err := build(raw, env, overrides)
	if err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	cfg.Path = path
	return cfg, nil
}

func build(raw fileConfig, env Env, overrides Overrides) (*Config, error) {
	home, _ := env.HomeDir()

	lang, err := resolveLanguage(overrides.Language, env.Getenv(LangEnv), raw.Language)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Language:           lang,
		Applications:       DefaultApplications(),
		DefaultApplication: "open",
		Colors:             DefaultColors(),
		Keybinds:           map[string][]string{},
		LogLevel:           "info",
	}

	if len(raw.Applications) > 0 {
		cfg.Applications = append([]Application(nil), raw.Applications...)
	}
	for _, app := range cfg.Applications {
		if strings.TrimSpace(app.Match) == "" || strings.TrimSpace(app.App) == "" {
			return nil, fmt.Errorf("application rules need both match and app")
		}
	}
	if raw.DefaultApplication != "" {
		cfg.DefaultApplication = raw.DefaultApplication
	}
	for role, color := range raw.Colors {
		cfg.Colors[role] = color
	}
	for action, keys := range raw.Keybinds {
		cfg.Keybinds[action] = append([]string(nil), keys...)
	}

	base := firstNonEmpty(overrides.BaseDirectory, raw.BaseDirectory)
	if base == "" {
		if base, err = env.Getwd(); err != nil {
			return nil, fmt.Errorf("cannot determine working directory: %w", err)
		}
	}
	cfg.BaseDirectory = ExpandHome(base, home)

	cfg.BookmarksFile = ExpandHome(raw.BookmarksFile, home)
	if cfg.BookmarksFile == "" {
		cfg.BookmarksFile = filepath.Join(home, ".config", appName, "bookmarks.json")
	}

	cfg.LogFile = ExpandHome(raw.LogFile, home)
	if cfg.LogFile == "" {
		cfg.LogFile = defaultLogFile(env, home)
	}
	if level := firstNonEmpty(overrides.LogLevel, raw.LogLevel); level != "" {
		cfg.LogLevel = level
	}

	return cfg, nil
}

// resolveLanguage applies the precedence flag > BENIYA_LANG > file > English.
// The environment value may carry a region and encoding, e.g. ja_JP.UTF-8.
func resolveLanguage(flag, envValue, fileValue string) (i18n.Lang, error) {
	if flag != "" {
		return i18n.ParseLang(flag)
	}
	if lang, ok := matchLanguage(envValue); ok {
		return lang, nil
	}
	if fileValue != "" {
		return i18n.ParseLang(fileValue)
	}
	return i18n.DefaultLang, nil
}

var languageMatcher = language.NewMatcher([]language.Tag{language.English, language.Japanese})

func matchLanguage(value string) (i18n.Lang, bool) {
	value = strings.TrimSpace(value)
	if value == "" {
		return "", false
	}
	if i := strings.IndexAny(value, ".@"); i >= 0 {
		value = value[:i]
	}
	tag, err := language.Parse(strings.ReplaceAll(value, "_", "-"))
	if err != nil {
		return "", false
	}
	_, index, confidence := languageMatcher.Match(tag)
	if confidence == language.No {
		return "", false
	}
	return i18n.Languages[index], true
}

// ExpandHome replaces a leading ~ with home.
func ExpandHome(path, home string) string {
	if path == "~" {
		return home
	}
	if strings.HasPrefix(path, "~/") && home != "" {
		return filepath.Join(home, path[2:])
	}
	return path
}

func defaultLogFile(env Env, home string) string {
	if dir := env.Getenv("XDG_STATE_HOME"); dir != "" {
		return filepath.Join(dir, appName, appName+".log")
	}
	return filepath.Join(home, ".local", "state", appName, appName+".log")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
