package main

import (
	"fmt"
	"os"

	apppkg "github.com/kk-code-lab/beniya/internal/app"
	"github.com/kk-code-lab/beniya/internal/config"
	"github.com/kk-code-lab/beniya/internal/logging"
	"github.com/spf13/cobra"
)

type rootOptions struct {
	configPath string
	lang       string
	baseDir    string
	logLevel   string
}

func (o *rootOptions) load() (*config.Config, error) {
	return config.Load(o.configPath, config.OSEnv(), config.Overrides{
		Language:      o.lang,
		BaseDirectory: o.baseDir,
		LogLevel:      o.logLevel,
	})
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "beniya [PATH]",
		Short:         "Terminal file browser",
		Long:          "beniya is a two-pane terminal file browser with filtering, bulk operations and bookmarks.",
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			start := ""
			if len(args) == 1 {
				start = args[0]
			}
			return runBrowser(cmd, cfg, start)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/beniya/config.yml)")
	flags.StringVar(&opts.lang, "lang", "", "interface language (en, ja)")
	flags.StringVar(&opts.baseDir, "base-dir", "", "destination for bulk move and copy")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(newHealthCmd(opts))
	return cmd
}

func runBrowser(cmd *cobra.Command, cfg *config.Config, start string) error {
	logger, closer, err := logging.New(cfg.LogFile, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
	}
	defer func() {
		_ = closer.Close()
	}()

	app, err := apppkg.NewApplication(apppkg.Options{
		Config:    cfg,
		StartPath: start,
		Logger:    logger,
	})
	if err != nil {
		logger.WithError(err).Error("startup failed")
		return err
	}

	app.Run()
	_ = app.Close()

	fmt.Fprintln(cmd.OutOrStdout(), app.ExitMessage())
	if app.Interrupted() {
		_ = closer.Close()
		os.Exit(130)
	}
	return nil
}
