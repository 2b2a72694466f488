package main

import (
	"fmt"
	"os/exec"
	"runtime"

	apppkg "github.com/kk-code-lab/beniya/internal/app"
	"github.com/kk-code-lab/beniya/internal/i18n"
	"github.com/spf13/cobra"
)

func newHealthCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "health",
		Short: "Check which optional tools are installed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.load()
			if err != nil {
				return err
			}
			catalog := i18n.NewCatalog(cfg.Language)
			checks := apppkg.RunHealthChecks(catalog, exec.LookPath, runtime.GOOS)
			fmt.Fprint(cmd.OutOrStdout(), apppkg.FormatHealthReport(catalog, checks))
			return nil
		},
	}
}
