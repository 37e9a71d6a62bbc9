package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kalix127/inspira-ui/internal/config"
	"github.com/kalix127/inspira-ui/internal/registry"
)

var validateCmdRunner = runValidate

func newValidateCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the merged registry without writing artifacts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return validateCmdRunner(buildOptions{
				ConfigPath: root.configPath,
				Verbose:    root.verbose,
			})
		},
	}
}

func runValidate(opts buildOptions) error {
	log, err := newLogger(opts.Verbose)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	items, err := registry.Aggregate(context.Background(), log, cfg.ContentDir)
	if err != nil {
		return err
	}

	fmt.Fprintln(os.Stdout, successStyle.Render(fmt.Sprintf("✔ registry is valid (%d items)", len(items))))
	return nil
}
