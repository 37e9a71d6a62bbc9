package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/kalix127/inspira-ui/internal/build"
	"github.com/kalix127/inspira-ui/internal/config"
	"github.com/kalix127/inspira-ui/internal/logger"
	"github.com/kalix127/inspira-ui/internal/publish"
	"github.com/kalix127/inspira-ui/internal/registry"
	"github.com/kalix127/inspira-ui/internal/theme"
)

type buildOptions struct {
	ConfigPath string
	Verbose    bool
}

var buildCmdRunner = runBuild

func newBuildCmd(root *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "build",
		Short: "Generate every registry artifact",
		RunE: func(cmd *cobra.Command, args []string) error {
			return buildCmdRunner(buildOptions{
				ConfigPath: root.configPath,
				Verbose:    root.verbose,
			})
		},
	}
}

var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
)

func runBuild(opts buildOptions) error {
	log, err := newLogger(opts.Verbose)
	if err != nil {
		return err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	ctx := context.Background()

	items, err := registry.Aggregate(ctx, log, cfg.ContentDir)
	if err != nil {
		return err
	}

	var artifacts []build.Artifact

	index, indexCount, err := build.RenderIndex(cfg, items)
	if err != nil {
		return err
	}
	artifacts = append(artifacts, index)

	blocks, blockCount, err := build.RenderBlockIndex(cfg, items)
	if err != nil {
		return err
	}
	artifacts = append(artifacts, blocks)

	styles, styleResults, err := build.RenderStyles(ctx, log, cfg, items)
	if err != nil {
		return err
	}
	artifacts = append(artifacts, styles...)

	palette := theme.DefaultPalette()
	mapping := theme.DefaultMapping()

	colors, err := theme.RenderColors(cfg, palette)
	if err != nil {
		return err
	}
	artifacts = append(artifacts, colors)

	baseStyles, err := theme.RenderBaseStyles(cfg, palette, mapping)
	if err != nil {
		return err
	}
	artifacts = append(artifacts, baseStyles...)

	themes, err := theme.RenderThemes(cfg, palette, mapping)
	if err != nil {
		return err
	}
	artifacts = append(artifacts, themes...)

	wipe := []string{cfg.StylesDir, cfg.ColorsDir, cfg.ThemesDir}
	if err := publish.New(log).Publish(ctx, cfg.OutputDir, wipe, artifacts); err != nil {
		return err
	}

	printSummary(os.Stdout, indexCount, blockCount, styleResults)
	return nil
}

func newLogger(verbose bool) (*logger.Logger, error) {
	level := "info"
	if verbose {
		level = "debug"
	}
	return logger.New(logger.Options{
		Level:  level,
		Pretty: term.IsTerminal(int(os.Stderr.Fd())),
	})
}

func printSummary(out io.Writer, indexCount, blockCount int, results []build.StyleResult) {
	written := 0
	var skipped, degraded []build.StyleResult
	for _, r := range results {
		switch r.Status {
		case build.StyleWritten:
			written++
			if len(r.Dropped) > 0 {
				degraded = append(degraded, r)
			}
		case build.StyleSkipped:
			skipped = append(skipped, r)
		}
	}

	for _, r := range degraded {
		fmt.Fprintln(out, warnStyle.Render(fmt.Sprintf("! %s: %d referenced file(s) missing", r.Name, len(r.Dropped))))
	}
	for _, r := range skipped {
		fmt.Fprintln(out, warnStyle.Render(fmt.Sprintf("! %s skipped: %s", r.Name, r.Reason)))
	}

	fmt.Fprintln(out, successStyle.Render(
		fmt.Sprintf("✔ registry built: %d indexed, %d blocks, %d styles written, %d skipped",
			indexCount, blockCount, written, len(skipped)),
	))
}
