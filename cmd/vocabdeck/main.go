// Package main provides the CLI entrypoint for vocabdeck.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/NivBraz/vocabdeck/internal/app"
	"github.com/NivBraz/vocabdeck/internal/config"
)

var (
	configPath      string
	primaryFile     string
	blacklistFile   string
	mergeFiles      []string
	outputFile      string
	stylesheet      string
	randomOrder     bool
	allowDuplicates bool
	jsonOutput      bool
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "vocabdeck",
		Short:        "Build an HTML flash-card study set from vocabulary lists",
		SilenceUsage: true,
		RunE:         runBuildCmd,
	}

	rootCmd.Flags().StringVar(&configPath, "config", config.DefaultPath, "path to YAML config")
	rootCmd.Flags().StringVar(&primaryFile, "primary", "", "primary vocabulary file")
	rootCmd.Flags().StringVar(&blacklistFile, "blacklist", "", "file of words to leave out")
	rootCmd.Flags().StringArrayVar(&mergeFiles, "merge", nil, "additional vocabulary file (repeatable)")
	rootCmd.Flags().StringVar(&outputFile, "output", "", "HTML file to write")
	rootCmd.Flags().StringVar(&stylesheet, "stylesheet", "", "stylesheet referenced by the page")
	rootCmd.Flags().BoolVar(&randomOrder, "random", false, "shuffle cards instead of sorting them")
	rootCmd.Flags().BoolVar(&allowDuplicates, "allow-duplicates", false, "keep every definition of a repeated word")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the run summary as JSON")

	return rootCmd
}

func runBuildCmd(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	logger := app.NewLogger(cfg.Log, os.Stderr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	application, err := app.New(cfg, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}

	result, err := application.Run(ctx)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if strings.EqualFold(cfg.Output.Format, "json") {
		output, err := json.MarshalIndent(result, "", "    ")
		if err != nil {
			return fmt.Errorf("failed to marshal results: %w", err)
		}
		fmt.Fprintln(out, string(output))
		return nil
	}

	app.WriteSummary(out, result)
	return nil
}

// applyFlags lets explicitly set flags win over the config file.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("primary") {
		cfg.Input.PrimaryFile = primaryFile
	}
	if flags.Changed("blacklist") {
		cfg.Input.BlacklistFile = blacklistFile
	}
	if flags.Changed("merge") {
		cfg.Input.MergeFiles = mergeFiles
	}
	if flags.Changed("output") {
		cfg.Output.File = outputFile
	}
	if flags.Changed("stylesheet") {
		cfg.Output.Stylesheet = stylesheet
	}
	if flags.Changed("random") {
		cfg.Output.RandomOrder = randomOrder
	}
	if flags.Changed("allow-duplicates") {
		cfg.Deck.AllowDuplicates = allowDuplicates
	}
	if flags.Changed("json") && jsonOutput {
		cfg.Output.Format = "json"
	}
}
