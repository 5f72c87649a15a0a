package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mathbridge/internal/arith"
	"github.com/mark3labs/mathbridge/internal/config"
	"github.com/spf13/cobra"
)

var setupFlags struct {
	project bool
	force   bool
	sink    string
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage mathbridge configuration",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create a mathbridge configuration file",
	Long: `Create a mathbridge configuration file with default settings.

By default, creates a global config at ~/.config/mathbridge/mathbridge.yml.
Use --project to create a project-local config in the current directory.`,
	Args: cobra.NoArgs,
	RunE: runSetup,
}

func init() {
	configCmd.AddCommand(configInitCmd)
	configInitCmd.Flags().BoolVarP(&setupFlags.project, "project", "p", false, "Create config in current directory instead of global location")
	configInitCmd.Flags().BoolVarP(&setupFlags.force, "force", "f", false, "Overwrite existing config file")
	configInitCmd.Flags().StringVar(&setupFlags.sink, "sink", config.SinkStdout, "Log sink: stdout, logger or nats")
}

func runSetup(cmd *cobra.Command, args []string) error {
	targetPath := config.GlobalPath()
	if setupFlags.project {
		targetPath = config.ProjectPath()
	}

	if !setupFlags.force && fileExists(targetPath) {
		return fmt.Errorf("config file already exists at %s\n\nUse --force to overwrite", targetPath)
	}

	cfg := defaultConfig()
	cfg.Sink = setupFlags.sink
	if err := cfg.Validate(); err != nil {
		return err
	}

	var err error
	if setupFlags.project {
		err = config.WriteProject(cfg)
	} else {
		err = config.WriteGlobal(cfg)
	}
	if err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Config written to: %s\n", targetPath)
	return nil
}

func defaultConfig() *config.Config {
	return &config.Config{
		LogLevel:  "info",
		Sink:      config.SinkStdout,
		DataDir:   ".mathbridge",
		Channel:   "console",
		DefaultA:  int64(arith.DefaultA),
		DefaultB:  int64(arith.DefaultB),
		GreetName: arith.DefaultGreetName,
	}
}

// fileExists checks if a file exists (helper for setup command).
func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
