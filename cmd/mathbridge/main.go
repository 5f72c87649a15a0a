package main

import (
	"context"
	"os"
	"strings"

	"charm.land/lipgloss/v2"
	"github.com/charmbracelet/fang"
	"github.com/mark3labs/mathbridge/internal/logger"
	"github.com/spf13/cobra"
)

const logoText = "mathbridge"

// Version set via ldflags during build
var version = "dev"

func main() {
	defer func() { _ = logger.Close() }()

	if err := fang.Execute(context.Background(), rootCmd, fang.WithVersion(version)); err != nil {
		logger.Error("Command execution failed: %v", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:          "mathbridge",
	Short:        "32-bit integer arithmetic with a pluggable log sink",
	SilenceUsage: true,
}

var (
	accentColor = lipgloss.Color("#89b4fa")
	mutedColor  = lipgloss.Color("#6c7086")
	warnColor   = lipgloss.Color("#f9e2af")
)

// renderLogo renders the command name in the accent color.
func renderLogo() string {
	return lipgloss.NewStyle().Bold(true).Foreground(accentColor).Render(strings.ToUpper(logoText))
}

func init() {
	rootCmd.Long = renderLogo() + `

mathbridge exposes add, sub, mul, div and mod over 32-bit signed integers,
plus a greeting, through the CLI, an MCP tool server on stdio, and a
WebAssembly module. Division or modulus by zero returns 0 and writes a
warning to the configured log sink.

Negative operands must follow "--", e.g. mathbridge sub -- -3 4.`

	rootCmd.AddCommand(calcCmd)
	rootCmd.AddCommand(greetCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(wasmCmd)
	rootCmd.AddCommand(logCmd)
	rootCmd.AddCommand(configCmd)
	for _, cmd := range binaryCommands() {
		rootCmd.AddCommand(cmd)
	}
}
