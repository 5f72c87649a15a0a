package main

import (
	"github.com/mark3labs/mathbridge/internal/logger"
	"github.com/mark3labs/mathbridge/internal/mcpserver"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the operations as MCP tools on stdin/stdout",
	Long: `Serve greet, add, sub, mul, div and mod as MCP tools over stdio.

stdout carries the protocol, so the stdout sink writes to stderr instead.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		e, err := loadEnv(ctx, cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer e.Close()

		logger.Info("Starting MCP server %s", version)
		srv := mcpserver.New(e.Service(), version)
		return srv.Serve(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
	},
}
