package main

import (
	"fmt"
	"os"

	"github.com/mark3labs/mathbridge/internal/arith"
	"github.com/mark3labs/mathbridge/internal/wasmhost"
	"github.com/spf13/cobra"
)

var wasmCmd = &cobra.Command{
	Use:   "wasm MODULE OP ARGS...",
	Short: "Call an operation through the WebAssembly build",
	Long: `Load a module built from ./cmd/mathwasm and call one of its exports.

  mathbridge wasm mathbridge.wasm add 2 3
  mathbridge wasm mathbridge.wasm greet World

Messages the module logs go to the configured sink.`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		wasm, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("reading module: %w", err)
		}

		e, err := loadEnv(ctx, cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer e.Close()

		host, err := wasmhost.Load(ctx, wasm, e.sink)
		if err != nil {
			return err
		}
		defer func() { _ = host.Close(ctx) }()

		op, rest := args[1], args[2:]
		if op == "greet" {
			if len(rest) != 1 {
				return fmt.Errorf("greet takes 1 argument, got %d", len(rest))
			}
			return host.Greet(ctx, rest[0])
		}

		if _, ok := arith.Lookup(op); !ok {
			return fmt.Errorf("unknown operation %q", op)
		}
		if len(rest) != 2 {
			return fmt.Errorf("%s takes 2 arguments, got %d", op, len(rest))
		}
		a, err := parseOperand(rest[0])
		if err != nil {
			return err
		}
		b, err := parseOperand(rest[1])
		if err != nil {
			return err
		}

		result, err := host.Call(ctx, op, a, b)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), result)
		return nil
	},
}
