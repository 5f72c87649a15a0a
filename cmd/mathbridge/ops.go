package main

import (
	"fmt"
	"io"
	"strconv"

	"charm.land/lipgloss/v2"
	"github.com/mark3labs/mathbridge/internal/arith"
	"github.com/spf13/cobra"
)

var binaryShort = map[string]string{
	"add": "Print A + B",
	"sub": "Print A - B",
	"mul": "Print A * B",
	"div": "Print A / B truncated toward zero (0 and a warning when B is 0)",
	"mod": "Print the remainder of A / B (0 and a warning when B is 0)",
}

// binaryCommands builds one subcommand per two-operand operation.
func binaryCommands() []*cobra.Command {
	var cmds []*cobra.Command
	for _, name := range arith.OpNames() {
		op, _ := arith.Lookup(name)
		cmd := &cobra.Command{
			Use:   name + " A B",
			Short: binaryShort[name],
			Args:  cobra.ExactArgs(2),
			RunE: func(cmd *cobra.Command, args []string) error {
				e, err := loadEnv(cmd.Context(), cmd.OutOrStdout())
				if err != nil {
					return err
				}
				defer e.Close()
				return runBinary(e.Service(), op, args, cmd.OutOrStdout())
			},
		}
		if name == "mod" {
			cmd.Aliases = []string{"mod_op"}
		}
		cmds = append(cmds, cmd)
	}
	return cmds
}

// runBinary parses both operands, applies op and prints the result.
func runBinary(svc *arith.Service, op arith.BinaryOp, args []string, out io.Writer) error {
	a, err := parseOperand(args[0])
	if err != nil {
		return err
	}
	b, err := parseOperand(args[1])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(out, op(svc, a, b))
	return err
}

// parseOperand parses a base-10 int32.
func parseOperand(s string) (int32, error) {
	v, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, fmt.Errorf("invalid operand %q: must be a 32-bit integer", s)
	}
	return int32(v), nil
}

var greetCmd = &cobra.Command{
	Use:   "greet NAME",
	Short: `Write "Hello, NAME!" to the log sink`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd.Context(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer e.Close()
		e.Service().Greet(args[0])
		return nil
	},
}

var calcFlags struct {
	a    string
	b    string
	name string
}

var calcCmd = &cobra.Command{
	Use:   "calc",
	Short: "Run every operation on one operand pair, then greet",
	Long: `Run add, sub, mul, div and mod on A and B and print a summary, then greet.

A, B and the greeting name default to default_a, default_b and greet_name from config.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := loadEnv(cmd.Context(), cmd.OutOrStdout())
		if err != nil {
			return err
		}
		defer e.Close()

		a, b := e.cfg.Operands()
		if cmd.Flags().Changed("a") {
			if a, err = parseOperand(calcFlags.a); err != nil {
				return err
			}
		}
		if cmd.Flags().Changed("b") {
			if b, err = parseOperand(calcFlags.b); err != nil {
				return err
			}
		}
		name := e.cfg.GreetName
		if cmd.Flags().Changed("name") {
			name = calcFlags.name
		}

		return runCalc(e.Service(), a, b, name, cmd.OutOrStdout())
	},
}

func init() {
	calcCmd.Flags().StringVarP(&calcFlags.a, "a", "a", "", "Left operand (default: default_a)")
	calcCmd.Flags().StringVarP(&calcFlags.b, "b", "b", "", "Right operand (default: default_b)")
	calcCmd.Flags().StringVarP(&calcFlags.name, "name", "n", "", "Name to greet (default: greet_name)")
}

// runCalc prints one styled line per operation and then greets name.
func runCalc(svc *arith.Service, a, b int32, name string, out io.Writer) error {
	results := svc.Calculate(a, b)

	label := lipgloss.NewStyle().Foreground(mutedColor).Width(6)
	value := lipgloss.NewStyle().Bold(true).Foreground(accentColor)
	masked := value.Foreground(warnColor)

	rows := []struct {
		op     string
		sym    string
		result int32
		zero   bool
	}{
		{"add", "+", results.Add, false},
		{"sub", "-", results.Sub, false},
		{"mul", "*", results.Mul, false},
		{"div", "/", results.Div, b == 0},
		{"mod", "%", results.Mod, b == 0},
	}

	for _, r := range rows {
		style := value
		if r.zero {
			style = masked
		}
		line := fmt.Sprintf("%s%d %s %d = %s", label.Render(r.op), a, r.sym, b, style.Render(strconv.Itoa(int(r.result))))
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}

	svc.Greet(name)
	return nil
}
