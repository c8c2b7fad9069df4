package main

import (
	"fmt"
	"slices"

	"github.com/mark3labs/cidemo/internal/demo"
	"github.com/mark3labs/cidemo/internal/logger"
	"github.com/spf13/cobra"
)

var addCmd = &cobra.Command{
	Use:   "add <a> <b>",
	Short: "Print the sum of two numbers",
	Long: `Print the sum of two numbers.

Integer operands give an integer result of any size. If either operand is a
float the result is a float. nan, inf and hex floats are rejected.

  cidemo add 2 3      2 + 3 = 5
  cidemo add 1 2.0    1 + 2.0 = 3.0
  cidemo add -1 1     -1 + 1 = 0`,
	Args: addArgs,
	// Negative operands look like shorthand flags to pflag, so -h/--help
	// are handled by hand.
	DisableFlagParsing: true,
	RunE:               runAdd,
}

func wantsHelp(args []string) bool {
	return slices.Contains(args, "-h") || slices.Contains(args, "--help")
}

func addArgs(cmd *cobra.Command, args []string) error {
	if wantsHelp(args) {
		return nil
	}
	return cobra.ExactArgs(2)(cmd, args)
}

func runAdd(cmd *cobra.Command, args []string) error {
	if wantsHelp(args) {
		return cmd.Help()
	}

	a, err := demo.ParseNumber(args[0])
	if err != nil {
		return fmt.Errorf("first operand: %w", err)
	}
	b, err := demo.ParseNumber(args[1])
	if err != nil {
		return fmt.Errorf("second operand: %w", err)
	}

	logger.Debug("Adding %s (%s) and %s (%s)", a, a.Kind(), b, b.Kind())
	return printSum(cmd, a, b)
}

func printSum(cmd *cobra.Command, a, b demo.Number) error {
	_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s + %s = %s\n", a, b, demo.Sum(a, b))
	return err
}
