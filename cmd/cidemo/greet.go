package main

import (
	"fmt"

	"github.com/mark3labs/cidemo/internal/demo"
	"github.com/spf13/cobra"
)

var greetCmd = &cobra.Command{
	Use:   "greet",
	Short: "Print the greeting",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(cmd.OutOrStdout(), demo.Greet())
		return err
	},
}
