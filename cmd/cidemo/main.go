package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/fang"
	"github.com/mark3labs/cidemo/internal/config"
	"github.com/mark3labs/cidemo/internal/demo"
	"github.com/mark3labs/cidemo/internal/logger"
	"github.com/mark3labs/cidemo/internal/theme"
	"github.com/spf13/cobra"
)

const (
	logoText1 = "█▀▀ █   █▀▄ █▀▀ █▀▄▀█ █▀█"
	logoText2 = "█▄▄ █   █▄▀ ██▄ █ ▀ █ █▄█"
)

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
	Use:               "cidemo",
	Short:             "Greeting and addition demo for exercising CI pipelines",
	PersistentPreRunE: applyConfig,
	RunE:              runRoot,
}

// renderLogo creates the logo with gradient colors
func renderLogo() string {
	t := theme.NewCatppuccinMocha()
	line1 := theme.ApplyGradient(logoText1, t.Primary, t.Secondary)
	line2 := theme.ApplyGradient(logoText2, t.Primary, t.Secondary)
	return strings.Join([]string{line1, line2}, "\n")
}

func init() {
	rootCmd.Long = renderLogo() + `

cidemo is a two-function demo used to check that a CI pipeline can discover
and run a test suite. Run without a subcommand it prints the greeting and the
sum of 2 and 3.

Logging is off unless a log file is configured:
  Environment: CIDEMO_LOG_LEVEL, CIDEMO_LOG_FILE
  Project config: ./cidemo.yml
  Global config: ~/.config/cidemo/cidemo.yml`

	rootCmd.AddCommand(greetCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(setupCmd)
}

// applyConfig loads configuration and points the default logger at it.
func applyConfig(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Configure(cfg.LogLevel, cfg.LogFile); err != nil {
		return fmt.Errorf("failed to configure logger: %w", err)
	}
	logger.Debug("Running %s (version %s)", cmd.CommandPath(), version)
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	if _, err := fmt.Fprintln(out, demo.Greet()); err != nil {
		return err
	}
	return printSum(cmd, demo.Int(2), demo.Int(3))
}
