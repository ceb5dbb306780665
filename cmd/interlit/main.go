package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"interlit/internal/project"
	"interlit/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "interlit",
	Short: "Interpolated string literal lowering tool",
	Long:  `interlit scans, validates, and lowers i"..." and f"..." interpolation literals into ordinary argument lists`,
}

func main() {
	rootCmd.Version = version.Version

	rootCmd.AddCommand(lowerCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(elementsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(versionCmd)

	rootCmd.PersistentFlags().String("color", "", "colorize output (auto|always|never)")
	rootCmd.PersistentFlags().Int("max-diagnostics", 0, "maximum number of diagnostics to show (0=from config)")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// loadConfig merges the nearest interlit.toml with persistent flag
// overrides.
func loadConfig(cmd *cobra.Command) (project.Config, error) {
	cfg, err := project.Load(".")
	if err != nil {
		return cfg, err
	}
	if v, err := cmd.Root().PersistentFlags().GetString("color"); err == nil && v != "" {
		cfg.Output.Color = v
	}
	if v, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics"); err == nil && v > 0 {
		cfg.Limits.MaxDiagnostics = v
	}
	return cfg, nil
}

// useColor resolves the color mode against the terminal.
func useColor(cfg project.Config) bool {
	switch cfg.Output.Color {
	case "always":
		return true
	case "never":
		return false
	default:
		return isTerminal(os.Stdout) && !color.NoColor
	}
}
