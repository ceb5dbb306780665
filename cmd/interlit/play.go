package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"interlit/internal/ui"
)

var playCmd = &cobra.Command{
	Use:   "play [initial body]",
	Short: "Interactive playground for literal bodies",
	Long:  `Open an interactive playground: type a literal body and watch the element sequence and lowered argument list update live`,
	Args:  cobra.ArbitraryArgs,
	RunE:  runPlay,
}

func init() {
	playCmd.SilenceUsage = true
}

func runPlay(cmd *cobra.Command, args []string) error {
	if !isTerminal(os.Stdout) {
		return fmt.Errorf("play needs an interactive terminal")
	}
	model := ui.NewPlayModel(strings.Join(args, " "))
	_, err := tea.NewProgram(model).Run()
	return err
}
