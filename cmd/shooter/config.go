package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-shooter/internal/config"
	"github.com/vovakirdan/tui-shooter/internal/games/shooter"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default game config",
	Long: `Print the built-in shooter config as YAML.

Save it to ~/.arcade/configs/shooter.yaml or ./configs/shooter.yaml to
tune the game, or pass any file with --config.

Examples:
  shooter config
  shooter config > ~/.arcade/configs/shooter.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		data := config.GetDefaultYAML(shooter.GameID)
		if data == nil {
			return fmt.Errorf("no default config for %q", shooter.GameID)
		}
		_, err := cmd.OutOrStdout().Write(data)
		return err
	},
}
