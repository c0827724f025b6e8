package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/heart-quest/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default display config",
	Long: `Prints the built-in display configuration as YAML.

Save it as ~/.heartquest/display.yaml or ./configs/display.yaml and edit
it to change the tick rate, terminal key hold time or colors. A file given
with --config takes precedence over both.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := cmd.OutOrStdout().Write(config.DefaultYAML())
		return err
	},
}
