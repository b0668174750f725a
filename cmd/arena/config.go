package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/ball-arena/internal/config"
)

var flagShowDefault bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration a session would use, after the config file
search and the --difficulty and --mute flags are applied.

Search order:
  --config <path>
  ~/.arena/configs/arena.yaml
  ./configs/arena.yaml
  built-in defaults

Examples:
  arena config
  arena config --difficulty hard
  arena config --default > ~/.arena/configs/arena.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagShowDefault, "default", false, "Print the built-in default file instead")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagShowDefault {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
