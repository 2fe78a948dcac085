package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/destroyer/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Loads the configuration the same way play and run do and prints it
as YAML. Save the output to ~/.destroyer/configs/destroyer.yaml to
customise the game. With --default it prints the built-in file,
comments included, ignoring --config and --compat.`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

var flagDefault bool

func init() {
	configCmd.Flags().BoolVar(&flagDefault, "default", false, "Print the built-in default file")
}

func runConfig(cmd *cobra.Command, args []string) error {
	if flagDefault {
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
