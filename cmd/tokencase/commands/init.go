package commands

import (
	"fmt"
	"os"
	"sync"

	"github.com/compozy/tokencase/pkg/config"
	"github.com/spf13/cobra"
)

// initCmd represents the init command
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new tokencase configuration file",
	Long: `Initialize creates a new tokencase.yaml configuration file in the current
directory with default settings.

The configuration file includes:
  • Logging level
  • Output color mode (auto, always, never)
  • MCP server name and version

None of these settings change the converted output.`,
	Example: `  # Create a default configuration file
  tokencase init

  # Write it somewhere else, replacing an existing file
  tokencase init --config ./configs/tokencase.yaml --force`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		configFile := config.DefaultPath()
		if cfgFile != "" {
			configFile = cfgFile
		}

		if _, err := os.Stat(configFile); err == nil && !forceOverwrite {
			return fmt.Errorf("config file %s already exists. Use --force to overwrite", configFile)
		}

		config.SetDefaultVersion(Version)
		cfg := config.DefaultConfig()
		if err := config.Save(cfg, configFile); err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fprintf(out, "✓ Configuration file '%s' created successfully\n", configFile)
		fprintf(out, "\nNext steps:\n")
		fprintf(out, "1. Edit the config file to adjust logging and colors\n")
		fprintf(out, "2. Run 'tokencase' to print the converted token names\n")
		return nil
	},
}

var (
	initInitOnce   sync.Once
	forceOverwrite bool
)

// InitInitCommand registers the init command
func InitInitCommand() {
	initInitOnce.Do(func() {
		initCmd.Flags().BoolVar(&forceOverwrite, "force", false, "Force overwrite existing config file")
		rootCmd.AddCommand(initCmd)
	})
}
