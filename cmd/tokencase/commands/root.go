package commands

import (
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/compozy/tokencase/engine/transform"
	"github.com/compozy/tokencase/pkg/config"
	"github.com/compozy/tokencase/pkg/errors"
	"github.com/compozy/tokencase/pkg/logger"
	"github.com/compozy/tokencase/pkg/render"
	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "tokencase",
	Short: "Print the clox TOKEN_* names converted to Pascal case",
	Long: `tokencase rewrites the embedded block of clox scanner token names from
upper-snake-case to Pascal case and prints the result.

Comment lines ("// ...") are printed unchanged, blank lines are dropped, and
every comma-separated token on a data line is converted:

  "TOKEN_LEFT_PAREN, TOKEN_RIGHT_PAREN,"  ->  "TokenLeftParen, TokenRightParen, "

Run "tokencase token-format" for the exact conversion rules.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, _ []string) error {
		return errors.WithRecover("transform_command", func() error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}
			return runTransform(cmd.Context(), cmd.OutOrStdout(), cfg)
		})
	},
}

var (
	initRootOnce sync.Once
	cfgFile      string
	debugMode    bool
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	InitConfig()

	InitHelpCommands()
	InitInitCommand()
	InitVersionCommand()
	RegisterMCPCommand()

	cobra.CheckErr(rootCmd.Execute())
}

// RootCommand returns the root command with every subcommand registered
func RootCommand() *cobra.Command {
	InitConfig()
	InitHelpCommands()
	InitInitCommand()
	InitVersionCommand()
	RegisterMCPCommand()
	return rootCmd
}

// InitConfig registers the global flags
func InitConfig() {
	initRootOnce.Do(func() {
		rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./tokencase.yaml)")
		rootCmd.PersistentFlags().BoolVar(&debugMode, "debug", false, "enable debug logging")
	})
}

// loadConfig reads .env, the config file and TOKENCASE_* variables, then
// applies the logging settings
func loadConfig() (*config.Config, error) {
	envLoaded := errors.WithGracefulDegrade("load_env_file", &errors.GracefulDegradeConfig{LogWarning: true}, false,
		func() (bool, error) {
			return config.LoadEnvFile(config.DefaultEnvFile)
		})

	config.SetDefaultVersion(Version)
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}

	if err := logger.SetLevelName(cfg.Log.Level); err != nil {
		return nil, err
	}
	if debugMode {
		logger.SetDebug(true)
	}

	logger.Debug("configuration loaded",
		"config", cfgFile,
		"env_file", envLoaded,
		"color", cfg.Output.Color,
	)
	return cfg, nil
}

func runTransform(ctx context.Context, out io.Writer, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}

	printer := render.NewPrinter(out, cfg.Output.Color)
	service := transform.NewService(&transform.Config{WarnMalformed: true})

	result, err := service.Run(ctx, printer)
	if err != nil {
		return fmt.Errorf("transform failed: %w", err)
	}

	logger.Debug("output written",
		"run_id", result.ID,
		"lines", len(result.Lines),
		"colored", printer.Colored(),
	)
	return nil
}
