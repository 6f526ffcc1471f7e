package commands

import (
	"runtime"
	"sync"

	"github.com/spf13/cobra"
)

// Version information
var (
	Version   = "0.1.0"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Long: `Display detailed version information about tokencase including the version
number, build time, Git commit hash, and Go runtime version.`,
	Example: `  # Show version information
  tokencase version

  # Example output:
  # tokencase - clox token name converter
  # Version:    0.1.0
  # Build Time: 2024-01-01T12:00:00Z
  # Git Commit: abc123def
  # Go Version: go1.24.0
  # OS/Arch:    darwin/arm64`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, _ []string) {
		out := cmd.OutOrStdout()
		fprintf(out, "tokencase - clox token name converter\n")
		fprintf(out, "Version:    %s\n", Version)
		fprintf(out, "Build Time: %s\n", BuildTime)
		fprintf(out, "Git Commit: %s\n", GitCommit)
		fprintf(out, "Go Version: %s\n", runtime.Version())
		fprintf(out, "OS/Arch:    %s/%s\n", runtime.GOOS, runtime.GOARCH)
	},
}

var initVersionOnce sync.Once

// InitVersionCommand registers the version command
func InitVersionCommand() {
	initVersionOnce.Do(func() {
		rootCmd.AddCommand(versionCmd)
	})
}
