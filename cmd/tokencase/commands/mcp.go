package commands

import (
	"context"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/compozy/tokencase/engine/mcp"
	"github.com/compozy/tokencase/engine/transform"
	"github.com/compozy/tokencase/pkg/errors"
	"github.com/compozy/tokencase/pkg/logger"
	"github.com/spf13/cobra"
)

// serveMCPCmd represents the serve-mcp command
var serveMCPCmd = &cobra.Command{
	Use:   "serve-mcp",
	Short: "Serve the token converter over the Model Context Protocol",
	Long: `Start a Model Context Protocol (MCP) server on stdio so LLM applications can
read the converted token names.

The MCP server provides:
  • transform_tokens     - the full converted block, plus line statistics
  • convert_identifier   - one identifier of the block, by name
  • tokens://source      - the embedded upper-snake-case block

Logs go to stderr; stdout carries the MCP protocol.`,
	Example: `  # Start the MCP server
  tokencase serve-mcp

  # Start it with a custom configuration file
  tokencase serve-mcp --config ./tokencase.yaml`,
	Args: cobra.NoArgs,
	RunE: runServeMCP,
}

var registerMCPOnce sync.Once

// RegisterMCPCommand registers the MCP command with the root command
func RegisterMCPCommand() {
	registerMCPOnce.Do(func() {
		rootCmd.AddCommand(serveMCPCmd)
	})
}

func runServeMCP(cmd *cobra.Command, _ []string) error {
	parent := cmd.Context()
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	return errors.WithRecover("serve_mcp_command", func() error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		server := mcp.NewServer(&cfg.MCP, transform.NewService(nil))

		errCh := make(chan error, 1)
		go func() {
			errCh <- server.Start(ctx)
		}()

		select {
		case <-ctx.Done():
			logger.Info("Shutting down MCP server")
			return nil
		case err := <-errCh:
			return err
		}
	})
}
