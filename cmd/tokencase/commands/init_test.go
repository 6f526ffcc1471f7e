package commands_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/compozy/tokencase/cmd/tokencase/commands"
	"github.com/compozy/tokencase/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestInitCommand(t *testing.T) {
	t.Run("Should create default config file", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "tokencase.yaml")

		output, err := executeCommand(commands.RootCommand(), "init", "--config", configPath, "--force=false")

		require.NoError(t, err)
		assert.Contains(t, output, "created successfully")

		data, err := os.ReadFile(configPath)
		require.NoError(t, err)

		var written config.Config
		require.NoError(t, yaml.Unmarshal(data, &written))
		assert.Equal(t, "info", written.Log.Level)
		assert.Equal(t, config.ColorAuto, written.Output.Color)
		assert.Equal(t, "tokencase", written.MCP.Name)
		assert.Equal(t, commands.Version, written.MCP.Version)
	})

	t.Run("Should record the binary version as the MCP version", func(t *testing.T) {
		previous := commands.Version
		commands.Version = "9.8.7"
		t.Cleanup(func() { commands.Version = previous })
		configPath := filepath.Join(t.TempDir(), "tokencase.yaml")

		_, err := executeCommand(commands.RootCommand(), "init", "--config", configPath, "--force=false")
		require.NoError(t, err)

		cfg, err := config.Load(configPath)
		require.NoError(t, err)
		assert.Equal(t, "9.8.7", cfg.MCP.Version)
	})

	t.Run("Should refuse to overwrite without --force", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "tokencase.yaml")
		err := os.WriteFile(configPath, []byte("log:\n  level: debug\n"), 0644)
		require.NoError(t, err)

		_, err = executeCommand(commands.RootCommand(), "init", "--config", configPath, "--force=false")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "already exists")

		data, err := os.ReadFile(configPath)
		require.NoError(t, err)
		assert.Contains(t, string(data), "debug")
	})

	t.Run("Should overwrite with --force", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "tokencase.yaml")
		err := os.WriteFile(configPath, []byte("log:\n  level: debug\n"), 0644)
		require.NoError(t, err)

		_, err = executeCommand(commands.RootCommand(), "init", "--config", configPath, "--force")
		require.NoError(t, err)

		cfg, err := config.Load(configPath)
		require.NoError(t, err)
		assert.Equal(t, "info", cfg.Log.Level)
	})

	t.Run("Should produce a config the root command accepts", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "tokencase.yaml")
		_, err := executeCommand(commands.RootCommand(), "init", "--config", configPath, "--force=false")
		require.NoError(t, err)

		output, err := executeCommand(commands.RootCommand(), "--config", configPath)

		require.NoError(t, err)
		assert.Contains(t, output, "TokenEof")
	})
}
