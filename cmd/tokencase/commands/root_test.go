package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/compozy/tokencase/cmd/tokencase/commands"
	"github.com/compozy/tokencase/engine/core"
	"github.com/compozy/tokencase/engine/transform"
	"github.com/compozy/tokencase/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func executeCommand(root *cobra.Command, args ...string) (output string, err error) {
	buf := new(bytes.Buffer)
	root.SetOut(buf)
	root.SetErr(buf)
	root.SetArgs(args)

	err = root.Execute()
	return buf.String(), err
}

// defaultsConfig writes a config file holding only default values
func defaultsConfig(t *testing.T) string {
	t.Helper()
	configPath := filepath.Join(t.TempDir(), "tokencase.yaml")
	require.NoError(t, os.WriteFile(configPath, []byte("log:\n  level: info\n"), 0644))
	return configPath
}

func TestRootCommand(t *testing.T) {
	logger.Disable()
	t.Cleanup(logger.Enable)
	t.Setenv("TOKENCASE_OUTPUT_COLOR", "auto")

	t.Run("Should print the converted token block", func(t *testing.T) {
		output, err := executeCommand(commands.RootCommand(), "--config", defaultsConfig(t))

		require.NoError(t, err)
		expected := strings.Join(transform.Transform(transform.SourceText), "\n") + "\n"
		assert.Equal(t, expected, output)

		lines := strings.Split(strings.TrimSuffix(output, "\n"), "\n")
		require.Len(t, lines, 19)
		assert.Equal(t, "// Single-character tokens.", lines[0])
		assert.Equal(t, "TokenLeftParen, TokenRightParen, ", lines[1])
		assert.Equal(t, "TokenAnd, TokenClass, TokenElse, TokenFalse, ", lines[14])
		assert.Equal(t, "TokenEof", lines[18])
	})

	t.Run("Should not print blank lines", func(t *testing.T) {
		output, err := executeCommand(commands.RootCommand(), "--config", defaultsConfig(t))

		require.NoError(t, err)
		for _, line := range strings.Split(strings.TrimSuffix(output, "\n"), "\n") {
			assert.NotEmpty(t, strings.TrimSpace(line))
		}
	})

	t.Run("Should honor color never from the config file", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "tokencase.yaml")
		err := os.WriteFile(configPath, []byte("output:\n  color: never\n"), 0644)
		require.NoError(t, err)

		output, err := executeCommand(commands.RootCommand(), "--config", configPath)

		require.NoError(t, err)
		assert.NotContains(t, output, "\x1b[")
	})

	t.Run("Should fail on an invalid config file", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "tokencase.yaml")
		err := os.WriteFile(configPath, []byte("log:\n  level: shout\n"), 0644)
		require.NoError(t, err)

		_, err = executeCommand(commands.RootCommand(), "--config", configPath)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "log.level")
	})

	t.Run("Should fail when the named config file is missing", func(t *testing.T) {
		configPath := filepath.Join(t.TempDir(), "missing.yaml")

		output, err := executeCommand(commands.RootCommand(), "--config", configPath)

		require.Error(t, err)
		assert.True(t, core.HasCode(err, core.ErrorCodeConfigNotFound))
		assert.NotContains(t, output, "TokenEof")
	})

	t.Run("Should reject positional arguments", func(t *testing.T) {
		_, err := executeCommand(commands.RootCommand(), "--config", defaultsConfig(t), "TOKEN_EOF")
		assert.Error(t, err)
	})

	t.Run("Should handle --help flag", func(t *testing.T) {
		output, err := executeCommand(commands.RootCommand(), "--help")

		require.NoError(t, err)
		assert.Contains(t, output, "Pascal case")
		assert.Contains(t, output, "token-format")
		assert.Contains(t, output, "serve-mcp")
	})
}

func TestTokenFormatHelp(t *testing.T) {
	t.Run("Should describe the conversion rules", func(t *testing.T) {
		output, err := executeCommand(commands.RootCommand(), "token-format")

		require.NoError(t, err)
		assert.Contains(t, output, "TOKEN_BANG_EQUAL   ->  TokenBangEqual")
		assert.Contains(t, output, "TRAILING COMMAS")
	})
}

func TestCommandRegistration(t *testing.T) {
	t.Run("Should handle multiple init calls safely", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			commands.InitConfig()
			commands.InitHelpCommands()
			commands.InitInitCommand()
			commands.InitVersionCommand()
			commands.RegisterMCPCommand()
		}

		names := []string{}
		for _, cmd := range commands.RootCommand().Commands() {
			names = append(names, cmd.Name())
		}
		assert.Subset(t, names, []string{"init", "serve-mcp", "token-format", "version"})
	})
}
