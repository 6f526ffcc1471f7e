package render_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/compozy/tokencase/engine/core"
	"github.com/compozy/tokencase/pkg/config"
	"github.com/compozy/tokencase/pkg/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingWriter struct{}

func (failingWriter) Write(_ []byte) (int, error) {
	return 0, errors.New("closed pipe")
}

var sampleLines = []core.OutputLine{
	{Kind: core.LineKindComment, Text: "// Literals."},
	{
		Kind:   core.LineKindData,
		Text:   "TokenIdentifier, TokenString, TokenNumber, ",
		Tokens: []string{"TokenIdentifier", "TokenString", "TokenNumber", ""},
	},
}

func TestPrinter(t *testing.T) {
	t.Run("Should write lines verbatim when color is disabled", func(t *testing.T) {
		var buf bytes.Buffer
		printer := render.NewPrinter(&buf, config.ColorNever)

		require.NoError(t, printer.WriteLines(sampleLines))

		assert.False(t, printer.Colored())
		assert.Equal(t, "// Literals.\nTokenIdentifier, TokenString, TokenNumber, \n", buf.String())
	})

	t.Run("Should not color a buffer in auto mode", func(t *testing.T) {
		var buf bytes.Buffer
		printer := render.NewPrinter(&buf, config.ColorAuto)

		require.NoError(t, printer.WriteLines(sampleLines))

		assert.False(t, printer.Colored())
		assert.NotContains(t, buf.String(), "\x1b[")
	})

	t.Run("Should style only comment lines when color is forced", func(t *testing.T) {
		var buf bytes.Buffer
		printer := render.NewPrinter(&buf, config.ColorAlways)

		require.NoError(t, printer.WriteLines(sampleLines))

		out := buf.String()
		assert.True(t, printer.Colored())
		assert.Contains(t, out, "\x1b[")
		assert.Contains(t, out, "// Literals.")
		assert.Contains(t, out, "\nTokenIdentifier, TokenString, TokenNumber, \n")
	})

	t.Run("Should report write failures", func(t *testing.T) {
		printer := render.NewPrinter(failingWriter{}, config.ColorNever)

		err := printer.WriteLine(sampleLines[0])

		require.Error(t, err)
		assert.Contains(t, err.Error(), "closed pipe")
	})
}

func TestShouldColor(t *testing.T) {
	var buf bytes.Buffer
	assert.True(t, render.ShouldColor(config.ColorAlways, &buf))
	assert.False(t, render.ShouldColor(config.ColorNever, &buf))
	assert.False(t, render.ShouldColor(config.ColorAuto, &buf))
	assert.False(t, render.IsTerminal(&buf))
}
