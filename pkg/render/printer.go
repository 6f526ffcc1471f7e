package render

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/compozy/tokencase/engine/core"
	"github.com/compozy/tokencase/pkg/config"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Printer writes output lines, styling comment headers when color is enabled
type Printer struct {
	output       io.Writer
	color        bool
	commentStyle lipgloss.Style
}

// NewPrinter creates a printer for output using the given color mode
// (auto, always or never)
func NewPrinter(output io.Writer, colorMode string) *Printer {
	p := &Printer{
		output: output,
		color:  ShouldColor(colorMode, output),
	}

	renderer := lipgloss.NewRenderer(output)
	if p.color {
		renderer.SetColorProfile(termenv.ANSI256)
	}
	p.commentStyle = renderer.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("69"))

	return p
}

// ShouldColor resolves a color mode against the destination writer
func ShouldColor(colorMode string, output io.Writer) bool {
	switch colorMode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return IsTerminal(output)
	}
}

// IsTerminal reports whether output is a terminal
func IsTerminal(output io.Writer) bool {
	f, ok := output.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Colored reports whether comment lines are styled
func (p *Printer) Colored() bool {
	return p.color
}

// WriteLine writes a single output line followed by a newline
func (p *Printer) WriteLine(line core.OutputLine) error {
	text := line.Text
	if p.color && line.IsComment() {
		text = p.commentStyle.Render(text)
	}
	if _, err := fmt.Fprintln(p.output, text); err != nil {
		return fmt.Errorf("failed to write line: %w", err)
	}
	return nil
}

// WriteLines writes every line in order, stopping at the first error
func (p *Printer) WriteLines(lines []core.OutputLine) error {
	for _, line := range lines {
		if err := p.WriteLine(line); err != nil {
			return err
		}
	}
	return nil
}
