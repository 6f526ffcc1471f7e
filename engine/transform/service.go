package transform

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/compozy/tokencase/engine/core"
	"github.com/compozy/tokencase/pkg/logger"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Config holds transformer settings
type Config struct {
	// WarnMalformed logs a warning for every token that is not upper-snake-case
	WarnMalformed bool
}

// Service implements the Transformer interface
type Service struct {
	config *Config
}

// NewService creates a new transform service
func NewService(config *Config) Transformer {
	if config == nil {
		config = &Config{WarnMalformed: true}
	}
	return &Service{
		config: config,
	}
}

// Transform splits source into lines and converts each non-blank line
func Transform(source string) []string {
	caser := cases.Title(language.English)
	output := []string{}
	for _, raw := range strings.Split(source, "\n") {
		line, ok := transformLine(caser, raw)
		if !ok {
			continue
		}
		output = append(output, line.Text)
	}
	return output
}

// TransformLine converts a single raw line. It returns false for blank lines.
func TransformLine(raw string) (core.OutputLine, bool) {
	return transformLine(cases.Title(language.English), raw)
}

// ClassifyLine reports the kind of a raw line, or false when it is blank
func ClassifyLine(raw string) (core.LineKind, bool) {
	line := strings.TrimSpace(raw)
	switch {
	case line == "":
		return "", false
	case strings.HasPrefix(line, core.CommentMarker):
		return core.LineKindComment, true
	default:
		return core.LineKindData, true
	}
}

func transformLine(caser cases.Caser, raw string) (core.OutputLine, bool) {
	kind, ok := ClassifyLine(raw)
	if !ok {
		return core.OutputLine{}, false
	}
	line := strings.TrimSpace(raw)
	if kind == core.LineKindComment {
		return core.OutputLine{Kind: kind, Text: line}, true
	}

	rawTokens := strings.Split(line, ",")
	tokens := make([]string, len(rawTokens))
	for i, token := range rawTokens {
		tokens[i] = convertToken(caser, token)
	}
	return core.OutputLine{
		Kind:   kind,
		Text:   strings.Join(tokens, core.TokenSeparator),
		Tokens: tokens,
	}, true
}

// Transform converts source into a structured result
func (s *Service) Transform(ctx context.Context, source string) (*Result, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	result := &Result{
		ID:    core.NewID(),
		Lines: []core.OutputLine{},
	}
	log := logger.With("run_id", result.ID)
	caser := cases.Title(language.English)

	for lineNo, raw := range strings.Split(source, "\n") {
		line, ok := transformLine(caser, raw)
		if !ok {
			continue
		}
		if line.IsComment() {
			result.Stats.CommentLines++
			result.Lines = append(result.Lines, line)
			continue
		}

		result.Stats.DataLines++
		result.Stats.Tokens += len(line.Tokens)
		for _, token := range strings.Split(strings.TrimSpace(raw), ",") {
			if strings.TrimSpace(token) == "" {
				result.Stats.EmptyTokens++
				continue
			}
			if err := ValidateToken(token); err != nil {
				result.Stats.MalformedTokens++
				if s.config.WarnMalformed {
					log.Warn("malformed token", "line", lineNo+1, "error", err)
				}
			}
		}
		result.Lines = append(result.Lines, line)
	}

	log.Debug("transform completed",
		"comment_lines", result.Stats.CommentLines,
		"data_lines", result.Stats.DataLines,
		"tokens", result.Stats.Tokens,
		"empty_tokens", result.Stats.EmptyTokens,
	)
	return result, nil
}

// Run transforms SourceText and writes every output line to out
func (s *Service) Run(ctx context.Context, out LineWriter) (*Result, error) {
	result, err := s.Transform(ctx, SourceText)
	if err != nil {
		return nil, err
	}
	for i, line := range result.Lines {
		if err := out.WriteLine(line); err != nil {
			return nil, core.NewError(
				fmt.Errorf("failed to write output line: %w", err),
				core.ErrorCodeOutputWrite,
				map[string]any{"line": i + 1},
			)
		}
	}
	return result, nil
}

// PlainWriter writes output lines verbatim, one per line
type PlainWriter struct {
	w io.Writer
}

// NewPlainWriter creates a LineWriter that writes line text followed by a newline
func NewPlainWriter(w io.Writer) *PlainWriter {
	return &PlainWriter{w: w}
}

// WriteLine implements LineWriter
func (p *PlainWriter) WriteLine(line core.OutputLine) error {
	_, err := io.WriteString(p.w, line.Text+"\n")
	return err
}
