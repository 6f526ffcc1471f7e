package transform

import (
	"context"

	"github.com/compozy/tokencase/engine/core"
)

// Transformer converts source text into output lines
type Transformer interface {
	// Transform converts the given source text into a structured result
	Transform(ctx context.Context, source string) (*Result, error)

	// Run transforms SourceText and writes every output line to out
	Run(ctx context.Context, out LineWriter) (*Result, error)
}

// LineWriter writes output lines to a destination
type LineWriter interface {
	WriteLine(line core.OutputLine) error
}

// Result contains the outcome of one transform pass
type Result struct {
	ID    core.ID           `json:"id"`
	Lines []core.OutputLine `json:"lines"`
	Stats Stats             `json:"stats"`
}

// Stats summarizes a transform pass
type Stats struct {
	CommentLines    int `json:"comment_lines"`
	DataLines       int `json:"data_lines"`
	Tokens          int `json:"tokens"`
	EmptyTokens     int `json:"empty_tokens"`
	MalformedTokens int `json:"malformed_tokens"`
}

// Texts returns the output lines as plain strings, in order
func (r *Result) Texts() []string {
	texts := make([]string, len(r.Lines))
	for i, line := range r.Lines {
		texts[i] = line.Text
	}
	return texts
}
