package mcp

import (
	"context"

	"github.com/compozy/tokencase/engine/transform"
)

// Transformer is the subset of the transform service the MCP server needs
type Transformer interface {
	Transform(ctx context.Context, source string) (*transform.Result, error)
}

// ToolResponse is what a tool handler produces: the converted text and,
// for whole-block runs, the structured result
type ToolResponse struct {
	Text   string            `json:"text"`
	Result *transform.Result `json:"result,omitempty"`
}

// Tool and resource names exposed to MCP clients
const (
	ToolTransformTokens   = "transform_tokens"
	ToolConvertIdentifier = "convert_identifier"
	ResourceSourceURI     = "tokens://source"
	ResourceResultURI     = "tokens://result"
)
