package mcp

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/compozy/tokencase/engine/core"
	"github.com/compozy/tokencase/engine/transform"
	"github.com/compozy/tokencase/pkg/logger"
)

// HandleTransformTokensInternal transforms the embedded source text
func (s *Server) HandleTransformTokensInternal(ctx context.Context, _ map[string]any) (*ToolResponse, error) {
	result, err := s.transformer.Transform(ctx, transform.SourceText)
	if err != nil {
		return nil, fmt.Errorf("failed to transform source text: %w", err)
	}

	logger.Debug("transform_tokens served", "run_id", result.ID, "lines", len(result.Lines))

	return &ToolResponse{
		Text:   strings.Join(result.Texts(), "\n"),
		Result: result,
	}, nil
}

// HandleConvertIdentifierInternal converts one identifier of the embedded source text
func (s *Server) HandleConvertIdentifierInternal(_ context.Context, input map[string]any) (*ToolResponse, error) {
	name, ok := input["name"].(string)
	name = strings.TrimSpace(name)
	if !ok || name == "" {
		return nil, core.NewError(fmt.Errorf("name is required"), core.ErrorCodeInvalidInput, nil)
	}

	if err := transform.ValidateToken(name); err != nil {
		return nil, err
	}

	if !slices.Contains(transform.Identifiers(transform.SourceText), name) {
		return nil, core.NewError(
			fmt.Errorf("identifier %q is not in the source text", name),
			core.ErrorCodeInvalidInput,
			map[string]any{"name": name},
		)
	}

	return &ToolResponse{Text: transform.ConvertToken(name)}, nil
}

// HandleSourceResource returns the raw embedded source text
func (s *Server) HandleSourceResource(_ context.Context, _ string) ([]byte, error) {
	return []byte(transform.SourceText), nil
}
