package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// wrapResourceHandler adapts a byte-returning handler to the mcp-go resource signature
func wrapResourceHandler(
	mimeType string,
	handler func(ctx context.Context, uri string) ([]byte, error),
) func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		uri := request.Params.URI

		data, err := handler(ctx, uri)
		if err != nil {
			return nil, err
		}

		textContent := mcp.TextResourceContents{
			URI:      uri,
			Text:     string(data),
			MIMEType: mimeType,
		}

		return []mcp.ResourceContents{&textContent}, nil
	}
}

// newToolResult renders a ToolResponse as MCP content: the text first, then
// the structured result as an embedded JSON resource when present
func newToolResult(response *ToolResponse) (*mcp.CallToolResult, error) {
	if response == nil {
		return nil, fmt.Errorf("tool produced no response")
	}

	content := []mcp.Content{
		mcp.TextContent{
			Type: "text",
			Text: response.Text,
		},
	}
	if response.Result == nil {
		return &mcp.CallToolResult{Content: content}, nil
	}

	data, err := json.Marshal(response.Result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transform result: %w", err)
	}
	content = append(content, mcp.EmbeddedResource{
		Type: "resource",
		Resource: &mcp.TextResourceContents{
			URI:      ResourceResultURI,
			Text:     string(data),
			MIMEType: "application/json",
		},
	})

	return &mcp.CallToolResult{Content: content}, nil
}
