package mcp

import (
	"context"

	"github.com/compozy/tokencase/pkg/config"
	"github.com/compozy/tokencase/pkg/logger"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// Server represents the MCP server
type Server struct {
	config      *config.MCPConfig
	transformer Transformer
	mcpServer   *server.MCPServer
}

// NewServer creates a new MCP server instance
func NewServer(cfg *config.MCPConfig, transformer Transformer) *Server {
	if cfg == nil {
		cfg = &config.DefaultConfig().MCP
	}
	s := &Server{
		config:      cfg,
		transformer: transformer,
	}

	s.mcpServer = server.NewMCPServer(
		cfg.Name,
		cfg.Version,
		server.WithToolCapabilities(false), // Static tool set
		server.WithResourceCapabilities(false, true),
		server.WithRecovery(),
	)

	s.registerTools()
	s.registerResources()

	return s
}

// Start serves MCP over stdio until the client disconnects
func (s *Server) Start(_ context.Context) error {
	logger.Info("Starting MCP server on stdio", "name", s.config.Name, "version", s.config.Version)
	return server.ServeStdio(s.mcpServer)
}

// MCPServer exposes the underlying mcp-go server
func (s *Server) MCPServer() *server.MCPServer {
	return s.mcpServer
}

func (s *Server) registerTools() {
	transformTokensTool := mcp.NewTool(
		ToolTransformTokens,
		mcp.WithDescription("Convert the embedded TOKEN_* identifier block to Pascal case, keeping comment lines"),
	)
	s.mcpServer.AddTool(transformTokensTool, s.handleTransformTokens)

	convertIdentifierTool := mcp.NewTool(
		ToolConvertIdentifier,
		mcp.WithDescription("Convert one identifier of the embedded block to Pascal case"),
		mcp.WithString("name", mcp.Required(), mcp.Description("Identifier to convert, e.g. TOKEN_BANG_EQUAL")),
	)
	s.mcpServer.AddTool(convertIdentifierTool, s.handleConvertIdentifier)
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource(
		ResourceSourceURI,
		"source_text",
		mcp.WithResourceDescription("The embedded upper-snake-case identifier block"),
		mcp.WithMIMEType("text/plain"),
	), wrapResourceHandler("text/plain", s.HandleSourceResource))
}

func (s *Server) handleTransformTokens(ctx context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	response, err := s.HandleTransformTokensInternal(ctx, map[string]any{})
	if err != nil {
		return nil, err
	}
	return newToolResult(response)
}

func (s *Server) handleConvertIdentifier(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name, err := req.RequireString("name")
	if err != nil {
		return nil, err
	}

	response, err := s.HandleConvertIdentifierInternal(ctx, map[string]any{
		"name": name,
	})
	if err != nil {
		return nil, err
	}
	return newToolResult(response)
}
