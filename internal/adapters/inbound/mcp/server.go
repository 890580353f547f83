package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"go.uber.org/zap"

	"github.com/abdidvp/wuxing/internal/adapters/outbound/config"
	"github.com/abdidvp/wuxing/internal/adapters/outbound/notation"
	"github.com/abdidvp/wuxing/internal/application"
)

// NewWuxingMCPServer creates a new MCP server with all wuxing tools and
// resources registered. projectPath is the directory holding .wuxing.yaml.
func NewWuxingMCPServer(projectPath string, logger *zap.Logger) *server.MCPServer {
	s := server.NewMCPServer(
		"wuxing",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	svc := application.NewScoreService(notation.New(), config.New(), logger)
	registerTools(s, svc, projectPath)
	registerResources(s, svc, projectPath)

	return s
}
