package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/wuxing/internal/adapters/outbound/config"
	"github.com/abdidvp/wuxing/internal/application"
)

// registerResources registers all wuxing MCP resources on the given server.
func registerResources(s *server.MCPServer, svc *application.ScoreService, projectPath string) {
	// 1. wuxing://rules - combination and conflict tables
	s.AddResource(
		mcplib.NewResource(
			"wuxing://rules",
			"Rule Tables",
			mcplib.WithResourceDescription("Branch combination and conflict rules used by the scoring pipeline"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(),
	)

	// 2. wuxing://config - loaded project config
	s.AddResource(
		mcplib.NewResource(
			"wuxing://config",
			"Project Config",
			mcplib.WithResourceDescription("The .wuxing.yaml configuration with defaults applied"),
			mcplib.WithMIMEType("application/json"),
		),
		handleConfigResource(projectPath),
	)

	// 3. wuxing://charts/{name} - score of a configured chart (resource template)
	s.AddResourceTemplate(
		mcplib.NewResourceTemplate(
			"wuxing://charts/{name}",
			"Chart Score",
			mcplib.WithTemplateDescription("Scoring result for a chart named in .wuxing.yaml"),
			mcplib.WithTemplateMIMEType("application/json"),
		),
		handleChartResource(svc, projectPath),
	)
}

func handleRulesResource() server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		return jsonContents(request.Params.URI, allRules())
	}
}

func handleConfigResource(projectPath string) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return nil, err
		}
		return jsonContents(request.Params.URI, cfg)
	}
}

func handleChartResource(svc *application.ScoreService, projectPath string) server.ResourceTemplateHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		// Extract chart name from the arguments (populated by template matching)
		name, ok := request.Params.Arguments["name"].(string)
		if !ok || name == "" {
			return nil, fmt.Errorf("chart name is required")
		}

		cfg, err := config.New().Load(projectPath)
		if err != nil {
			return nil, err
		}
		for _, ch := range cfg.Charts {
			if ch.Name != name {
				continue
			}
			res, err := svc.ScoreChart(ch.Pillars, cfg.Notation)
			if err != nil {
				return nil, fmt.Errorf("chart %q: %w", name, err)
			}
			return jsonContents(request.Params.URI, res)
		}
		return nil, fmt.Errorf("chart %q not found in %s", name, config.FileName)
	}
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
