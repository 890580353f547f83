package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/abdidvp/wuxing/internal/application"
	"github.com/abdidvp/wuxing/internal/domain"
	"github.com/abdidvp/wuxing/internal/domain/symbols"
)

// registerTools registers all wuxing MCP tools on the given server.
func registerTools(s *server.MCPServer, svc *application.ScoreService, projectPath string) {
	// 1. wuxing_score
	s.AddTool(
		mcplib.NewTool("wuxing_score",
			mcplib.WithDescription("Scores the five elements of a four-pillar chart and returns scores plus the full ledger as JSON"),
			mcplib.WithString("pillars",
				mcplib.Required(),
				mcplib.Description("Eight stem/branch symbols in Hanzi or pinyin, e.g. \"甲子 乙丑 丙寅 丁卯\" or \"JiaZi YiChou BingYin DingMao\""),
			),
			mcplib.WithString("notation", mcplib.Description("Input notation: auto, hanzi or pinyin (default: auto)")),
		),
		handleScore(svc),
	)

	// 2. wuxing_rules
	s.AddTool(
		mcplib.NewTool("wuxing_rules",
			mcplib.WithDescription("Returns the branch combination and conflict rule tables"),
			mcplib.WithString("kind", mcplib.Description("Only return conflicts of this kind (clash, punishment, harm, breaking, extinguishing)")),
		),
		handleRules(),
	)

	// 3. wuxing_check
	s.AddTool(
		mcplib.NewTool("wuxing_check",
			mcplib.WithDescription("Scores every chart listed in .wuxing.yaml and reports min_scores violations"),
		),
		handleCheck(svc, projectPath),
	)
}

func handleScore(svc *application.ScoreService) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		pillars, err := request.RequireString("pillars")
		if err != nil {
			return errorResult(err.Error()), nil
		}

		notationArg, _ := request.GetArguments()["notation"].(string)
		n := domain.Notation(notationArg)
		if n == "" {
			n = domain.NotationAuto
		}
		if !domain.ValidNotation(n) {
			return errorResult(fmt.Sprintf("unknown notation %q", n)), nil
		}

		res, err := svc.ScoreChart(pillars, n)
		if err != nil {
			return errorResult(fmt.Sprintf("scoring failed: %v", err)), nil
		}
		return jsonResult(res)
	}
}

// ruleTables is the JSON shape shared by the rules tool and resource.
type ruleTables struct {
	Combinations []domain.CombinationRule `json:"combinations"`
	Conflicts    []domain.ConflictRule    `json:"conflicts"`
}

func allRules() ruleTables {
	return ruleTables{Combinations: symbols.Combinations(), Conflicts: symbols.Conflicts()}
}

func handleRules() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		kind, _ := request.GetArguments()["kind"].(string)
		if kind == "" {
			return jsonResult(allRules())
		}
		k := domain.ConflictKind(kind)
		if !domain.ValidConflictKind(k) {
			return errorResult(fmt.Sprintf("unknown conflict kind %q", kind)), nil
		}
		return jsonResult(ruleTables{Conflicts: symbols.ConflictsOf(k)})
	}
}

func handleCheck(svc *application.ScoreService, projectPath string) server.ToolHandlerFunc {
	return func(ctx context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		report, _, err := svc.ScoreProject(ctx, projectPath)
		if err != nil {
			return errorResult(fmt.Sprintf("check failed: %v", err)), nil
		}
		return jsonResult(report)
	}
}

// jsonResult marshals v as indented JSON text content.
func jsonResult(v any) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns an error content result.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
