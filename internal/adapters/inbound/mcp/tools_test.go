package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdidvp/wuxing/internal/adapters/outbound/config"
	"github.com/abdidvp/wuxing/internal/adapters/outbound/notation"
	"github.com/abdidvp/wuxing/internal/application"
)

func newTestService() *application.ScoreService {
	return application.NewScoreService(notation.New(), config.New(), nil)
}

func callTool(t *testing.T, h func(context.Context, mcplib.CallToolRequest) (*mcplib.CallToolResult, error), args map[string]any) *mcplib.CallToolResult {
	t.Helper()
	var req mcplib.CallToolRequest
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

func text(t *testing.T, res *mcplib.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	tc, ok := res.Content[0].(mcplib.TextContent)
	require.True(t, ok)
	return tc.Text
}

func TestHandleScore(t *testing.T) {
	res := callTool(t, handleScore(newTestService()), map[string]any{"pillars": "JiaZi YiChou BingYin DingMao"})
	assert.False(t, res.IsError)

	var got struct {
		Season string         `json:"season"`
		Scores map[string]int `json:"scores"`
	}
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &got))
	assert.Equal(t, "transitional_earth", got.Season)
	assert.Len(t, got.Scores, 5)
}

func TestHandleScore_MissingPillars(t *testing.T) {
	res := callTool(t, handleScore(newTestService()), map[string]any{})
	assert.True(t, res.IsError)
}

func TestHandleScore_BadInput(t *testing.T) {
	res := callTool(t, handleScore(newTestService()), map[string]any{"pillars": "甲子 乙丑"})
	assert.True(t, res.IsError)
	assert.Contains(t, text(t, res), "expected 4 stem/branch pairs")

	res = callTool(t, handleScore(newTestService()), map[string]any{"pillars": "甲子乙丑丙寅丁卯", "notation": "latin"})
	assert.True(t, res.IsError)
}

func TestHandleRules(t *testing.T) {
	res := callTool(t, handleRules(), nil)
	assert.False(t, res.IsError)

	var got struct {
		Combinations []json.RawMessage `json:"combinations"`
		Conflicts    []json.RawMessage `json:"conflicts"`
	}
	require.NoError(t, json.Unmarshal([]byte(text(t, res)), &got))
	assert.Len(t, got.Combinations, 14)
	assert.NotEmpty(t, got.Conflicts)
}

func TestHandleRules_Kind(t *testing.T) {
	res := callTool(t, handleRules(), map[string]any{"kind": "breaking"})
	assert.False(t, res.IsError)
	assert.Contains(t, text(t, res), `"kind": "breaking"`)
	assert.NotContains(t, text(t, res), `"kind": "clash"`)

	res = callTool(t, handleRules(), map[string]any{"kind": "feud"})
	assert.True(t, res.IsError)
}

func TestHandleCheck(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(`
charts:
  - name: flood
    pillars: "壬子 癸亥 壬子 癸亥"
min_scores:
  fire: 30
`), 0o644))

	res := callTool(t, handleCheck(newTestService(), dir), nil)
	assert.False(t, res.IsError)
	assert.Contains(t, text(t, res), "flood: fire 1 < 30")
}

func TestHandleCheck_NoConfig(t *testing.T) {
	res := callTool(t, handleCheck(newTestService(), t.TempDir()), nil)
	assert.True(t, res.IsError)
}

func TestHandleChartResource(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte(`
charts:
  - name: summer
    pillars: "甲寅 丙午 丁卯 戊戌"
`), 0o644))

	var req mcplib.ReadResourceRequest
	req.Params.URI = "wuxing://charts/summer"
	req.Params.Arguments = map[string]any{"name": "summer"}

	contents, err := handleChartResource(newTestService(), dir)(context.Background(), req)
	require.NoError(t, err)
	require.Len(t, contents, 1)
	tc, ok := contents[0].(mcplib.TextResourceContents)
	require.True(t, ok)
	assert.Contains(t, tc.Text, `"season": "summer"`)

	req.Params.Arguments = map[string]any{"name": "winter"}
	_, err = handleChartResource(newTestService(), dir)(context.Background(), req)
	assert.ErrorContains(t, err, "not found")
}
