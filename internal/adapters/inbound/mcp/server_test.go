package mcp_test

import (
	"testing"

	mcpadapter "github.com/abdidvp/wuxing/internal/adapters/inbound/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWuxingMCPServer(t *testing.T) {
	s := mcpadapter.NewWuxingMCPServer(".", nil)
	require.NotNil(t, s)
}

func TestMCPServerHasTools(t *testing.T) {
	s := mcpadapter.NewWuxingMCPServer(".", nil)
	require.NotNil(t, s)

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"wuxing_score",
		"wuxing_rules",
		"wuxing_check",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}
