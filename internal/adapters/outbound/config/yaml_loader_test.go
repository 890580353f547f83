package config_test

import (
	"os"
	"path/filepath"
	"testing"

	appconfig "github.com/abdidvp/wuxing/internal/adapters/outbound/config"
	"github.com/abdidvp/wuxing/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, dir, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, appconfig.FileName), []byte(content), 0644))
}

func TestYAMLLoader_MissingFileReturnsDefaults(t *testing.T) {
	dir := t.TempDir()
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_ValidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
notation: pinyin
output: json
charts:
  - name: sample
    pillars: JiaZi YiChou BingYin DingMao
min_scores:
  water: 10
`)
	loader := appconfig.New()

	cfg, err := loader.Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.NotationPinyin, cfg.Notation)
	assert.Equal(t, "json", cfg.Output)
	require.Len(t, cfg.Charts, 1)
	assert.Equal(t, "sample", cfg.Charts[0].Name)
	assert.Equal(t, 10, cfg.MinScores["water"])
}

func TestYAMLLoader_EmptyFileFillsDefaults(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, "")

	cfg, err := appconfig.New().Load(dir)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultConfig(), cfg)
}

func TestYAMLLoader_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `{{{invalid yaml`)
	loader := appconfig.New()

	_, err := loader.Load(dir)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .wuxing.yaml")
}

func TestYAMLLoader_UnknownFieldRejected(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `weights: {wood: 2}`)

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "parsing .wuxing.yaml")
}

func TestYAMLLoader_ValidationError(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `notation: latin`)

	_, err := appconfig.New().Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid .wuxing.yaml")
	assert.Contains(t, err.Error(), "latin")
}
