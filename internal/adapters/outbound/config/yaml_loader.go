package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/abdidvp/wuxing/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the target directory.
const FileName = ".wuxing.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .wuxing.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .wuxing.yaml from dir.
// Returns DefaultConfig if the file does not exist.
func (l *YAMLLoader) Load(dir string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	var cfg domain.ProjectConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return domain.ProjectConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	// Validate before filling defaults so typos in the raw file surface.
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return cfg.WithDefaults(), nil
}
