package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/abdidvp/storefront/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the catalog file looked up in the working directory.
const FileName = ".storefront.yaml"

// YAMLLoader implements domain.CatalogLoader by reading .storefront.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .storefront.yaml from dir.
// Returns DefaultCatalogConfig if the file does not exist or is empty.
func (l *YAMLLoader) Load(dir string) (domain.CatalogConfig, error) {
	data, err := os.ReadFile(filepath.Join(dir, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultCatalogConfig(), nil
		}
		return domain.CatalogConfig{}, err
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return domain.DefaultCatalogConfig(), nil
	}

	var cfg domain.CatalogConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return domain.CatalogConfig{}, fmt.Errorf("parsing %s: %w", FileName, err)
	}

	if err := cfg.Validate(); err != nil {
		return domain.CatalogConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	if cfg.StoreName == "" {
		cfg.StoreName = domain.DefaultStoreName
	}
	return cfg, nil
}

// Marshal renders cfg as YAML in the same layout Load accepts.
func Marshal(cfg domain.CatalogConfig) ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(cfg); err != nil {
		return nil, fmt.Errorf("encoding catalog: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
