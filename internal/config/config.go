package config

import (
	"os"

	"gopkg.in/yaml.v2"
)

type SourceConfig struct {
	Name       string `yaml:"name"`
	BaseURL    string `yaml:"base_url"`
	PathPrefix string `yaml:"path_prefix"`
}

type OutputConfig struct {
	Intro string `yaml:"intro"`
}

type ExtractorConfig struct {
	Source SourceConfig `yaml:"source"`
	Output OutputConfig `yaml:"output"`
}

func Default() *ExtractorConfig {
	return &ExtractorConfig{
		Source: SourceConfig{
			Name:       "claude-blog",
			BaseURL:    "https://claude.com",
			PathPrefix: "/blog/",
		},
		Output: OutputConfig{
			Intro: "Sample parse:",
		},
	}
}

// LoadConfig reads a YAML config from path. A missing file is not an error:
// the built-in defaults are returned so the zero-config invocation works.
func LoadConfig(path string) (*ExtractorConfig, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
