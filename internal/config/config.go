package config

import (
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config controls runtime behavior for the analyzer.
type Config struct {
	RepoDir  string   `yaml:"repo_dir"`
	Analysis Analysis `yaml:"analysis"`
	Output   Output   `yaml:"output"`
	Logging  Logging  `yaml:"logging"`
}

// Analysis tunes the depth and resource bounds of a profile build.
type Analysis struct {
	// Depth is "deep" or "shallow". Shallow skips source-content
	// scanning, endpoint detection, and feature inference.
	Depth             string `yaml:"depth"`
	MaxFileSize       int64  `yaml:"max_file_size"`
	SourceSampleLimit int    `yaml:"source_sample_limit"`
	KeyFileBudget     int    `yaml:"key_file_budget"`
}

// Output names optional artifact destinations.
type Output struct {
	ProfilePath string `yaml:"profile_path"`
	PromptPath  string `yaml:"prompt_path"`
}

// Logging configures runtime logging behavior.
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file"`
}

// Shallow reports whether the configured depth disables content scanning.
func (a Analysis) Shallow() bool {
	return strings.EqualFold(strings.TrimSpace(a.Depth), "shallow")
}

// Load builds config from defaults, file values, and environment overrides.
func Load() *Config {
	c := &Config{
		RepoDir: ".",
		Analysis: Analysis{
			Depth:             "deep",
			MaxFileSize:       100_000,
			SourceSampleLimit: 50,
			KeyFileBudget:     48_000,
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}

	// Config file overrides defaults.
	if b, err := os.ReadFile(".readmegen.yml"); err == nil {
		_ = yaml.Unmarshal(b, c)
	}

	// Environment overrides file and defaults.
	if v := os.Getenv("READMEGEN_REPO_DIR"); v != "" {
		c.RepoDir = v
	}
	if v := os.Getenv("READMEGEN_DEPTH"); v != "" {
		c.Analysis.Depth = v
	}
	if v := os.Getenv("READMEGEN_MAX_FILE_SIZE"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Analysis.MaxFileSize = n
		}
	}
	if v := os.Getenv("READMEGEN_SOURCE_SAMPLE_LIMIT"); v != "" {
		c.Analysis.SourceSampleLimit, _ = strconv.Atoi(v)
	}
	if v := os.Getenv("READMEGEN_KEY_FILE_BUDGET"); v != "" {
		c.Analysis.KeyFileBudget, _ = strconv.Atoi(v)
	}
	if v := os.Getenv("READMEGEN_PROFILE_PATH"); v != "" {
		c.Output.ProfilePath = v
	}
	if v := os.Getenv("READMEGEN_PROMPT_PATH"); v != "" {
		c.Output.PromptPath = v
	}
	if v := os.Getenv("READMEGEN_LOG_LEVEL"); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv("READMEGEN_LOG_FORMAT"); v != "" {
		c.Logging.Format = v
	}
	if v := os.Getenv("READMEGEN_LOG_FILE"); v != "" {
		c.Logging.File = v
	}
	return c
}
