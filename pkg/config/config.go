// Package config loads export settings from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/yh1472056602/customer-management-system/pkg/exporter"
	"gopkg.in/yaml.v3"
)

// Config holds export settings.
type Config struct {
	Template TemplateConfig `yaml:"template"`
	Log      LogConfig      `yaml:"log"`
	Output   OutputConfig   `yaml:"output"`
}

// TemplateConfig locates the upload template.
type TemplateConfig struct {
	// FileName is searched for in SearchDirs.
	FileName string `yaml:"file_name"`
	// SearchDirs are tried in order; empty means the default locations.
	SearchDirs []string `yaml:"search_dirs"`
	// Paths are explicit candidates tried before SearchDirs.
	Paths []string `yaml:"paths"`
}

// LogConfig selects the logrus level and formatter.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"` // text, json
}

// OutputConfig controls where exports are written.
type OutputConfig struct {
	Dir string `yaml:"dir"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Template: TemplateConfig{FileName: exporter.DefaultTemplateName},
		Log:      LogConfig{Level: "info", Format: "text"},
		Output:   OutputConfig{Dir: "."},
	}
}

// Load reads path over the defaults. An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the settings for values the exporter cannot use.
func (c Config) Validate() error {
	if strings.TrimSpace(c.Template.FileName) == "" && len(c.Template.Paths) == 0 {
		return errors.New("template.file_name or template.paths is required")
	}
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.Log.Format)
	}
	return nil
}

// TemplateCandidates lists template paths in search order.
func (c Config) TemplateCandidates() []string {
	candidates := append([]string(nil), c.Template.Paths...)
	if c.Template.FileName == "" {
		return candidates
	}
	if len(c.Template.SearchDirs) == 0 {
		return append(candidates, exporter.DefaultTemplatePaths(c.Template.FileName)...)
	}
	return append(candidates, exporter.CandidatePaths(c.Template.FileName, c.Template.SearchDirs...)...)
}

// ConfigureLogger applies level and formatter to logger.
func (c Config) ConfigureLogger(logger *logrus.Logger) error {
	level, err := logrus.ParseLevel(c.Log.Level)
	if err != nil {
		return err
	}
	logger.SetLevel(level)
	if c.Log.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return nil
}

// OutputPath joins name onto the output directory.
func (c Config) OutputPath(name string) string {
	return filepath.Join(c.Output.Dir, name)
}
