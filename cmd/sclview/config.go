package main

import (
	"os"

	"github.com/andaru/scl/report"
	"github.com/andaru/scl/tree"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds output settings. Values may come from a YAML file and
// are overridden by explicitly set flags.
type Config struct {
	Format        string `yaml:"format"`
	MaxDepth      int    `yaml:"max-depth"`
	MaxNodes      int    `yaml:"max-nodes"`
	MarkTruncated bool   `yaml:"mark-truncated"`
	Indent        int    `yaml:"indent"`
}

func defaultConfig() Config {
	return Config{
		Format:   string(report.FormatText),
		MaxDepth: tree.DefaultMaxDepth,
		MaxNodes: tree.DefaultMaxNodes,
		Indent:   2,
	}
}

// loadConfig reads a YAML config file over the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "reading config")
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "parsing config %s", path)
	}
	return cfg, nil
}

func (c Config) projection() []tree.Option {
	return []tree.Option{
		tree.WithMaxDepth(c.MaxDepth),
		tree.WithMaxNodes(c.MaxNodes),
		tree.WithTruncationMarker(c.MarkTruncated),
	}
}

func (c Config) writer() (*report.Writer, error) {
	f, err := report.ParseFormat(c.Format)
	if err != nil {
		return nil, err
	}
	w := report.NewWriter(f)
	if c.Indent > 0 {
		w.IndentWidth = c.Indent
	}
	return w, nil
}
