// Package config loads depgraph settings from defaults, an optional YAML
// file, DEPGRAPH_* environment variables and command-line overrides.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// Default values.
const (
	DefaultNamespaceKeyword = "package"
	DefaultImportKeyword    = "import"
	DefaultTerminator       = ";"
	DefaultGraphMode        = "directed"
	DefaultWorkers          = 0
)

// DefaultExtensions lists the analyzed file extensions.
var DefaultExtensions = []string{".java", ".kt"}

// DefaultImportModifiers are stripped from the front of import names.
var DefaultImportModifiers = []string{"static"}

// Config is the effective configuration.
type Config struct {
	Extensions  []string     `mapstructure:"extensions" yaml:"extensions"`
	ExcludeDirs []string     `mapstructure:"exclude_dirs" yaml:"exclude_dirs"`
	Syntax      SyntaxConfig `mapstructure:"syntax" yaml:"syntax"`
	Graph       GraphConfig  `mapstructure:"graph" yaml:"graph"`
	Workers     int          `mapstructure:"workers" yaml:"workers"`
}

// SyntaxConfig holds the declaration keywords.
type SyntaxConfig struct {
	NamespaceKeyword string   `mapstructure:"namespace_keyword" yaml:"namespace_keyword"`
	ImportKeyword    string   `mapstructure:"import_keyword" yaml:"import_keyword"`
	Terminator       string   `mapstructure:"terminator" yaml:"terminator"`
	ImportModifiers  []string `mapstructure:"import_modifiers" yaml:"import_modifiers"`
}

// GraphConfig holds serializer settings.
type GraphConfig struct {
	Mode string `mapstructure:"mode" yaml:"mode"`
}

var (
	errNoExtensions = errors.New("extensions must not be empty")
	errBlankKeyword = errors.New("syntax keywords must not be blank")
)

// Validate checks the configuration for values the analyzer cannot use.
func (c *Config) Validate() error {
	if len(c.Extensions) == 0 {
		return errNoExtensions
	}
	for _, ext := range c.Extensions {
		if !strings.HasPrefix(ext, ".") || len(ext) < 2 {
			return fmt.Errorf("invalid extension %q: must start with a dot", ext)
		}
	}
	if strings.TrimSpace(c.Syntax.NamespaceKeyword) == "" || strings.TrimSpace(c.Syntax.ImportKeyword) == "" {
		return errBlankKeyword
	}
	switch strings.ToLower(c.Graph.Mode) {
	case "directed", "undirected":
	default:
		return fmt.Errorf("invalid graph mode %q: must be directed or undirected", c.Graph.Mode)
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers %d: must not be negative", c.Workers)
	}
	return nil
}
