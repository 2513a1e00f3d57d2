// Package config holds the settings of the eagle command line tool.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle"
	"github.com/OpenTraceLab/OpenTraceEagle/pkg/eagle/bom"
	"gopkg.in/yaml.v3"
)

// Config controls how the CLI loads, writes and catalogs documents.
type Config struct {
	// Document options
	VerifyDocType bool `yaml:"verify_doctype"` // Check the eagle.dtd doctype on load (default: true)
	WriteDefaults bool `yaml:"write_defaults"` // Write attributes that hold their default (default: true)
	Indentation   int  `yaml:"indentation"`    // Spaces per level on save (default: 0)

	// Catalog location; empty means <user config dir>/eagle/catalog
	CatalogDir string `yaml:"catalog_dir"`

	BOM BOMConfig `yaml:"bom"`
}

// BOMConfig controls bill of materials output
type BOMConfig struct {
	GroupByValue bool     `yaml:"group_by_value"` // Merge equal value/package parts (default: true)
	SkipPrefixes []string `yaml:"skip_prefixes"`  // Designator prefixes to leave out, e.g. TP, FID
}

// DefaultConfig returns a Config matching the library defaults.
func DefaultConfig() *Config {
	return &Config{
		VerifyDocType: true,
		WriteDefaults: true,
		Indentation:   0,
		BOM: BOMConfig{
			GroupByValue: true,
		},
	}
}

// DefaultPath returns the config file location:
// $XDG_CONFIG_HOME/eagle/config.yaml or ~/.config/eagle/config.yaml
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "eagle", "config.yaml")
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, c.Validate()
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return c, c.Validate()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return c, nil
}

// Validate checks the configuration and fills derived values.
func (c *Config) Validate() error {
	if c.Indentation < 0 {
		return fmt.Errorf("config: indentation must not be negative, got %d", c.Indentation)
	}
	if c.Indentation > 16 {
		c.Indentation = 16
	}

	if c.CatalogDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return fmt.Errorf("config: no catalog_dir and no user config directory: %w", err)
		}
		c.CatalogDir = filepath.Join(dir, "eagle", "catalog")
	}
	return nil
}

// Apply copies the document options onto doc
func (c *Config) Apply(doc *eagle.Document) {
	doc.VerifyDocType = c.VerifyDocType
	doc.WriteDefaults = c.WriteDefaults
	doc.Indentation = c.Indentation
}

// BOMOptions returns the grouping and filtering options for bom
func (c *Config) BOMOptions() bom.Options {
	return bom.Options{GroupByValue: c.BOM.GroupByValue, SkipPrefixes: c.BOM.SkipPrefixes}
}
