// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package config

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/tidydir/pkg/organize"
	"github.com/walteh/tidydir/pkg/table"
	"gitlab.com/tozd/go/errors"
)

// DefaultPath is the settings file looked for when none is named.
const DefaultPath = ".tidydir.yaml"

// 🔌 Parser is the interface for config parsers
type Parser interface {
	// 📝 Parse parses the config from bytes
	Parse(ctx context.Context, data []byte) (*Config, error)

	// 🔍 CanParse checks if this parser can handle the given file
	CanParse(filename string) bool
}

var (
	// 🗺️ parsers is a list of available parsers
	parsers []Parser
)

// 📝 Register registers a parser
func Register(p Parser) {
	parsers = append(parsers, p)
}

// 🎯 GetParser returns a parser that can handle the given file
func GetParser(filename string) Parser {
	for _, p := range parsers {
		if p.CanParse(filename) {
			return p
		}
	}
	return nil
}

// 📚 Config represents the settings file
type Config struct {
	Table           string            `json:"table,omitempty" yaml:"table,omitempty" toml:"table,omitempty" hcl:"table,optional"`
	Categories      map[string]string `json:"categories,omitempty" yaml:"categories,omitempty" toml:"categories,omitempty" hcl:"categories,optional"`
	OnConflict      string            `json:"on_conflict,omitempty" yaml:"on_conflict,omitempty" toml:"on_conflict,omitempty" hcl:"on_conflict,optional"`
	ContinueOnError bool              `json:"continue_on_error,omitempty" yaml:"continue_on_error,omitempty" toml:"continue_on_error,omitempty" hcl:"continue_on_error,optional"`
	Ignore          []string          `json:"ignore,omitempty" yaml:"ignore,omitempty" toml:"ignore,omitempty" hcl:"ignore,optional"`

	location string // settings file path, "" when built from defaults
}

// 🎯 Load loads the configuration from a file
func Load(ctx context.Context, path string) (*Config, error) {
	logger := zerolog.Ctx(ctx)
	logger.Debug().Str("path", path).Msg("loading configuration")

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("reading config file: %w", err)
	}

	p := GetParser(path)
	if p == nil {
		return nil, errors.Errorf("no parser found for file: %s", path)
	}

	cfg, err := p.Parse(ctx, data)
	if err != nil {
		return nil, errors.Errorf("parsing config: %w", err)
	}
	cfg.location = path
	if cfg.Table != "" && !filepath.IsAbs(cfg.Table) {
		cfg.Table = filepath.Join(filepath.Dir(path), cfg.Table)
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// 🎯 LoadOrDefault is Load, except that a missing file yields an empty Config unless required is set
func LoadOrDefault(ctx context.Context, path string, required bool) (*Config, error) {
	cfg, err := Load(ctx, path)
	if err == nil {
		return cfg, nil
	}
	if !required && errors.Is(err, fs.ErrNotExist) {
		zerolog.Ctx(ctx).Debug().Str("path", path).Msg("no config file, using defaults")
		return &Config{}, nil
	}
	return nil, err
}

// 🔍 Validate checks the settings and cleans the table path
func (cfg *Config) Validate() error {
	if _, err := organize.ParseConflictPolicy(cfg.OnConflict); err != nil {
		return errors.Errorf("on_conflict: %w", err)
	}

	for _, pattern := range cfg.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return errors.Errorf("ignore: invalid pattern %q", pattern)
		}
	}

	if err := table.Table(cfg.Categories).Validate(); err != nil {
		return errors.Errorf("categories: %w", err)
	}

	if cfg.Table != "" {
		cfg.Table = filepath.Clean(cfg.Table)
	}

	return nil
}

// 📚 ResolveTable loads the configured table, or the built-in one, and layers the inline categories on top
func (cfg *Config) ResolveTable(ctx context.Context) (table.Table, error) {
	base := table.Default()
	if cfg.Table != "" {
		loaded, err := table.Load(ctx, cfg.Table)
		if err != nil {
			return nil, errors.Errorf("loading table: %w", err)
		}
		base = loaded
	}

	if len(cfg.Categories) == 0 {
		return base, nil
	}
	return base.Merge(table.Table(cfg.Categories)), nil
}

// Location returns the settings file the config came from, or "".
func (cfg *Config) Location() string {
	return cfg.location
}
