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
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/tidydir/pkg/table"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		config      string
		wantErr     bool
		errContains string
		check       func(t *testing.T, dir string, cfg *Config)
	}{
		{
			name:     "full_yaml",
			filename: ".tidydir.yaml",
			config: `
table: tables/extensions.json
categories:
  ".log": Logs
on_conflict: rename
continue_on_error: true
ignore:
  - "*.part"
  - "*.{tmp,crdownload}"
`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, filepath.Join(dir, "tables", "extensions.json"), cfg.Table, "table should resolve against the config file")
				assert.Equal(t, map[string]string{".log": "Logs"}, cfg.Categories)
				assert.Equal(t, "rename", cfg.OnConflict)
				assert.True(t, cfg.ContinueOnError)
				assert.Equal(t, []string{"*.part", "*.{tmp,crdownload}"}, cfg.Ignore)
			},
		},
		{
			name:     "empty_yaml",
			filename: ".tidydir.yml",
			config:   "",
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Empty(t, cfg.Table)
				assert.False(t, cfg.ContinueOnError)
			},
		},
		{
			name:     "json",
			filename: ".tidydir.json",
			config:   `{"on_conflict": "skip", "categories": {".iso": "Disk Images"}}`,
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, "skip", cfg.OnConflict)
				assert.Equal(t, "Disk Images", cfg.Categories[".iso"])
			},
		},
		{
			name:     "toml",
			filename: ".tidydir.toml",
			config:   "on_conflict = \"fail\"\nignore = [\"*.tmp\"]\n\n[categories]\n\".log\" = \"Logs\"\n",
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, "fail", cfg.OnConflict)
				assert.Equal(t, []string{"*.tmp"}, cfg.Ignore)
				assert.Equal(t, "Logs", cfg.Categories[".log"])
			},
		},
		{
			name:     "hcl",
			filename: ".tidydir.hcl",
			config:   "table = \"/etc/tidydir/extensions.yaml\"\ncontinue_on_error = true\ncategories = {\n  \".log\" = \"Logs\"\n}\n",
			check: func(t *testing.T, dir string, cfg *Config) {
				assert.Equal(t, filepath.Clean("/etc/tidydir/extensions.yaml"), cfg.Table, "absolute table paths stay as they are")
				assert.True(t, cfg.ContinueOnError)
				assert.Equal(t, "Logs", cfg.Categories[".log"])
			},
		},
		{
			name:        "unknown_field",
			filename:    ".tidydir.yaml",
			config:      "recursive: true\n",
			wantErr:     true,
			errContains: "parsing YAML",
		},
		{
			name:        "unknown_json_field",
			filename:    ".tidydir.json",
			config:      `{"recursive": true}`,
			wantErr:     true,
			errContains: "parsing JSON",
		},
		{
			name:        "bad_conflict_policy",
			filename:    ".tidydir.yaml",
			config:      "on_conflict: merge\n",
			wantErr:     true,
			errContains: "on_conflict",
		},
		{
			name:        "bad_ignore_pattern",
			filename:    ".tidydir.yaml",
			config:      "ignore:\n  - \"[\"\n",
			wantErr:     true,
			errContains: "invalid pattern",
		},
		{
			name:        "bad_category",
			filename:    ".tidydir.yaml",
			config:      "categories:\n  pdf: Documents\n",
			wantErr:     true,
			errContains: "categories",
		},
		{
			name:        "unsupported_format",
			filename:    ".tidydir.ini",
			config:      "on_conflict=skip",
			wantErr:     true,
			errContains: "no parser found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			dir := t.TempDir()
			path := filepath.Join(dir, tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.config), 0644))

			cfg, err := Load(ctx, path)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, path, cfg.Location())
			tt.check(t, dir, cfg)
		})
	}
}

func TestLoadOrDefault(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	missing := filepath.Join(t.TempDir(), DefaultPath)

	cfg, err := LoadOrDefault(ctx, missing, false)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)

	_, err = LoadOrDefault(ctx, missing, true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading config file")
}

func TestResolveTable(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "extensions.json"), []byte(`{".pdf": "Papers", ".jpg": "Images"}`), 0644))

	t.Run("built_in", func(t *testing.T) {
		tbl, err := (&Config{}).ResolveTable(ctx)
		require.NoError(t, err)
		assert.Equal(t, table.Default(), tbl)
	})

	t.Run("file_with_overrides", func(t *testing.T) {
		cfg := &Config{
			Table:      filepath.Join(dir, "extensions.json"),
			Categories: map[string]string{".jpg": "Photos"},
		}
		tbl, err := cfg.ResolveTable(ctx)
		require.NoError(t, err)
		assert.Equal(t, table.Table{".pdf": "Papers", ".jpg": "Photos"}, tbl)
	})

	t.Run("missing_table", func(t *testing.T) {
		cfg := &Config{Table: filepath.Join(dir, "nope.json")}
		_, err := cfg.ResolveTable(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "loading table")
	})
}
