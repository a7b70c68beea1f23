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
package table

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tbl := Table{".pdf": "Documents", "": "Plain"}

	assert.Equal(t, "Documents", tbl.Lookup(".pdf"), "mapped extension should resolve")
	assert.Equal(t, DefaultCategory, tbl.Lookup(".exe"), "unmapped extension should fall back")
	assert.Equal(t, DefaultCategory, tbl.Lookup(".PDF"), "lookup is case sensitive")
	assert.Equal(t, "Plain", tbl.Lookup(""), "empty extension uses its own entry")
	assert.Equal(t, DefaultCategory, Table{}.Lookup(""), "empty extension falls back when absent")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name        string
		table       Table
		errContains string
	}{
		{name: "valid", table: Table{".pdf": "Documents", "": "No Extension"}},
		{name: "missing_dot", table: Table{"pdf": "Documents"}, errContains: "must start with '.'"},
		{name: "empty_category", table: Table{".pdf": "  "}, errContains: "empty category"},
		{name: "separator_in_category", table: Table{".pdf": "docs/pdf"}, errContains: "invalid category"},
		{name: "parent_category", table: Table{".pdf": ".."}, errContains: "invalid category"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestMerge(t *testing.T) {
	base := Table{".pdf": "Documents", ".jpg": "Images"}
	merged := base.Merge(Table{".jpg": "Photos", ".exe": "Programs"})

	assert.Equal(t, Table{".pdf": "Documents", ".jpg": "Photos", ".exe": "Programs"}, merged)
	assert.Equal(t, "Images", base[".jpg"], "merge must not mutate the receiver")
}

func TestCategoriesAndExtensions(t *testing.T) {
	tbl := Table{".jpg": "Images", ".png": "Images", ".pdf": "Documents"}

	assert.Equal(t, []string{"Documents", "Images"}, tbl.Categories())
	assert.Equal(t, []string{".jpg", ".png"}, tbl.Extensions("Images"))
	assert.Empty(t, tbl.Extensions("Audio"))
}

func TestDefault(t *testing.T) {
	tbl := Default()
	require.NoError(t, tbl.Validate())
	assert.Equal(t, "Documents", tbl.Lookup(".pdf"))
	assert.Equal(t, "Images", tbl.Lookup(".jpg"))
	assert.Equal(t, DefaultCategory, tbl.Lookup(""))

	tbl[".pdf"] = "changed"
	assert.Equal(t, "Documents", Default().Lookup(".pdf"), "each call returns a fresh table")
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name        string
		filename    string
		content     string
		want        Table
		errContains string
	}{
		{
			name:     "json",
			filename: "extensions.json",
			content:  `{".pdf": "Documents", ".jpg": "Images"}`,
			want:     Table{".pdf": "Documents", ".jpg": "Images"},
		},
		{
			name:     "yaml",
			filename: "extensions.yaml",
			content:  "\".pdf\": Documents\n\".jpg\": Images\n",
			want:     Table{".pdf": "Documents", ".jpg": "Images"},
		},
		{
			name:     "yml",
			filename: "extensions.yml",
			content:  "\".mp3\": Audio\n",
			want:     Table{".mp3": "Audio"},
		},
		{
			name:     "toml",
			filename: "extensions.toml",
			content:  "\".pdf\" = \"Documents\"\n\".jpg\" = \"Images\"\n",
			want:     Table{".pdf": "Documents", ".jpg": "Images"},
		},
		{
			name:     "hcl",
			filename: "extensions.hcl",
			content:  "categories = {\n  \".pdf\" = \"Documents\"\n  \".jpg\" = \"Images\"\n}\n",
			want:     Table{".pdf": "Documents", ".jpg": "Images"},
		},
		{
			name:        "unsupported_format",
			filename:    "extensions.ini",
			content:     ".pdf=Documents",
			errContains: "unsupported category table format",
		},
		{
			name:        "invalid_json",
			filename:    "extensions.json",
			content:     `{".pdf": }`,
			errContains: "parsing JSON",
		},
		{
			name:        "invalid_category",
			filename:    "extensions.json",
			content:     `{".pdf": "a/b"}`,
			errContains: "validating category table",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			path := filepath.Join(t.TempDir(), tt.filename)
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0644))

			got, err := Load(ctx, path)
			if tt.errContains != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.errContains)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestLoadMissingFile(t *testing.T) {
	ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
	_, err := Load(ctx, filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading category table")
}
