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
package organize

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// hiddenPrefix marks names that are never scanned.
const hiddenPrefix = "."

// 📄 Entry is one regular file found directly inside the directory
type Entry struct {
	Name string // base name
	Ext  string // extension with its leading dot, "" when there is none
	Size int64  // size in bytes at scan time
}

// 🔍 scan lists the regular, non-hidden, non-ignored files of dir, sorted by name
func scan(ctx context.Context, dir string, ignore []string) ([]Entry, error) {
	logger := zerolog.Ctx(ctx)

	dirEntries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("reading directory %s: %w", dir, err)
	}

	entries := make([]Entry, 0, len(dirEntries))
	for _, de := range dirEntries {
		name := de.Name()
		if strings.HasPrefix(name, hiddenPrefix) || !de.Type().IsRegular() {
			continue
		}
		if pattern, ok := ignored(name, ignore); ok {
			logger.Debug().Str("file", name).Str("pattern", pattern).Msg("file ignored by pattern")
			continue
		}

		info, err := de.Info()
		if err != nil {
			return nil, errors.Errorf("reading file info for %s: %w", name, err)
		}

		entries = append(entries, Entry{
			Name: name,
			Ext:  extOf(name),
			Size: info.Size(),
		})
	}

	logger.Debug().Str("directory", dir).Int("files", len(entries)).Int("skipped", len(dirEntries)-len(entries)).Msg("scanned directory")
	return entries, nil
}

func ignored(name string, patterns []string) (string, bool) {
	for _, pattern := range patterns {
		matched, err := doublestar.Match(pattern, name)
		if err != nil {
			// patterns are validated before the scan
			continue
		}
		if matched {
			return pattern, true
		}
	}
	return "", false
}

// extOf returns the final suffix of name, treating a trailing bare dot as no extension.
func extOf(name string) string {
	ext := filepath.Ext(name)
	if ext == "." {
		return ""
	}
	return ext
}
