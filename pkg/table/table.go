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
	_ "embed"
	"encoding/json"
	"sort"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// DefaultCategory is used for any extension the table does not map.
const DefaultCategory = "Other Files"

// 📚 Table maps a file extension (with its leading dot) to a category name
type Table map[string]string

//go:embed extensions.json
var defaultTableJSON []byte

// 🏭 Default returns the built-in extension table
func Default() Table {
	var t Table
	if err := json.Unmarshal(defaultTableJSON, &t); err != nil {
		panic("embedded extensions.json is invalid: " + err.Error())
	}
	return t
}

// 🔍 Lookup returns the category for ext, or DefaultCategory when ext is not mapped
func (t Table) Lookup(ext string) string {
	if category, ok := t[ext]; ok {
		return category
	}
	return DefaultCategory
}

// ✅ Validate checks that every key is an extension and every category is a usable directory name
func (t Table) Validate() error {
	for ext, category := range t {
		if ext != "" && !strings.HasPrefix(ext, ".") {
			return errors.Errorf("extension %q must start with '.'", ext)
		}
		if strings.TrimSpace(category) == "" {
			return errors.Errorf("extension %q has an empty category", ext)
		}
		if category == "." || category == ".." || strings.ContainsAny(category, `/\`) {
			return errors.Errorf("extension %q has invalid category %q", ext, category)
		}
	}
	return nil
}

// 🔀 Merge returns a new table with the entries of other layered over t
func (t Table) Merge(other Table) Table {
	merged := make(Table, len(t)+len(other))
	for ext, category := range t {
		merged[ext] = category
	}
	for ext, category := range other {
		merged[ext] = category
	}
	return merged
}

// Categories returns the distinct category names, sorted.
func (t Table) Categories() []string {
	seen := make(map[string]struct{}, len(t))
	for _, category := range t {
		seen[category] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for category := range seen {
		out = append(out, category)
	}
	sort.Strings(out)
	return out
}

// Extensions returns the extensions mapped to category, sorted.
func (t Table) Extensions(category string) []string {
	var out []string
	for ext, c := range t {
		if c == category {
			out = append(out, ext)
		}
	}
	sort.Strings(out)
	return out
}
