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
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gitlab.com/tozd/go/errors"
)

// ⚔️ ConflictPolicy decides what happens when the destination file already exists
type ConflictPolicy string

const (
	// ConflictOverwrite replaces the existing file.
	ConflictOverwrite ConflictPolicy = "overwrite"
	// ConflictSkip leaves the source where it is.
	ConflictSkip ConflictPolicy = "skip"
	// ConflictRename picks the first free "name (n).ext".
	ConflictRename ConflictPolicy = "rename"
	// ConflictFail reports ErrDestinationExists.
	ConflictFail ConflictPolicy = "fail"
)

// maxRenameAttempts bounds the search for a free "name (n).ext".
const maxRenameAttempts = 10000

// ParseConflictPolicy accepts the policy names, or "" for the default.
func ParseConflictPolicy(s string) (ConflictPolicy, error) {
	switch p := ConflictPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return ConflictOverwrite, nil
	case ConflictOverwrite, ConflictSkip, ConflictRename, ConflictFail:
		return p, nil
	default:
		return "", errors.Errorf("unknown conflict policy %q (want overwrite, skip, rename or fail)", s)
	}
}

func (p ConflictPolicy) String() string {
	return string(p)
}

// 🔍 resolve returns the destination to use, or skip=true when the move should not happen
func (p ConflictPolicy) resolve(dst string) (string, bool, error) {
	exists, err := pathExists(dst)
	if err != nil {
		return "", false, err
	}
	if !exists {
		return dst, false, nil
	}

	switch p {
	case ConflictSkip:
		return dst, true, nil
	case ConflictFail:
		return "", false, ErrDestinationExists
	case ConflictRename:
		return renameFree(dst)
	default:
		return dst, false, nil
	}
}

func renameFree(dst string) (string, bool, error) {
	dir := filepath.Dir(dst)
	name := filepath.Base(dst)
	ext := extOf(name)
	stem := strings.TrimSuffix(name, ext)

	for n := 1; n <= maxRenameAttempts; n++ {
		candidate := filepath.Join(dir, fmt.Sprintf("%s (%d)%s", stem, n, ext))
		exists, err := pathExists(candidate)
		if err != nil {
			return "", false, err
		}
		if !exists {
			return candidate, false, nil
		}
	}
	return "", false, errors.Errorf("no free name for %s after %d attempts: %w", dst, maxRenameAttempts, ErrDestinationExists)
}

func pathExists(path string) (bool, error) {
	_, err := os.Lstat(path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, errors.Errorf("checking destination: %w", err)
}
