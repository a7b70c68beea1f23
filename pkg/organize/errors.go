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

	"gitlab.com/tozd/go/errors"
)

// 🚨 Error kinds, matched with errors.Is
var (
	ErrDirectoryNotFound       = errors.Base("directory not found")
	ErrDirectoryCreationFailed = errors.Base("directory creation failed")
	ErrMoveFailed              = errors.Base("move failed")
	ErrDestinationExists       = errors.Base("destination already exists")
)

// 📁 DirError reports a category directory that could not be created
type DirError struct {
	Path string
	Err  error
}

func (e *DirError) Error() string {
	return fmt.Sprintf("%s: creating %s: %v", ErrDirectoryCreationFailed, e.Path, e.Err)
}

// Unwrap exposes both the kind and the cause.
func (e *DirError) Unwrap() []error {
	return []error{ErrDirectoryCreationFailed, e.Err}
}

// 📦 MoveError reports a single file that could not be relocated
type MoveError struct {
	Source      string
	Destination string
	Err         error
}

func (e *MoveError) Error() string {
	return fmt.Sprintf("%s: moving %s to %s: %v", ErrMoveFailed, e.Source, e.Destination, e.Err)
}

// Unwrap exposes both the kind and the cause.
func (e *MoveError) Unwrap() []error {
	return []error{ErrMoveFailed, e.Err}
}
