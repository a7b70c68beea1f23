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
package commands

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/pterm/pterm"
	"gitlab.com/tozd/go/errors"
)

const directoryPrompt = "What's the directory path intended to be cleaned?"

// isInteractive reports whether stdin is a terminal; tests swap it out
var isInteractive = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// promptDirectory asks for the directory; tests swap it out
var promptDirectory = func() (string, error) {
	return pterm.DefaultInteractiveTextInput.Show(directoryPrompt)
}

// resolveDirectory takes the directory from args, or asks for it when stdin is a terminal
func resolveDirectory(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}

	if !isInteractive() {
		return "", errors.New("a directory argument is required when stdin is not a terminal")
	}

	dir, err := promptDirectory()
	if err != nil {
		return "", errors.Errorf("reading directory from prompt: %w", err)
	}
	dir = strings.TrimSpace(dir)
	if dir == "" {
		return "", errors.New("no directory given")
	}
	return dir, nil
}
