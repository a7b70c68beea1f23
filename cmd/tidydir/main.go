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
package main

import (
	"context"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/walteh/tidydir/cmd/tidydir/opts"
	"github.com/walteh/tidydir/pkg/log"
)

func main() {
	rootCmd := newRootCmd(&opts.RootOpts{})

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(exitWithError(os.Stderr, err))
	}
}

// exitWithError reports a fatal error on w and returns the process exit code
func exitWithError(w io.Writer, err error) int {
	log.New(w, zerolog.Nop()).Error(err.Error())
	return 1
}
