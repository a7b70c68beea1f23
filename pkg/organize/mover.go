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

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🚚 Mover relocates a single file, removing it from src
type Mover interface {
	Move(ctx context.Context, src, dst string) error
}

// OSMover moves files with os.Rename. Moves across file systems fail.
type OSMover struct{}

// 🚚 Move renames src to dst
func (OSMover) Move(ctx context.Context, src, dst string) error {
	if err := os.Rename(src, dst); err != nil {
		return errors.Errorf("renaming file: %w", err)
	}
	return nil
}

// 📣 Notifier is told about every move before it is attempted
type Notifier interface {
	MoveStarted(ctx context.Context, mv Move)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(ctx context.Context, mv Move)

func (f NotifierFunc) MoveStarted(ctx context.Context, mv Move) {
	f(ctx, mv)
}

// 📝 LogNotifier writes one zerolog info event per move to the context logger
type LogNotifier struct{}

func (LogNotifier) MoveStarted(ctx context.Context, mv Move) {
	zerolog.Ctx(ctx).Info().
		Str("source", mv.Source).
		Str("destination", mv.Destination).
		Str("category", mv.Category).
		Msgf("Moving %s to %s ...", mv.Source, mv.Destination)
}
