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
	"context"
	"io"

	"github.com/schollz/progressbar/v3"
	"github.com/walteh/tidydir/pkg/organize"
)

// progressNotifier advances a bar for every move and passes the move on.
// The bar is created by start, once the number of files is known.
type progressNotifier struct {
	next organize.Notifier
	bar  *progressbar.ProgressBar
}

func (p *progressNotifier) start(w io.Writer, total int) {
	p.bar = progressbar.NewOptions(total,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionSetDescription("organizing"),
		progressbar.OptionShowCount(),
		progressbar.OptionClearOnFinish(),
	)
}

func (p *progressNotifier) MoveStarted(ctx context.Context, mv organize.Move) {
	p.next.MoveStarted(ctx, mv)
	if p.bar != nil {
		_ = p.bar.Add(1)
	}
}

func (p *progressNotifier) finish() {
	if p.bar != nil {
		_ = p.bar.Finish()
	}
}
