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
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"github.com/walteh/tidydir/pkg/table"
	"gitlab.com/tozd/go/errors"
)

// dirPerm is the mode used for new category directories.
const dirPerm = 0o755

// 🔧 Options configures an Organizer
type Options struct {
	// Directory is the directory to organize. It must already exist.
	Directory string
	// Table maps extensions to categories.
	Table table.Table
	// Mover relocates files. Defaults to OSMover.
	Mover Mover
	// Notifier hears about every move before it happens. Defaults to LogNotifier.
	Notifier Notifier
	// OnConflict applies when a destination file already exists. Defaults to ConflictOverwrite.
	OnConflict ConflictPolicy
	// ContinueOnError keeps moving after a failed move and reports every failure at the end.
	ContinueOnError bool
	// Ignore holds doublestar patterns matched against file names; matches are left out of the snapshot.
	Ignore []string
}

// 🚚 Move is one planned relocation
type Move struct {
	Entry       Entry
	Category    string
	Source      string
	Destination string
}

// 📊 Result summarizes an OrganizeFiles run
type Result struct {
	Moved   []Move
	Skipped []Move
	Failed  []Move
	Bytes   int64 // total size of moved files
}

// 🗂️ Organizer moves the files of one directory into category subdirectories
type Organizer struct {
	dir             string
	table           table.Table
	entries         []Entry
	categories      map[string]string // extension -> category
	mover           Mover
	notifier        Notifier
	onConflict      ConflictPolicy
	continueOnError bool
}

// 🏭 New scans opts.Directory, classifies its files and creates the category directories.
// Nothing on disk changes when the directory does not exist.
func New(ctx context.Context, opts Options) (*Organizer, error) {
	o, err := prepare(ctx, opts)
	if err != nil {
		return nil, err
	}

	if err := o.createDirectories(ctx); err != nil {
		return nil, err
	}

	return o, nil
}

// 📋 Plan scans and classifies opts.Directory without touching the file system.
func Plan(ctx context.Context, opts Options) ([]Move, error) {
	o, err := prepare(ctx, opts)
	if err != nil {
		return nil, err
	}
	return o.Plan(), nil
}

func prepare(ctx context.Context, opts Options) (*Organizer, error) {
	logger := zerolog.Ctx(ctx)

	if opts.Directory == "" {
		return nil, errors.Errorf("%w: no directory given", ErrDirectoryNotFound)
	}

	dir, err := filepath.Abs(opts.Directory)
	if err != nil {
		return nil, errors.Errorf("resolving directory %s: %w", opts.Directory, err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, errors.Errorf("%w: %s doesn't exist", ErrDirectoryNotFound, dir)
		}
		return nil, errors.Errorf("checking directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("%w: %s is not a directory", ErrDirectoryNotFound, dir)
	}

	policy, err := ParseConflictPolicy(string(opts.OnConflict))
	if err != nil {
		return nil, err
	}

	for _, pattern := range opts.Ignore {
		if !doublestar.ValidatePattern(pattern) {
			return nil, errors.Errorf("invalid ignore pattern %q", pattern)
		}
	}

	entries, err := scan(ctx, dir, opts.Ignore)
	if err != nil {
		return nil, err
	}

	o := &Organizer{
		dir:             dir,
		table:           opts.Table,
		entries:         entries,
		categories:      classify(entries, opts.Table),
		mover:           opts.Mover,
		notifier:        opts.Notifier,
		onConflict:      policy,
		continueOnError: opts.ContinueOnError,
	}
	if o.mover == nil {
		o.mover = OSMover{}
	}
	if o.notifier == nil {
		o.notifier = LogNotifier{}
	}

	logger.Debug().
		Str("directory", dir).
		Int("files", len(entries)).
		Int("extensions", len(o.categories)).
		Str("on_conflict", policy.String()).
		Msg("organizer prepared")

	return o, nil
}

// classify resolves every distinct extension of entries through t.
func classify(entries []Entry, t table.Table) map[string]string {
	categories := make(map[string]string)
	for _, e := range entries {
		if _, ok := categories[e.Ext]; ok {
			continue
		}
		categories[e.Ext] = t.Lookup(e.Ext)
	}
	return categories
}

// 📁 createDirectories makes one directory per distinct category; existing directories are fine
func (o *Organizer) createDirectories(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	for _, category := range o.categoryNames() {
		path := filepath.Join(o.dir, category)
		if err := os.MkdirAll(path, dirPerm); err != nil {
			return &DirError{Path: path, Err: err}
		}
		logger.Debug().Str("path", path).Msg("category directory ready")
	}
	return nil
}

// 🏃 OrganizeFiles moves every file of the snapshot into its category directory.
//
// The first failure stops the run unless ContinueOnError was set, in which case every
// failure is joined into the returned error. The Result is always non-nil.
func (o *Organizer) OrganizeFiles(ctx context.Context) (*Result, error) {
	logger := zerolog.Ctx(ctx)
	result := &Result{}
	var errs []error

	for _, mv := range o.Plan() {
		if err := ctx.Err(); err != nil {
			errs = append(errs, errors.Errorf("organizing %s: %w", o.dir, err))
			break
		}

		if err := o.move(ctx, &mv, result); err != nil {
			result.Failed = append(result.Failed, mv)
			errs = append(errs, err)
			if !o.continueOnError {
				break
			}
		}
	}

	logger.Debug().
		Int("moved", len(result.Moved)).
		Int("skipped", len(result.Skipped)).
		Int("failed", len(result.Failed)).
		Msg("organize complete")

	switch len(errs) {
	case 0:
		return result, nil
	case 1:
		return result, errs[0]
	default:
		return result, errors.Join(errs...)
	}
}

func (o *Organizer) move(ctx context.Context, mv *Move, result *Result) error {
	dst, skip, err := o.onConflict.resolve(mv.Destination)
	if err != nil {
		return &MoveError{Source: mv.Source, Destination: mv.Destination, Err: err}
	}
	if skip {
		zerolog.Ctx(ctx).Warn().Str("source", mv.Source).Str("destination", dst).Msg("destination exists, skipping")
		result.Skipped = append(result.Skipped, *mv)
		return nil
	}
	mv.Destination = dst

	o.notifier.MoveStarted(ctx, *mv)

	if err := o.mover.Move(ctx, mv.Source, mv.Destination); err != nil {
		return &MoveError{Source: mv.Source, Destination: mv.Destination, Err: err}
	}

	result.Moved = append(result.Moved, *mv)
	result.Bytes += mv.Entry.Size
	return nil
}

// 📋 Plan lists the moves OrganizeFiles will attempt, in snapshot order
func (o *Organizer) Plan() []Move {
	moves := make([]Move, 0, len(o.entries))
	for _, e := range o.entries {
		category := o.categories[e.Ext]
		moves = append(moves, Move{
			Entry:       e,
			Category:    category,
			Source:      filepath.Join(o.dir, e.Name),
			Destination: filepath.Join(o.dir, category, e.Name),
		})
	}
	return moves
}

// Directory returns the absolute directory being organized.
func (o *Organizer) Directory() string {
	return o.dir
}

// Entries returns a copy of the file snapshot.
func (o *Organizer) Entries() []Entry {
	return append([]Entry(nil), o.entries...)
}

// Categories returns a copy of the extension to category map.
func (o *Organizer) Categories() map[string]string {
	out := make(map[string]string, len(o.categories))
	for ext, category := range o.categories {
		out[ext] = category
	}
	return out
}

// CategoryFor resolves ext the same way the snapshot was classified.
func (o *Organizer) CategoryFor(ext string) string {
	if category, ok := o.categories[ext]; ok {
		return category
	}
	return o.table.Lookup(ext)
}

func (o *Organizer) categoryNames() []string {
	seen := make(map[string]struct{}, len(o.categories))
	names := make([]string, 0, len(o.categories))
	for _, category := range o.categories {
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		names = append(names, category)
	}
	sort.Strings(names)
	return names
}
