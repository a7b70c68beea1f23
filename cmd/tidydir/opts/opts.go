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
package opts

import (
	"context"

	"github.com/walteh/tidydir/pkg/config"
	"github.com/walteh/tidydir/pkg/organize"
	"github.com/walteh/tidydir/pkg/table"
	"gitlab.com/tozd/go/errors"
)

// RootOpts holds the shared flags and everything resolved from them
type RootOpts struct {
	ConfigFile      string
	ConfigRequired  bool // set when --config was given explicitly
	Debug           bool
	TablePath       string
	OnConflict      string
	ContinueOnError bool
	Ignore          []string
	Progress        bool

	Config *config.Config
	Table  table.Table
}

// Resolve loads the settings file, applies flag overrides and resolves the category table.
// It only does the work once.
func (o *RootOpts) Resolve(ctx context.Context) error {
	if o.Config != nil {
		return nil
	}

	path := o.ConfigFile
	if path == "" {
		path = config.DefaultPath
	}

	cfg, err := config.LoadOrDefault(ctx, path, o.ConfigRequired)
	if err != nil {
		return errors.Errorf("loading config: %w", err)
	}

	if o.TablePath != "" {
		cfg.Table = o.TablePath
	}
	if o.OnConflict != "" {
		cfg.OnConflict = o.OnConflict
	}
	if o.ContinueOnError {
		cfg.ContinueOnError = true
	}
	cfg.Ignore = append(cfg.Ignore, o.Ignore...)

	if err := cfg.Validate(); err != nil {
		return errors.Errorf("validating flags: %w", err)
	}

	tbl, err := cfg.ResolveTable(ctx)
	if err != nil {
		return errors.Errorf("resolving category table: %w", err)
	}

	o.Config = cfg
	o.Table = tbl
	return nil
}

// OrganizeOptions builds organizer options for dir from the resolved settings
func (o *RootOpts) OrganizeOptions(dir string) organize.Options {
	return organize.Options{
		Directory:       dir,
		Table:           o.Table,
		OnConflict:      organize.ConflictPolicy(o.Config.OnConflict),
		ContinueOnError: o.Config.ContinueOnError,
		Ignore:          o.Config.Ignore,
	}
}
