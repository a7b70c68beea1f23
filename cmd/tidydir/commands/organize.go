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
	"github.com/spf13/cobra"
	"github.com/walteh/tidydir/cmd/tidydir/opts"
	"github.com/walteh/tidydir/pkg/log"
	"github.com/walteh/tidydir/pkg/organize"
	"gitlab.com/tozd/go/errors"
)

// NewOrganizeCmd creates the organize command
func NewOrganizeCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "organize [directory]",
		Short: "Move the files of a directory into category folders",
		Long: `Organize scans the directory once, then:
1. Resolves every file extension to a category
2. Creates one folder per category
3. Moves each file into its category folder

Hidden files and subdirectories are left alone.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			console := log.FromContext(ctx)

			if err := o.Resolve(ctx); err != nil {
				return err
			}

			dir, err := resolveDirectory(args)
			if err != nil {
				return err
			}

			orgOpts := o.OrganizeOptions(dir)
			orgOpts.Notifier = console

			var progress *progressNotifier
			if o.Progress {
				progress = &progressNotifier{next: console}
				orgOpts.Notifier = progress
			}

			org, err := organize.New(ctx, orgOpts)
			if err != nil {
				return errors.Errorf("preparing %s: %w", dir, err)
			}

			console.Header("organizing files")
			console.StartDirectory(ctx, org.Directory(), len(org.Entries()))
			if progress != nil {
				progress.start(cmd.ErrOrStderr(), len(org.Entries()))
			}

			result, err := org.OrganizeFiles(ctx)
			if progress != nil {
				progress.finish()
			}
			console.Summary(ctx, result)
			if err != nil {
				return errors.Errorf("organizing %s: %w", org.Directory(), err)
			}

			if n := len(result.Skipped); n > 0 {
				console.Warningf("%d files skipped, destination already exists", n)
			}
			console.Successf("organized %d files in %s", len(result.Moved), org.Directory())
			return nil
		},
	}

	return cmd
}
