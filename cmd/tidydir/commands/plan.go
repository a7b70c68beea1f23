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
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/walteh/tidydir/cmd/tidydir/opts"
	"github.com/walteh/tidydir/pkg/log"
	"github.com/walteh/tidydir/pkg/organize"
	"gitlab.com/tozd/go/errors"
)

// NewPlanCmd creates the plan command
func NewPlanCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan [directory]",
		Short: "Show where each file would go, without changing anything",
		Long: `Plan scans the directory and classifies its files exactly like organize,
but creates no folders and moves nothing.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			if err := o.Resolve(ctx); err != nil {
				return err
			}

			dir, err := resolveDirectory(args)
			if err != nil {
				return err
			}

			moves, err := organize.Plan(ctx, o.OrganizeOptions(dir))
			if err != nil {
				return errors.Errorf("planning %s: %w", dir, err)
			}

			if len(moves) == 0 {
				log.FromContext(ctx).Info("nothing to organize")
				return nil
			}

			rows := make([][]string, 0, len(moves))
			for _, mv := range moves {
				rows = append(rows, []string{
					mv.Entry.Name,
					displayExt(mv.Entry.Ext),
					mv.Category,
					filepath.Join(mv.Category, mv.Entry.Name),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"File", "Extension", "Category", "Destination"}, rows))
			return nil
		},
	}

	return cmd
}
