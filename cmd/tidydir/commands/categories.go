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
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/tidydir/cmd/tidydir/opts"
	"github.com/walteh/tidydir/pkg/table"
)

// NewCategoriesCmd creates the categories command
func NewCategoriesCmd(o *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "categories",
		Short: "List the category table in effect",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := o.Resolve(cmd.Context()); err != nil {
				return err
			}

			var rows [][]string
			for _, category := range o.Table.Categories() {
				exts := o.Table.Extensions(category)
				for i, ext := range exts {
					exts[i] = displayExt(ext)
				}
				rows = append(rows, []string{category, strings.Join(exts, ", ")})
			}
			rows = append(rows, []string{table.DefaultCategory + " (default)", "anything else"})

			fmt.Fprintln(cmd.OutOrStdout(), renderTable([]string{"Category", "Extensions"}, rows))
			return nil
		},
	}

	return cmd
}
