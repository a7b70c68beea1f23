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
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/tidydir/cmd/tidydir/commands"
	"github.com/walteh/tidydir/cmd/tidydir/opts"
	"github.com/walteh/tidydir/pkg/config"
	"github.com/walteh/tidydir/pkg/log"
)

// newRootCmd builds the tidydir command tree; the root command itself organizes a directory
func newRootCmd(o *opts.RootOpts) *cobra.Command {
	organizeCmd := commands.NewOrganizeCmd(o)

	rootCmd := &cobra.Command{
		Use:   "tidydir [directory]",
		Short: "Sort the files of a directory into category folders",
		Long: `tidydir moves every regular, non-hidden file of a directory into a
subdirectory named after its category. Categories come from the file
extension, looked up in a category table (built in, or loaded with --table).

When no directory is given and stdin is a terminal, tidydir asks for one.`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			zlog := setupLogging(o.Debug)
			ctx := zlog.WithContext(cmd.Context())
			cmd.SetContext(log.NewContext(ctx, log.New(cmd.OutOrStdout(), zlog)))
			if f := cmd.Flag("config"); f != nil {
				o.ConfigRequired = f.Changed
			}
			return nil
		},
		RunE: organizeCmd.RunE,
	}

	addRootFlags(rootCmd, o)

	rootCmd.AddCommand(
		organizeCmd,
		commands.NewPlanCmd(o),
		commands.NewCategoriesCmd(o),
	)

	return rootCmd
}

// addRootFlags adds shared flags to the root command
func addRootFlags(cmd *cobra.Command, o *opts.RootOpts) {
	cmd.PersistentFlags().StringVarP(&o.ConfigFile, "config", "c", config.DefaultPath, "settings file path")
	cmd.PersistentFlags().BoolVarP(&o.Debug, "debug", "d", false, "enable debug logging")
	cmd.PersistentFlags().StringVarP(&o.TablePath, "table", "t", "", "category table file (.json, .yaml, .toml or .hcl)")
	cmd.PersistentFlags().StringVar(&o.OnConflict, "on-conflict", "", "when the destination exists: overwrite, skip, rename or fail")
	cmd.PersistentFlags().BoolVar(&o.ContinueOnError, "continue-on-error", false, "keep going after a failed move")
	cmd.PersistentFlags().StringSliceVar(&o.Ignore, "ignore", nil, "glob of file names to leave alone (repeatable)")
	cmd.PersistentFlags().BoolVar(&o.Progress, "progress", false, "show a progress bar on stderr while files move")
}

// setupLogging builds the diagnostic logger. Console lines cover normal output, so zerolog stays at warn unless debugging.
func setupLogging(debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}
