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

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/infrep/cmd/infrep/opts"
	"github.com/walteh/infrep/pkg/filelist"
	"github.com/walteh/infrep/pkg/operation"
)

// NewMoveCmd creates the mv command
func NewMoveCmd(ro *opts.RootOpts) *cobra.Command {
	var sources filelist.Sources

	cmd := &cobra.Command{
		Use:   "mv SOURCE... DESTINATION",
		Short: "Move files and rewrite references to their paths",
		Long: `Mv rewrites every reference to each SOURCE in the selected files, then moves it.

With one SOURCE and a DESTINATION that is not a directory, SOURCE is renamed.
Otherwise every SOURCE is moved into the DESTINATION directory. Paths under your
home directory are also matched in their home-relative form.

Nothing moves unless the rewrite is confirmed and written.`,
		Args: cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			scan, err := resolveFiles(ctx, ro, sources)
			if err != nil {
				return err
			}
			ro.Console.Header(fmt.Sprintf("move %d paths, scanning %s", len(args)-1, fileCount(len(scan))))

			options, files := ro.Options(true)
			op, err := operation.NewMoveOperation(options, operation.Move{Args: args, Scan: scan})
			if err != nil {
				return err
			}

			runErr := operation.NewRunner(zerolog.Ctx(ctx)).Run(ctx, op)
			for _, info := range files.ListFiles(ctx) {
				if info.MovedTo != "" {
					ro.UserLogger.LogMove(info.Path, info.MovedTo, info.Error)
				}
			}
			if runErr != nil {
				return runErr
			}

			ro.Report(ctx, files)
			return nil
		},
	}

	addFileFlags(cmd, &sources)

	return cmd
}
