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
	"github.com/walteh/infrep/pkg/config"
	"github.com/walteh/infrep/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewPlanCmd creates the plan command
func NewPlanCmd(ro *opts.RootOpts) *cobra.Command {
	var confirmNoChanges bool

	cmd := &cobra.Command{
		Use:   "plan FILE",
		Short: "Apply every change listed in a plan file",
		Long: `Plan applies a batch of changes from a .yaml, .yml, .hcl or .json file in one run.
Changes are applied in order and share one final confirmation.

Relative files and globs are resolved against the plan's directory.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			plan, err := config.Load(ctx, args[0])
			if err != nil {
				return errors.Errorf("%w: %s", operation.ErrValidation, err)
			}
			specs, err := config.ChangeSpecs(ctx, plan)
			if err != nil {
				return errors.Errorf("%w: %s", operation.ErrValidation, err)
			}
			ro.Console.Header(fmt.Sprintf("plan %s: %d changes", args[0], len(specs)))
			for i, spec := range specs {
				if len(spec.Files) == 0 {
					ro.Console.Warningf("change %d (%q) matches no files", i, spec.Input)
				}
			}

			options, files := ro.Options(confirmNoChanges || plan.ConfirmWhenNoChanges)
			op, err := operation.NewReplaceOperation(options, specs...)
			if err != nil {
				return err
			}

			if err := operation.NewRunner(zerolog.Ctx(ctx)).Run(ctx, op); err != nil {
				return err
			}

			ro.Report(ctx, files)
			return nil
		},
	}

	cmd.Flags().BoolVar(&confirmNoChanges, "confirm-no-changes", false, "ask for final confirmation even when nothing was accepted")

	return cmd
}
