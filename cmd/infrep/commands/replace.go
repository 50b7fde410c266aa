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
	"github.com/walteh/infrep/pkg/text"
)

type replaceFlags struct {
	reInput, reOutput, reBoth       bool
	fileInput, fileOutput, fileBoth bool
	confirmNoChanges                bool
	sources                         filelist.Sources
}

// NewReplaceCmd creates the replace command
func NewReplaceCmd(ro *opts.RootOpts) *cobra.Command {
	var flags replaceFlags

	cmd := &cobra.Command{
		Use:   "replace INPUT OUTPUT",
		Short: "Replace INPUT with OUTPUT, confirming each match",
		Long: `Replace finds INPUT in every selected file and asks about each match.

Keys: y yes, n no, Y yes to rest of file, N no to rest of file,
A yes to everything remaining, Q quit without writing.

INPUT is literal unless --re-input is set. OUTPUT is literal unless --re-output
is set, in which case it is an expression such as:

	"\\" + group(1) + "dog."
	"${named("word")}s"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			spec, err := flags.changeSpec(args[0], args[1])
			if err != nil {
				return err
			}
			spec.Files, err = resolveFiles(ctx, ro, flags.sources)
			if err != nil {
				return err
			}
			ro.Console.Header(fmt.Sprintf("replace %q in %s", args[0], fileCount(len(spec.Files))))

			options, files := ro.Options(flags.confirmNoChanges)
			op, err := operation.NewReplaceOperation(options, spec)
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

	f := cmd.Flags()
	f.BoolVar(&flags.reInput, "re-input", false, "INPUT is a regular expression")
	f.BoolVar(&flags.reOutput, "re-output", false, "OUTPUT is an expression over the match")
	f.BoolVarP(&flags.reBoth, "re-both", "r", false, "same as --re-input --re-output")
	f.BoolVar(&flags.fileInput, "input-file", false, "INPUT names a file holding the term")
	f.BoolVar(&flags.fileOutput, "output-file", false, "OUTPUT names a file holding the term")
	f.BoolVar(&flags.fileBoth, "file-both", false, "same as --input-file --output-file")
	f.BoolVar(&flags.confirmNoChanges, "confirm-no-changes", false, "ask for final confirmation even when nothing was accepted")
	addFileFlags(cmd, &flags.sources)

	return cmd
}

func (f replaceFlags) changeSpec(input, output string) (text.ChangeSpec, error) {
	var err error
	if f.fileInput || f.fileBoth {
		if input, err = readTerm(input); err != nil {
			return text.ChangeSpec{}, err
		}
	}
	if f.fileOutput || f.fileBoth {
		if output, err = readTerm(output); err != nil {
			return text.ChangeSpec{}, err
		}
	}

	spec := text.ChangeSpec{Input: input, Output: output}
	if f.reInput || f.reBoth {
		spec.InputMode = text.InputRegex
	}
	if f.reOutput || f.reBoth {
		spec.OutputMode = text.OutputEvaluated
	}
	return spec, nil
}
