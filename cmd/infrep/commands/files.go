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
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/walteh/infrep/cmd/infrep/opts"
	"github.com/walteh/infrep/pkg/filelist"
	"github.com/walteh/infrep/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

var defaultExcludes = []string{"**/.git/**"}

// addFileFlags registers the file input methods; exactly one must be used
func addFileFlags(cmd *cobra.Command, s *filelist.Sources) {
	f := cmd.Flags()
	f.StringArrayVarP(&s.Files, "file", "f", nil, "file to change, repeatable")
	f.StringVar(&s.String, "files-string", "", "space separated list of files")
	f.StringVar(&s.From, "files-from", "", "file containing one path per line")
	f.StringArrayVarP(&s.Dirs, "dir", "d", nil, "directory to walk recursively, repeatable")
	f.BoolVar(&s.PWD, "pwd", false, "walk the current directory")
	f.StringArrayVar(&s.Globs, "glob", nil, "doublestar glob pattern, repeatable")
	f.StringArrayVar(&s.Exclude, "exclude", defaultExcludes, "doublestar pattern of paths to skip, repeatable")
}

func resolveFiles(ctx context.Context, ro *opts.RootOpts, s filelist.Sources) ([]string, error) {
	files, err := s.Resolve(ctx)
	if err != nil {
		return nil, errors.Errorf("%w: %s", operation.ErrValidation, err)
	}
	if len(files) == 0 {
		ro.Console.Warning("no files selected")
	}
	return files, nil
}

// fileCount pluralizes a file count for headers
func fileCount(n int) string {
	if n == 1 {
		return "1 file"
	}
	return fmt.Sprintf("%d files", n)
}

// readTerm loads a term from a file, dropping one trailing newline
func readTerm(path string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Errorf("%w: reading term: %s", operation.ErrValidation, err)
	}
	return strings.TrimSuffix(string(content), "\n"), nil
}
