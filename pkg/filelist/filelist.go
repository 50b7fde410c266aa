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

// Package filelist turns the supported file input methods into a list of paths.
package filelist

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

var ErrInvalidInput = errors.Base("invalid file input")

// 📂 Sources holds every way a file list can be given. Exactly one method may be used.
type Sources struct {
	// Files is an explicit list; duplicates are kept
	Files []string
	// String is a space separated list
	String string
	// From names a file with one path per line
	From string
	// Dirs are walked recursively for regular files
	Dirs []string
	// PWD walks the current directory
	PWD bool
	// Globs are doublestar patterns
	Globs []string

	// Exclude drops any path matching one of these doublestar patterns
	Exclude []string
}

func (s Sources) methods() []string {
	var used []string
	if len(s.Files) > 0 {
		used = append(used, "files")
	}
	if s.String != "" {
		used = append(used, "files-string")
	}
	if s.From != "" {
		used = append(used, "files-from")
	}
	if len(s.Dirs) > 0 {
		used = append(used, "dirs")
	}
	if s.PWD {
		used = append(used, "pwd")
	}
	if len(s.Globs) > 0 {
		used = append(used, "globs")
	}
	return used
}

// Resolve returns the paths named by the single method in use
func (s Sources) Resolve(ctx context.Context) ([]string, error) {
	used := s.methods()
	if len(used) != 1 {
		return nil, errors.Errorf("%w: exactly one file input method is required, got %d (%s)", ErrInvalidInput, len(used), strings.Join(used, ", "))
	}
	for _, p := range s.Exclude {
		if !doublestar.ValidatePathPattern(p) {
			return nil, errors.Errorf("%w: bad exclude pattern %q", ErrInvalidInput, p)
		}
	}

	var (
		files []string
		err   error
	)
	switch used[0] {
	case "files":
		files = s.Files
	case "files-string":
		files = strings.Fields(s.String)
	case "files-from":
		files, err = readList(s.From)
	case "dirs":
		files, err = walk(s.Dirs)
	case "pwd":
		files, err = walk([]string{"."})
	case "globs":
		files, err = Glob(s.Globs)
	}
	if err != nil {
		return nil, err
	}

	files = s.exclude(files)

	zerolog.Ctx(ctx).Debug().Str("method", used[0]).Int("files", len(files)).Msg("file list resolved")
	return files, nil
}

func (s Sources) exclude(files []string) []string {
	if len(s.Exclude) == 0 {
		return files
	}
	kept := files[:0:0]
	for _, f := range files {
		if !Excluded(f, s.Exclude) {
			kept = append(kept, f)
		}
	}
	return kept
}

// Excluded reports whether path matches any of patterns. Absolute paths are also tried
// without their leading separator so relative patterns like **/.git/** apply to them.
func Excluded(path string, patterns []string) bool {
	clean := filepath.Clean(path)
	candidates := []string{clean}
	if filepath.IsAbs(clean) {
		candidates = append(candidates, strings.TrimLeft(filepath.ToSlash(clean), "/"))
	}
	for _, p := range patterns {
		for _, c := range candidates {
			if ok, _ := doublestar.PathMatch(p, c); ok {
				return true
			}
		}
	}
	return false
}

func readList(path string) ([]string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("%w: reading file list %s: %s", ErrInvalidInput, path, err)
	}

	var files []string
	for _, line := range strings.Split(string(content), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			files = append(files, line)
		}
	}
	return files, nil
}

func walk(dirs []string) ([]string, error) {
	seen := map[string]bool{}
	var files []string
	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if !d.Type().IsRegular() || seen[path] {
				return nil
			}
			seen[path] = true
			files = append(files, path)
			return nil
		})
		if err != nil {
			return nil, errors.Errorf("%w: walking %s: %s", ErrInvalidInput, dir, err)
		}
	}
	return files, nil
}

// Glob expands doublestar patterns to regular files, in pattern order with duplicates removed
func Glob(patterns []string) ([]string, error) {
	seen := map[string]bool{}
	var files []string
	for _, pattern := range patterns {
		if !doublestar.ValidatePathPattern(pattern) {
			return nil, errors.Errorf("%w: bad glob pattern %q", ErrInvalidInput, pattern)
		}
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, errors.Errorf("%w: expanding %q: %s", ErrInvalidInput, pattern, err)
		}
		for _, m := range matches {
			if seen[m] {
				continue
			}
			info, err := os.Stat(m)
			if err != nil || !info.Mode().IsRegular() {
				continue
			}
			seen[m] = true
			files = append(files, m)
		}
	}
	return files, nil
}
