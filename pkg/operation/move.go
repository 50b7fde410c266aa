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

package operation

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/infrep/pkg/status"
	"github.com/walteh/infrep/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🚚 Move relocates paths and rewrites references to them
type Move struct {
	// Args are the sources followed by the destination
	Args []string
	// Scan lists the files searched for references
	Scan []string
	// WorkDir resolves relative arguments; defaults to LogicalWorkDir
	WorkDir string
	// HomeDir enables home-relative references; defaults to the user's home directory
	HomeDir string
}

// MovePair is one resolved source and where it ends up
type MovePair struct {
	Source      string
	Destination string
}

// MoveResult describes a completed move
type MoveResult struct {
	Replace Result
	Moves   []MovePair
}

type MoveOperation struct {
	opts Options
	move Move
}

// NewMoveOperation always shows the final gate, since it also confirms the move itself
func NewMoveOperation(opts Options, move Move) (*MoveOperation, error) {
	opts, err := opts.validate()
	if err != nil {
		return nil, err
	}
	opts.ConfirmWhenNoChanges = true
	return &MoveOperation{opts: opts, move: move}, nil
}

func (o *MoveOperation) Execute(ctx context.Context) error {
	_, err := o.Run(ctx)
	return err
}

// Run validates the move, rewrites references and only then moves anything
func (o *MoveOperation) Run(ctx context.Context) (MoveResult, error) {
	logger := zerolog.Ctx(ctx)

	move := o.move
	if move.WorkDir == "" {
		wd, err := LogicalWorkDir()
		if err != nil {
			return MoveResult{}, err
		}
		move.WorkDir = wd
	}
	if move.HomeDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			move.HomeDir = home
		}
	}

	pairs, err := ResolveMove(ctx, o.opts.Files, move)
	if err != nil {
		return MoveResult{}, err
	}

	replace, err := NewReplaceOperation(o.opts, MoveChanges(pairs, move.Scan, move.HomeDir)...)
	if err != nil {
		return MoveResult{}, err
	}
	result, err := replace.Run(ctx)
	if err != nil {
		logger.Debug().Err(err).Msg("references not rewritten, nothing moved")
		return MoveResult{}, err
	}

	for i, pair := range pairs {
		if err := o.opts.Files.Move(ctx, pair.Source, pair.Destination); err != nil {
			o.opts.Files.TrackFile(ctx, status.FileInfo{Path: pair.Source, MovedTo: pair.Destination, Error: err})
			return MoveResult{Replace: result, Moves: pairs[:i]}, errors.Errorf("moving %s to %s: %w", pair.Source, pair.Destination, err)
		}
		o.opts.Files.TrackFile(ctx, status.FileInfo{Path: pair.Source, Status: status.StatusMoved, MovedTo: pair.Destination})
		logger.Debug().Str("src", pair.Source).Str("dst", pair.Destination).Msg("moved")
	}

	return MoveResult{Replace: result, Moves: pairs}, nil
}

// ResolveMove turns move arguments into absolute source and destination pairs. It checks
// everything a move needs before anything is rewritten.
func ResolveMove(ctx context.Context, files status.FileManager, move Move) ([]MovePair, error) {
	if len(move.Args) < 2 {
		return nil, errors.Errorf("%w: need at least one source and a destination", ErrValidation)
	}

	paths := make([]string, len(move.Args))
	for i, arg := range move.Args {
		paths[i] = absPath(move.WorkDir, arg)
	}
	sources, dest := paths[:len(paths)-1], paths[len(paths)-1]

	for _, src := range sources {
		ok, err := files.FileExists(ctx, src)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, errors.Errorf("%w: source does not exist: %s", ErrMoveTargetInvalid, src)
		}
	}

	destExists, err := files.FileExists(ctx, dest)
	if err != nil {
		return nil, err
	}

	if destExists {
		isDir, err := files.IsDir(ctx, dest)
		if err != nil {
			return nil, err
		}
		if !isDir {
			return nil, errors.Errorf("%w: destination exists and is not a directory: %s", ErrMoveTargetInvalid, dest)
		}

		pairs := make([]MovePair, 0, len(sources))
		targets := map[string]bool{}
		for _, src := range sources {
			target := filepath.Join(dest, filepath.Base(src))
			if targets[target] {
				return nil, errors.Errorf("%w: more than one source would become %s", ErrMoveCollision, target)
			}
			targets[target] = true

			exists, err := files.FileExists(ctx, target)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, errors.Errorf("%w: %s already exists", ErrMoveCollision, target)
			}
			pairs = append(pairs, MovePair{Source: src, Destination: target})
		}
		return pairs, nil
	}

	if len(sources) > 1 {
		return nil, errors.Errorf("%w: cannot rename %d sources to the single path %s", ErrMoveTargetInvalid, len(sources), dest)
	}
	parentOK, err := files.IsDir(ctx, filepath.Dir(dest))
	if err != nil {
		return nil, err
	}
	if !parentOK {
		return nil, errors.Errorf("%w: parent directory does not exist: %s", ErrMoveTargetInvalid, filepath.Dir(dest))
	}

	return []MovePair{{Source: sources[0], Destination: dest}}, nil
}

// MoveChanges builds the literal changes that keep references in scan pointing at the moved
// paths. When both sides of a pair live under home, the home-relative forms are rewritten
// too; an unrelated relative path with the same spelling is rewritten as well.
func MoveChanges(pairs []MovePair, scan []string, home string) []text.ChangeSpec {
	var changes []text.ChangeSpec
	for _, pair := range pairs {
		changes = append(changes, text.ChangeSpec{
			Input:  pair.Source,
			Output: pair.Destination,
			Files:  scan,
		})

		src, srcOK := homeRelative(home, pair.Source)
		dst, dstOK := homeRelative(home, pair.Destination)
		if srcOK && dstOK {
			changes = append(changes, text.ChangeSpec{
				Input:  src,
				Output: dst,
				Files:  scan,
			})
		}
	}
	return changes
}

func homeRelative(home, path string) (string, bool) {
	if home == "" {
		return "", false
	}
	prefix := filepath.Clean(home) + string(filepath.Separator)
	if !strings.HasPrefix(path, prefix) || path == prefix {
		return "", false
	}
	return strings.TrimPrefix(path, prefix), true
}

func absPath(workDir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}
	return filepath.Join(workDir, path)
}

// LogicalWorkDir returns $PWD when it names the current directory, keeping symlinked
// components as the user typed them, and os.Getwd otherwise.
func LogicalWorkDir() (string, error) {
	if pwd := os.Getenv("PWD"); pwd != "" && filepath.IsAbs(pwd) {
		a, errA := os.Stat(pwd)
		b, errB := os.Stat(".")
		if errA == nil && errB == nil && os.SameFile(a, b) {
			return filepath.Clean(pwd), nil
		}
	}
	wd, err := os.Getwd()
	if err != nil {
		return "", errors.Errorf("getting working directory: %w", err)
	}
	return wd, nil
}
