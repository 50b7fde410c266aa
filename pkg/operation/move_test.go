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

package operation_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/infrep/gen/mockery"
	"github.com/walteh/infrep/pkg/confirm"
	"github.com/walteh/infrep/pkg/operation"
	"github.com/walteh/infrep/pkg/status"
	"github.com/walteh/infrep/pkg/text"
	"gitlab.com/tozd/go/errors"
)

func exists(t *testing.T, path string) bool {
	t.Helper()
	_, err := os.Stat(path)
	if os.IsNotExist(err) {
		return false
	}
	require.NoError(t, err)
	return true
}

func newMove(t *testing.T, c confirm.Confirmer, move operation.Move) (*operation.MoveOperation, *status.Manager) {
	t.Helper()
	files := status.New(nil)
	op, err := operation.NewMoveOperation(operation.Options{Files: files, Confirmer: c}, move)
	require.NoError(t, err)
	return op, files
}

// 🧪 TestMoveOperation_Rename rewrites the reference and then renames
func TestMoveOperation_Rename(t *testing.T) {
	ctx, dir := createTestEnv(t)
	src := writeFile(t, dir, "a/file1.txt", "self\n")
	scan := writeFile(t, dir, "refs.txt", "see "+src+"\n")
	dst := filepath.Join(dir, "a", "file2.txt")

	op, files := newMove(t, script(t, yes(), confirm.Yes), operation.Move{
		Args:    []string{src, dst},
		Scan:    []string{scan},
		HomeDir: "/nonexistent-home",
	})
	result, err := op.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, "see "+dst+"\n", readFile(t, scan))
	assert.False(t, exists(t, src), "file1.txt should be gone")
	assert.True(t, exists(t, dst), "file2.txt should exist")
	assert.Equal(t, []operation.MovePair{{Source: src, Destination: dst}}, result.Moves)

	info, err := files.GetFileInfo(ctx, src)
	require.NoError(t, err)
	assert.Equal(t, status.StatusMoved, info.Status)
	assert.Equal(t, dst, info.MovedTo)
}

// 🧪 TestMoveOperation_RejectedReference leaves the source in place
func TestMoveOperation_RejectedReference(t *testing.T) {
	ctx, dir := createTestEnv(t)
	src := writeFile(t, dir, "a/file1.txt", "self\n")
	scan := writeFile(t, dir, "refs.txt", src+"\n")
	dst := filepath.Join(dir, "a", "file2.txt")

	op, _ := newMove(t, script(t, no(), confirm.No), operation.Move{
		Args:    []string{src, dst},
		Scan:    []string{scan},
		HomeDir: "/nonexistent-home",
	})
	_, err := op.Run(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, operation.ErrUserAbort), "got %v", err)

	assert.True(t, exists(t, src), "file1.txt should not move")
	assert.False(t, exists(t, dst))
	assert.Equal(t, src+"\n", readFile(t, scan))
}

// 🧪 TestMoveOperation_Quit leaves everything untouched
func TestMoveOperation_Quit(t *testing.T) {
	ctx, dir := createTestEnv(t)
	src := writeFile(t, dir, "a/file1.txt", "self\n")
	scan := writeFile(t, dir, "refs.txt", src+"\n")

	op, _ := newMove(t, script(t, nil, confirm.Quit), operation.Move{
		Args:    []string{src, filepath.Join(dir, "a", "file2.txt")},
		Scan:    []string{scan},
		HomeDir: "/nonexistent-home",
	})
	_, err := op.Run(ctx)
	assert.True(t, errors.Is(err, operation.ErrUserAbort), "got %v", err)
	assert.True(t, exists(t, src))
}

// 🧪 TestMoveOperation_IntoDirectory moves several sources and rewrites each reference
func TestMoveOperation_IntoDirectory(t *testing.T) {
	ctx, dir := createTestEnv(t)
	one := writeFile(t, dir, "file1.txt", "1\n")
	two := writeFile(t, dir, "file2.txt", "2\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir1"), 0o755))
	scan := writeFile(t, dir, "refs.txt", one+"\n"+two+"\n")

	op, _ := newMove(t, confirm.AutoConfirmer{}, operation.Move{
		Args:    []string{one, two, filepath.Join(dir, "dir1")},
		Scan:    []string{scan},
		HomeDir: "/nonexistent-home",
	})
	result, err := op.Run(ctx)
	require.NoError(t, err)

	newOne := filepath.Join(dir, "dir1", "file1.txt")
	newTwo := filepath.Join(dir, "dir1", "file2.txt")
	assert.Equal(t, newOne+"\n"+newTwo+"\n", readFile(t, scan))
	assert.True(t, exists(t, newOne))
	assert.True(t, exists(t, newTwo))
	assert.Len(t, result.Moves, 2)
}

// 🧪 TestMoveOperation_MovedFileIsScanned rewrites a self reference before the move
func TestMoveOperation_MovedFileIsScanned(t *testing.T) {
	ctx, dir := createTestEnv(t)
	src := filepath.Join(dir, "file1.txt")
	writeFile(t, dir, "file1.txt", src+"\n")
	require.NoError(t, os.Mkdir(filepath.Join(dir, "dir1"), 0o755))

	op, _ := newMove(t, confirm.AutoConfirmer{}, operation.Move{
		Args:    []string{src, filepath.Join(dir, "dir1")},
		Scan:    []string{src},
		HomeDir: "/nonexistent-home",
	})
	_, err := op.Run(ctx)
	require.NoError(t, err)

	moved := filepath.Join(dir, "dir1", "file1.txt")
	assert.Equal(t, moved+"\n", readFile(t, moved))
}

// 🧪 TestMoveOperation_RelativeArgs resolves against the working directory
func TestMoveOperation_RelativeArgs(t *testing.T) {
	ctx, dir := createTestEnv(t)
	src := writeFile(t, dir, "a/file1.txt", "x\n")
	scan := writeFile(t, dir, "refs.txt", src+"\n")

	op, _ := newMove(t, confirm.AutoConfirmer{}, operation.Move{
		Args:    []string{"a/file1.txt", "a/./file2.txt"},
		Scan:    []string{scan},
		WorkDir: dir,
		HomeDir: "/nonexistent-home",
	})
	_, err := op.Run(ctx)
	require.NoError(t, err)

	dst := filepath.Join(dir, "a", "file2.txt")
	assert.Equal(t, dst+"\n", readFile(t, scan))
	assert.True(t, exists(t, dst))
}

// 🧪 TestMoveOperation_HomeRelative also rewrites references written relative to home
func TestMoveOperation_HomeRelative(t *testing.T) {
	ctx, home := createTestEnv(t)
	src := writeFile(t, home, "proj/file1.txt", "x\n")
	scan := writeFile(t, home, "proj/refs.txt", "abs "+src+"\nrel proj/file1.txt\n")

	op, _ := newMove(t, confirm.AutoConfirmer{}, operation.Move{
		Args:    []string{src, filepath.Join(home, "proj", "file2.txt")},
		Scan:    []string{scan},
		HomeDir: home,
	})
	_, err := op.Run(ctx)
	require.NoError(t, err)

	assert.Equal(t, "abs "+filepath.Join(home, "proj", "file2.txt")+"\nrel proj/file2.txt\n", readFile(t, scan))
}

// 🧪 TestMoveOperation_Validation fails before any write or move
func TestMoveOperation_Validation(t *testing.T) {
	tests := []struct {
		name    string
		args    func(dir string) []string
		wantErr error
	}{
		{
			name: "collision_in_directory",
			args: func(dir string) []string {
				return []string{filepath.Join(dir, "file1.txt"), filepath.Join(dir, "file2.txt"), filepath.Join(dir, "dir1")}
			},
			wantErr: operation.ErrMoveCollision,
		},
		{
			name: "same_basename_twice",
			args: func(dir string) []string {
				return []string{filepath.Join(dir, "file1.txt"), filepath.Join(dir, "sub", "file1.txt"), filepath.Join(dir, "empty")}
			},
			wantErr: operation.ErrMoveCollision,
		},
		{
			name: "missing_source",
			args: func(dir string) []string {
				return []string{filepath.Join(dir, "nope.txt"), filepath.Join(dir, "new.txt")}
			},
			wantErr: operation.ErrMoveTargetInvalid,
		},
		{
			name: "rename_many_sources",
			args: func(dir string) []string {
				return []string{filepath.Join(dir, "file1.txt"), filepath.Join(dir, "file2.txt"), filepath.Join(dir, "new.txt")}
			},
			wantErr: operation.ErrMoveTargetInvalid,
		},
		{
			name: "missing_parent",
			args: func(dir string) []string {
				return []string{filepath.Join(dir, "file1.txt"), filepath.Join(dir, "nodir", "new.txt")}
			},
			wantErr: operation.ErrMoveTargetInvalid,
		},
		{
			name: "destination_is_a_file",
			args: func(dir string) []string {
				return []string{filepath.Join(dir, "file1.txt"), filepath.Join(dir, "file2.txt")}
			},
			wantErr: operation.ErrMoveTargetInvalid,
		},
		{
			name:    "too_few_args",
			args:    func(dir string) []string { return []string{filepath.Join(dir, "file1.txt")} },
			wantErr: operation.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, dir := createTestEnv(t)
			one := writeFile(t, dir, "file1.txt", "1\n")
			two := writeFile(t, dir, "file2.txt", "2\n")
			writeFile(t, dir, "sub/file1.txt", "s\n")
			writeFile(t, dir, "dir1/file2.txt", "old\n")
			require.NoError(t, os.Mkdir(filepath.Join(dir, "empty"), 0o755))
			scan := writeFile(t, dir, "refs.txt", one+"\n"+two+"\n")

			// no expectations: validation must fail before any prompt
			op, _ := newMove(t, mockery.NewMockConfirmer_confirm(t), operation.Move{
				Args:    tt.args(dir),
				Scan:    []string{scan},
				HomeDir: "/nonexistent-home",
			})
			_, err := op.Run(ctx)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)

			assert.Equal(t, one+"\n"+two+"\n", readFile(t, scan), "no reference may be rewritten")
			assert.True(t, exists(t, one))
			assert.True(t, exists(t, two))
			assert.Equal(t, "old\n", readFile(t, filepath.Join(dir, "dir1", "file2.txt")))
		})
	}
}

func TestMoveChanges(t *testing.T) {
	pairs := []operation.MovePair{
		{Source: "/home/u/a/file1.txt", Destination: "/home/u/a/file2.txt"},
		{Source: "/tmp/x", Destination: "/home/u/x"},
	}
	scan := []string{"refs.txt"}

	got := operation.MoveChanges(pairs, scan, "/home/u")
	assert.Equal(t, []text.ChangeSpec{
		{Input: "/home/u/a/file1.txt", Output: "/home/u/a/file2.txt", Files: scan},
		{Input: "a/file1.txt", Output: "a/file2.txt", Files: scan},
		{Input: "/tmp/x", Output: "/home/u/x", Files: scan},
	}, got)

	assert.Len(t, operation.MoveChanges(pairs, scan, ""), 2, "no home means no home-relative changes")
}

func TestLogicalWorkDir(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)

	t.Setenv("PWD", "/definitely/not/here")
	got, err := operation.LogicalWorkDir()
	require.NoError(t, err)
	assert.Equal(t, wd, got, "a stale PWD falls back to Getwd")

	t.Setenv("PWD", wd)
	got, err = operation.LogicalWorkDir()
	require.NoError(t, err)
	assert.Equal(t, wd, got)
}
