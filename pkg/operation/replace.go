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
	"strings"

	"github.com/rs/zerolog"
	"github.com/walteh/infrep/pkg/confirm"
	"github.com/walteh/infrep/pkg/staging"
	"github.com/walteh/infrep/pkg/status"
	"github.com/walteh/infrep/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 🔁 ReplaceOperation stages every change, asks for decisions and commits what was accepted
type ReplaceOperation struct {
	opts    Options
	changes []text.ChangeSpec
}

// Result describes a committed run
type Result struct {
	// Files holds every file that had at least one match, in first-reference order
	Files []status.FileInfo
	// Accepted counts accepted matches that were not no-ops
	Accepted int
}

type preparedChange struct {
	index    int
	spec     text.ChangeSpec
	patterns *text.PatternResolver
	replacer text.Replacer
}

// stagedRun is the state carried across changes until commit
type stagedRun struct {
	buffers map[string]*staging.Buffer
	order   []string
	machine *confirm.Machine
}

func NewReplaceOperation(opts Options, changes ...text.ChangeSpec) (*ReplaceOperation, error) {
	opts, err := opts.validate()
	if err != nil {
		return nil, err
	}
	return &ReplaceOperation{opts: opts, changes: changes}, nil
}

func (o *ReplaceOperation) Execute(ctx context.Context) error {
	_, err := o.Run(ctx)
	return err
}

// Run executes the whole pipeline. Nothing is written unless every change was staged
// and the final gate passed.
func (o *ReplaceOperation) Run(ctx context.Context) (Result, error) {
	prepared, err := o.prepare()
	if err != nil {
		return Result{}, err
	}

	if err := o.checkFiles(ctx); err != nil {
		return Result{}, err
	}

	run := &stagedRun{
		buffers: make(map[string]*staging.Buffer),
		machine: confirm.NewMachine(o.opts.Confirmer),
	}

	for _, change := range prepared {
		if err := o.stage(ctx, run, change); err != nil {
			return Result{}, err
		}
	}

	ok, err := run.machine.Final(ctx, o.opts.ConfirmWhenNoChanges)
	if err != nil {
		return Result{}, asAbort(err)
	}
	if !ok {
		return Result{}, errors.Errorf("%w: final confirmation declined", ErrUserAbort)
	}

	files, err := o.commit(ctx, run)
	if err != nil {
		return Result{}, err
	}

	return Result{Files: files, Accepted: run.machine.Accepted()}, nil
}

// prepare validates and resolves every change before any file is touched
func (o *ReplaceOperation) prepare() ([]preparedChange, error) {
	if len(o.changes) == 0 {
		return nil, errors.Errorf("%w: no changes given", ErrValidation)
	}

	prepared := make([]preparedChange, 0, len(o.changes))
	for i, spec := range o.changes {
		if err := spec.Validate(); err != nil {
			return nil, errors.Errorf("%w: change %d: %s", ErrValidation, i, err)
		}
		if dups := spec.DuplicateFiles(); len(dups) > 0 {
			return nil, errors.Errorf("%w: change %d: duplicate files: %s", ErrValidation, i, strings.Join(dups, ", "))
		}

		patterns, err := text.NewPatternResolver(spec)
		if err != nil {
			return nil, errors.Errorf("%w: change %d: %s", ErrValidation, i, err)
		}
		replacer, err := text.NewReplacer(spec)
		if err != nil {
			return nil, errors.Errorf("%w: change %d: %s", ErrValidation, i, err)
		}

		prepared = append(prepared, preparedChange{
			index:    i,
			spec:     spec,
			patterns: patterns,
			replacer: replacer,
		})
	}
	return prepared, nil
}

// checkFiles reports every missing or non-regular file before halting
func (o *ReplaceOperation) checkFiles(ctx context.Context) error {
	logger := zerolog.Ctx(ctx)

	seen := map[string]bool{}
	var missing []string
	for _, spec := range o.changes {
		for _, f := range spec.Files {
			if seen[f] {
				continue
			}
			seen[f] = true

			ok, err := o.opts.Files.IsRegularFile(ctx, f)
			if err != nil {
				return errors.Errorf("checking %s: %w", f, err)
			}
			if !ok {
				logger.Error().Str("file", f).Msg("file does not exist or is not a regular file")
				missing = append(missing, f)
			}
		}
	}

	if len(missing) > 0 {
		return errors.Errorf("%w: %s", ErrMissingFile, strings.Join(missing, ", "))
	}
	return nil
}

func (o *ReplaceOperation) buffer(ctx context.Context, run *stagedRun, path string) (*staging.Buffer, error) {
	if buf, ok := run.buffers[path]; ok {
		return buf, nil
	}
	content, err := o.opts.Files.ReadFile(ctx, path)
	if err != nil {
		return nil, errors.Errorf("loading %s: %w", path, err)
	}
	buf := staging.New(string(content))
	run.buffers[path] = buf
	run.order = append(run.order, path)
	return buf, nil
}

func (o *ReplaceOperation) stage(ctx context.Context, run *stagedRun, change preparedChange) error {
	logger := zerolog.Ctx(ctx).With().Int("change", change.index).Logger()

	for _, path := range change.spec.Files {
		buf, err := o.buffer(ctx, run, path)
		if err != nil {
			return err
		}

		matcher, err := change.patterns.ForFile(path)
		if err != nil {
			return errors.Errorf("%w: change %d: %s", ErrValidation, change.index, err)
		}

		run.machine.BeginFile()

		for {
			if err := ctx.Err(); err != nil {
				return asAbort(err)
			}

			span, ok := buf.Next(matcher)
			if !ok {
				break
			}

			replacement, err := change.replacer.Replace(span.Match, path)
			if err != nil {
				return errors.Errorf("%w: change %d: %s line %d: %s", ErrValidation, change.index, path, span.Line, err)
			}

			if replacement == span.Match.Text {
				buf.Decide(span, span.Match.Text)
				continue
			}

			out, err := run.machine.Decide(ctx, func() confirm.Prompt {
				before, after := buf.Lines(span, replacement)
				return confirm.Prompt{
					Filename: path,
					Line:     span.Line,
					EndLine:  span.EndLine,
					Before:   before,
					After:    after,
					Diff:     o.opts.Renderer.Render(before, after),
				}
			})
			if err != nil {
				return asAbort(err)
			}
			if out.Abort {
				logger.Debug().Str("file", path).Int("line", span.Line).Msg("quit requested")
				return errors.Errorf("%w: quit at %s line %d", ErrUserAbort, path, span.Line)
			}

			chosen := span.Match.Text
			if out.Accept {
				chosen = replacement
			}
			seq := buf.Decide(span, chosen)

			logger.Debug().
				Str("file", path).
				Int("line", span.Line).
				Int("seq", seq).
				Bool("accepted", out.Accept).
				Bool("prompted", out.Prompted).
				Msg("match staged")
		}
	}
	return nil
}

// asAbort turns cancellation into a user abort and passes anything else through
func asAbort(err error) error {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return errors.Errorf("%w: %s", ErrUserAbort, err)
	}
	return err
}
