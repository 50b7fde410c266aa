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

	"github.com/walteh/infrep/pkg/confirm"
	"github.com/walteh/infrep/pkg/diff"
	"github.com/walteh/infrep/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// Operation is one run that may rewrite files
type Operation interface {
	Execute(ctx context.Context) error
}

// Files is the filesystem and status tracking used by an operation
type Files interface {
	status.FileManager
	status.StatusReporter
}

type Options struct {
	// Files reads, writes and tracks files
	Files Files
	// Confirmer is asked about every match the current scope leaves open
	Confirmer confirm.Confirmer
	// Renderer builds the diff shown in prompts; defaults to diff.NewLineRenderer
	Renderer diff.Renderer
	// ConfirmWhenNoChanges shows the final gate even when nothing was accepted
	ConfirmWhenNoChanges bool
}

func (o Options) validate() (Options, error) {
	if o.Files == nil {
		return o, errors.New("files are required")
	}
	if o.Confirmer == nil {
		return o, errors.New("confirmer is required")
	}
	if o.Renderer == nil {
		o.Renderer = diff.NewLineRenderer()
	}
	return o, nil
}
