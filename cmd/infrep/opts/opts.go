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

package opts

import (
	"context"
	"io"

	"github.com/walteh/infrep/pkg/confirm"
	"github.com/walteh/infrep/pkg/log"
	"github.com/walteh/infrep/pkg/operation"
	"github.com/walteh/infrep/pkg/status"
)

// RootOpts contains shared options used by all commands
type RootOpts struct {
	Debug bool
	Yes   bool

	In     io.Reader
	Out    io.Writer
	ErrOut io.Writer

	// set once flags are parsed
	Console    *log.Logger
	UserLogger *log.UserLogger
}

// Confirmer returns the confirmer selected by the flags
func (o *RootOpts) Confirmer() confirm.Confirmer {
	if o.Yes {
		return confirm.AutoConfirmer{}
	}
	return confirm.NewTerminalConfirmer(o.In, o.Out)
}

// Options builds operation options with a fresh status manager
func (o *RootOpts) Options(confirmWhenNoChanges bool) (operation.Options, *status.Manager) {
	files := status.New(nil)
	return operation.Options{
		Files:                files,
		Confirmer:            o.Confirmer(),
		ConfirmWhenNoChanges: confirmWhenNoChanges,
	}, files
}

// Report prints every tracked file and the run totals
func (o *RootOpts) Report(ctx context.Context, files status.StatusReporter) {
	tracked := files.ListFiles(ctx)
	if len(tracked) == 0 {
		o.UserLogger.LogStateChange("no files changed")
		return
	}
	o.Console.LogNewline()
	for _, info := range tracked {
		o.Console.LogFileOperation(ctx, info)
	}
	o.Console.LogSummary(ctx)
}
