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
	"time"

	"github.com/rs/zerolog"
	"gitlab.com/tozd/go/errors"
)

// 🏃 OperationRunner executes operations on the calling goroutine. Prompts read from the
// terminal, so operations are never run concurrently.
type OperationRunner struct {
	logger *zerolog.Logger
}

func NewRunner(logger *zerolog.Logger) *OperationRunner {
	if logger == nil {
		nop := zerolog.Nop()
		logger = &nop
	}
	return &OperationRunner{logger: logger}
}

// Run executes op with the runner's logger on the context. A user abort is logged at info
// level and still returned so callers can pick the exit code.
func (r *OperationRunner) Run(ctx context.Context, op Operation) error {
	if zerolog.Ctx(ctx).GetLevel() == zerolog.Disabled {
		ctx = r.logger.WithContext(ctx)
	}

	start := time.Now()
	err := op.Execute(ctx)
	elapsed := time.Since(start)

	switch {
	case err == nil:
		r.logger.Debug().Dur("elapsed", elapsed).Msg("operation complete")
	case errors.Is(err, ErrUserAbort):
		r.logger.Info().Dur("elapsed", elapsed).Msg("operation aborted, no files were written")
	default:
		r.logger.Debug().Dur("elapsed", elapsed).Err(err).Msg("operation failed")
	}
	return err
}
