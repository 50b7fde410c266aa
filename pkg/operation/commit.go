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

	"github.com/rs/zerolog"
	"github.com/walteh/infrep/pkg/status"
	"gitlab.com/tozd/go/errors"
)

// commit renders and writes every staged file. A failure part way leaves earlier files
// written; there is no multi-file rollback.
func (o *ReplaceOperation) commit(ctx context.Context, run *stagedRun) ([]status.FileInfo, error) {
	logger := zerolog.Ctx(ctx)

	var files []status.FileInfo
	for _, path := range run.order {
		buf := run.buffers[path]
		if len(buf.Pending()) == 0 {
			continue
		}

		info := status.FileInfo{Path: path, Status: status.StatusUnchanged}

		rendered := buf.Render()
		if rendered != buf.Original() {
			if err := o.opts.Files.WriteFileAtomic(ctx, path, []byte(rendered)); err != nil {
				info.Error = err
				o.opts.Files.TrackFile(ctx, info)
				return nil, errors.Errorf("committing %s: %w", path, err)
			}
			info.Status = status.StatusModified
			info.Replacements = buf.Accepted()
		}

		logger.Debug().Str("file", path).Stringer("status", info.Status).Int("replacements", info.Replacements).Msg("committed")
		o.opts.Files.TrackFile(ctx, info)
		files = append(files, info)
	}
	return files, nil
}
