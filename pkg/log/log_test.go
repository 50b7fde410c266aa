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

package log

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/pterm/pterm"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/walteh/infrep/pkg/status"
	"gitlab.com/tozd/go/errors"
)

func TestLogger(t *testing.T) {
	// Disable color for testing
	color.NoColor = true
	defer func() { color.NoColor = false }()

	tests := []struct {
		name     string
		op       func(t *testing.T, logger *Logger)
		wantLogs []string
	}{
		{
			name: "log_file_operation",
			op: func(t *testing.T, logger *Logger) {
				logger.LogFileOperation(context.Background(), status.FileInfo{
					Path:         "test.txt",
					Status:       status.StatusModified,
					Replacements: 2,
				})
			},
			wantLogs: []string{
				"⟳ test.txt                            modified    2 replacements",
			},
		},
		{
			name: "log_summary",
			op: func(t *testing.T, logger *Logger) {
				ctx := context.Background()
				logger.LogFileOperation(ctx, status.FileInfo{Path: "a.txt", Status: status.StatusModified, Replacements: 1})
				logger.LogFileOperation(ctx, status.FileInfo{Path: "b.txt", Status: status.StatusUnchanged})
				logger.LogFileOperation(ctx, status.FileInfo{Path: "c.txt", Status: status.StatusMoved, MovedTo: "d.txt"})
				logger.LogSummary(ctx)
			},
			wantLogs: []string{
				"⟳ a.txt                               modified    1 replacement",
				"- b.txt                               unchanged",
				"→ c.txt                               moved       d.txt",
				"",
				"1 replacement in 1 file, 1 path moved",
			},
		},
		{
			name: "log_warnings",
			op: func(t *testing.T, logger *Logger) {
				logger.Warning("no files selected")
				logger.Warningf("change %d matches no files", 1)
			},
			wantLogs: []string{
				"⚠️  no files selected",
				"⚠️  change 1 matches no files",
			},
		},
		{
			name: "log_header",
			op: func(t *testing.T, logger *Logger) {
				logger.Header("replacing cat with dog")
			},
			wantLogs: []string{
				"infrep • replacing cat with dog",
			},
		},
		{
			name: "log_newline",
			op: func(t *testing.T, logger *Logger) {
				logger.Warning("first")
				logger.LogNewline()
				logger.Warning("second")
			},
			wantLogs: []string{
				"⚠️  first",
				"",
				"⚠️  second",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			logger := New(buf, zerolog.New(zerolog.NewTestWriter(t)))

			tt.op(t, logger)

			output := strings.TrimSpace(buf.String())
			lines := strings.Split(output, "\n")

			require.Equal(t, len(tt.wantLogs), len(lines), "number of log lines should match")
			for i, want := range tt.wantLogs {
				assert.Equal(t, want, strings.TrimSpace(lines[i]), "log line %d should match", i)
			}
		})
	}
}

func TestLogger_FileErrorIsStructured(t *testing.T) {
	color.NoColor = true
	defer func() { color.NoColor = false }()

	var structured bytes.Buffer
	logger := New(io.Discard, zerolog.New(&structured))
	logger.LogFileOperation(context.Background(), status.FileInfo{Path: "a.txt", Status: status.StatusModified, Error: errors.New("disk full")})

	assert.Contains(t, structured.String(), `"level":"error"`)
	assert.Contains(t, structured.String(), `"error":"disk full"`)
	assert.Contains(t, structured.String(), `"file":"a.txt"`)
}

// 🧪 TestUserLogger checks the user-facing messages
func TestUserLogger(t *testing.T) {
	pterm.DisableStyling()
	defer pterm.EnableStyling()

	tests := []struct {
		name string
		op   func(u *UserLogger)
		want []string
	}{
		{
			name: "move",
			op:   func(u *UserLogger) { u.LogMove("a.txt", "b.txt", nil) },
			want: []string{"Moved a.txt -> b.txt"},
		},
		{
			name: "move_failed",
			op:   func(u *UserLogger) { u.LogMove("a.txt", "b.txt", errors.New("cross device")) },
			want: []string{"Failed to move a.txt -> b.txt", "cross device"},
		},
		{
			name: "abort",
			op:   func(u *UserLogger) { u.LogAbort("quit at a.txt line 3") },
			want: []string{"Aborted: quit at a.txt line 3"},
		},
		{
			name: "validation_error",
			op:   func(u *UserLogger) { u.LogValidation(false, "Command failed", errors.New("missing file")) },
			want: []string{"Command failed", "missing file"},
		},
		{
			name: "state_change",
			op:   func(u *UserLogger) { u.LogStateChange("no files changed") },
			want: []string{"no files changed"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			ctx := zerolog.New(zerolog.NewTestWriter(t)).WithContext(context.Background())
			tt.op(NewUserLogger(ctx, &out))
			for _, want := range tt.want {
				assert.Contains(t, out.String(), want)
			}
		})
	}
}
