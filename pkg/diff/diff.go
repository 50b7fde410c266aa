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

// Package diff renders the before/after view shown for each match.
package diff

import (
	"strings"

	"github.com/fatih/color"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Renderer turns a before/after pair into something a human can read
type Renderer interface {
	Render(before, after string) string
}

// RendererFunc adapts a plain function
type RendererFunc func(before, after string) string

func (f RendererFunc) Render(before, after string) string {
	return f(before, after)
}

// 🎨 LineRenderer prints a "-" view of before and a "+" view of after. Deleted runs are
// highlighted on the first and inserted runs on the second.
type LineRenderer struct {
	dmp     *diffmatchpatch.DiffMatchPatch
	removed func(a ...interface{}) string
	added   func(a ...interface{}) string
	gutter  func(a ...interface{}) string
}

func NewLineRenderer() *LineRenderer {
	return &LineRenderer{
		dmp:     diffmatchpatch.New(),
		removed: color.New(color.FgRed, color.Bold, color.Underline).SprintFunc(),
		added:   color.New(color.FgGreen, color.Bold, color.Underline).SprintFunc(),
		gutter:  color.New(color.Faint).SprintFunc(),
	}
}

func (r *LineRenderer) Render(before, after string) string {
	diffs := r.dmp.DiffMain(before, after, false)
	diffs = r.dmp.DiffCleanupSemantic(diffs)

	var minus, plus strings.Builder
	for _, d := range diffs {
		switch d.Type {
		case diffmatchpatch.DiffEqual:
			minus.WriteString(d.Text)
			plus.WriteString(d.Text)
		case diffmatchpatch.DiffDelete:
			minus.WriteString(r.removed(d.Text))
		case diffmatchpatch.DiffInsert:
			plus.WriteString(r.added(d.Text))
		}
	}

	return prefixLines(r.gutter("- "), minus.String()) + "\n" + prefixLines(r.gutter("+ "), plus.String())
}

func prefixLines(prefix, s string) string {
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = prefix + lines[i]
	}
	return strings.Join(lines, "\n")
}
