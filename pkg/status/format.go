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

package status

import (
	"fmt"
)

// 🎨 FileFormatter formats status messages
type FileFormatter interface {
	FormatFileOperation(info FileInfo) string
	FormatSummary(files []FileInfo) string
	FormatError(err error) string
}

// DefaultFileFormatter provides the default formatting
type DefaultFileFormatter struct{}

func NewDefaultFileFormatter() *DefaultFileFormatter {
	return &DefaultFileFormatter{}
}

func (f *DefaultFileFormatter) FormatFileOperation(info FileInfo) string {
	if info.Error != nil {
		return fmt.Sprintf("❌ Failed %s", info.Path)
	}
	switch info.Status {
	case StatusModified:
		return fmt.Sprintf("📝 Modified %s (%s)", info.Path, pluralize(info.Replacements, "replacement"))
	case StatusMoved:
		return fmt.Sprintf("🚚 Moved %s -> %s", info.Path, info.MovedTo)
	default:
		return fmt.Sprintf("👍 Unchanged %s", info.Path)
	}
}

func (f *DefaultFileFormatter) FormatSummary(files []FileInfo) string {
	var modified, moved, replacements int
	for _, info := range files {
		switch info.Status {
		case StatusModified:
			modified++
			replacements += info.Replacements
		case StatusMoved:
			moved++
		}
	}

	msg := fmt.Sprintf("%s in %s", pluralize(replacements, "replacement"), pluralize(modified, "file"))
	if moved > 0 {
		msg += fmt.Sprintf(", %s moved", pluralize(moved, "path"))
	}
	return msg
}

func (f *DefaultFileFormatter) FormatError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("❌ Error: %v", err)
}

func pluralize(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}
