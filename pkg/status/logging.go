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
	"strings"

	"github.com/fatih/color"
)

const (
	fileIndent  = 4  // spaces to indent file entries
	nameWidth   = 35 // Base width for filename
	statusWidth = 11 // Width for status text
)

// FormatLine renders one summary line for the console
func FormatLine(info FileInfo) string {
	var prefix, detail string
	switch {
	case info.Error != nil:
		prefix = color.RedString("✗")
		detail = info.Error.Error()
	case info.Status == StatusModified:
		prefix = color.YellowString("⟳")
		detail = pluralize(info.Replacements, "replacement")
	case info.Status == StatusMoved:
		prefix = color.GreenString("→")
		detail = info.MovedTo
	default:
		prefix = color.HiBlackString("-")
	}

	line := fmt.Sprintf("%s%s %-*s %-*s",
		strings.Repeat(" ", fileIndent),
		prefix,
		nameWidth, info.Path,
		statusWidth, info.Status,
	)
	if detail != "" {
		line += " " + detail
	}
	return strings.TrimRight(line, " ")
}
