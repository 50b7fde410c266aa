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

package text

import (
	"regexp"

	"gitlab.com/tozd/go/errors"
)

// 🔎 InputMode selects how a ChangeSpec describes what to match
type InputMode int

const (
	InputLiteral      InputMode = iota // Input is matched byte for byte
	InputRegex                         // Input is compiled as a regular expression
	InputPrecompiled                   // Pattern is used as-is
	InputFromFilename                  // PatternFor builds a pattern for each file
)

// String returns a string representation of InputMode
func (m InputMode) String() string {
	switch m {
	case InputLiteral:
		return "literal"
	case InputRegex:
		return "regex"
	case InputPrecompiled:
		return "precompiled"
	case InputFromFilename:
		return "from-filename"
	default:
		return "unknown"
	}
}

// ✏️ OutputMode selects how a ChangeSpec produces replacement text
type OutputMode int

const (
	OutputLiteral   OutputMode = iota // Output is used verbatim
	OutputEvaluated                   // Output is an expression over the match
	OutputCallback                    // Callback computes the replacement
)

// String returns a string representation of OutputMode
func (m OutputMode) String() string {
	switch m {
	case OutputLiteral:
		return "literal"
	case OutputEvaluated:
		return "eval"
	case OutputCallback:
		return "callback"
	default:
		return "unknown"
	}
}

// FilenamePattern builds the pattern used to scan a specific file.
type FilenamePattern func(filename string) (*regexp.Regexp, error)

// Callback computes the replacement for a single match.
type Callback func(m Match, filename string) (string, error)

// 📋 ChangeSpec is one find/replace operation over an ordered list of files
type ChangeSpec struct {
	// Input is the literal text or regular expression source
	Input string
	// Pattern is used when InputMode is InputPrecompiled
	Pattern *regexp.Regexp
	// PatternFor is used when InputMode is InputFromFilename
	PatternFor FilenamePattern

	// Output is the literal replacement or the expression source
	Output string
	// Callback is used when OutputMode is OutputCallback
	Callback Callback

	// Files are scanned in order; duplicates are rejected
	Files []string

	InputMode  InputMode
	OutputMode OutputMode
}

// Validate checks that the fields required by the selected modes are present.
func (s ChangeSpec) Validate() error {
	switch s.InputMode {
	case InputLiteral:
		if s.Input == "" {
			return errors.New("literal input is empty")
		}
	case InputRegex:
		if s.Input == "" {
			return errors.New("regex input is empty")
		}
	case InputPrecompiled:
		if s.Pattern == nil {
			return errors.New("precompiled input requires a pattern")
		}
	case InputFromFilename:
		if s.PatternFor == nil {
			return errors.New("from-filename input requires a pattern function")
		}
	default:
		return errors.Errorf("unknown input mode %d", s.InputMode)
	}

	switch s.OutputMode {
	case OutputLiteral, OutputEvaluated:
	case OutputCallback:
		if s.Callback == nil {
			return errors.New("callback output requires a callback")
		}
	default:
		return errors.Errorf("unknown output mode %d", s.OutputMode)
	}

	return nil
}

// DuplicateFiles returns every filename listed more than once, in first-seen order.
func (s ChangeSpec) DuplicateFiles() []string {
	seen := make(map[string]int, len(s.Files))
	var dups []string
	for _, f := range s.Files {
		seen[f]++
		if seen[f] == 2 {
			dups = append(dups, f)
		}
	}
	return dups
}
