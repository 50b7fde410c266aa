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
	"strings"

	"gitlab.com/tozd/go/errors"
)

// 🔍 Matcher finds the leftmost non-empty match in a piece of live text
type Matcher interface {
	// Find returns submatch index pairs relative to s, or nil when nothing matches
	Find(s string) []int
	// Names returns the subexpression names, index-aligned with the groups
	Names() []string
}

// ContextMatcher is a Matcher whose result depends on the text around a match, such as
// anchors and word boundaries. It is run over a whole file at once.
type ContextMatcher interface {
	Matcher
	// FindAll returns every non-empty match in s, leftmost first and non-overlapping
	FindAll(s string) [][]int
}

// literalMatcher matches its needle byte for byte
type literalMatcher struct {
	needle string
}

func (m literalMatcher) Find(s string) []int {
	i := strings.Index(s, m.needle)
	if i < 0 {
		return nil
	}
	return []int{i, i + len(m.needle)}
}

func (m literalMatcher) Names() []string {
	return []string{""}
}

// regexMatcher wraps a compiled pattern and skips empty matches
type regexMatcher struct {
	re *regexp.Regexp
}

func (m regexMatcher) Find(s string) []int {
	// the common case: the leftmost match is already non-empty
	loc := m.re.FindStringSubmatchIndex(s)
	if loc == nil || loc[1] > loc[0] {
		return loc
	}
	for _, loc := range m.re.FindAllStringSubmatchIndex(s, -1) {
		if loc[1] > loc[0] {
			return loc
		}
	}
	return nil
}

func (m regexMatcher) FindAll(s string) [][]int {
	all := m.re.FindAllStringSubmatchIndex(s, -1)
	out := all[:0]
	for _, loc := range all {
		if loc[1] > loc[0] {
			out = append(out, loc)
		}
	}
	return out
}

func (m regexMatcher) Names() []string {
	return m.re.SubexpNames()
}

// 🏭 PatternResolver turns a ChangeSpec input into a Matcher per file
type PatternResolver struct {
	mode       InputMode
	fixed      Matcher
	patternFor FilenamePattern
}

// NewPatternResolver validates the input side of spec and prepares its matcher.
// Regex inputs are compiled once here so an invalid pattern fails before any file is read.
func NewPatternResolver(spec ChangeSpec) (*PatternResolver, error) {
	r := &PatternResolver{mode: spec.InputMode}

	switch spec.InputMode {
	case InputLiteral:
		if spec.Input == "" {
			return nil, errors.New("literal input is empty")
		}
		r.fixed = literalMatcher{needle: spec.Input}
	case InputRegex:
		re, err := regexp.Compile(spec.Input)
		if err != nil {
			return nil, errors.Errorf("compiling input %q: %w", spec.Input, err)
		}
		r.fixed = regexMatcher{re: re}
	case InputPrecompiled:
		if spec.Pattern == nil {
			return nil, errors.New("precompiled input requires a pattern")
		}
		r.fixed = regexMatcher{re: spec.Pattern}
	case InputFromFilename:
		if spec.PatternFor == nil {
			return nil, errors.New("from-filename input requires a pattern function")
		}
		r.patternFor = spec.PatternFor
	default:
		return nil, errors.Errorf("unknown input mode %d", spec.InputMode)
	}

	return r, nil
}

// ForFile returns the matcher to use while scanning filename.
func (r *PatternResolver) ForFile(filename string) (Matcher, error) {
	if r.mode != InputFromFilename {
		return r.fixed, nil
	}
	re, err := r.patternFor(filename)
	if err != nil {
		return nil, errors.Errorf("building pattern for %s: %w", filename, err)
	}
	if re == nil {
		return nil, errors.Errorf("pattern function returned no pattern for %s", filename)
	}
	return regexMatcher{re: re}, nil
}
