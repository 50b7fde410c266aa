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
	"gitlab.com/tozd/go/errors"
)

// 🎯 Match is a single occurrence of a pattern
type Match struct {
	// Text is the matched span
	Text string
	// Groups holds the submatches; Groups[0] is Text and unmatched groups are empty
	Groups []string
	// Named maps named groups to their submatch
	Named map[string]string

	// Start and End are byte offsets into the original file content
	Start int
	End   int

	// Seq is the position of this match in its file's pending replacements
	Seq int
}

// NewMatch builds a Match from submatch index pairs over s, as returned by
// regexp.FindStringSubmatchIndex. Names are the pattern's subexpression names.
func NewMatch(s string, loc []int, names []string) Match {
	m := Match{
		Text:   s[loc[0]:loc[1]],
		Groups: make([]string, len(loc)/2),
		Start:  loc[0],
		End:    loc[1],
	}
	for i := range m.Groups {
		if loc[2*i] >= 0 {
			m.Groups[i] = s[loc[2*i]:loc[2*i+1]]
		}
	}
	for i, name := range names {
		if name == "" || i >= len(m.Groups) {
			continue
		}
		if m.Named == nil {
			m.Named = make(map[string]string)
		}
		m.Named[name] = m.Groups[i]
	}
	return m
}

// Group returns the i-th submatch.
func (m Match) Group(i int) (string, error) {
	if i < 0 || i >= len(m.Groups) {
		return "", errors.Errorf("group %d out of range (match has %d groups)", i, len(m.Groups)-1)
	}
	return m.Groups[i], nil
}

// NamedGroup returns the submatch for a named group.
func (m Match) NamedGroup(name string) (string, error) {
	v, ok := m.Named[name]
	if !ok {
		return "", errors.Errorf("no group named %q", name)
	}
	return v, nil
}
