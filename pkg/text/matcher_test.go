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
	"path/filepath"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPatternResolver(t *testing.T) {
	tests := []struct {
		name      string
		spec      ChangeSpec
		filename  string
		content   string
		wantMatch string
		wantNil   bool
		wantError string
	}{
		{
			name:      "literal_with_metacharacters",
			spec:      ChangeSpec{Input: `\1cat.`, InputMode: InputLiteral},
			content:   "1\n\\1cat.\n2\n",
			wantMatch: `\1cat.`,
		},
		{
			name:    "literal_dot_is_not_a_wildcard",
			spec:    ChangeSpec{Input: "a.c", InputMode: InputLiteral},
			content: "abc",
			wantNil: true,
		},
		{
			name:      "literal_invalid_utf8",
			spec:      ChangeSpec{Input: "\xff\xfe", InputMode: InputLiteral},
			content:   "ab\xff\xfecd",
			wantMatch: "\xff\xfe",
		},
		{
			name:      "regex",
			spec:      ChangeSpec{Input: `\\[0-9]([a-z]*)\.`, InputMode: InputRegex},
			content:   "1\n\\1cat.\n2\n",
			wantMatch: `\1cat.`,
		},
		{
			name:      "regex_skips_empty_matches",
			spec:      ChangeSpec{Input: `x*`, InputMode: InputRegex},
			content:   "abxxc",
			wantMatch: "xx",
		},
		{
			name:    "regex_only_empty_matches",
			spec:    ChangeSpec{Input: `x*`, InputMode: InputRegex},
			content: "abc",
			wantNil: true,
		},
		{
			name:      "regex_invalid",
			spec:      ChangeSpec{Input: `(`, InputMode: InputRegex},
			wantError: "compiling input",
		},
		{
			name:      "precompiled",
			spec:      ChangeSpec{Pattern: regexp.MustCompile(`\\[0-9][a-z]{3}\.`), InputMode: InputPrecompiled},
			content:   "1\n\\1cat.\n2\n",
			wantMatch: `\1cat.`,
		},
		{
			name: "from_filename",
			spec: ChangeSpec{
				InputMode: InputFromFilename,
				PatternFor: func(filename string) (*regexp.Regexp, error) {
					return regexp.Compile(regexp.QuoteMeta(filepath.Base(filename)) + `:([0-9]*)`)
				},
			},
			filename:  "/tmp/test_funcboth.txt",
			content:   "test_funcboth2.txt:124\ntest_funcboth.txt:123\n",
			wantMatch: "test_funcboth.txt:123",
		},
		{
			name:      "literal_empty",
			spec:      ChangeSpec{InputMode: InputLiteral},
			wantError: "literal input is empty",
		},
		{
			name:      "precompiled_missing",
			spec:      ChangeSpec{InputMode: InputPrecompiled},
			wantError: "requires a pattern",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resolver, err := NewPatternResolver(tt.spec)
			if tt.wantError != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantError)
				return
			}
			require.NoError(t, err)

			m, err := resolver.ForFile(tt.filename)
			require.NoError(t, err)

			loc := m.Find(tt.content)
			if tt.wantNil {
				assert.Nil(t, loc, "should not match")
				return
			}
			require.NotNil(t, loc, "should match")
			assert.Equal(t, tt.wantMatch, tt.content[loc[0]:loc[1]])
		})
	}
}

func TestPatternResolver_FromFilenameIsCalledPerFile(t *testing.T) {
	var calls []string
	resolver, err := NewPatternResolver(ChangeSpec{
		InputMode: InputFromFilename,
		PatternFor: func(filename string) (*regexp.Regexp, error) {
			calls = append(calls, filename)
			return regexp.Compile(regexp.QuoteMeta(filename))
		},
	})
	require.NoError(t, err)

	for _, f := range []string{"a.txt", "b.txt"} {
		m, err := resolver.ForFile(f)
		require.NoError(t, err)
		assert.NotNil(t, m.Find("x "+f+" y"), "pattern for %s should match its own name", f)
	}
	assert.Equal(t, []string{"a.txt", "b.txt"}, calls)
}

func TestNewMatch(t *testing.T) {
	re := regexp.MustCompile(`(?P<word>[a-z]+)(\d)?`)
	s := "  cat"
	m := NewMatch(s, re.FindStringSubmatchIndex(s), re.SubexpNames())

	assert.Equal(t, "cat", m.Text)
	assert.Equal(t, []string{"cat", "cat", ""}, m.Groups, "unmatched optional group should be empty")
	assert.Equal(t, 2, m.Start)
	assert.Equal(t, 5, m.End)

	word, err := m.NamedGroup("word")
	require.NoError(t, err)
	assert.Equal(t, "cat", word)

	_, err = m.Group(3)
	assert.Error(t, err, "group past the end should fail")
}

func TestChangeSpec_DuplicateFiles(t *testing.T) {
	spec := ChangeSpec{Files: []string{"a", "b", "a", "c", "b", "a"}}
	assert.Equal(t, []string{"a", "b"}, spec.DuplicateFiles())
	assert.Empty(t, ChangeSpec{Files: []string{"a", "b"}}.DuplicateFiles())
}

func TestChangeSpec_Validate(t *testing.T) {
	assert.NoError(t, ChangeSpec{Input: "x", Output: ""}.Validate(), "empty literal output is allowed")
	assert.Error(t, ChangeSpec{Input: "x", OutputMode: OutputCallback}.Validate())
	assert.Error(t, ChangeSpec{Input: "x", InputMode: InputMode(42)}.Validate())
	assert.Error(t, ChangeSpec{InputMode: InputFromFilename}.Validate())
}
