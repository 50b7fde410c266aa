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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpression(t *testing.T) {
	re := regexp.MustCompile(`\\[0-9](?P<word>[a-z]*)\.`)
	content := "1\n\\1cat.\n2\n"
	m := NewMatch(content, re.FindStringSubmatchIndex(content), re.SubexpNames())

	tests := []struct {
		name       string
		expr       string
		want       string
		wantParse  string
		wantReplay string
	}{
		{
			name: "concatenation",
			expr: `"\\2" + group(1) + "."`,
			want: `\2cat.`,
		},
		{
			name: "template",
			expr: `"\\2${group(1)}."`,
			want: `\2cat.`,
		},
		{
			name: "whole_match",
			expr: `match + match`,
			want: `\1cat.\1cat.`,
		},
		{
			name: "named_group",
			expr: `named("word")`,
			want: "cat",
		},
		{
			name: "groups_index",
			expr: `groups[1] + "!"`,
			want: "cat!",
		},
		{
			name: "filename_bindings",
			expr: `basename + ":" + filename`,
			want: "f.txt:/tmp/f.txt",
		},
		{
			name: "parentheses",
			expr: `("a" + "b") + group(0)`,
			want: `ab\1cat.`,
		},
		{
			name: "number_literal_becomes_string",
			expr: `"n" + 1`,
			want: "n1",
		},
		{
			name:       "group_out_of_range",
			expr:       `group(5)`,
			wantReplay: "out of range",
		},
		{
			name:       "unknown_named_group",
			expr:       `named("nope")`,
			wantReplay: "no group named",
		},
		{
			name:       "unknown_function",
			expr:       `upper(match)`,
			wantReplay: "upper",
		},
		{
			name:      "multiplication_rejected",
			expr:      `group(1) * 2`,
			wantParse: "operators other than +",
		},
		{
			name:      "conditional_rejected",
			expr:      `true ? "a" : "b"`,
			wantParse: "conditionals",
		},
		{
			name:      "for_rejected",
			expr:      `[for g in groups: g]`,
			wantParse: "not allowed",
		},
		{
			name:      "syntax_error",
			expr:      `"unterminated`,
			wantParse: "parsing output expression",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := ParseExpression(tt.expr)
			if tt.wantParse != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantParse)
				return
			}
			require.NoError(t, err)

			got, err := expr.Replace(m, "/tmp/f.txt")
			if tt.wantReplay != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantReplay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewReplacer(t *testing.T) {
	m := Match{Text: "cat", Groups: []string{"cat"}}

	lit, err := NewReplacer(ChangeSpec{Output: "dog"})
	require.NoError(t, err)
	got, err := lit.Replace(m, "f")
	require.NoError(t, err)
	assert.Equal(t, "dog", got)

	cb, err := NewReplacer(ChangeSpec{
		OutputMode: OutputCallback,
		Callback: func(m Match, filename string) (string, error) {
			return filename + "!" + m.Text, nil
		},
	})
	require.NoError(t, err)
	got, err = cb.Replace(m, "f")
	require.NoError(t, err)
	assert.Equal(t, "f!cat", got)

	_, err = NewReplacer(ChangeSpec{OutputMode: OutputEvaluated, Output: `group(`})
	assert.Error(t, err, "bad expression should fail at resolution time")

	_, err = NewReplacer(ChangeSpec{OutputMode: OutputCallback})
	assert.Error(t, err, "missing callback should fail")
}
