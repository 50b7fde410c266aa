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

// ✏️ Replacer computes the replacement text for a match
type Replacer interface {
	// Replace is called exactly once per match
	Replace(m Match, filename string) (string, error)
}

type literalReplacer string

func (r literalReplacer) Replace(Match, string) (string, error) {
	return string(r), nil
}

type callbackReplacer Callback

func (r callbackReplacer) Replace(m Match, filename string) (string, error) {
	return r(m, filename)
}

// 🏭 NewReplacer validates the output side of spec and returns its Replacer.
// Evaluated outputs are parsed here so a bad expression fails before any file is read.
func NewReplacer(spec ChangeSpec) (Replacer, error) {
	switch spec.OutputMode {
	case OutputLiteral:
		return literalReplacer(spec.Output), nil
	case OutputEvaluated:
		expr, err := ParseExpression(spec.Output)
		if err != nil {
			return nil, err
		}
		return expr, nil
	case OutputCallback:
		if spec.Callback == nil {
			return nil, errors.New("callback output requires a callback")
		}
		return callbackReplacer(spec.Callback), nil
	default:
		return nil, errors.Errorf("unknown output mode %d", spec.OutputMode)
	}
}
