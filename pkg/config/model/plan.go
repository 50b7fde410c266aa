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

package model

import (
	"fmt"
	"strings"

	"github.com/walteh/infrep/pkg/text"
	"gitlab.com/tozd/go/errors"
)

var ErrInvalidPlan = errors.Base("invalid plan")

const (
	ModeLiteral = "literal"
	ModeRegex   = "regex"
	ModeEval    = "eval"
)

// 🔄 Change is one replacement as written in a plan file
type Change struct {
	Input      string   `yaml:"input" json:"input"`
	Output     string   `yaml:"output" json:"output"`
	InputMode  string   `yaml:"input_mode,omitempty" json:"input_mode,omitempty"`
	OutputMode string   `yaml:"output_mode,omitempty" json:"output_mode,omitempty"`
	Files      []string `yaml:"files,omitempty" json:"files,omitempty"`
	Globs      []string `yaml:"globs,omitempty" json:"globs,omitempty"`
}

// 📚 Plan is a batch of changes applied in one run
type Plan struct {
	ConfirmWhenNoChanges bool     `yaml:"confirm_when_no_changes,omitempty" json:"confirm_when_no_changes,omitempty"`
	Changes              []Change `yaml:"changes" json:"changes"`

	// Location is the path the plan was loaded from
	Location string `yaml:"-" json:"-"`
}

// 🔍 Validate checks the plan and fills in default modes
func (p *Plan) Validate() error {
	if len(p.Changes) == 0 {
		return errors.Errorf("%w: no changes", ErrInvalidPlan)
	}

	for i := range p.Changes {
		c := &p.Changes[i]
		if c.Input == "" {
			return errors.Errorf("%w: change %d: input is required", ErrInvalidPlan, i)
		}
		if c.InputMode == "" {
			c.InputMode = ModeLiteral
		}
		if c.OutputMode == "" {
			c.OutputMode = ModeLiteral
		}
		if _, err := c.TextInputMode(); err != nil {
			return errors.Errorf("%w: change %d: %s", ErrInvalidPlan, i, err)
		}
		if _, err := c.TextOutputMode(); err != nil {
			return errors.Errorf("%w: change %d: %s", ErrInvalidPlan, i, err)
		}
		if len(c.Files) == 0 && len(c.Globs) == 0 {
			return errors.Errorf("%w: change %d: files or globs are required", ErrInvalidPlan, i)
		}
	}

	return nil
}

// TextInputMode maps the plan spelling to a text.InputMode
func (c Change) TextInputMode() (text.InputMode, error) {
	switch c.InputMode {
	case "", ModeLiteral:
		return text.InputLiteral, nil
	case ModeRegex:
		return text.InputRegex, nil
	}
	return 0, errors.Errorf("unknown input_mode %q", c.InputMode)
}

// TextOutputMode maps the plan spelling to a text.OutputMode
func (c Change) TextOutputMode() (text.OutputMode, error) {
	switch c.OutputMode {
	case "", ModeLiteral:
		return text.OutputLiteral, nil
	case ModeEval:
		return text.OutputEvaluated, nil
	}
	return 0, errors.Errorf("unknown output_mode %q", c.OutputMode)
}

// 📝 String returns a string representation of the plan
func (p *Plan) String() string {
	parts := make([]string, 0, len(p.Changes))
	for _, c := range p.Changes {
		parts = append(parts, fmt.Sprintf("%q -> %q", c.Input, c.Output))
	}
	return strings.Join(parts, ", ")
}
