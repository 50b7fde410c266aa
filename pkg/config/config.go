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

package config

import (
	"context"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/walteh/infrep/pkg/config/model"
	"github.com/walteh/infrep/pkg/config/parser"
	"github.com/walteh/infrep/pkg/filelist"
	"github.com/walteh/infrep/pkg/text"
	"gitlab.com/tozd/go/errors"
)

// 📥 Load reads, parses and validates a plan file
func Load(ctx context.Context, path string) (*model.Plan, error) {
	p := parser.GetParser(path)
	if p == nil {
		return nil, errors.Errorf("%w: unsupported plan file extension %q", model.ErrInvalidPlan, filepath.Ext(path))
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Errorf("%w: reading plan: %s", model.ErrInvalidPlan, err)
	}

	plan, err := p.Parse(ctx, data, path)
	if err != nil {
		return nil, err
	}
	plan.Location = path

	if err := plan.Validate(); err != nil {
		return nil, err
	}

	zerolog.Ctx(ctx).Debug().Str("plan", path).Int("changes", len(plan.Changes)).Msg("plan loaded")
	return plan, nil
}

// 🔄 ChangeSpecs converts a validated plan into engine changes.
// Relative files and globs resolve against the plan's directory; glob
// matches follow the explicit files and never repeat one.
func ChangeSpecs(ctx context.Context, plan *model.Plan) ([]text.ChangeSpec, error) {
	base := "."
	if plan.Location != "" {
		base = filepath.Dir(plan.Location)
	}

	specs := make([]text.ChangeSpec, 0, len(plan.Changes))
	for i, c := range plan.Changes {
		inMode, err := c.TextInputMode()
		if err != nil {
			return nil, errors.Errorf("%w: change %d: %s", model.ErrInvalidPlan, i, err)
		}
		outMode, err := c.TextOutputMode()
		if err != nil {
			return nil, errors.Errorf("%w: change %d: %s", model.ErrInvalidPlan, i, err)
		}

		files := make([]string, 0, len(c.Files))
		seen := map[string]bool{}
		for _, f := range c.Files {
			f = resolve(base, f)
			seen[f] = true
			files = append(files, f)
		}

		if len(c.Globs) > 0 {
			patterns := make([]string, 0, len(c.Globs))
			for _, g := range c.Globs {
				patterns = append(patterns, resolve(base, g))
			}
			matched, err := filelist.Glob(patterns)
			if err != nil {
				return nil, errors.Errorf("%w: change %d: %s", model.ErrInvalidPlan, i, err)
			}
			for _, f := range matched {
				if !seen[f] {
					seen[f] = true
					files = append(files, f)
				}
			}
			zerolog.Ctx(ctx).Debug().Int("change", i).Strs("globs", patterns).Int("matched", len(matched)).Msg("plan globs expanded")
		}

		specs = append(specs, text.ChangeSpec{
			Input:      c.Input,
			Output:     c.Output,
			InputMode:  inMode,
			OutputMode: outMode,
			Files:      files,
		})
	}

	return specs, nil
}

func resolve(base, path string) string {
	if filepath.IsAbs(path) || base == "." {
		return path
	}
	return filepath.Join(base, path)
}
