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

package parser

import (
	"context"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/walteh/infrep/pkg/config/model"
	"github.com/zclconf/go-cty/cty"
	"gitlab.com/tozd/go/errors"
)

func init() {
	Register(&HCLParser{})
}

// 🔧 HCLParser implements the Parser interface for HCL files
//
//	confirm_when_no_changes = true
//
//	change {
//	  input  = "foo"
//	  output = "bar"
//	  files  = ["a.txt"]
//	}
//
// The variable env holds the process environment.
type HCLParser struct{}

// 🔍 CanParse checks if this parser can handle the given file
func (p *HCLParser) CanParse(filename string) bool {
	return hasExt(filename, ".hcl")
}

// 📝 Parse parses the plan from HCL
func (p *HCLParser) Parse(ctx context.Context, data []byte, filename string) (*model.Plan, error) {
	hclParser := hclparse.NewParser()
	hclFile, diags := hclParser.ParseHCL(data, filename)
	if diags.HasErrors() {
		return nil, errors.Errorf("%w: parsing HCL: %s", model.ErrInvalidPlan, diags.Error())
	}

	type hclChange struct {
		Input      string   `hcl:"input"`
		Output     string   `hcl:"output"`
		InputMode  string   `hcl:"input_mode,optional"`
		OutputMode string   `hcl:"output_mode,optional"`
		Files      []string `hcl:"files,optional"`
		Globs      []string `hcl:"globs,optional"`
	}

	type hclPlan struct {
		ConfirmWhenNoChanges bool        `hcl:"confirm_when_no_changes,optional"`
		Changes              []hclChange `hcl:"change,block"`
	}

	var decoded hclPlan
	diags = gohcl.DecodeBody(hclFile.Body, evalContext(), &decoded)
	if diags.HasErrors() {
		return nil, errors.Errorf("%w: decoding HCL: %s", model.ErrInvalidPlan, diags.Error())
	}

	plan := &model.Plan{ConfirmWhenNoChanges: decoded.ConfirmWhenNoChanges}
	for _, c := range decoded.Changes {
		plan.Changes = append(plan.Changes, model.Change{
			Input:      c.Input,
			Output:     c.Output,
			InputMode:  c.InputMode,
			OutputMode: c.OutputMode,
			Files:      c.Files,
			Globs:      c.Globs,
		})
	}

	return plan, nil
}

func evalContext() *hcl.EvalContext {
	env := map[string]cty.Value{}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = cty.StringVal(v)
		}
	}

	envVal := cty.EmptyObjectVal
	if len(env) > 0 {
		envVal = cty.ObjectVal(env)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": envVal,
		},
	}
}
