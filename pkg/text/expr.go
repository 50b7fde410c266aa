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
	"fmt"
	"path/filepath"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/gocty"
	"gitlab.com/tozd/go/errors"
)

// 🧮 Expression is an output expression evaluated once per match.
//
// The syntax is HCL's expression syntax restricted to string building:
//
//	"\\2" + group(1) + "."
//	"${basename}!${group(1)}"
//	named("year") + "-" + groups[2]
//
// Available bindings are match, filename, basename, groups, group(n) and named(name).
// The only operator is +, which concatenates its operands as strings.
type Expression struct {
	src  string
	expr hclsyntax.Expression
}

// ParseExpression parses and vets src. Nothing is evaluated until Replace is called.
func ParseExpression(src string) (*Expression, error) {
	expr, diags := hclsyntax.ParseExpression([]byte(src), "output", hcl.InitialPos)
	if diags.HasErrors() {
		return nil, errors.Errorf("parsing output expression: %s", diags.Error())
	}

	diags = hclsyntax.VisitAll(expr, vetNode)
	if diags.HasErrors() {
		return nil, errors.Errorf("output expression %q: %s", src, diags.Error())
	}

	return &Expression{src: src, expr: expr}, nil
}

// vetNode rejects every construct that is not needed to build a string from the match
func vetNode(node hclsyntax.Node) hcl.Diagnostics {
	var what string
	switch n := node.(type) {
	case *hclsyntax.LiteralValueExpr, *hclsyntax.TemplateExpr, *hclsyntax.TemplateWrapExpr,
		*hclsyntax.ScopeTraversalExpr, *hclsyntax.FunctionCallExpr, *hclsyntax.ParenthesesExpr,
		*hclsyntax.IndexExpr:
		return nil
	case *hclsyntax.BinaryOpExpr:
		if n.Op == hclsyntax.OpAdd {
			return nil
		}
		what = "operators other than +"
	case *hclsyntax.ConditionalExpr:
		what = "conditionals"
	case *hclsyntax.ForExpr, *hclsyntax.TemplateJoinExpr:
		what = "for expressions"
	case *hclsyntax.SplatExpr, *hclsyntax.AnonSymbolExpr:
		what = "splat expressions"
	case *hclsyntax.UnaryOpExpr:
		what = "unary operators"
	default:
		what = fmt.Sprintf("%T", node)
	}
	return hcl.Diagnostics{{
		Severity: hcl.DiagError,
		Summary:  "Unsupported expression",
		Detail:   what + " are not allowed in output expressions",
		Subject:  node.Range().Ptr(),
	}}
}

// String returns the expression source
func (e *Expression) String() string {
	return e.src
}

// Replace evaluates the expression against m.
func (e *Expression) Replace(m Match, filename string) (string, error) {
	out, err := evalString(e.expr, matchContext(m, filename))
	if err != nil {
		return "", errors.Errorf("evaluating %q: %w", e.src, err)
	}
	return out, nil
}

// evalString walks + chains itself so that + concatenates instead of adding numbers
func evalString(expr hclsyntax.Expression, ctx *hcl.EvalContext) (string, error) {
	switch x := expr.(type) {
	case *hclsyntax.BinaryOpExpr:
		lhs, err := evalString(x.LHS, ctx)
		if err != nil {
			return "", err
		}
		rhs, err := evalString(x.RHS, ctx)
		if err != nil {
			return "", err
		}
		return lhs + rhs, nil
	case *hclsyntax.ParenthesesExpr:
		return evalString(x.Expression, ctx)
	}

	val, diags := expr.Value(ctx)
	if diags.HasErrors() {
		return "", errors.New(diags.Error())
	}
	if val.IsNull() {
		return "", nil
	}
	if !val.IsWhollyKnown() {
		return "", errors.New("expression result is unknown")
	}
	str, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", errors.Errorf("converting %s to string: %w", val.Type().FriendlyName(), err)
	}
	return str.AsString(), nil
}

// matchContext exposes the match and nothing else
func matchContext(m Match, filename string) *hcl.EvalContext {
	groups := make([]cty.Value, len(m.Groups))
	for i, g := range m.Groups {
		groups[i] = cty.StringVal(g)
	}
	groupList := cty.ListValEmpty(cty.String)
	if len(groups) > 0 {
		groupList = cty.ListVal(groups)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"match":    cty.StringVal(m.Text),
			"groups":   groupList,
			"filename": cty.StringVal(filename),
			"basename": cty.StringVal(filepath.Base(filename)),
		},
		Functions: map[string]function.Function{
			"group": function.New(&function.Spec{
				Params: []function.Parameter{{Name: "index", Type: cty.Number}},
				Type:   function.StaticReturnType(cty.String),
				Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
					var i int
					if err := gocty.FromCtyValue(args[0], &i); err != nil {
						return cty.NilVal, err
					}
					g, err := m.Group(i)
					if err != nil {
						return cty.NilVal, err
					}
					return cty.StringVal(g), nil
				},
			}),
			"named": function.New(&function.Spec{
				Params: []function.Parameter{{Name: "name", Type: cty.String}},
				Type:   function.StaticReturnType(cty.String),
				Impl: func(args []cty.Value, _ cty.Type) (cty.Value, error) {
					g, err := m.NamedGroup(args[0].AsString())
					if err != nil {
						return cty.NilVal, err
					}
					return cty.StringVal(g), nil
				},
			}),
		},
	}
}
