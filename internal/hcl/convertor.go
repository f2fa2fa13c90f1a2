package hcl

import (
	"context"
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/specialistvlad/lexc/internal/ctxlog"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

// isExprDefined checks if an HCL expression was actually present in the
// source. gohcl fills omitted optional attributes with zero-width expressions,
// so a nil check is not enough.
func isExprDefined(expr hcl.Expression) bool {
	if expr == nil {
		return false
	}
	r := expr.Range()
	return r.End.Byte > r.Start.Byte
}

// evalString evaluates expr and coerces the result to a Go string. The
// boolean result is false when the attribute was omitted or evaluated to null.
func evalString(ctx context.Context, expr hcl.Expression, evalCtx *hcl.EvalContext, attrName string) (string, bool, error) {
	logger := ctxlog.FromContext(ctx)

	if !isExprDefined(expr) {
		logger.Debug("Attribute not set.", "attribute", attrName)
		return "", false, nil
	}

	val, diags := expr.Value(evalCtx)
	if diags.HasErrors() {
		return "", false, diags
	}
	if val.IsNull() {
		return "", false, nil
	}
	if !val.IsWhollyKnown() {
		return "", false, fmt.Errorf("attribute %q has an unknown value", attrName)
	}

	strVal, err := convert.Convert(val, cty.String)
	if err != nil {
		return "", false, fmt.Errorf("attribute %q must be a string: %w", attrName, err)
	}

	var out string
	if err := gocty.FromCtyValue(strVal, &out); err != nil {
		return "", false, fmt.Errorf("failed to decode attribute %q: %w", attrName, err)
	}
	logger.Debug("Attribute evaluated.", "attribute", attrName, "range", expr.Range().String())
	return out, true, nil
}

// evalLocals evaluates every `locals` attribute from every file into a single
// object exposed to program blocks as `local`. Locals may not refer to each
// other.
func evalLocals(ctx context.Context, files []*parsedFile) (cty.Value, error) {
	logger := ctxlog.FromContext(ctx)
	values := make(map[string]cty.Value)
	defined := make(map[string]hcl.Range)

	for _, f := range files {
		for _, block := range f.root.Locals {
			attrs, diags := block.Body.JustAttributes()
			if diags.HasErrors() {
				return cty.NilVal, fmt.Errorf("failed to read locals in %s: %w", f.path, diags)
			}
			for name, attr := range attrs {
				if prev, dup := defined[name]; dup {
					return cty.NilVal, &hcl.Diagnostic{
						Severity: hcl.DiagError,
						Summary:  "Duplicate local value",
						Detail:   fmt.Sprintf("Local %q was already defined at %s.", name, prev.String()),
						Subject:  &attr.NameRange,
					}
				}
				val, diags := attr.Expr.Value(nil)
				if diags.HasErrors() {
					return cty.NilVal, fmt.Errorf("failed to evaluate local %q: %w", name, diags)
				}
				values[name] = val
				defined[name] = attr.NameRange
			}
		}
	}

	logger.Debug("Locals evaluated.", "count", len(values))
	if len(values) == 0 {
		return cty.EmptyObjectVal, nil
	}
	return cty.ObjectVal(values), nil
}
