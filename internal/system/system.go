// SPDX-License-Identifier: MIT

package system

import (
	"context"
	"errors"
	"fmt"
	"math"
	"sort"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/katalvlaran/doolittle/internal/ctxlog"
	"github.com/katalvlaran/doolittle/lu"
	"github.com/katalvlaran/doolittle/matrix"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/convert"
	"github.com/zclconf/go-cty/cty/gocty"
)

var (
	// ErrNoSystem is returned when a file holds no system block.
	ErrNoSystem = errors.New("system: no system block")
	// ErrUnknownSystem is returned by Select for a name that is not present,
	// or for an empty name when the choice is ambiguous.
	ErrUnknownSystem = errors.New("system: unknown system")
)

var (
	matrixType = cty.List(cty.List(cty.Number))
	vectorType = cty.List(cty.Number)
)

// System is one decoded A·x = b problem.
type System struct {
	Name string
	A    *matrix.Dense
	B    []float64
	// PivotTolerance is nil when the file leaves it unset.
	PivotTolerance *float64
}

// Options returns the lu options the file asks for.
func (s *System) Options() []lu.Option {
	if s.PivotTolerance == nil {
		return nil
	}

	return []lu.Option{lu.WithPivotTolerance(*s.PivotTolerance)}
}

// hclFile is the top-level shape of a system file.
type hclFile struct {
	Systems []*hclSystem `hcl:"system,block"`
}

type hclSystem struct {
	Name           string         `hcl:"name,label"`
	Matrix         hcl.Expression `hcl:"matrix"`
	RHS            hcl.Expression `hcl:"rhs"`
	PivotTolerance *float64       `hcl:"pivot_tolerance,optional"`
}

// Load parses the HCL file at path.
func Load(ctx context.Context, path string) ([]*System, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading system file.", "path", path)

	f, diags := hclparse.NewParser().ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse system file %s: %w", path, diags)
	}

	return decodeFile(ctx, f, path)
}

// Parse decodes src as if it were read from filename.
func Parse(ctx context.Context, src []byte, filename string) ([]*System, error) {
	f, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse system file %s: %w", filename, diags)
	}

	return decodeFile(ctx, f, filename)
}

func decodeFile(ctx context.Context, f *hcl.File, filename string) ([]*System, error) {
	logger := ctxlog.FromContext(ctx)

	var parsed hclFile
	if diags := gohcl.DecodeBody(f.Body, nil, &parsed); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode system file %s: %w", filename, diags)
	}
	if len(parsed.Systems) == 0 {
		return nil, fmt.Errorf("%s: %w", filename, ErrNoSystem)
	}

	seen := make(map[string]hcl.Range, len(parsed.Systems))
	out := make([]*System, 0, len(parsed.Systems))
	for _, hs := range parsed.Systems {
		at := hs.Matrix.Range()
		if prev, dup := seen[hs.Name]; dup {
			return nil, fmt.Errorf("failed to decode system file %s: %w", filename, hcl.Diagnostics{{
				Severity: hcl.DiagError,
				Summary:  "Duplicate system block",
				Detail:   fmt.Sprintf("A system named %q was already declared at %s.", hs.Name, prev),
				Subject:  at.Ptr(),
			}})
		}
		seen[hs.Name] = at

		s, err := decodeSystem(hs)
		if err != nil {
			return nil, fmt.Errorf("system %q in %s: %w", hs.Name, filename, err)
		}
		logger.Debug("Decoded system.", "name", s.Name, "n", s.A.Rows())
		out = append(out, s)
	}

	return out, nil
}

func decodeSystem(hs *hclSystem) (*System, error) {
	var rows [][]float64
	if diags := decodeNumeric(hs.Matrix, matrixType, &rows, "matrix"); diags.HasErrors() {
		return nil, diags
	}
	var rhs []float64
	if diags := decodeNumeric(hs.RHS, vectorType, &rhs, "rhs"); diags.HasErrors() {
		return nil, diags
	}

	a, err := matrix.NewFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("matrix: %w", err)
	}
	if err = matrix.ValidateVecLen(rhs, a.Rows()); err != nil {
		return nil, fmt.Errorf("rhs has %d entries for %d rows: %w", len(rhs), a.Rows(), err)
	}

	if tol := hs.PivotTolerance; tol != nil && (*tol < 0 || math.IsNaN(*tol) || math.IsInf(*tol, 0)) {
		return nil, fmt.Errorf("pivot_tolerance %g must be finite and non-negative", *tol)
	}

	return &System{Name: hs.Name, A: a, B: rhs, PivotTolerance: hs.PivotTolerance}, nil
}

// decodeNumeric evaluates expr without variables, converts it to ty and
// stores it in target.
func decodeNumeric(expr hcl.Expression, ty cty.Type, target any, attr string) hcl.Diagnostics {
	val, diags := expr.Value(nil)
	if diags.HasErrors() {
		return diags
	}

	bad := func(detail string) hcl.Diagnostics {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  fmt.Sprintf("Invalid %s", attr),
			Detail:   detail,
			Subject:  expr.Range().Ptr(),
		}}
	}

	// gohcl fills an absent hcl.Expression attribute with a null literal, so
	// an omitted attribute and an explicit null are reported alike.
	if val.IsNull() {
		return hcl.Diagnostics{{
			Severity: hcl.DiagError,
			Summary:  "Missing required argument",
			Detail:   fmt.Sprintf("The argument %q is required, but no definition was found.", attr),
			Subject:  expr.Range().Ptr(),
		}}
	}
	if !val.IsWhollyKnown() {
		return bad(fmt.Sprintf("The %s attribute must be a known value.", attr))
	}
	conv, err := convert.Convert(val, ty)
	if err != nil {
		return bad(fmt.Sprintf("Cannot use %s as %s: %s.", val.Type().FriendlyName(), ty.FriendlyName(), err))
	}
	if err = gocty.FromCtyValue(conv, target); err != nil {
		return bad(fmt.Sprintf("Cannot decode %s: %s.", attr, err))
	}

	return nil
}

// Select returns the system called name. An empty name picks the only
// system in the slice.
func Select(systems []*System, name string) (*System, error) {
	if name == "" {
		if len(systems) == 1 {
			return systems[0], nil
		}
		return nil, fmt.Errorf("%d systems %v, choose one: %w", len(systems), names(systems), ErrUnknownSystem)
	}
	for _, s := range systems {
		if s.Name == name {
			return s, nil
		}
	}

	return nil, fmt.Errorf("%q not in %v: %w", name, names(systems), ErrUnknownSystem)
}

func names(systems []*System) []string {
	out := make([]string, len(systems))
	for i, s := range systems {
		out[i] = s.Name
	}
	sort.Strings(out)

	return out
}
