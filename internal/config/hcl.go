package config

import (
	"fmt"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"
	"github.com/zclconf/go-cty/cty/function"
	"github.com/zclconf/go-cty/cty/function/stdlib"
	"github.com/zclconf/go-cty/cty/gocty"

	"svw.info/minesweeper/internal/domain"
)

// hclFile is the top level of a presets file:
//
//	default = "easy"
//
//	preset "dense" {
//	  width  = 20
//	  height = 20
//	  mines  = floor(cells * 0.2)
//	}
type hclFile struct {
	Default string       `hcl:"default,optional"`
	Presets []*hclPreset `hcl:"preset,block"`
}

type hclPreset struct {
	Name   string         `hcl:"name,label"`
	Width  int            `hcl:"width"`
	Height int            `hcl:"height"`
	Mines  hcl.Expression `hcl:"mines"`
}

var mineFunctions = map[string]function.Function{
	"floor": stdlib.FloorFunc,
	"ceil":  stdlib.CeilFunc,
	"min":   stdlib.MinFunc,
	"max":   stdlib.MaxFunc,
}

func loadHCL(path string) (*Presets, error) {
	parser := hclparse.NewParser()
	f, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file %s: %w", path, diags)
	}
	var root hclFile
	if diags := gohcl.DecodeBody(f.Body, nil, &root); diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL file %s: %w", path, diags)
	}

	out := &Presets{Default: root.Default}
	for _, b := range root.Presets {
		mines, err := evalMines(b)
		if err != nil {
			return nil, err
		}
		out.List = append(out.List, domain.Preset{Name: b.Name, Width: b.Width, Height: b.Height, Mines: mines})
	}
	return out, nil
}

// evalMines evaluates the mines expression with width, height and cells in
// scope.
func evalMines(b *hclPreset) (int, error) {
	ctx := &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"width":  cty.NumberIntVal(int64(b.Width)),
			"height": cty.NumberIntVal(int64(b.Height)),
			"cells":  cty.NumberIntVal(int64(b.Width * b.Height)),
		},
		Functions: mineFunctions,
	}
	val, diags := b.Mines.Value(ctx)
	if diags.HasErrors() {
		return 0, fmt.Errorf("preset %q: mines: %w", b.Name, diags)
	}
	if val.IsNull() || !val.IsKnown() {
		return 0, fmt.Errorf("preset %q: mines must be a known number", b.Name)
	}
	var mines int
	if err := gocty.FromCtyValue(val, &mines); err != nil {
		return 0, fmt.Errorf("preset %q: mines: %w", b.Name, err)
	}
	return mines, nil
}
