package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"svw.info/minesweeper/internal/domain"
)

// Presets is the set of named boards offered to players.
type Presets struct {
	Default string
	List    []domain.Preset
}

// DefaultPresets returns the built-in easy/medium/hard set.
func DefaultPresets() *Presets {
	return &Presets{Default: "easy", List: domain.DefaultPresets()}
}

// Lookup finds a preset by case-insensitive name. An empty name selects the default.
func (p *Presets) Lookup(name string) (domain.Preset, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "" {
		name = p.Default
	}
	for _, pr := range p.List {
		if strings.ToLower(pr.Name) == name {
			return pr, true
		}
	}
	return domain.Preset{}, false
}

// LoadPresets reads presets from path, choosing the format by extension
// (.hcl, .yaml or .yml). An empty path yields the built-in presets.
func LoadPresets(path string) (*Presets, error) {
	if path == "" {
		return DefaultPresets(), nil
	}
	var (
		p   *Presets
		err error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		p, err = loadHCL(path)
	case ".yaml", ".yml":
		p, err = loadYAML(path)
	default:
		return nil, fmt.Errorf("presets file %s: unsupported extension", path)
	}
	if err != nil {
		return nil, err
	}
	if err := p.check(); err != nil {
		return nil, fmt.Errorf("presets file %s: %w", path, err)
	}
	return p, nil
}

func (p *Presets) check() error {
	if len(p.List) == 0 {
		return fmt.Errorf("%w: no presets defined", domain.ErrInvalidConfiguration)
	}
	seen := map[string]bool{}
	for _, pr := range p.List {
		key := strings.ToLower(pr.Name)
		if key == "" {
			return fmt.Errorf("%w: preset without a name", domain.ErrInvalidConfiguration)
		}
		if seen[key] {
			return fmt.Errorf("%w: duplicate preset %q", domain.ErrInvalidConfiguration, pr.Name)
		}
		seen[key] = true
		if err := pr.Validate(); err != nil {
			return fmt.Errorf("preset %q: %w", pr.Name, err)
		}
	}
	if p.Default == "" {
		p.Default = strings.ToLower(p.List[0].Name)
	}
	if _, ok := p.Lookup(p.Default); !ok {
		return fmt.Errorf("%w: default preset %q is not defined", domain.ErrInvalidConfiguration, p.Default)
	}
	p.Default = strings.ToLower(p.Default)
	return nil
}
