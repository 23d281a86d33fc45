package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"svw.info/minesweeper/internal/domain"
)

type yamlFile struct {
	Default string       `yaml:"default"`
	Presets []yamlPreset `yaml:"presets"`
}

// yamlPreset takes either an absolute mine count or a density in [0,1).
type yamlPreset struct {
	Name    string   `yaml:"name"`
	Width   int      `yaml:"width"`
	Height  int      `yaml:"height"`
	Mines   *int     `yaml:"mines"`
	Density *float64 `yaml:"density"`
}

func loadYAML(path string) (*Presets, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var root yamlFile
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to decode YAML file %s: %w", path, err)
	}
	out := &Presets{Default: root.Default}
	for _, p := range root.Presets {
		var mines int
		switch {
		case p.Mines != nil && p.Density != nil:
			return nil, fmt.Errorf("preset %q: set mines or density, not both", p.Name)
		case p.Mines != nil:
			mines = *p.Mines
		case p.Density != nil:
			mines = int(math.Floor(float64(p.Width*p.Height) * *p.Density))
		default:
			return nil, fmt.Errorf("preset %q: mines or density is required", p.Name)
		}
		out.List = append(out.List, domain.Preset{Name: p.Name, Width: p.Width, Height: p.Height, Mines: mines})
	}
	return out, nil
}
