package domain

import (
	"fmt"
	"math"
)

// Preset is a named board configuration.
type Preset struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Mines  int    `json:"mines"`
}

// Validate rejects dimensions that would leave mine placement unable to finish.
func (p Preset) Validate() error {
	if p.Width < 1 || p.Height < 1 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfiguration, p.Width, p.Height)
	}
	if p.Mines < 0 {
		return fmt.Errorf("%w: negative mine count %d", ErrInvalidConfiguration, p.Mines)
	}
	if p.Width > math.MaxInt/p.Height {
		return fmt.Errorf("%w: %dx%d board has too many cells", ErrInvalidConfiguration, p.Width, p.Height)
	}
	if p.Mines >= p.Width*p.Height {
		return fmt.Errorf("%w: %d mines do not fit a %dx%d board", ErrInvalidConfiguration, p.Mines, p.Width, p.Height)
	}
	return nil
}

// DefaultPresets returns the built-in difficulty levels.
func DefaultPresets() []Preset {
	return []Preset{
		{Name: "easy", Width: 9, Height: 9, Mines: 10},
		{Name: "medium", Width: 16, Height: 16, Mines: 40},
		{Name: "hard", Width: 30, Height: 16, Mines: 99},
	}
}
