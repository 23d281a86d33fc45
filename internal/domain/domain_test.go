package domain

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPresetValidate(t *testing.T) {
	cases := []struct {
		name string
		p    Preset
		ok   bool
	}{
		{"easy", Preset{Width: 9, Height: 9, Mines: 10}, true},
		{"no-mines", Preset{Width: 1, Height: 1}, true},
		{"full", Preset{Width: 2, Height: 2, Mines: 4}, false},
		{"zero-width", Preset{Width: 0, Height: 2}, false},
		{"negative", Preset{Width: 2, Height: 2, Mines: -1}, false},
		{"cells-overflow", Preset{Width: math.MaxInt/4 + 1, Height: 4}, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.p.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, ErrInvalidConfiguration)
			}
		})
	}
}

func TestDefaultPresetsAreValid(t *testing.T) {
	for _, p := range DefaultPresets() {
		assert.NoError(t, p.Validate(), p.Name)
	}
}

func TestEnumsTravelAsText(t *testing.T) {
	in := BoardView{Status: Lost, Cells: [][]CellView{{{Visibility: Flagged}}}}
	data, err := json.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"status":"lost"`)
	assert.Contains(t, string(data), `"visibility":"flagged"`)

	var out BoardView
	require.NoError(t, json.Unmarshal(data, &out))
	assert.Equal(t, Lost, out.Status)
	assert.Equal(t, Flagged, out.Cells[0][0].Visibility)

	var s Status
	assert.Error(t, s.UnmarshalText([]byte("paused")))
}

func TestContentHelpers(t *testing.T) {
	assert.True(t, EmptyContent(0).IsEmptyZero())
	assert.False(t, EmptyContent(3).IsEmptyZero())
	assert.False(t, MineContent().IsEmptyZero())
	assert.Equal(t, "(2,5)", Coordinate{X: 2, Y: 5}.String())
}
