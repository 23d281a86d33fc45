package board

import (
	"math/rand"

	"svw.info/minesweeper/internal/generator"
)

type options struct {
	placer generator.Placer
	rng    *rand.Rand
}

// Option configures New.
type Option func(*options)

// WithPlacer overrides the default placement strategy.
func WithPlacer(p generator.Placer) Option {
	return func(o *options) { o.placer = p }
}

// WithSeed makes placement reproducible.
func WithSeed(seed int64) Option {
	return func(o *options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand supplies the random source directly.
func WithRand(r *rand.Rand) Option {
	return func(o *options) { o.rng = r }
}
