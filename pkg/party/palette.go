package party

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/hemicycle/pkg/errors"
)

// Palette supplies fill colors for parties that do not specify one.
// Implementations return colors of the form #rrggbb.
type Palette interface {
	Next() string
}

// Palette names accepted by [NewPalette].
const (
	PaletteRandom = "random"
	PaletteSpaced = "spaced"
)

// NewPalette returns the palette registered under name, seeded with seed.
// A zero seed gives a RandomPalette a non-reproducible source.
func NewPalette(name string, seed uint64) (Palette, error) {
	switch name {
	case PaletteRandom, "":
		if seed == 0 {
			return NewRandomPalette(rand.NewPCG(rand.Uint64(), rand.Uint64())), nil
		}
		return NewRandomPalette(rand.NewPCG(seed, seed^0xdeadbeef)), nil
	case PaletteSpaced:
		return NewSpacedPalette(seed), nil
	default:
		return nil, errors.New(errors.ErrCodeInvalidInput, "invalid palette: %q (must be one of: random, spaced)", name)
	}
}

// RandomPalette draws three independent bytes per color from its source.
// It is not safe for concurrent use.
type RandomPalette struct {
	rng *rand.Rand
}

// NewRandomPalette returns a palette reading from src.
func NewRandomPalette(src rand.Source) *RandomPalette {
	return &RandomPalette{rng: rand.New(src)}
}

// Next returns a random color in lowercase #rrggbb form.
func (p *RandomPalette) Next() string {
	r := p.rng.IntN(256)
	g := p.rng.IntN(256)
	b := p.rng.IntN(256)
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// goldenAngle is the hue step, in degrees, between consecutive colors.
var goldenAngle = 180 * (3 - math.Sqrt(5))

// SpacedPalette produces well separated colors by stepping the hue by the
// golden angle in HSLuv space, so neighbouring parties stay distinguishable
// and lightness is perceptually uniform. The seed rotates the starting hue.
type SpacedPalette struct {
	hue float64
}

// NewSpacedPalette returns a palette whose first hue is derived from seed.
func NewSpacedPalette(seed uint64) *SpacedPalette {
	return &SpacedPalette{hue: float64(seed % 360)}
}

// Next returns the next color in lowercase #rrggbb form.
func (p *SpacedPalette) Next() string {
	c := colorful.HSLuv(p.hue, 0.85, 0.6).Clamped()
	p.hue = math.Mod(p.hue+goldenAngle, 360)
	return c.Hex()
}
