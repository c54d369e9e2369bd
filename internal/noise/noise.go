// Package noise implements seeded 2D gradient noise over a 256-periodic
// lattice, the base layer of the wave field.
package noise

import (
	"math"
	"math/rand/v2"
)

// Generator produces smooth pseudo-random values in roughly [-1, 1]. The
// permutation table is fixed at construction; all calls are pure reads, so a
// Generator is safe to share between renders.
type Generator struct {
	// 256 random bytes duplicated to 512 so corner lookups never wrap.
	perm [512]int
}

// New returns a Generator whose permutation table is derived from seed.
// Equal seeds yield identical noise fields.
func New(seed int64) *Generator {
	g := &Generator{}
	rng := rand.New(rand.NewPCG(uint64(seed), 0))
	for i := 0; i < 256; i++ {
		g.perm[i] = rng.IntN(256)
		g.perm[i+256] = g.perm[i]
	}
	return g
}

// Eval2 samples the noise field at (x, y). The result is continuous and C1
// in both coordinates and repeats with period 256.
func (g *Generator) Eval2(x, y float64) float64 {
	fx := math.Floor(x)
	fy := math.Floor(y)
	xi := int(fx) & 255
	yi := int(fy) & 255
	dx := x - fx
	dy := y - fy

	u := fade(dx)
	v := fade(dy)

	aa := g.perm[g.perm[xi]+yi]
	ba := g.perm[g.perm[xi+1]+yi]
	ab := g.perm[g.perm[xi]+yi+1]
	bb := g.perm[g.perm[xi+1]+yi+1]

	top := lerp(grad(aa, dx, dy), grad(ba, dx-1, dy), u)
	bot := lerp(grad(ab, dx, dy-1), grad(bb, dx-1, dy-1), u)
	return lerp(top, bot, v)
}

// fade is the quintic smoothing curve 6t^5 - 15t^4 + 10t^3. Its first and
// second derivatives vanish at 0 and 1, which keeps cell seams invisible.
func fade(t float64) float64 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}

// grad projects the offset vector onto one of four diagonal gradient
// directions selected by the low two bits of the hashed corner index.
func grad(hash int, x, y float64) float64 {
	switch hash & 3 {
	case 0:
		return x + y
	case 1:
		return -x + y
	case 2:
		return x - y
	default:
		return -x - y
	}
}
