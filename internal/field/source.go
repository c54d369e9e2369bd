package field

import (
	"fmt"

	"github.com/aquilax/go-perlin"
	"github.com/ojrac/opensimplex-go"

	"wavebg/internal/noise"
)

// Backend names accepted by NewSource.
const (
	BackendGradient = "gradient"
	BackendSimplex  = "simplex"
	BackendPerlin   = "perlin"
)

// NewSource constructs a seeded noise backend by name. "gradient" is the
// in-tree lattice generator and the default look; "simplex" and "perlin"
// swap in library fields with a different character.
func NewSource(backend string, seed int64) (Source, error) {
	switch backend {
	case BackendGradient, "":
		return noise.New(seed), nil
	case BackendSimplex:
		return opensimplex.New(seed), nil
	case BackendPerlin:
		return perlinSource{p: perlin.NewPerlin(2, 2, 3, seed)}, nil
	default:
		return nil, fmt.Errorf("unknown noise backend %q", backend)
	}
}

// perlinSource adapts go-perlin's Noise2D to the Source interface.
type perlinSource struct {
	p *perlin.Perlin
}

func (s perlinSource) Eval2(x, y float64) float64 { return s.p.Noise2D(x, y) }
