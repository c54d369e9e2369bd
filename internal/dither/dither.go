// Package dither quantizes channel intensities into a small set of evenly
// spaced levels using an 8x8 ordered threshold matrix. The threshold is tied
// to block position, not frame number, so patterns stay put while the
// underlying value drifts.
package dither

import (
	"fmt"
	"math"
)

// Classic 8x8 Bayer matrix. Cell values are k/64 for k in 0..63.
var bayer8 [8][8]float64

func init() {
	raw := [8][8]int{
		{0, 32, 8, 40, 2, 34, 10, 42},
		{48, 16, 56, 24, 50, 18, 58, 26},
		{12, 44, 4, 36, 14, 46, 6, 38},
		{60, 28, 52, 20, 62, 30, 54, 22},
		{3, 35, 11, 43, 1, 33, 9, 41},
		{51, 19, 59, 27, 49, 17, 57, 25},
		{15, 47, 7, 39, 13, 45, 5, 37},
		{63, 31, 55, 23, 61, 29, 53, 21},
	}
	for y := range raw {
		for x := range raw[y] {
			bayer8[y][x] = float64(raw[y][x]) / 64.0
		}
	}
}

// Tuned visual calibration constants carried over from the stock look.
// They shift the threshold to be zero-mean-ish and darken the whole frame;
// their exact values are preserved, not explained.
const (
	thresholdBias = 0.25
	darkenBias    = 0.2
)

// Quantizer maps intensities in [0,1] onto a fixed ladder of levels.
type Quantizer struct {
	levels int
	step   float64
}

// New returns a Quantizer producing `levels` evenly spaced output values.
// Fewer than two levels would make the step size divide by zero, so that is
// rejected here rather than checked per sample.
func New(levels int) (*Quantizer, error) {
	if levels < 2 {
		return nil, fmt.Errorf("dither: need at least 2 color levels, got %d", levels)
	}
	return &Quantizer{levels: levels, step: 1 / float64(levels-1)}, nil
}

// Levels returns the number of output levels.
func (q *Quantizer) Levels() int { return q.levels }

// Apply quantizes v for the block at grid coordinates (gx, gy). The result
// is always one of the values i/(levels-1) for i in 0..levels-1.
func (q *Quantizer) Apply(v float64, gx, gy int) float64 {
	threshold := bayer8[mod8(gy)][mod8(gx)]
	v += (threshold - thresholdBias) * q.step
	v -= darkenBias
	if v < 0 {
		v = 0
	} else if v > 1 {
		v = 1
	}
	return math.Round(v*float64(q.levels-1)) * q.step
}

func mod8(i int) int {
	return ((i % 8) + 8) % 8
}
