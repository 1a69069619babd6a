package operators

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vecmath"
	"github.com/hztirf/helm/dsp/processor"
)

// ErrInvalidGain is returned for NaN or infinite gain factors.
var ErrInvalidGain = errors.New("gain must be finite")

// Gain scales its input by a fixed factor.
type Gain struct {
	processor.Processor

	gain float64
}

// NewGain returns a gain node. It fails for NaN or infinite factors.
func NewGain(gain float64) (*Gain, error) {
	g := &Gain{}
	g.Init(g, 1, 1)

	err := g.SetGain(gain)
	if err != nil {
		return nil, err
	}

	return g, nil
}

// SetGain changes the factor from the next block on.
func (g *Gain) SetGain(gain float64) error {
	if math.IsNaN(gain) || math.IsInf(gain, 0) {
		return fmt.Errorf("%w: %f", ErrInvalidGain, gain)
	}
	g.gain = gain
	return nil
}

// Gain returns the current factor.
func (g *Gain) Gain() float64 {
	return g.gain
}

// Process writes gain * input.
func (g *Gain) Process() {
	dst := g.OutputBlock(0)
	g.Input(0).CopyTo(dst)
	vecmath.ScaleBlockInPlace(dst, g.gain)
}

// Clone returns an unwired Gain with the same factor.
func (g *Gain) Clone() processor.Node {
	c := &Gain{gain: g.gain}
	c.InitClone(c, &g.Processor)
	return c
}
