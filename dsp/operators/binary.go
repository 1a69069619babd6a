package operators

import (
	"github.com/cwbudde/algo-vecmath"
	"github.com/hztirf/helm/dsp/core"
	"github.com/hztirf/helm/dsp/processor"
)

// Add outputs the sample-wise sum of its two inputs.
type Add struct {
	processor.Processor

	scratch [core.MaxBufferSize]float64
}

// NewAdd returns a two-input adder.
func NewAdd() *Add {
	a := &Add{}
	a.Init(a, 2, 1)
	return a
}

// Process writes input 0 + input 1.
func (a *Add) Process() {
	dst := a.OutputBlock(0)
	tmp := a.scratch[:len(dst)]

	a.Input(0).CopyTo(dst)
	a.Input(1).CopyTo(tmp)
	vecmath.AddBlockInPlace(dst, tmp)
}

// Clone returns an unwired Add.
func (a *Add) Clone() processor.Node {
	c := &Add{}
	c.InitClone(c, &a.Processor)
	return c
}

// Multiply outputs the sample-wise product of its two inputs.
type Multiply struct {
	processor.Processor

	scratch [core.MaxBufferSize]float64
}

// NewMultiply returns a two-input multiplier.
func NewMultiply() *Multiply {
	m := &Multiply{}
	m.Init(m, 2, 1)
	return m
}

// Process writes input 0 * input 1.
func (m *Multiply) Process() {
	dst := m.OutputBlock(0)
	tmp := m.scratch[:len(dst)]

	m.Input(0).CopyTo(dst)
	m.Input(1).CopyTo(tmp)
	vecmath.MulBlockInPlace(dst, tmp)
}

// Clone returns an unwired Multiply.
func (m *Multiply) Clone() processor.Node {
	c := &Multiply{}
	c.InitClone(c, &m.Processor)
	return c
}
