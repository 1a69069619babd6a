package operators

import (
	"github.com/cwbudde/algo-vecmath"
	"github.com/hztirf/helm/dsp/core"
	"github.com/hztirf/helm/dsp/processor"
)

// ones is the fill source for Value; ScaleBlock(dst, ones, v) writes v.
var ones = func() (b [core.MaxBufferSize]float64) {
	for i := range b {
		b[i] = 1
	}
	return b
}()

// Value outputs a constant on every sample of every block.
type Value struct {
	processor.Processor

	value float64
}

// NewValue returns a node writing value to its only output.
func NewValue(value float64) *Value {
	v := &Value{value: value}
	v.Init(v, 0, 1)
	return v
}

// Set changes the constant from the next block on.
func (v *Value) Set(value float64) {
	v.value = value
}

// Get returns the current constant.
func (v *Value) Get() float64 {
	return v.value
}

// Process fills the output block.
func (v *Value) Process() {
	dst := v.OutputBlock(0)
	vecmath.ScaleBlock(dst, ones[:len(dst)], v.value)
}

// Clone returns an unwired Value holding the same constant.
func (v *Value) Clone() processor.Node {
	c := &Value{value: v.value}
	c.InitClone(c, &v.Processor)
	return c
}
