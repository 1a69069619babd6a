package operators

import (
	"github.com/cwbudde/algo-vecmath"
	"github.com/hztirf/helm/dsp/core"
	"github.com/hztirf/helm/dsp/processor"
)

// VariableAdd sums a fixed number of inputs. Unplugged inputs read silence,
// so it is usually filled with PlugNext and PlugNextNode.
type VariableAdd struct {
	processor.Processor

	scratch [core.MaxBufferSize]float64
}

// NewVariableAdd returns a summing node with numInputs inputs.
func NewVariableAdd(numInputs int) *VariableAdd {
	v := &VariableAdd{}
	v.Init(v, numInputs, 1)
	return v
}

// Process writes the sum of every input. With no inputs it writes silence.
func (v *VariableAdd) Process() {
	dst := v.OutputBlock(0)
	if v.NumInputs() == 0 {
		core.Zero(dst)
		return
	}

	tmp := v.scratch[:len(dst)]
	v.Input(0).CopyTo(dst)
	for i := 1; i < v.NumInputs(); i++ {
		v.Input(i).CopyTo(tmp)
		vecmath.AddBlockInPlace(dst, tmp)
	}
}

// Clone returns an unwired VariableAdd with the same number of inputs.
func (v *VariableAdd) Clone() processor.Node {
	c := &VariableAdd{}
	c.InitClone(c, &v.Processor)
	return c
}
