package operators

import "github.com/hztirf/helm/dsp/processor"

// Bypass copies its input to its output, pending trigger included.
type Bypass struct {
	processor.Processor
}

// NewBypass returns a one-in one-out pass-through node.
func NewBypass() *Bypass {
	b := &Bypass{}
	b.Init(b, 1, 1)
	return b
}

// Process copies the current block and forwards or clears the trigger.
func (b *Bypass) Process() {
	b.Input(0).CopyTo(b.OutputBlock(0))

	src := b.Input(0).Source()
	out := b.Output(0)
	if src.Triggered() {
		out.Trigger(src.TriggerValue(), src.TriggerOffset())
	} else {
		out.ClearTrigger()
	}
}

// Clone returns an unwired Bypass.
func (b *Bypass) Clone() processor.Node {
	c := &Bypass{}
	c.InitClone(c, &b.Processor)
	return c
}
