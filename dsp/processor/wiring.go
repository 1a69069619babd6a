package processor

import "fmt"

// Plug connects src to input 0.
func (p *Processor) Plug(src *Output) {
	p.PlugAt(src, 0)
}

// PlugAt connects src to input index.
func (p *Processor) PlugAt(src *Output, index int) {
	checkSource(src)
	p.Input(index).plug(src)
}

// PlugNode connects output 0 of src to input 0.
func (p *Processor) PlugNode(src Node) {
	p.PlugNodeAt(src, 0)
}

// PlugNodeAt connects output 0 of src to input index.
func (p *Processor) PlugNodeAt(src Node, index int) {
	if src == nil {
		panic("processor: plug nil node")
	}
	p.PlugAt(src.Output(0), index)
}

// PlugNext connects src to the lowest-indexed input that is still unplugged.
// It panics when every input is already plugged.
func (p *Processor) PlugNext(src *Output) {
	checkSource(src)

	for _, in := range p.inputs {
		if !in.IsPlugged() {
			in.plug(src)
			return
		}
	}

	panic(fmt.Sprintf("processor: PlugNext found no open input among %d", len(p.inputs)))
}

// PlugNextNode connects output 0 of src to the lowest-indexed open input.
func (p *Processor) PlugNextNode(src Node) {
	if src == nil {
		panic("processor: plug nil node")
	}
	p.PlugNext(src.Output(0))
}

// UnplugIndex points input index back at the silent output.
func (p *Processor) UnplugIndex(index int) {
	p.Input(index).unplug()
}

// Unplug disconnects src from every input that reads it. Inputs reading
// other outputs are left alone.
func (p *Processor) Unplug(src *Output) {
	if src == nil {
		return
	}

	for _, in := range p.inputs {
		if in.source == src {
			in.unplug()
		}
	}
}

// UnplugNode disconnects every active output of src from this node's inputs.
func (p *Processor) UnplugNode(src Node) {
	if src == nil {
		return
	}

	for i := 0; i < src.NumOutputs(); i++ {
		p.Unplug(src.Output(i))
	}
}

func checkSource(src *Output) {
	if src == nil {
		panic("processor: plug nil output")
	}
	if src.silent {
		panic("processor: plug the silent output; use Unplug instead")
	}
}
