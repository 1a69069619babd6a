package processor

import "fmt"

// NumInputs returns the size of the active input set.
func (p *Processor) NumInputs() int {
	return len(p.inputs)
}

// NumOutputs returns the size of the active output set.
func (p *Processor) NumOutputs() int {
	return len(p.outputs)
}

// Input returns the active input at index.
func (p *Processor) Input(index int) *Input {
	if index < 0 || index >= len(p.inputs) {
		panic(fmt.Sprintf("processor: input index %d out of range [0,%d)", index, len(p.inputs)))
	}
	return p.inputs[index]
}

// Output returns the active output at index.
func (p *Processor) Output(index int) *Output {
	if index < 0 || index >= len(p.outputs) {
		panic(fmt.Sprintf("processor: output index %d out of range [0,%d)", index, len(p.outputs)))
	}
	return p.outputs[index]
}

// NumOwnedInputs returns the number of inputs allocated by Init.
func (p *Processor) NumOwnedInputs() int {
	return len(p.ownedInputs)
}

// NumOwnedOutputs returns the number of outputs allocated by Init.
func (p *Processor) NumOwnedOutputs() int {
	return len(p.ownedOutputs)
}

// OwnedInput returns the owned input at index, whatever the active set
// currently exposes.
func (p *Processor) OwnedInput(index int) *Input {
	if index < 0 || index >= len(p.ownedInputs) {
		panic(fmt.Sprintf("processor: owned input index %d out of range [0,%d)", index, len(p.ownedInputs)))
	}
	return p.ownedInputs[index]
}

// OwnedOutput returns the owned output at index.
func (p *Processor) OwnedOutput(index int) *Output {
	if index < 0 || index >= len(p.ownedOutputs) {
		panic(fmt.Sprintf("processor: owned output index %d out of range [0,%d)", index, len(p.ownedOutputs)))
	}
	return p.ownedOutputs[index]
}

// RegisterInput appends in to the active input set.
func (p *Processor) RegisterInput(in *Input) {
	p.RegisterInputAt(in, len(p.inputs))
}

// RegisterOutput appends out to the active output set.
func (p *Processor) RegisterOutput(out *Output) {
	p.RegisterOutputAt(out, len(p.outputs))
}

// RegisterInputAt exposes in as active input index. Gaps created by growing
// the set are filled with unplugged inputs.
func (p *Processor) RegisterInputAt(in *Input, index int) {
	if in == nil {
		panic("processor: register nil input")
	}
	if index < 0 {
		panic(fmt.Sprintf("processor: negative input index %d", index))
	}

	for len(p.inputs) <= index {
		p.inputs = append(p.inputs, NewInput())
	}
	p.inputs[index] = in
}

// RegisterOutputAt exposes out as active output index. Gaps created by
// growing the set are filled with zeroed outputs owned by this node.
func (p *Processor) RegisterOutputAt(out *Output, index int) {
	if out == nil {
		panic("processor: register nil output")
	}
	if out.silent {
		panic("processor: register the silent output")
	}
	if index < 0 {
		panic(fmt.Sprintf("processor: negative output index %d", index))
	}

	for len(p.outputs) <= index {
		p.outputs = append(p.outputs, NewOutput(p.self))
	}
	p.outputs[index] = out
}

// RestoreOwnedPorts makes the owned ports the active set again.
func (p *Processor) RestoreOwnedPorts() {
	p.inputs = append(p.inputs[:0], p.ownedInputs...)
	p.outputs = append(p.outputs[:0], p.ownedOutputs...)
}
