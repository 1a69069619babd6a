package processor

import (
	"fmt"

	"github.com/hztirf/helm/dsp/core"
)

// Processor is the embeddable base of every node. It holds the node's
// configuration, its owned ports, the active port set exposed through
// Input and Output, and the router association.
type Processor struct {
	self Node

	sampleRate  int
	bufferSize  int
	controlRate bool

	ownedInputs  []*Input
	ownedOutputs []*Output

	inputs  []*Input
	outputs []*Output

	router Router
}

// Init binds p to the node that embeds it and allocates numInputs unplugged
// inputs and numOutputs zeroed outputs owned by self. The node starts with
// core.DefaultProcessorConfig.
func (p *Processor) Init(self Node, numInputs, numOutputs int) {
	if self == nil {
		panic("processor: Init with nil node")
	}
	if numInputs < 0 || numOutputs < 0 {
		panic(fmt.Sprintf("processor: negative arity %d/%d", numInputs, numOutputs))
	}

	cfg := core.DefaultProcessorConfig()

	p.self = self
	p.sampleRate = cfg.SampleRate
	p.bufferSize = cfg.BufferSize
	p.controlRate = cfg.ControlRate
	p.router = nil

	p.ownedInputs = make([]*Input, numInputs)
	p.inputs = make([]*Input, 0, numInputs)
	for i := range p.ownedInputs {
		p.ownedInputs[i] = NewInput()
		p.RegisterInput(p.ownedInputs[i])
	}

	p.ownedOutputs = make([]*Output, numOutputs)
	p.outputs = make([]*Output, 0, numOutputs)
	for i := range p.ownedOutputs {
		p.ownedOutputs[i] = NewOutput(self)
		p.RegisterOutput(p.ownedOutputs[i])
	}
}

// InitClone initialises p for self as a detached copy of src: same owned
// arity, sample rate, block size and control-rate flag, fresh unplugged
// ports, no router. Re-registered active ports are not carried over.
func (p *Processor) InitClone(self Node, src *Processor) {
	p.Init(self, len(src.ownedInputs), len(src.ownedOutputs))
	p.sampleRate = src.sampleRate
	p.bufferSize = src.bufferSize
	p.controlRate = src.controlRate
}

// Self returns the node p was initialised for.
func (p *Processor) Self() Node {
	return p.self
}

// SetSampleRate stores the sample rate. Nodes with rate-dependent state
// override it and call through.
func (p *Processor) SetSampleRate(rate int) {
	if rate <= 0 {
		panic(fmt.Sprintf("processor: sample rate must be > 0: %d", rate))
	}
	p.sampleRate = rate
}

// SetBufferSize stores the block size, or 1 in control-rate mode.
func (p *Processor) SetBufferSize(size int) {
	if size < 1 || size > core.MaxBufferSize {
		panic(fmt.Sprintf("processor: buffer size %d out of range [1,%d]", size, core.MaxBufferSize))
	}

	if p.controlRate {
		p.bufferSize = 1
	} else {
		p.bufferSize = size
	}
}

// SetControlRate switches control-rate mode. Enabling it pins the block size
// to 1; disabling it keeps the current size until the next SetBufferSize.
func (p *Processor) SetControlRate(controlRate bool) {
	p.controlRate = controlRate
	if controlRate {
		p.bufferSize = 1
	}
}

// Configure applies cfg through the node's own setters so overrides run.
func (p *Processor) Configure(cfg core.ProcessorConfig) {
	n := p.node()
	n.SetSampleRate(cfg.SampleRate)
	n.SetControlRate(cfg.ControlRate)
	n.SetBufferSize(cfg.BufferSize)
}

// Config returns the node's current settings.
func (p *Processor) Config() core.ProcessorConfig {
	return core.ProcessorConfig{
		SampleRate:  p.sampleRate,
		BufferSize:  p.bufferSize,
		ControlRate: p.controlRate,
	}
}

// SampleRate returns the sample rate.
func (p *Processor) SampleRate() int {
	return p.sampleRate
}

// BufferSize returns the number of samples processed per block.
func (p *Processor) BufferSize() int {
	return p.bufferSize
}

// IsControlRate reports whether the node runs one sample per block.
func (p *Processor) IsControlRate() bool {
	return p.controlRate
}

// IsPolyphonic reports whether the node's ports carry several voices.
func (p *Processor) IsPolyphonic() bool {
	return false
}

// InputSample returns sample of input. The sample index must be below
// BufferSize.
func (p *Processor) InputSample(input, sample int) float64 {
	if sample < 0 || sample >= p.bufferSize {
		panicSample(sample, p.bufferSize)
	}
	return p.Input(input).At(sample)
}

// WriteOutputSample stores value at sample of output. The sample index must
// be below BufferSize.
func (p *Processor) WriteOutputSample(output, sample int, value float64) {
	if sample < 0 || sample >= p.bufferSize {
		panicSample(sample, p.bufferSize)
	}
	p.Output(output).buffer[sample] = value
}

// OutputBlock returns the first BufferSize samples of output for writing.
func (p *Processor) OutputBlock(output int) []float64 {
	return p.Output(output).buffer[:p.bufferSize]
}

func (p *Processor) node() Node {
	if p.self == nil {
		panic("processor: node used before Init")
	}
	return p.self
}

func panicSample(sample, size int) {
	panic(fmt.Sprintf("processor: sample %d out of range [0,%d)", sample, size))
}
