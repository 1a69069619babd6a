package processor

import "github.com/hztirf/helm/dsp/core"

// sourceNode writes a fixed pattern into each of its outputs.
type sourceNode struct {
	Processor
	values []float64
}

func newSourceNode(numOutputs int, values ...float64) *sourceNode {
	s := &sourceNode{values: values}
	s.Init(s, 0, numOutputs)
	return s
}

func (s *sourceNode) Process() {
	for o := 0; o < s.NumOutputs(); o++ {
		for i := 0; i < s.BufferSize(); i++ {
			v := 0.0
			if i < len(s.values) {
				v = s.values[i]
			}
			s.WriteOutputSample(o, i, v)
		}
	}
}

func (s *sourceNode) Clone() Node {
	c := &sourceNode{values: s.values}
	c.InitClone(c, &s.Processor)
	return c
}

// sinkNode records what its first input delivered in the last block.
type sinkNode struct {
	Processor
	got [core.MaxBufferSize]float64
}

func newSinkNode(numInputs int) *sinkNode {
	s := &sinkNode{}
	s.Init(s, numInputs, 0)
	return s
}

func (s *sinkNode) Process() {
	for i := 0; i < s.BufferSize(); i++ {
		s.got[i] = s.InputSample(0, i)
	}
}

func (s *sinkNode) Clone() Node {
	c := &sinkNode{}
	c.InitClone(c, &s.Processor)
	return c
}

func (s *sinkNode) block() []float64 {
	return s.got[:s.BufferSize()]
}

// rateNode counts sample-rate changes the way a node with cached
// coefficients would.
type rateNode struct {
	Processor
	rateChanges int
}

func newRateNode() *rateNode {
	r := &rateNode{}
	r.Init(r, 1, 1)
	return r
}

func (r *rateNode) SetSampleRate(rate int) {
	r.Processor.SetSampleRate(rate)
	r.rateChanges++
}

func (r *rateNode) Process() {}

func (r *rateNode) Clone() Node {
	c := &rateNode{}
	c.InitClone(c, &r.Processor)
	return c
}

// voiceNode exposes one input and one output per voice through the active
// port set while owning a single mono pair.
type voiceNode struct {
	Processor
	voiceInputs  []*Input
	voiceOutputs []*Output
}

func newVoiceNode(voices int) *voiceNode {
	v := &voiceNode{}
	v.Init(v, 1, 1)
	for i := 0; i < voices; i++ {
		in := NewInput()
		out := NewOutput(v)
		v.voiceInputs = append(v.voiceInputs, in)
		v.voiceOutputs = append(v.voiceOutputs, out)
		v.RegisterInputAt(in, i)
		v.RegisterOutputAt(out, i)
	}
	return v
}

func (v *voiceNode) IsPolyphonic() bool { return true }

func (v *voiceNode) Process() {}

func (v *voiceNode) Clone() Node {
	return newVoiceNode(len(v.voiceInputs))
}

// groupNode is a minimal Router used to test router associations.
type groupNode struct {
	Processor
	members map[Node]bool
}

func newGroupNode() *groupNode {
	g := &groupNode{members: map[Node]bool{}}
	g.Init(g, 0, 0)
	return g
}

func (g *groupNode) Contains(n Node) bool { return g.members[n] }

func (g *groupNode) add(n Node) error {
	err := n.SetRouter(g)
	if err != nil {
		return err
	}

	g.members[n] = true

	return nil
}

func (g *groupNode) Process() {}

func (g *groupNode) Clone() Node { return newGroupNode() }
