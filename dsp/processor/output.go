package processor

import (
	"fmt"

	"github.com/hztirf/helm/dsp/core"
)

// Output is a node's output port: a fixed-capacity sample buffer plus an
// optional trigger event for the current block.
type Output struct {
	buffer [core.MaxBufferSize]float64

	triggered     bool
	triggerOffset int
	triggerValue  float64

	owner  Node
	silent bool
}

// silence is the shared output every unplugged input reads from.
var silence = &Output{silent: true}

// Silence returns the shared silent output. It always reads zero and panics
// on any write.
func Silence() *Output {
	return silence
}

// NewOutput returns a zeroed output owned by owner.
func NewOutput(owner Node) *Output {
	return &Output{owner: owner}
}

// Owner returns the node that declared this output. It is nil for the silent
// output and for outputs created without an owner.
func (o *Output) Owner() Node {
	return o.owner
}

// IsSilent reports whether o is the shared silent output.
func (o *Output) IsSilent() bool {
	return o.silent
}

// At returns sample i of the buffer.
func (o *Output) At(i int) float64 {
	return o.buffer[i]
}

// Buffer returns the full-capacity sample buffer for writing.
func (o *Output) Buffer() []float64 {
	o.mustBeWritable("Buffer")
	return o.buffer[:]
}

// Write stores value at sample i.
func (o *Output) Write(i int, value float64) {
	o.mustBeWritable("Write")
	o.buffer[i] = value
}

// ClearBuffer resets every sample to zero.
func (o *Output) ClearBuffer() {
	o.mustBeWritable("ClearBuffer")
	o.buffer = [core.MaxBufferSize]float64{}
}

// Trigger records an event with the given value at sample offset within the
// current block, replacing any pending event. Pass 0 for the block start.
func (o *Output) Trigger(value float64, offset int) {
	o.mustBeWritable("Trigger")
	if offset < 0 || offset >= core.MaxBufferSize {
		panic(fmt.Sprintf("processor: trigger offset %d out of range [0,%d)", offset, core.MaxBufferSize))
	}

	o.triggered = true
	o.triggerOffset = offset
	o.triggerValue = value
}

// ClearTrigger discards the pending event.
func (o *Output) ClearTrigger() {
	o.mustBeWritable("ClearTrigger")
	o.triggered = false
	o.triggerOffset = 0
	o.triggerValue = 0
}

// Triggered reports whether an event is pending.
func (o *Output) Triggered() bool {
	return o.triggered
}

// TriggerOffset returns the sample offset of the pending event.
func (o *Output) TriggerOffset() int {
	return o.triggerOffset
}

// TriggerValue returns the value of the pending event.
func (o *Output) TriggerValue() float64 {
	return o.triggerValue
}

func (o *Output) mustBeWritable(op string) {
	if o.silent {
		panic("processor: " + op + " on the silent output")
	}
}
