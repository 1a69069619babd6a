package processor

import "github.com/hztirf/helm/dsp/core"

// Input is a node's input port. It aliases one Output's buffer and owns no
// samples of its own. The zero value reads from the silent output.
type Input struct {
	source *Output
}

// NewInput returns an unplugged input.
func NewInput() *Input {
	return &Input{source: silence}
}

// Source returns the output this input currently reads from.
func (in *Input) Source() *Output {
	if in.source == nil {
		return silence
	}
	return in.source
}

// IsPlugged reports whether the input reads from a real output.
func (in *Input) IsPlugged() bool {
	return in.source != nil && in.source != silence
}

// At returns sample i of the source buffer.
func (in *Input) At(i int) float64 {
	return in.Source().buffer[i]
}

// CopyTo copies the first len(dst) source samples into dst and returns the
// number copied.
func (in *Input) CopyTo(dst []float64) int {
	return core.CopyInto(dst, in.Source().buffer[:])
}

func (in *Input) plug(src *Output) {
	in.source = src
}

func (in *Input) unplug() {
	in.source = silence
}
