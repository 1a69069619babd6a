package operators

import "github.com/hztirf/helm/dsp/processor"

const (
	// a4Note is the MIDI note number of concert A.
	a4Note = 69

	// a4Frequency is the frequency of concert A in Hz.
	a4Frequency = 440.0

	notesPerOctave = 12.0
)

// MidiScale converts MIDI note numbers (fractional notes allowed) to
// frequencies in Hz, equal temperament tuned to A4 = 440 Hz.
type MidiScale struct {
	processor.Processor
}

// NewMidiScale returns a note-to-frequency converter.
func NewMidiScale() *MidiScale {
	m := &MidiScale{}
	m.Init(m, 1, 1)
	return m
}

// MidiToFrequency returns the frequency of note in Hz.
func MidiToFrequency(note float64) float64 {
	return a4Frequency * mathPower2((note-a4Note)/notesPerOctave)
}

// Process converts each sample of the input block.
func (m *MidiScale) Process() {
	dst := m.OutputBlock(0)
	m.Input(0).CopyTo(dst)
	for i, note := range dst {
		dst[i] = MidiToFrequency(note)
	}
}

// Clone returns an unwired MidiScale.
func (m *MidiScale) Clone() processor.Node {
	c := &MidiScale{}
	c.InitClone(c, &m.Processor)
	return c
}
