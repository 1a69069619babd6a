// Package operators provides small arithmetic nodes for building graphs on
// top of package processor.
//
// Nodes in this package:
//   - Value: constant source with no inputs.
//   - Bypass: copies its input and forwards pending triggers.
//   - Add, Multiply: combine two inputs sample by sample.
//   - Gain: scales one input by a fixed factor.
//   - VariableAdd: sums any number of inputs, filled with PlugNext.
//   - MidiScale: converts MIDI note numbers to frequencies in Hz.
//
// Block kernels use github.com/cwbudde/algo-vecmath and never allocate in
// Process.
package operators
