// Package processor defines the node abstraction of a block-based audio and
// control signal graph.
//
// A node owns a fixed number of Output ports, each carrying a fixed-capacity
// sample buffer and at most one pending trigger event, and a fixed number of
// Input ports. An Input never owns samples: it aliases exactly one Output,
// or a shared silent Output when nothing is plugged in, so reading an
// unwired port is always defined and returns zero.
//
// Concrete nodes embed [Processor], call [Processor.Init] from their
// constructor, and implement Process and Clone:
//
//	type Gain struct {
//		processor.Processor
//		gain float64
//	}
//
//	func NewGain(gain float64) *Gain {
//		g := &Gain{gain: gain}
//		g.Init(g, 1, 1)
//		return g
//	}
//
//	func (g *Gain) Process() {
//		for i := 0; i < g.BufferSize(); i++ {
//			g.WriteOutputSample(0, i, g.gain*g.InputSample(0, i))
//		}
//	}
//
// # Wiring
//
// Plug, PlugAt, PlugNode, PlugNodeAt, PlugNext and PlugNextNode make an
// input alias an output; UnplugIndex, Unplug and UnplugNode point inputs back
// at the silent output. Wiring only changes which buffer an input reads. It
// never copies samples and never allocates, but it must not run while any
// node of the same graph is inside Process.
//
// Wiring mistakes (an input index out of range, a nil source, plugging the
// silent output, no open input left for PlugNext) are programmer errors and
// panic.
//
// # Rates
//
// Every node has a sample rate and a block size. In control-rate mode the
// block size is pinned to one sample regardless of what SetBufferSize asks
// for. Block sizes never exceed [core.MaxBufferSize].
//
// # Routers
//
// A node may belong to a [Router], the container that schedules it. The
// association is a back reference used for topology queries such as
// TopLevelRouter. SetRouter refuses associations that would make the router
// chain cyclic.
package processor
