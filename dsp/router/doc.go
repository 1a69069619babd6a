// Package router provides a container node that owns a set of processing
// nodes, runs them once per block in dependency order, and keeps their
// transport settings in step.
//
// A Router is itself a processor.Node, so routers nest. The execution order
// is derived from the wiring: a member that reads an output produced by
// another member (or by anything nested inside another member) runs after
// it. Cyclic wiring is rejected with ErrCycle; feedback paths are not
// supported.
//
// A Router exposes ports of its members by registering them as its own
// inputs and outputs:
//
//	r := router.New(core.WithBufferSize(128))
//	amp, _ := operators.NewGain(0.5)
//	_ = r.AddNode(amp)
//	r.RegisterInput(amp.Input(0))
//	r.RegisterOutput(amp.Output(0))
//
// Topology edits made directly on a Router or its members must happen
// between blocks. Edits coming from another goroutine go through Enqueue;
// Process applies them before rendering the next block.
package router
