package router

import "github.com/cwbudde/algo-vecmath"

// Process applies queued changes, recompiles the order if the topology
// changed, and runs every member once. If the wiring is cyclic no member
// runs and the error is available from Err; the next block retries.
func (r *Router) Process() {
	r.ApplyChanges()

	if r.stale {
		err := r.Compile()
		if err != nil {
			r.recordErr(err)
			return
		}
	}

	for _, n := range r.order {
		n.Process()
	}
}

// Peak returns the largest absolute sample of exposed output index over the
// current block.
func (r *Router) Peak(index int) float64 {
	out := r.Output(index)
	return vecmath.MaxAbs(out.Buffer()[:r.BufferSize()])
}
