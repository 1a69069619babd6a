package router

import (
	"fmt"

	"github.com/hztirf/helm/dsp/processor"
)

// cloneState pairs the ports of a router tree with their clones so wiring
// can be replayed once every level has been cloned.
type cloneState struct {
	outputs map[*processor.Output]*processor.Output
	inputs  map[*processor.Input]*processor.Input
	pairs   []clonePair
}

type clonePair struct {
	orig  processor.Node
	clone processor.Node
}

// Clone returns a router holding clones of every member, wired to each other
// the way the originals are. Nested routers are cloned the same way, and
// wires between any two nodes of the tree are replayed, including wires to
// inner outputs a nested router does not expose. Inputs reading from outside
// the router come back unplugged, and exposed ports are re-registered on the
// cloned counterparts.
func (r *Router) Clone() processor.Node {
	s := &cloneState{
		outputs: make(map[*processor.Output]*processor.Output),
		inputs:  make(map[*processor.Input]*processor.Input),
	}

	c := r.cloneTree(s)

	for _, p := range s.pairs {
		for k := 0; k < p.orig.NumInputs() && k < p.clone.NumInputs(); k++ {
			if src, ok := s.outputs[p.orig.Input(k).Source()]; ok {
				p.clone.PlugAt(src, k)
			}
		}
	}

	return c
}

func (r *Router) cloneTree(s *cloneState) *Router {
	c := newRouter(cap(r.changes))
	c.InitClone(c, &r.Processor)
	c.requestedBufferSize = r.requestedBufferSize

	for i, n := range r.nodes {
		var cn processor.Node
		if nested, ok := n.(*Router); ok {
			cn = nested.cloneTree(s)
		} else {
			cn = n.Clone()
		}

		err := cn.SetRouter(c)
		if err != nil {
			panic(fmt.Sprintf("router: associate clone of %T: %v", n, err))
		}
		c.index[cn] = i
		c.nodes = append(c.nodes, cn)
		s.pairs = append(s.pairs, clonePair{orig: n, clone: cn})

		for k := 0; k < n.NumOutputs() && k < cn.NumOutputs(); k++ {
			s.outputs[n.Output(k)] = cn.Output(k)
		}
		for k := 0; k < n.NumInputs() && k < cn.NumInputs(); k++ {
			s.inputs[n.Input(k)] = cn.Input(k)
		}
	}

	for k := 0; k < r.NumInputs(); k++ {
		if in, ok := s.inputs[r.Input(k)]; ok {
			c.RegisterInputAt(in, k)
		}
	}
	for k := 0; k < r.NumOutputs(); k++ {
		if out, ok := s.outputs[r.Output(k)]; ok {
			c.RegisterOutputAt(out, k)
		}
	}

	c.stale = true

	return c
}
