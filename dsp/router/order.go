package router

import (
	"errors"
	"fmt"

	"github.com/hztirf/helm/dsp/processor"
)

// ErrCycle is returned when the members' wiring contains a cycle.
var ErrCycle = errors.New("wiring contains a cycle")

// edge says member from must run before member to.
type edge struct {
	from int
	to   int
}

// Compile derives the execution order from the current wiring (Kahn's
// algorithm, ties broken by insertion order). Call it after rewiring members
// directly; Process compiles on its own after AddNode, RemoveNode and queued
// changes.
func (r *Router) Compile() error {
	n := len(r.nodes)

	r.indegree = resizeInts(r.indegree, n)
	r.edges = r.edges[:0]

	for to, node := range r.nodes {
		for k := 0; k < node.NumInputs(); k++ {
			from, ok := r.memberIndex(node.Input(k).Source().Owner())
			if !ok || from == to {
				continue
			}

			r.edges = append(r.edges, edge{from: from, to: to})
			r.indegree[to]++
		}
	}

	r.queue = r.queue[:0]
	for i, d := range r.indegree {
		if d == 0 {
			r.queue = append(r.queue, i)
		}
	}

	// r.queue doubles as the output: entries before head are ordered.
	for head := 0; head < len(r.queue); head++ {
		from := r.queue[head]
		for _, e := range r.edges {
			if e.from != from {
				continue
			}

			r.indegree[e.to]--
			if r.indegree[e.to] == 0 {
				r.queue = append(r.queue, e.to)
			}
		}
	}

	if len(r.queue) != n {
		return fmt.Errorf("%w: %d of %d nodes ordered", ErrCycle, len(r.queue), n)
	}

	r.order = r.order[:0]
	for _, i := range r.queue {
		r.order = append(r.order, r.nodes[i])
	}
	r.stale = false

	return nil
}

// Order returns the members in execution order, compiling first if the
// topology changed since the last compile.
func (r *Router) Order() ([]processor.Node, error) {
	if r.stale {
		err := r.Compile()
		if err != nil {
			return nil, err
		}
	}

	out := make([]processor.Node, len(r.order))
	copy(out, r.order)

	return out, nil
}

// memberIndex maps the owner of an output to the member that contains it:
// the owner itself, or the nested router it lives in.
func (r *Router) memberIndex(owner processor.Node) (int, bool) {
	for cur := owner; cur != nil; {
		if i, ok := r.index[cur]; ok {
			return i, true
		}

		parent, ok := cur.Router().(processor.Node)
		if !ok || parent == processor.Node(r) {
			return 0, false
		}
		cur = parent
	}

	return 0, false
}

func resizeInts(buf []int, n int) []int {
	if cap(buf) < n {
		buf = make([]int, n)
	}
	buf = buf[:n]
	for i := range buf {
		buf[i] = 0
	}
	return buf
}
