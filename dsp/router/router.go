package router

import (
	"errors"
	"fmt"
	"sync"

	"github.com/hztirf/helm/dsp/core"
	"github.com/hztirf/helm/dsp/processor"
)

// DefaultQueueSize is the capacity of the change queue created by New.
const DefaultQueueSize = 64

var (
	// ErrDuplicateNode is returned when a node is added twice.
	ErrDuplicateNode = errors.New("node already belongs to this router")
	// ErrForeignNode is returned when a node already belongs to another router.
	ErrForeignNode = errors.New("node belongs to another router")
	// ErrNotMember is returned when removing a node the router does not own.
	ErrNotMember = errors.New("node does not belong to this router")
)

// Router owns an ordered set of member nodes and processes them as one node.
type Router struct {
	processor.Processor

	nodes []processor.Node
	index map[processor.Node]int

	// requestedBufferSize is the last size asked for, handed to members that
	// join later; the router's own BufferSize may be pinned to 1.
	requestedBufferSize int

	order    []processor.Node
	stale    bool
	indegree []int
	edges    []edge
	queue    []int

	changes chan Change

	errMu sync.Mutex
	errs  []error
}

// New returns an empty router configured by opts.
func New(opts ...core.ProcessorOption) *Router {
	r := newRouter(DefaultQueueSize)
	r.Init(r, 0, 0)
	r.Configure(core.ApplyProcessorOptions(opts...))
	return r
}

func newRouter(queueSize int) *Router {
	return &Router{
		index:   make(map[processor.Node]int),
		changes: make(chan Change, queueSize),
	}
}

// AddNode makes n a member, associates it with the router and applies the
// router's sample rate and block size. A control-rate router also switches n
// to control rate.
func (r *Router) AddNode(n processor.Node) error {
	if n == nil {
		panic("router: add nil node")
	}

	if _, ok := r.index[n]; ok {
		return fmt.Errorf("%w: %T", ErrDuplicateNode, n)
	}

	if n.Router() != nil {
		return fmt.Errorf("%w: %T", ErrForeignNode, n)
	}

	err := n.SetRouter(r)
	if err != nil {
		return err
	}

	n.SetSampleRate(r.SampleRate())
	if r.IsControlRate() {
		n.SetControlRate(true)
	}
	n.SetBufferSize(r.requestedBufferSize)

	r.index[n] = len(r.nodes)
	r.nodes = append(r.nodes, n)
	r.stale = true

	return nil
}

// RemoveNode drops n from the router and clears its router association.
// Every input in the surrounding router tree that reads an output of n (or of
// a node nested inside n) is unplugged, and ports of n the router exposes are
// replaced, here and in every enclosing router: inputs by unplugged inputs,
// outputs by zeroed outputs owned by that router. Port indices stay stable. Nodes outside any router that read the
// exposed outputs must be unplugged by the caller.
func (r *Router) RemoveNode(n processor.Node) error {
	i, ok := r.index[n]
	if !ok {
		return fmt.Errorf("%w: %T", ErrNotMember, n)
	}

	root := r
	if top, ok := r.TopLevelRouter().(*Router); ok {
		root = top
	}
	root.unplugReaders(n)

	for cur := r; cur != nil; {
		cur.releasePorts(n)

		parent, ok := cur.Router().(*Router)
		if !ok {
			break
		}
		cur = parent
	}

	copy(r.nodes[i:], r.nodes[i+1:])
	r.nodes[len(r.nodes)-1] = nil
	r.nodes = r.nodes[:len(r.nodes)-1]

	delete(r.index, n)
	for j := i; j < len(r.nodes); j++ {
		r.index[r.nodes[j]] = j
	}

	r.stale = true

	return n.SetRouter(nil)
}

// releasePorts swaps exposed ports that belong to n for fresh ones.
func (r *Router) releasePorts(n processor.Node) {
	for k := 0; k < r.NumInputs(); k++ {
		if exposesInput(n, r.Input(k)) {
			r.RegisterInputAt(processor.NewInput(), k)
		}
	}
	for k := 0; k < r.NumOutputs(); k++ {
		if belongsTo(r.Output(k).Owner(), n) {
			r.RegisterOutputAt(processor.NewOutput(r), k)
		}
	}
}

// unplugReaders unplugs every input below r, n excluded, whose source
// belongs to n.
func (r *Router) unplugReaders(n processor.Node) {
	for _, m := range r.nodes {
		if m == n {
			continue
		}

		for k := 0; k < m.NumInputs(); k++ {
			if belongsTo(m.Input(k).Source().Owner(), n) {
				m.UnplugIndex(k)
			}
		}

		if sub, ok := m.(*Router); ok {
			sub.unplugReaders(n)
		}
	}
}

// belongsTo reports whether owner is n or sits inside n's router tree.
func belongsTo(owner, n processor.Node) bool {
	for cur := owner; cur != nil; {
		if cur == n {
			return true
		}

		parent, ok := cur.Router().(processor.Node)
		if !ok {
			return false
		}
		cur = parent
	}

	return false
}

// exposesInput reports whether in is an active input of n or of a node
// nested inside n.
func exposesInput(n processor.Node, in *processor.Input) bool {
	for k := 0; k < n.NumInputs(); k++ {
		if n.Input(k) == in {
			return true
		}
	}

	if sub, ok := n.(*Router); ok {
		for _, m := range sub.nodes {
			if exposesInput(m, in) {
				return true
			}
		}
	}

	return false
}

// Contains reports whether n is a direct member.
func (r *Router) Contains(n processor.Node) bool {
	_, ok := r.index[n]
	return ok
}

// Nodes returns the members in insertion order.
func (r *Router) Nodes() []processor.Node {
	out := make([]processor.Node, len(r.nodes))
	copy(out, r.nodes)
	return out
}

// NumNodes returns the number of members.
func (r *Router) NumNodes() int {
	return len(r.nodes)
}

// SetSampleRate updates the router and every member.
func (r *Router) SetSampleRate(rate int) {
	r.Processor.SetSampleRate(rate)
	for _, n := range r.nodes {
		n.SetSampleRate(rate)
	}
}

// SetBufferSize updates the router and every member. Control-rate members
// keep a block size of 1.
func (r *Router) SetBufferSize(size int) {
	r.Processor.SetBufferSize(size)
	r.requestedBufferSize = size
	for _, n := range r.nodes {
		n.SetBufferSize(size)
	}
}

// SetControlRate switches the router and every member.
func (r *Router) SetControlRate(controlRate bool) {
	r.Processor.SetControlRate(controlRate)
	for _, n := range r.nodes {
		n.SetControlRate(controlRate)
	}
}
