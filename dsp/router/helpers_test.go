package router

import (
	"github.com/hztirf/helm/dsp/core"
	"github.com/hztirf/helm/dsp/processor"
)

// offsetNode adds a constant to its input and optionally records when it ran.
type offsetNode struct {
	processor.Processor
	name   string
	offset float64
	log    *[]string
}

func newOffsetNode(name string, offset float64, log *[]string) *offsetNode {
	n := &offsetNode{name: name, offset: offset, log: log}
	n.Init(n, 1, 1)
	return n
}

func (n *offsetNode) Process() {
	if n.log != nil {
		*n.log = append(*n.log, n.name)
	}

	for i := 0; i < n.BufferSize(); i++ {
		n.WriteOutputSample(0, i, n.InputSample(0, i)+n.offset)
	}
}

func (n *offsetNode) Clone() processor.Node {
	c := &offsetNode{name: n.name, offset: n.offset, log: n.log}
	c.InitClone(c, &n.Processor)
	return c
}

func newTestRouter(queueSize int, opts ...core.ProcessorOption) *Router {
	r := newRouter(queueSize)
	r.Init(r, 0, 0)
	r.Configure(core.ApplyProcessorOptions(opts...))
	return r
}

func mustAdd(r *Router, nodes ...processor.Node) {
	for _, n := range nodes {
		err := r.AddNode(n)
		if err != nil {
			panic(err)
		}
	}
}

func names(nodes []processor.Node) []string {
	out := make([]string, len(nodes))
	for i, n := range nodes {
		switch v := n.(type) {
		case *offsetNode:
			out[i] = v.name
		case *Router:
			out[i] = "router"
		default:
			out[i] = "?"
		}
	}
	return out
}
