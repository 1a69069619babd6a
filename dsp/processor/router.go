package processor

import (
	"errors"
	"fmt"
)

// ErrRouterCycle is returned by SetRouter when the association would make a
// router its own ancestor.
var ErrRouterCycle = errors.New("router association would form a cycle")

// Router returns the router this node belongs to, or nil.
func (p *Processor) Router() Router {
	return p.router
}

// SetRouter associates the node with r. Passing nil detaches it. The call
// fails with ErrRouterCycle when r is this node or already has this node
// above it in its own router chain.
func (p *Processor) SetRouter(r Router) error {
	self := p.node()

	for cur := r; cur != nil; cur = cur.Router() {
		if any(cur) == any(self) {
			return fmt.Errorf("%w: node is an ancestor of %T", ErrRouterCycle, r)
		}
	}

	p.router = r

	return nil
}

// TopLevelRouter returns the outermost router above this node, or nil when
// the node belongs to no router.
func (p *Processor) TopLevelRouter() Router {
	var top Router
	for cur := p.router; cur != nil; cur = cur.Router() {
		top = cur
	}
	return top
}
