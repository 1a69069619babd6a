package processor

// Node is a processing unit in the graph. Concrete nodes embed Processor,
// which supplies every method except Process and Clone.
type Node interface {
	// Process renders one block: it reads from the node's inputs and writes
	// BufferSize samples into each of its outputs.
	Process()

	// Clone returns a new node of the same kind and configuration whose
	// inputs are unplugged and which belongs to no router.
	Clone() Node

	SetSampleRate(rate int)
	SetBufferSize(size int)
	SetControlRate(controlRate bool)
	SampleRate() int
	BufferSize() int
	IsControlRate() bool
	IsPolyphonic() bool

	NumInputs() int
	NumOutputs() int
	Input(index int) *Input
	Output(index int) *Output

	Plug(src *Output)
	PlugAt(src *Output, index int)
	PlugNode(src Node)
	PlugNodeAt(src Node, index int)
	PlugNext(src *Output)
	PlugNextNode(src Node)
	UnplugIndex(index int)
	Unplug(src *Output)
	UnplugNode(src Node)

	Router() Router
	SetRouter(r Router) error
	TopLevelRouter() Router
}

// Router is the container that owns and schedules a set of nodes. A router
// may itself belong to another router.
type Router interface {
	// Router returns the router this router belongs to, or nil at the top.
	Router() Router

	// Contains reports whether n is a direct member of the router.
	Contains(n Node) bool
}
