package engine

// State identifies a lifecycle state of the whole graph or a single element.
//
// Transitions are requested in adjacent steps only; the graph controller
// expands a skip (e.g. Null to Playing) into the minimal path.
type State int

const (
	// StateNull is the initial and terminal state. No resources are held.
	StateNull State = iota
	// StateReady means resources are allocated but no data is flowing.
	StateReady
	// StatePaused means the element is ready to accept and process data.
	StatePaused
	// StatePlaying means data is flowing.
	StatePlaying
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateNull:
		return "NULL"
	case StateReady:
		return "READY"
	case StatePaused:
		return "PAUSED"
	case StatePlaying:
		return "PLAYING"
	default:
		return "UNKNOWN"
	}
}

// Engine is the boundary to the external media-processing engine.
//
// All structural operations of the core (creation, attachment, linking,
// state changes) go through this interface, never through the engine's own
// API directly.
type Engine interface {
	// NewGraph creates an empty top-level processing graph.
	NewGraph(name string) (Graph, error)

	// NewElement instantiates an element of the given plugin type under the
	// given name. The element is not attached to any graph yet.
	NewElement(factory, name string) (Element, error)

	// ParseCaps parses a capability filter description. The returned Caps
	// are owned by the caller and must be released exactly once.
	ParseCaps(spec string) (Caps, error)

	// NewLoop creates a dispatch loop that services the engine's
	// asynchronous callbacks.
	NewLoop() Loop
}

// Graph is the top-level container elements are attached to.
type Graph interface {
	Name() string

	// Add attaches an element to the graph, transferring ownership. On
	// failure the element is released and must not be used again.
	Add(el Element) error

	// SetState requests a state transition for the whole graph. A nil
	// return means the request was accepted, not that the transition
	// completed; completion may be asynchronous.
	SetState(s State) error
}

// Element is one processing stage inside a graph.
type Element interface {
	Name() string

	// Link connects this element's output to dst's input using default
	// negotiation.
	Link(dst Element) error

	// LinkFiltered connects this element to dst constrained by the given
	// capability filter. The filter is not released; the caller keeps
	// ownership and must release it after the call, win or lose.
	LinkFiltered(dst Element, filter Caps) error

	// SetProperty sets a named property. A nil return means the engine
	// accepted the request; there is no confirmation channel for whether
	// the element honored the value.
	SetProperty(key string, value Value) error

	// Connect registers a handler for a named signal. The handler runs on
	// the dispatch loop's thread.
	Connect(signal string, handler any) error

	// OnPadAdded registers fn to be invoked on the dispatch loop's thread
	// whenever this element exposes a new output port at runtime.
	OnPadAdded(fn func(pad Pad))

	// StaticPad returns the always-present pad with the given name, or
	// false if the element has no such pad.
	StaticPad(name string) (Pad, bool)

	// SetState requests a state transition for this element alone.
	SetState(s State) error
}

// Pad is one input or output port of an element.
type Pad interface {
	Name() string
	IsLinked() bool

	// Link connects this (output) pad to the given input pad.
	Link(sink Pad) error
}

// Caps is a parsed capability filter. It is a native resource: whoever holds
// it last must call Unref exactly once.
type Caps interface {
	String() string
	Unref()
}

// Loop is the single-threaded dispatch loop that keeps asynchronous engine
// callbacks flowing. Run blocks the calling goroutine until Quit is called;
// callbacks are serialized relative to one another on the loop's thread.
//
// Quit is sticky: a Quit issued before Run starts must not be lost, and Run
// must return immediately on a loop that was already quit.
type Loop interface {
	Run()
	Quit()
}
