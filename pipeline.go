package rtspclient

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/JaredHane98/RTSP-CLIENT/engine"
)

// Status is the outcome of a best-effort operation on a named stage. It
// distinguishes a missing stage from one whose engine rejected the request,
// which a plain boolean cannot.
type Status int

const (
	// StatusAccepted means the engine took the request. For properties this
	// carries no confirmation that the stage honored the value; callers
	// needing certainty must poll stage state separately.
	StatusAccepted Status = iota
	// StatusNotFound means no stage with that name exists in the graph.
	StatusNotFound
	// StatusRejected means the engine refused the request synchronously.
	StatusRejected
)

// String returns the status name.
func (s Status) String() string {
	switch s {
	case StatusAccepted:
		return "accepted"
	case StatusNotFound:
		return "not-found"
	case StatusRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Pipeline owns one processing graph: the registry mapping symbolic names to
// stages, the linker, lifecycle state for the graph and its stages, and the
// dispatch loop that services the engine's asynchronous callbacks.
//
// Stages are created and linked strictly in caller-issued order on the
// constructing goroutine. Once the loop runs, no structural mutation is
// supported; property, signal, and state operations remain safe to issue
// concurrently with callback execution (the engine provides that guarantee;
// the pipeline adds no locking of its own).
type Pipeline struct {
	eng   engine.Engine
	graph engine.Graph
	loop  engine.Loop
	name  string

	stages map[string]*Stage

	// Last accepted state request, used to expand skips into the minimal
	// adjacent path.
	state       engine.State
	stageStates map[string]engine.State
}

// New creates an empty pipeline on the given engine.
func New(eng engine.Engine, name string) (*Pipeline, error) {
	graph, err := eng.NewGraph(name)
	if err != nil {
		return nil, fmt.Errorf("rtspclient: failed to create graph %q: %w", name, err)
	}
	return &Pipeline{
		eng:         eng,
		graph:       graph,
		loop:        eng.NewLoop(),
		name:        name,
		stages:      map[string]*Stage{},
		state:       engine.StateNull,
		stageStates: map[string]engine.State{},
	}, nil
}

// Name returns the graph's name.
func (p *Pipeline) Name() string { return p.name }

// Add creates a stage of the given plugin type, attaches it to the graph,
// and registers it under name.
//
// On any failure no partial state is retained: the duplicate check runs
// before anything is allocated, and an element that fails to attach is
// released by the engine before the error returns.
func (p *Pipeline) Add(factory, name string) (*Stage, error) {
	return p.add(factory, name, "")
}

// AddFiltered is Add plus a capability filter parsed from capsSpec. The
// filter constrains the stage's downstream link and is consumed exactly once
// at link time. A malformed spec fails with ErrBadCapsSpec before the stage
// is created.
func (p *Pipeline) AddFiltered(factory, name, capsSpec string) (*Stage, error) {
	return p.add(factory, name, capsSpec)
}

func (p *Pipeline) add(factory, name, capsSpec string) (*Stage, error) {
	if _, exists := p.stages[name]; exists {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}

	var filter engine.Caps
	var filterDesc string
	if capsSpec != "" {
		c, err := p.eng.ParseCaps(capsSpec)
		if err != nil {
			return nil, fmt.Errorf("%w: %q: %v", ErrBadCapsSpec, capsSpec, err)
		}
		filter = c
		filterDesc = c.String()
	}

	el, err := p.eng.NewElement(factory, name)
	if err != nil {
		if filter != nil {
			filter.Unref()
		}
		return nil, fmt.Errorf("%w: %q as %q: %v", ErrUnknownPlugin, factory, name, err)
	}

	if err := p.graph.Add(el); err != nil {
		if filter != nil {
			filter.Unref()
		}
		return nil, fmt.Errorf("%w: %q: %v", ErrAttach, name, err)
	}

	st := &Stage{
		name:       name,
		factory:    factory,
		el:         el,
		filter:     filter,
		filterDesc: filterDesc,
	}
	p.stages[name] = st
	p.stageStates[name] = engine.StateNull

	slog.Debug("rtspclient: stage added",
		"graph", p.name,
		"stage", name,
		"plugin", factory,
		"filtered", filter != nil,
	)
	return st, nil
}

// Lookup returns the stage registered under name. Absence is not an error;
// callers decide.
func (p *Pipeline) Lookup(name string) (*Stage, bool) {
	st, ok := p.stages[name]
	return st, ok
}

// SetProperty sets a property on the named stage, best-effort. Accepted
// means the engine took the request, not that the stage honored the value.
func (p *Pipeline) SetProperty(name, key string, value engine.Value) Status {
	st, ok := p.stages[name]
	if !ok {
		return StatusNotFound
	}
	if err := st.el.SetProperty(key, value); err != nil {
		slog.Warn("rtspclient: property rejected",
			"stage", name,
			"key", key,
			"value", value.GoString(),
			"error", err,
		)
		return StatusRejected
	}
	return StatusAccepted
}

// ConnectSignal registers handler for a named signal on the named stage.
// The handler runs asynchronously on the dispatch loop's thread; delivery
// order matches the engine's own event order, with no guarantee across
// different stages' signals.
func (p *Pipeline) ConnectSignal(name, signal string, handler any) Status {
	st, ok := p.stages[name]
	if !ok {
		return StatusNotFound
	}
	if err := st.el.Connect(signal, handler); err != nil {
		slog.Warn("rtspclient: signal rejected",
			"stage", name,
			"signal", signal,
			"error", err,
		)
		return StatusRejected
	}
	return StatusAccepted
}

// Run blocks in the dispatch loop, servicing asynchronous engine callbacks
// (dynamic port discovery, signal delivery) until ctx is cancelled or Quit
// is called. The calling goroutine regains control only then.
func (p *Pipeline) Run(ctx context.Context) {
	if ctx.Err() != nil {
		p.loop.Quit()
		return
	}

	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			slog.Debug("rtspclient: context cancelled, quitting dispatch loop", "graph", p.name)
			p.loop.Quit()
		case <-done:
		}
	}()

	p.loop.Run()
	close(done)
}

// Quit stops the dispatch loop, unblocking Run. Safe to call from any
// goroutine, any number of times.
func (p *Pipeline) Quit() { p.loop.Quit() }
