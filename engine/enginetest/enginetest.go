// Package enginetest provides a scriptable in-memory implementation of the
// engine contracts for tests. Failures are injected per plugin type, per
// link pair, per caps spec, and per state step; dynamic port discovery is
// simulated by emitting pads directly on an element.
package enginetest

import (
	"fmt"
	"sync"

	"github.com/JaredHane98/RTSP-CLIENT/engine"
)

// Engine is a fake engine.Engine recording every structural operation.
type Engine struct {
	mu sync.Mutex

	// FailFactories lists plugin types whose creation fails.
	FailFactories map[string]bool
	// FailAttach lists element names whose graph attachment fails.
	FailAttach map[string]bool
	// FailLinks lists "src->dst" element-name pairs whose link fails,
	// filtered or not.
	FailLinks map[string]bool
	// FailCaps lists caps specs that fail to parse.
	FailCaps map[string]bool

	graphs   []*Graph
	elements map[string]*Element
	caps     []*Caps
	loops    []*Loop
}

// New returns an empty fake engine.
func New() *Engine {
	return &Engine{
		FailFactories: map[string]bool{},
		FailAttach:    map[string]bool{},
		FailLinks:     map[string]bool{},
		FailCaps:      map[string]bool{},
		elements:      map[string]*Element{},
	}
}

// NewGraph implements engine.Engine.
func (e *Engine) NewGraph(name string) (engine.Graph, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	g := &Graph{name: name, eng: e, FailStates: map[engine.State]bool{}}
	e.graphs = append(e.graphs, g)
	return g, nil
}

// NewElement implements engine.Engine.
func (e *Engine) NewElement(factory, name string) (engine.Element, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.FailFactories[factory] {
		return nil, fmt.Errorf("enginetest: no such plugin %q", factory)
	}
	el := &Element{
		eng:        e,
		factory:    factory,
		name:       name,
		pads:       map[string]*Pad{},
		props:      map[string]engine.Value{},
		signals:    map[string]int{},
		FailStates: map[engine.State]bool{},
	}
	e.elements[name] = el
	return el, nil
}

// ParseCaps implements engine.Engine.
func (e *Engine) ParseCaps(spec string) (engine.Caps, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.FailCaps[spec] {
		return nil, fmt.Errorf("enginetest: cannot parse caps %q", spec)
	}
	c := &Caps{spec: spec}
	e.caps = append(e.caps, c)
	return c, nil
}

// NewLoop implements engine.Engine.
func (e *Engine) NewLoop() engine.Loop {
	e.mu.Lock()
	defer e.mu.Unlock()
	l := &Loop{quit: make(chan struct{})}
	e.loops = append(e.loops, l)
	return l
}

// Element returns the fake element created under name, or nil.
func (e *Engine) Element(name string) *Element {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.elements[name]
}

// Graph returns the n-th created graph, or nil.
func (e *Engine) Graph(n int) *Graph {
	e.mu.Lock()
	defer e.mu.Unlock()
	if n < 0 || n >= len(e.graphs) {
		return nil
	}
	return e.graphs[n]
}

// AllCaps returns every caps object handed out by ParseCaps, in order.
func (e *Engine) AllCaps() []*Caps {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]*Caps(nil), e.caps...)
}

// Graph is a fake engine.Graph.
type Graph struct {
	name string
	eng  *Engine

	mu sync.Mutex
	// FailStates lists state steps the graph rejects synchronously.
	FailStates map[engine.State]bool
	// Attached holds element names in attachment order.
	Attached []string
	// States holds every accepted state request in order.
	States []engine.State
}

// Name implements engine.Graph.
func (g *Graph) Name() string { return g.name }

// Add implements engine.Graph.
func (g *Graph) Add(el engine.Element) error {
	fe, ok := el.(*Element)
	if !ok {
		return fmt.Errorf("enginetest: foreign element %q", el.Name())
	}
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.eng.FailAttach[fe.name] {
		fe.released = true
		return fmt.Errorf("enginetest: cannot attach %q", fe.name)
	}
	g.Attached = append(g.Attached, fe.name)
	fe.attached = true
	return nil
}

// SetState implements engine.Graph.
func (g *Graph) SetState(s engine.State) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.FailStates[s] {
		return fmt.Errorf("enginetest: graph rejected state %s", s)
	}
	g.States = append(g.States, s)
	return nil
}

// Link records one pairwise link performed on an element.
type Link struct {
	To     string
	Filter string // empty for unfiltered links
}

// Element is a fake engine.Element.
type Element struct {
	eng     *Engine
	factory string
	name    string

	mu       sync.Mutex
	attached bool
	released bool
	padAdded []func(engine.Pad)
	pads     map[string]*Pad
	props    map[string]engine.Value
	signals  map[string]int

	// Links holds every successful pairwise link in order.
	Links []Link
	// States holds every accepted state request in order.
	States []engine.State
	// FailStates lists state steps this element rejects synchronously.
	FailStates map[engine.State]bool
	// RejectProperties makes every SetProperty fail.
	RejectProperties bool
	// RejectSignals makes every Connect fail.
	RejectSignals bool
}

// Name implements engine.Element.
func (el *Element) Name() string { return el.name }

// Factory returns the plugin type the element was created from.
func (el *Element) Factory() string { return el.factory }

// Attached reports whether the element was added to a graph.
func (el *Element) Attached() bool {
	el.mu.Lock()
	defer el.mu.Unlock()
	return el.attached
}

// Released reports whether the engine released the element after a failed
// attachment.
func (el *Element) Released() bool {
	el.mu.Lock()
	defer el.mu.Unlock()
	return el.released
}

// Link implements engine.Element.
func (el *Element) Link(dst engine.Element) error {
	return el.link(dst, "")
}

// LinkFiltered implements engine.Element.
func (el *Element) LinkFiltered(dst engine.Element, filter engine.Caps) error {
	return el.link(dst, filter.String())
}

func (el *Element) link(dst engine.Element, filter string) error {
	el.mu.Lock()
	defer el.mu.Unlock()
	if el.eng.FailLinks[el.name+"->"+dst.Name()] {
		return fmt.Errorf("enginetest: cannot link %q to %q", el.name, dst.Name())
	}
	el.Links = append(el.Links, Link{To: dst.Name(), Filter: filter})
	return nil
}

// SetProperty implements engine.Element.
func (el *Element) SetProperty(key string, value engine.Value) error {
	el.mu.Lock()
	defer el.mu.Unlock()
	if el.RejectProperties {
		return fmt.Errorf("enginetest: %q rejected property %q", el.name, key)
	}
	el.props[key] = value
	return nil
}

// Property returns the last value set for key, if any.
func (el *Element) Property(key string) (engine.Value, bool) {
	el.mu.Lock()
	defer el.mu.Unlock()
	v, ok := el.props[key]
	return v, ok
}

// Connect implements engine.Element.
func (el *Element) Connect(signal string, handler any) error {
	el.mu.Lock()
	defer el.mu.Unlock()
	if el.RejectSignals {
		return fmt.Errorf("enginetest: %q rejected signal %q", el.name, signal)
	}
	el.signals[signal]++
	return nil
}

// SignalCount returns how many handlers were connected to signal.
func (el *Element) SignalCount(signal string) int {
	el.mu.Lock()
	defer el.mu.Unlock()
	return el.signals[signal]
}

// OnPadAdded implements engine.Element.
func (el *Element) OnPadAdded(fn func(engine.Pad)) {
	el.mu.Lock()
	defer el.mu.Unlock()
	el.padAdded = append(el.padAdded, fn)
}

// StaticPad implements engine.Element. Fake elements have every static pad
// asked of them, created lazily and unlinked.
func (el *Element) StaticPad(name string) (engine.Pad, bool) {
	el.mu.Lock()
	defer el.mu.Unlock()
	p, ok := el.pads[name]
	if !ok {
		p = &Pad{name: name}
		el.pads[name] = p
	}
	return p, true
}

// SetState implements engine.Element.
func (el *Element) SetState(s engine.State) error {
	el.mu.Lock()
	defer el.mu.Unlock()
	if el.FailStates[s] {
		return fmt.Errorf("enginetest: %q rejected state %s", el.name, s)
	}
	el.States = append(el.States, s)
	return nil
}

// EmitPadAdded simulates the element exposing a new output port at runtime,
// invoking every registered callback synchronously on the calling goroutine
// (mirroring the dispatch loop's serialization). The created pad is returned
// so tests can assert on its link state.
func (el *Element) EmitPadAdded(name string) *Pad {
	el.mu.Lock()
	p, ok := el.pads[name]
	if !ok {
		p = &Pad{name: name}
		el.pads[name] = p
	}
	callbacks := make([]func(engine.Pad), len(el.padAdded))
	copy(callbacks, el.padAdded)
	el.mu.Unlock()

	for _, fn := range callbacks {
		fn(p)
	}
	return p
}

// Pad is a fake engine.Pad.
type Pad struct {
	mu     sync.Mutex
	name   string
	linked bool
	peer   *Pad
}

// Name implements engine.Pad.
func (p *Pad) Name() string { return p.name }

// IsLinked implements engine.Pad.
func (p *Pad) IsLinked() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.linked
}

// Link implements engine.Pad.
func (p *Pad) Link(sink engine.Pad) error {
	sp, ok := sink.(*Pad)
	if !ok {
		return fmt.Errorf("enginetest: foreign pad %q", sink.Name())
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	sp.mu.Lock()
	defer sp.mu.Unlock()
	if p.linked || sp.linked {
		return fmt.Errorf("enginetest: pad %q or %q already linked", p.name, sp.name)
	}
	p.linked = true
	sp.linked = true
	p.peer = sp
	sp.peer = p
	return nil
}

// Peer returns the pad this one is linked to, or nil.
func (p *Pad) Peer() *Pad {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.peer
}

// Caps is a fake engine.Caps counting releases.
type Caps struct {
	mu     sync.Mutex
	spec   string
	unrefs int
}

// String implements engine.Caps.
func (c *Caps) String() string { return c.spec }

// Unref implements engine.Caps.
func (c *Caps) Unref() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.unrefs++
}

// Unrefs returns how many times the caps were released.
func (c *Caps) Unrefs() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.unrefs
}

// Loop is a fake engine.Loop. Run blocks until Quit; Quit is idempotent.
type Loop struct {
	quit chan struct{}
	once sync.Once
}

// Run implements engine.Loop.
func (l *Loop) Run() { <-l.quit }

// Quit implements engine.Loop.
func (l *Loop) Quit() { l.once.Do(func() { close(l.quit) }) }
