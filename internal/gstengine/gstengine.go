// Package gstengine implements the engine contracts on GStreamer via the
// go-gst bindings. It is the only package that touches native handles;
// everything above it speaks the engine interfaces.
package gstengine

import (
	"fmt"
	"log/slog"

	"github.com/tinyzimmer/go-gst/gst"

	"github.com/JaredHane98/RTSP-CLIENT/engine"
)

// Engine adapts GStreamer to engine.Engine.
type Engine struct{}

// New initializes GStreamer (safe to call multiple times) and returns the
// engine.
func New() *Engine {
	gst.Init(nil)
	return &Engine{}
}

// NewGraph implements engine.Engine.
func (e *Engine) NewGraph(name string) (engine.Graph, error) {
	p, err := gst.NewPipeline(name)
	if err != nil {
		return nil, fmt.Errorf("gstengine: failed to create pipeline: %w", err)
	}
	return &graph{pipeline: p}, nil
}

// NewElement implements engine.Engine.
func (e *Engine) NewElement(factory, name string) (engine.Element, error) {
	el, err := gst.NewElement(factory)
	if err != nil {
		return nil, fmt.Errorf("gstengine: failed to create %q: %w", factory, err)
	}
	// GstObject exposes its name as a settable property while unparented.
	if err := el.SetProperty("name", name); err != nil {
		return nil, fmt.Errorf("gstengine: failed to name %q element: %w", factory, err)
	}
	return &element{el: el}, nil
}

// ParseCaps implements engine.Engine.
func (e *Engine) ParseCaps(spec string) (engine.Caps, error) {
	c := gst.NewCapsFromString(spec)
	if c == nil {
		return nil, fmt.Errorf("gstengine: cannot parse caps %q", spec)
	}
	return &caps{caps: c}, nil
}

type graph struct {
	pipeline *gst.Pipeline
}

func (g *graph) Name() string { return g.pipeline.GetName() }

func (g *graph) Add(el engine.Element) error {
	ge, ok := el.(*element)
	if !ok {
		return fmt.Errorf("gstengine: foreign element %q", el.Name())
	}
	return g.pipeline.Add(ge.el)
}

func (g *graph) SetState(s engine.State) error {
	return g.pipeline.SetState(toGstState(s))
}

type element struct {
	el *gst.Element
}

func (e *element) Name() string { return e.el.GetName() }

func (e *element) Link(dst engine.Element) error {
	d, ok := dst.(*element)
	if !ok {
		return fmt.Errorf("gstengine: foreign element %q", dst.Name())
	}
	return e.el.Link(d.el)
}

func (e *element) LinkFiltered(dst engine.Element, filter engine.Caps) error {
	d, ok := dst.(*element)
	if !ok {
		return fmt.Errorf("gstengine: foreign element %q", dst.Name())
	}
	c, ok := filter.(*caps)
	if !ok {
		return fmt.Errorf("gstengine: foreign caps %q", filter.String())
	}
	return e.el.LinkFiltered(d.el, c.caps)
}

func (e *element) SetProperty(key string, value engine.Value) error {
	v := value.Interface()
	// Unwrap caps values to the native type the binding expects.
	if c, ok := v.(*caps); ok {
		v = c.caps
	}
	return e.el.SetProperty(key, v)
}

func (e *element) Connect(signal string, handler any) error {
	_, err := e.el.Connect(signal, handler)
	return err
}

func (e *element) OnPadAdded(fn func(engine.Pad)) {
	_, err := e.el.Connect("pad-added", func(self *gst.Element, p *gst.Pad) {
		fn(&pad{pad: p})
	})
	if err != nil {
		slog.Error("gstengine: failed to connect pad-added",
			"element", e.el.GetName(),
			"error", err,
		)
	}
}

func (e *element) StaticPad(name string) (engine.Pad, bool) {
	p := e.el.GetStaticPad(name)
	if p == nil {
		return nil, false
	}
	return &pad{pad: p}, true
}

func (e *element) SetState(s engine.State) error {
	return e.el.SetState(toGstState(s))
}

type pad struct {
	pad *gst.Pad
}

func (p *pad) Name() string { return p.pad.GetName() }

func (p *pad) IsLinked() bool { return p.pad.IsLinked() }

func (p *pad) Link(sink engine.Pad) error {
	sp, ok := sink.(*pad)
	if !ok {
		return fmt.Errorf("gstengine: foreign pad %q", sink.Name())
	}
	if ret := p.pad.Link(sp.pad); ret != gst.PadLinkOK {
		return fmt.Errorf("gstengine: pad link returned %s", ret)
	}
	return nil
}

type caps struct {
	caps *gst.Caps
}

func (c *caps) String() string { return c.caps.String() }

func (c *caps) Unref() { c.caps.Unref() }

func toGstState(s engine.State) gst.State {
	switch s {
	case engine.StateReady:
		return gst.StateReady
	case engine.StatePaused:
		return gst.StatePaused
	case engine.StatePlaying:
		return gst.StatePlaying
	default:
		return gst.StateNull
	}
}
