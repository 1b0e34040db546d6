package rtspclient

import (
	"fmt"
	"log/slog"
)

// PortDiscovered describes an output port a stage exposed at runtime, after
// inspecting live data (e.g. stream demultiplexing).
type PortDiscovered struct {
	// Source is the symbolic name of the stage that grew the port.
	Source string
	// Port is the engine-assigned name of the new port.
	Port string
}

// LinkPair links the upstream stage's output to the downstream stage's
// input.
//
// If the upstream stage declared a capability filter, the link is filtered:
// it succeeds only if the filter is satisfiable between the two ports, and
// the filter is consumed (released) regardless of outcome, so a second
// LinkPair on the same stage falls back to default negotiation. Without a
// filter the link uses default negotiation directly.
//
// Fails with ErrStageNotFound if either side is not live, or a LinkError
// (carrying the filter's description when present) if negotiation fails.
func (p *Pipeline) LinkPair(upstream, downstream string) error {
	up, ok := p.stages[upstream]
	if !ok {
		return fmt.Errorf("%w: %q", ErrStageNotFound, upstream)
	}
	down, ok := p.stages[downstream]
	if !ok {
		return fmt.Errorf("%w: %q", ErrStageNotFound, downstream)
	}

	if filter, desc, ok := up.takeFilter(); ok {
		err := up.el.LinkFiltered(down.el, filter)
		filter.Unref()
		if err != nil {
			return &LinkError{Upstream: upstream, Downstream: downstream, Filter: desc, Err: err}
		}
		slog.Debug("rtspclient: stages linked",
			"upstream", upstream,
			"downstream", downstream,
			"caps", desc,
		)
		return nil
	}

	if err := up.el.Link(down.el); err != nil {
		return &LinkError{Upstream: upstream, Downstream: downstream, Err: err}
	}
	slog.Debug("rtspclient: stages linked",
		"upstream", upstream,
		"downstream", downstream,
	)
	return nil
}

// LinkSequence links consecutive pairs of the named stages in declared
// order, short-circuiting on the first failure and returning that pairwise
// error. Earlier links stay in place; there is no rollback. An empty or
// single-element sequence succeeds trivially.
func (p *Pipeline) LinkSequence(names ...string) error {
	for i := 0; i+1 < len(names); i++ {
		if err := p.LinkPair(names[i], names[i+1]); err != nil {
			return err
		}
	}
	return nil
}

// LinkOnPadAdded defers the link from source to target until source exposes
// a new output port at runtime. When a port appears, the callback links it
// to target's static input port named targetPort. If that port is already
// linked the event is a benign no-op (a demuxer may emit several ports while
// only one matching stream is wanted).
//
// The callback executes on the dispatch loop's thread, serialized with
// every other callback of the same loop. Link failures inside the callback
// cannot propagate to the caller and are logged instead.
func (p *Pipeline) LinkOnPadAdded(source, target, targetPort string) error {
	src, ok := p.stages[source]
	if !ok {
		return fmt.Errorf("%w: %q", ErrStageNotFound, source)
	}
	dst, ok := p.stages[target]
	if !ok {
		return fmt.Errorf("%w: %q", ErrStageNotFound, target)
	}

	src.el.OnPadAdded(func(pad Pad) {
		sink, ok := dst.el.StaticPad(targetPort)
		if !ok {
			slog.Error("rtspclient: target has no such port",
				"target", target,
				"port", targetPort,
			)
			return
		}
		if sink.IsLinked() {
			slog.Debug("rtspclient: target port already linked, ignoring new port",
				"source", source,
				"port", pad.Name(),
				"target", target,
			)
			return
		}
		if err := pad.Link(sink); err != nil {
			slog.Error("rtspclient: deferred link failed",
				"source", source,
				"port", pad.Name(),
				"target", target,
				"error", err,
			)
			return
		}
		slog.Info("rtspclient: deferred link completed",
			"source", source,
			"port", pad.Name(),
			"target", target,
		)
	})
	return nil
}

// OnPortDiscovered subscribes fn to typed port-discovery events from the
// named stage. fn runs on the dispatch loop's thread.
func (p *Pipeline) OnPortDiscovered(source string, fn func(PortDiscovered)) error {
	st, ok := p.stages[source]
	if !ok {
		return fmt.Errorf("%w: %q", ErrStageNotFound, source)
	}
	st.el.OnPadAdded(func(pad Pad) {
		fn(PortDiscovered{Source: source, Port: pad.Name()})
	})
	return nil
}
