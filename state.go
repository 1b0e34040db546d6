package rtspclient

import (
	"fmt"
	"log/slog"

	"github.com/JaredHane98/RTSP-CLIENT/engine"
)

// statePath returns the adjacent transitions from cur to target, in order.
// An empty path means cur == target.
func statePath(cur, target engine.State) []engine.State {
	var steps []engine.State
	switch {
	case target > cur:
		for s := cur + 1; s <= target; s++ {
			steps = append(steps, s)
		}
	case target < cur:
		for s := cur - 1; s >= target; s-- {
			steps = append(steps, s)
		}
	}
	return steps
}

// SetState requests a state transition for the whole graph, expanding skips
// into the minimal adjacent path (NULL → READY → PAUSED → PLAYING and back).
//
// A nil return means every step request was accepted; transitions may still
// complete asynchronously inside the engine. A rejected step fails once with
// a StateChangeError and is not retried; steps already accepted stay
// requested.
func (p *Pipeline) SetState(target engine.State) error {
	for _, step := range statePath(p.state, target) {
		if err := p.graph.SetState(step); err != nil {
			return &StateChangeError{Target: target, Step: step, Err: err}
		}
		p.state = step
		slog.Debug("rtspclient: graph state requested",
			"graph", p.name,
			"state", step.String(),
		)
	}
	return nil
}

// State returns the last accepted graph state request.
func (p *Pipeline) State() engine.State { return p.state }

// SetStageState requests a state transition for a single stage, with the
// same skip expansion and failure contract as SetState.
func (p *Pipeline) SetStageState(name string, target engine.State) error {
	st, ok := p.stages[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrStageNotFound, name)
	}
	for _, step := range statePath(p.stageStates[name], target) {
		if err := st.el.SetState(step); err != nil {
			return &StateChangeError{Stage: name, Target: target, Step: step, Err: err}
		}
		p.stageStates[name] = step
		slog.Debug("rtspclient: stage state requested",
			"stage", name,
			"state", step.String(),
		)
	}
	return nil
}
