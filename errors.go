package rtspclient

import (
	"errors"
	"fmt"

	"github.com/JaredHane98/RTSP-CLIENT/engine"
)

// Setup errors. All structural failures (creation, linking, state requests)
// surface synchronously; the caller decides whether to abort construction.
var (
	// ErrDuplicateName means a stage with that name already exists in the
	// graph. Duplicates are rejected outright so the earlier stage's native
	// resource is never stranded.
	ErrDuplicateName = errors.New("rtspclient: stage name already in use")

	// ErrUnknownPlugin means the engine could not instantiate the plugin
	// type (unknown or unavailable).
	ErrUnknownPlugin = errors.New("rtspclient: plugin unavailable")

	// ErrAttach means the created element could not be attached to the
	// graph. The element is released before the error returns.
	ErrAttach = errors.New("rtspclient: failed to attach stage to graph")

	// ErrBadCapsSpec means a capability filter description did not parse.
	ErrBadCapsSpec = errors.New("rtspclient: malformed capability filter")

	// ErrStageNotFound means a name operation referenced no live stage.
	ErrStageNotFound = errors.New("rtspclient: no stage with that name")
)

// LinkError reports a failed pairwise link. Filter carries the offending
// capability filter's description when the link was filtered.
type LinkError struct {
	Upstream   string
	Downstream string
	Filter     string
	Err        error
}

func (e *LinkError) Error() string {
	if e.Filter != "" {
		return fmt.Sprintf("rtspclient: failed to link %q to %q with caps %q: %v",
			e.Upstream, e.Downstream, e.Filter, e.Err)
	}
	return fmt.Sprintf("rtspclient: failed to link %q to %q: %v",
		e.Upstream, e.Downstream, e.Err)
}

func (e *LinkError) Unwrap() error { return e.Err }

// StateChangeError reports a state request the engine rejected
// synchronously. Step names the adjacent transition that failed on the way
// to Target. Stage is empty when the request was for the whole graph. The
// failure is reported once; there is no retry.
type StateChangeError struct {
	Stage  string
	Target engine.State
	Step   engine.State
	Err    error
}

func (e *StateChangeError) Error() string {
	scope := "graph"
	if e.Stage != "" {
		scope = fmt.Sprintf("stage %q", e.Stage)
	}
	return fmt.Sprintf("rtspclient: %s rejected %s (towards %s): %v",
		scope, e.Step, e.Target, e.Err)
}

func (e *StateChangeError) Unwrap() error { return e.Err }
