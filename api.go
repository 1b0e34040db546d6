package rtspclient

import "github.com/JaredHane98/RTSP-CLIENT/engine"

// Public re-exports keeping the engine package out of most call sites.

// State identifies a lifecycle state of the graph or a single stage.
type State = engine.State

const (
	StateNull    = engine.StateNull
	StateReady   = engine.StateReady
	StatePaused  = engine.StatePaused
	StatePlaying = engine.StatePlaying
)

// Value is a tagged property value.
type Value = engine.Value

// Pad is one input or output port of a stage's underlying element.
type Pad = engine.Pad

// Tagged value constructors.
var (
	Int    = engine.Int
	Int64  = engine.Int64
	Uint64 = engine.Uint64
	Float  = engine.Float
	Bool   = engine.Bool
	Str    = engine.String
)
