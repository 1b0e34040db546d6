package rtspclient

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/JaredHane98/RTSP-CLIENT/engine"
)

// rtspsrc "protocols" lower-transport masks.
const (
	TransportUDP  = 0x1
	TransportTCP  = 0x4
	TransportAuto = 0x7
)

// PlaybackConfig describes the RTSP playback graph. Only Location is
// required; zero values select UDP transport, minimal latency, I420 output,
// and the platform's automatic display sink.
type PlaybackConfig struct {
	// Location is the RTSP stream URI.
	Location string
	// Protocols is the rtspsrc lower-transport mask (TransportUDP,
	// TransportTCP, or TransportAuto).
	Protocols int
	// LatencyMS bounds the jitter buffer, in milliseconds.
	LatencyMS int
	// Format is the raw video format forced between color conversion and
	// the sink.
	Format string
	// Sink is the display sink's plugin type; "fakesink" gives a headless
	// run.
	Sink string
}

func (c PlaybackConfig) withDefaults() PlaybackConfig {
	if c.Protocols == 0 {
		c.Protocols = TransportUDP
	}
	if c.Format == "" {
		c.Format = "I420"
	}
	if c.Sink == "" {
		c.Sink = "autovideosink"
	}
	return c
}

// BuildPlayback assembles the RTSP playback graph:
//
//	rtspsrc → rtph264depay → h264parse → avdec_h264 →
//	videoscale → videorate → videoconvert → sink
//
// videoconvert carries a capability filter forcing the configured raw
// format towards the sink. rtspsrc's output ports only exist once stream
// negotiation completes, so the src → depay link is deferred to port
// discovery; everything downstream of depay links immediately.
//
// The graph is configured but not started. Callers start it with Play, or
// with SetState plus Run for finer control.
func BuildPlayback(eng engine.Engine, cfg PlaybackConfig) (*Pipeline, error) {
	if cfg.Location == "" {
		return nil, fmt.Errorf("rtspclient: stream location is required")
	}
	cfg = cfg.withDefaults()

	p, err := New(eng, "rtsp-playback")
	if err != nil {
		return nil, err
	}

	stages := []struct {
		factory string
		name    string
		caps    string
	}{
		{"rtspsrc", "src", ""},
		{"rtph264depay", "depay", ""},
		{"h264parse", "parse", ""},
		{"avdec_h264", "decode", ""},
		{"videoscale", "scale", ""},
		{"videorate", "rate", ""},
		{"videoconvert", "convert", "video/x-raw, format=(string)" + cfg.Format},
		{cfg.Sink, "sink", ""},
	}
	for _, s := range stages {
		if s.caps != "" {
			_, err = p.AddFiltered(s.factory, s.name, s.caps)
		} else {
			_, err = p.Add(s.factory, s.name)
		}
		if err != nil {
			return nil, err
		}
	}

	srcProps := []struct {
		key   string
		value engine.Value
	}{
		{"location", engine.String(cfg.Location)},
		{"protocols", engine.Int(cfg.Protocols)},
		{"latency", engine.Int(cfg.LatencyMS)},
	}
	for _, prop := range srcProps {
		if st := p.SetProperty("src", prop.key, prop.value); st != StatusAccepted {
			slog.Warn("rtspclient: source property not applied",
				"key", prop.key,
				"status", st.String(),
			)
		}
	}

	if err := p.LinkSequence("depay", "parse", "decode", "scale", "rate", "convert", "sink"); err != nil {
		return nil, err
	}
	if err := p.LinkOnPadAdded("src", "depay", "sink"); err != nil {
		return nil, err
	}

	return p, nil
}

// Play drives the graph to PLAYING and blocks in the dispatch loop until
// ctx is cancelled or Quit is called, then drives the graph back to NULL.
//
// Runtime engine failures after the graph starts (decode errors,
// disconnects) are not surfaced here; only the initial state request can
// fail.
func Play(ctx context.Context, p *Pipeline) error {
	runID := uuid.NewString()

	slog.Info("rtspclient: starting playback",
		"graph", p.Name(),
		"run_id", runID,
	)

	if err := p.SetState(engine.StatePlaying); err != nil {
		return err
	}

	p.Run(ctx)

	if err := p.SetState(engine.StateNull); err != nil {
		slog.Warn("rtspclient: failed to reach NULL on shutdown",
			"run_id", runID,
			"error", err,
		)
	}

	slog.Info("rtspclient: playback stopped",
		"graph", p.Name(),
		"run_id", runID,
	)
	return nil
}
