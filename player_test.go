package rtspclient_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rtspclient "github.com/JaredHane98/RTSP-CLIENT"
	"github.com/JaredHane98/RTSP-CLIENT/engine"
	"github.com/JaredHane98/RTSP-CLIENT/engine/enginetest"
)

func TestBuildPlayback(t *testing.T) {
	t.Run("assembles the full playback chain", func(t *testing.T) {
		eng := enginetest.New()
		p, err := rtspclient.BuildPlayback(eng, rtspclient.PlaybackConfig{
			Location: "rtsp://192.168.68.52:8554/test",
		})
		require.NoError(t, err)

		assert.Equal(t, []string{
			"src", "depay", "parse", "decode", "scale", "rate", "convert", "sink",
		}, eng.Graph(0).Attached)
		assert.Equal(t, "rtspsrc", eng.Element("src").Factory())
		assert.Equal(t, "autovideosink", eng.Element("sink").Factory())

		// Everything downstream of the depayloader linked immediately.
		for _, pair := range [][2]string{
			{"depay", "parse"},
			{"parse", "decode"},
			{"decode", "scale"},
			{"scale", "rate"},
			{"rate", "convert"},
			{"convert", "sink"},
		} {
			links := eng.Element(pair[0]).Links
			require.Len(t, links, 1, "expected %s to be linked", pair[0])
			assert.Equal(t, pair[1], links[0].To)
		}
		assert.Empty(t, eng.Element("src").Links, "src links only on port discovery")

		// The color converter's link carried the format constraint.
		assert.Equal(t, "video/x-raw, format=(string)I420", eng.Element("convert").Links[0].Filter)

		_, ok := p.Lookup("sink")
		assert.True(t, ok)
	})

	t.Run("configures the source from the playback config", func(t *testing.T) {
		eng := enginetest.New()
		_, err := rtspclient.BuildPlayback(eng, rtspclient.PlaybackConfig{
			Location:  "rtsp://camera/stream",
			Protocols: rtspclient.TransportTCP,
			LatencyMS: 200,
		})
		require.NoError(t, err)

		src := eng.Element("src")
		loc, _ := src.Property("location")
		assert.Equal(t, "rtsp://camera/stream", loc.Interface())
		proto, _ := src.Property("protocols")
		assert.Equal(t, rtspclient.TransportTCP, proto.Interface())
		latency, _ := src.Property("latency")
		assert.Equal(t, 200, latency.Interface())
	})

	t.Run("defers the source link until port discovery", func(t *testing.T) {
		eng := enginetest.New()
		_, err := rtspclient.BuildPlayback(eng, rtspclient.PlaybackConfig{
			Location: "rtsp://camera/stream",
		})
		require.NoError(t, err)

		depaySink, _ := eng.Element("depay").StaticPad("sink")
		require.False(t, depaySink.IsLinked())

		pad := eng.Element("src").EmitPadAdded("recv_rtp_src_0")
		assert.True(t, pad.IsLinked())
		assert.True(t, depaySink.IsLinked())

		// A second stream port is ignored.
		extra := eng.Element("src").EmitPadAdded("recv_rtp_src_1")
		assert.False(t, extra.IsLinked())
	})

	t.Run("missing location aborts before any graph exists", func(t *testing.T) {
		eng := enginetest.New()
		_, err := rtspclient.BuildPlayback(eng, rtspclient.PlaybackConfig{})
		require.Error(t, err)
		assert.Nil(t, eng.Graph(0))
	})

	t.Run("construction halts on the first link failure", func(t *testing.T) {
		eng := enginetest.New()
		eng.FailLinks["decode->scale"] = true

		_, err := rtspclient.BuildPlayback(eng, rtspclient.PlaybackConfig{
			Location: "rtsp://camera/stream",
		})
		require.Error(t, err)
		// Earlier links stand, later ones were never attempted.
		assert.Len(t, eng.Element("depay").Links, 1)
		assert.Empty(t, eng.Element("scale").Links)
	})

	t.Run("headless profile swaps the sink", func(t *testing.T) {
		eng := enginetest.New()
		_, err := rtspclient.BuildPlayback(eng, rtspclient.PlaybackConfig{
			Location: "rtsp://camera/stream",
			Sink:     "fakesink",
		})
		require.NoError(t, err)
		assert.Equal(t, "fakesink", eng.Element("sink").Factory())
	})
}

func TestPlay(t *testing.T) {
	t.Run("drives the graph to PLAYING and back to NULL", func(t *testing.T) {
		eng := enginetest.New()
		p, err := rtspclient.BuildPlayback(eng, rtspclient.PlaybackConfig{
			Location: "rtsp://camera/stream",
			Sink:     "fakesink",
		})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel() // playback stops as soon as the loop starts

		done := make(chan error, 1)
		go func() { done <- rtspclient.Play(ctx, p) }()

		select {
		case err := <-done:
			require.NoError(t, err)
		case <-time.After(2 * time.Second):
			t.Fatal("Play did not return after context cancellation")
		}

		assert.Equal(t, []engine.State{
			rtspclient.StateReady,
			rtspclient.StatePaused,
			rtspclient.StatePlaying,
			rtspclient.StatePaused,
			rtspclient.StateReady,
			rtspclient.StateNull,
		}, eng.Graph(0).States)
	})

	t.Run("a rejected start is surfaced once", func(t *testing.T) {
		eng := enginetest.New()
		p, err := rtspclient.BuildPlayback(eng, rtspclient.PlaybackConfig{
			Location: "rtsp://camera/stream",
			Sink:     "fakesink",
		})
		require.NoError(t, err)
		eng.Graph(0).FailStates[rtspclient.StateReady] = true

		err = rtspclient.Play(context.Background(), p)
		var scErr *rtspclient.StateChangeError
		require.ErrorAs(t, err, &scErr)
		assert.Equal(t, rtspclient.StateReady, scErr.Step)
	})
}
