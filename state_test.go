package rtspclient_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rtspclient "github.com/JaredHane98/RTSP-CLIENT"
	"github.com/JaredHane98/RTSP-CLIENT/engine"
)

func TestSetState(t *testing.T) {
	t.Run("skips expand into the minimal adjacent path", func(t *testing.T) {
		p, eng := newPipeline(t)
		addChain(t, p, "a")

		require.NoError(t, p.SetState(rtspclient.StatePlaying))
		assert.Equal(t, []engine.State{
			rtspclient.StateReady,
			rtspclient.StatePaused,
			rtspclient.StatePlaying,
		}, eng.Graph(0).States)
		assert.Equal(t, rtspclient.StatePlaying, p.State())
	})

	t.Run("shutdown walks back down to NULL", func(t *testing.T) {
		p, eng := newPipeline(t)
		require.NoError(t, p.SetState(rtspclient.StatePlaying))
		require.NoError(t, p.SetState(rtspclient.StateNull))

		assert.Equal(t, []engine.State{
			rtspclient.StateReady,
			rtspclient.StatePaused,
			rtspclient.StatePlaying,
			rtspclient.StatePaused,
			rtspclient.StateReady,
			rtspclient.StateNull,
		}, eng.Graph(0).States)
	})

	t.Run("requesting the current state is a no-op", func(t *testing.T) {
		p, eng := newPipeline(t)
		require.NoError(t, p.SetState(rtspclient.StateNull))
		assert.Empty(t, eng.Graph(0).States)
	})

	t.Run("rejected step fails once and names the step", func(t *testing.T) {
		p, eng := newPipeline(t)
		eng.Graph(0).FailStates[rtspclient.StatePaused] = true

		err := p.SetState(rtspclient.StatePlaying)
		var scErr *rtspclient.StateChangeError
		require.True(t, errors.As(err, &scErr))
		assert.Equal(t, rtspclient.StatePlaying, scErr.Target)
		assert.Equal(t, rtspclient.StatePaused, scErr.Step)
		assert.Empty(t, scErr.Stage)

		// READY was accepted and stays requested; no retry happened.
		assert.Equal(t, []engine.State{rtspclient.StateReady}, eng.Graph(0).States)
		assert.Equal(t, rtspclient.StateReady, p.State())
	})

	t.Run("playing an empty graph is deterministic", func(t *testing.T) {
		for i := 0; i < 3; i++ {
			p, eng := newPipeline(t)
			require.NoError(t, p.SetState(rtspclient.StatePlaying))
			assert.Equal(t, []engine.State{
				rtspclient.StateReady,
				rtspclient.StatePaused,
				rtspclient.StatePlaying,
			}, eng.Graph(0).States)
		}
	})
}

func TestSetStageState(t *testing.T) {
	t.Run("drives one stage independently of the graph", func(t *testing.T) {
		p, eng := newPipeline(t)
		addChain(t, p, "a", "b")

		require.NoError(t, p.SetStageState("a", rtspclient.StatePaused))
		assert.Equal(t, []engine.State{
			rtspclient.StateReady,
			rtspclient.StatePaused,
		}, eng.Element("a").States)
		assert.Empty(t, eng.Element("b").States)
		assert.Empty(t, eng.Graph(0).States)
	})

	t.Run("unknown stage fails", func(t *testing.T) {
		p, _ := newPipeline(t)
		err := p.SetStageState("ghost", rtspclient.StatePlaying)
		assert.ErrorIs(t, err, rtspclient.ErrStageNotFound)
	})

	t.Run("stage rejection carries the stage name", func(t *testing.T) {
		p, eng := newPipeline(t)
		addChain(t, p, "a")
		eng.Element("a").FailStates[rtspclient.StateReady] = true

		err := p.SetStageState("a", rtspclient.StatePlaying)
		var scErr *rtspclient.StateChangeError
		require.True(t, errors.As(err, &scErr))
		assert.Equal(t, "a", scErr.Stage)
		assert.Equal(t, rtspclient.StateReady, scErr.Step)
	})
}
