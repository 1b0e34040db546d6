package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	rtspclient "github.com/JaredHane98/RTSP-CLIENT"
)

func writeProfile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "player.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("absent keys fall back to defaults", func(t *testing.T) {
		cfg, err := Load(writeProfile(t, "transport: tcp\n"))
		require.NoError(t, err)
		assert.Equal(t, "tcp", cfg.Transport)
		assert.Equal(t, 0, cfg.LatencyMS)
		assert.Equal(t, "I420", cfg.Format)
		assert.Equal(t, "autovideosink", cfg.Sink)
	})

	t.Run("full profile", func(t *testing.T) {
		cfg, err := Load(writeProfile(t, `
transport: auto
latency_ms: 200
format: NV12
sink: fakesink
`))
		require.NoError(t, err)
		assert.Equal(t, Config{
			Transport: "auto",
			LatencyMS: 200,
			Format:    "NV12",
			Sink:      "fakesink",
		}, cfg)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml fails", func(t *testing.T) {
		_, err := Load(writeProfile(t, "transport: [unclosed\n"))
		assert.Error(t, err)
	})
}

func TestValidate(t *testing.T) {
	t.Run("default profile is valid", func(t *testing.T) {
		assert.NoError(t, Validate(Default()))
	})

	t.Run("unknown transport is rejected", func(t *testing.T) {
		cfg := Default()
		cfg.Transport = "carrier-pigeon"
		assert.Error(t, Validate(cfg))
	})

	t.Run("negative latency is rejected", func(t *testing.T) {
		cfg := Default()
		cfg.LatencyMS = -1
		assert.Error(t, Validate(cfg))
	})

	t.Run("empty format and sink are rejected", func(t *testing.T) {
		cfg := Default()
		cfg.Format = ""
		assert.Error(t, Validate(cfg))

		cfg = Default()
		cfg.Sink = ""
		assert.Error(t, Validate(cfg))
	})
}

func TestPlaybackMapping(t *testing.T) {
	t.Run("transport names map to protocol masks", func(t *testing.T) {
		for name, mask := range map[string]int{
			"udp":  rtspclient.TransportUDP,
			"tcp":  rtspclient.TransportTCP,
			"auto": rtspclient.TransportAuto,
		} {
			cfg := Default()
			cfg.Transport = name
			pb := cfg.Playback("rtsp://camera/stream")
			assert.Equal(t, mask, pb.Protocols, "transport %q", name)
		}
	})

	t.Run("location always comes from the caller", func(t *testing.T) {
		pb := Default().Playback("rtsp://192.168.68.52:8554/test")
		assert.Equal(t, "rtsp://192.168.68.52:8554/test", pb.Location)
		assert.Equal(t, "I420", pb.Format)
		assert.Equal(t, "autovideosink", pb.Sink)
	})
}
