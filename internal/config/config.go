// Package config loads the player profile: transport, latency bound, output
// format, and sink selection. The stream location always comes from the
// command line, never from the file.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	rtspclient "github.com/JaredHane98/RTSP-CLIENT"
)

// Config is the YAML player profile.
type Config struct {
	// Transport selects the RTSP lower transport: "udp", "tcp", or "auto".
	Transport string `yaml:"transport"`
	// LatencyMS bounds the jitter buffer in milliseconds.
	LatencyMS int `yaml:"latency_ms"`
	// Format is the raw video format forced before the sink (e.g. I420).
	Format string `yaml:"format"`
	// Sink is the display sink plugin type; "fakesink" runs headless.
	Sink string `yaml:"sink"`
}

// Default returns the profile matching the player's built-in behavior:
// UDP transport, minimal latency, I420 output, automatic display sink.
func Default() Config {
	return Config{
		Transport: "udp",
		LatencyMS: 0,
		Format:    "I420",
		Sink:      "autovideosink",
	}
}

// Load reads and parses a YAML profile, applying defaults for absent keys.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("config: failed to read profile: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("config: failed to parse profile: %w", err)
	}
	if err := Validate(cfg); err != nil {
		return cfg, fmt.Errorf("config: invalid profile: %w", err)
	}
	return cfg, nil
}

// Validate checks profile invariants.
func Validate(cfg Config) error {
	switch cfg.Transport {
	case "udp", "tcp", "auto":
	default:
		return fmt.Errorf("config: unknown transport %q (want udp, tcp, or auto)", cfg.Transport)
	}
	if cfg.LatencyMS < 0 {
		return fmt.Errorf("config: negative latency %d", cfg.LatencyMS)
	}
	if cfg.Format == "" {
		return fmt.Errorf("config: format is required")
	}
	if cfg.Sink == "" {
		return fmt.Errorf("config: sink is required")
	}
	return nil
}

// Playback maps the profile onto a playback graph configuration for the
// given stream location.
func (c Config) Playback(location string) rtspclient.PlaybackConfig {
	protocols := rtspclient.TransportUDP
	switch c.Transport {
	case "tcp":
		protocols = rtspclient.TransportTCP
	case "auto":
		protocols = rtspclient.TransportAuto
	}
	return rtspclient.PlaybackConfig{
		Location:  location,
		Protocols: protocols,
		LatencyMS: c.LatencyMS,
		Format:    c.Format,
		Sink:      c.Sink,
	}
}
