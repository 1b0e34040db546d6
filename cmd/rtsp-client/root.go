package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	rtspclient "github.com/JaredHane98/RTSP-CLIENT"
	"github.com/JaredHane98/RTSP-CLIENT/internal/config"
	"github.com/JaredHane98/RTSP-CLIENT/internal/gstengine"
)

var (
	flagConfig string
	flagDebug  bool
)

var rootCmd = &cobra.Command{
	Use:   "rtsp-client <stream-uri>",
	Short: "Play an RTSP video stream",
	Long: `rtsp-client builds a GStreamer playback graph for the given RTSP
stream and displays it, e.g.:

  rtsp-client rtsp://192.168.68.52:8554/test

Transport, latency, output format, and sink selection come from an
optional YAML profile (see --config).`,
	Args: cobra.ExactArgs(1),
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVarP(&flagConfig, "config", "c", "", "path to YAML player profile")
	rootCmd.Flags().BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	level := slog.LevelInfo
	if flagDebug {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	})))

	cfg := config.Default()
	if flagConfig != "" {
		var err error
		cfg, err = config.Load(flagConfig)
		if err != nil {
			slog.Error("rtsp-client: failed to load profile", "path", flagConfig, "error", err)
			return err
		}
	}

	eng := gstengine.New()
	p, err := rtspclient.BuildPlayback(eng, cfg.Playback(args[0]))
	if err != nil {
		slog.Error("rtsp-client: failed to build playback graph", "error", err)
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return rtspclient.Play(ctx, p)
	})
	g.Go(func() error {
		heartbeat(ctx, 30*time.Second)
		return nil
	})
	return g.Wait()
}

// heartbeat periodically logs that playback is still being serviced, so
// long-running headless sessions leave a trace.
func heartbeat(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			slog.Info("rtsp-client: playback alive",
				"uptime", time.Since(start).Round(time.Second).String(),
			)
		}
	}
}
