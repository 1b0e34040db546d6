// Package rtspclient builds and drives named element graphs on top of an
// external media-processing engine, and ships a playback preset that takes
// an RTSP stream from network ingestion through decoding and color
// conversion to display.
//
// The core is the Pipeline type: a registry creating stages by plugin name,
// a linker connecting them pairwise or in declared sequence (with deferred
// linking for stages whose output format is unknown until runtime), and a
// controller for properties, signals, and lifecycle state.
//
// # Quick Start
//
//	eng := gstengine.New()
//	p, err := rtspclient.BuildPlayback(eng, rtspclient.PlaybackConfig{
//	    Location: "rtsp://192.168.68.52:8554/test",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := rtspclient.Play(ctx, p); err != nil {
//	    log.Fatal(err)
//	}
//
// Structural setup (creation, linking) happens on the constructing
// goroutine before the graph starts. Once Play blocks in the dispatch loop,
// only property, signal, and state operations may be issued concurrently;
// adding or linking stages is not supported while the graph runs.
package rtspclient
