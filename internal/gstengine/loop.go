package gstengine

import (
	"sync"

	"github.com/tinyzimmer/go-glib/glib"

	"github.com/JaredHane98/RTSP-CLIENT/engine"
)

// loop adapts the GLib main loop: the single dispatch thread that services
// GStreamer's asynchronous callbacks.
//
// g_main_loop_quit on a loop that has not entered g_main_loop_run yet is
// dropped, so the adapter tracks quits itself to honor the sticky-Quit
// contract: Run returns immediately when Quit already happened.
type loop struct {
	loop *glib.MainLoop

	mu      sync.Mutex
	quitted bool
}

// NewLoop implements engine.Engine.
func (e *Engine) NewLoop() engine.Loop {
	return &loop{loop: glib.NewMainLoop(glib.MainContextDefault(), false)}
}

func (l *loop) Run() {
	l.mu.Lock()
	if l.quitted {
		l.mu.Unlock()
		return
	}
	l.mu.Unlock()
	l.loop.Run()
}

func (l *loop) Quit() {
	l.mu.Lock()
	l.quitted = true
	l.mu.Unlock()
	l.loop.Quit()
}
