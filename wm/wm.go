// Package wm's WM type ties the gateway, the per-workspace BSP trees, the
// rule matcher and the input manager into the single-threaded reactor
// the reactor. Generalized from funkycode-marwind's wm.WM, which
// owns a fixed [10]*workspace array and a single output; here the
// workspace/monitor sets are open-ended and monitor assignment is explicit.
package wm

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/mywm/mywm/internal/log"
	"github.com/mywm/mywm/keysym"
	"github.com/mywm/mywm/x11"
)

// Command is one parsed protocol line, submitted by the IPC server or the
// configuration pipeline. Submit and SubmitWithFlush always set Reply; Run
// flushes a command's events itself only when Reply is nil.
type Command struct {
	Verb  string
	Args  []string
	Reply chan Reply
}

// Reply is a command's completed "OK"/"ERR <reason>" outcome. Flush runs
// any events the command's dispatch caused; callers that forward Reply to
// an external client (the IPC server) must make the reply itself visible
// before calling Flush, so a client never observes a caused event before
// its own reply.
type Reply struct {
	Err   error
	Flush func()
}

// WM is the window-state engine and reactor.
type WM struct {
	gw     *x11.Gateway
	keymap keysym.Keymap

	appearance Appearance

	bindings       map[keysym.Combo]boundCommand
	buttonBindings map[keysym.ButtonCombo]boundCommand

	rules          []Rule
	scratchpads    map[string]string        // name -> spawn command
	scratchWins    map[string]xproto.Window // name -> live client, once spawned
	scratchOpen    map[string]bool          // name -> currently shown
	pendingScratch string                   // name awaiting its spawned window's map-request
	pendingRule    *Rule                    // one-shot placement hint awaiting its spawned window's map-request

	windows    map[xproto.Window]*Window
	workspaces map[int]*Workspace
	monitors   []*Monitor
	docks      map[xproto.Window]int // dock window -> hosting monitor ID

	focused xproto.Window

	// emitSink, when non-nil, buffers emit() calls instead of running them
	// immediately — set for the duration of a Submit-originated command so
	// its caused events can be released only after the command's own reply.
	emitSink *[]func()

	barVisible          bool
	barShowOccupiedOnly bool

	// Spawn launches an external command; the engine only calls it.
	Spawn func(cmd string) error

	// Emit publishes one broadcast event; wired to the IPC
	// hub/bar publisher by the caller of New.
	Emit func(event string, payload interface{})

	// ReloadTrigger re-executes the configuration source and replays its
	// lines; wired to the configuration pipeline by the
	// caller of New. Called after mutable configuration has been reset.
	ReloadTrigger func() error

	commands chan Command
	xevents  chan xgbEvent
	done     chan struct{}
}

type xgbEvent struct {
	ev  interface{}
	err error
}

var logger = log.WithComponent("wm")

// New connects to the X display. It does not yet become the window manager.
func New() (*WM, error) {
	gw, err := x11.Connect()
	if err != nil {
		return nil, fmt.Errorf("wm: failed to create WM: %w", err)
	}
	return &WM{
		gw:             gw,
		appearance:     DefaultAppearance(),
		bindings:       make(map[keysym.Combo]boundCommand),
		buttonBindings: make(map[keysym.ButtonCombo]boundCommand),
		scratchpads:    make(map[string]string),
		scratchWins:    make(map[string]xproto.Window),
		scratchOpen:    make(map[string]bool),
		windows:        make(map[xproto.Window]*Window),
		workspaces:     make(map[int]*Workspace),
		docks:          make(map[xproto.Window]int),
		commands:       make(chan Command, 64),
		xevents:        make(chan xgbEvent, 64),
		done:           make(chan struct{}),
		Spawn:          func(string) error { return nil },
		Emit:           func(string, interface{}) {},
		ReloadTrigger:  func() error { return nil },
	}, nil
}

// Init becomes the window manager, loads the keymap, discovers monitors and
// publishes the EWMH identity.
func (wm *WM) Init() error {
	if err := wm.gw.BecomeWM(); err != nil {
		return fmt.Errorf("wm: could not become WM (another WM already running?): %w", err)
	}
	km, err := keysym.LoadKeyMapping(wm.gw.Conn)
	if err != nil {
		return fmt.Errorf("wm: failed to load key mapping: %w", err)
	}
	wm.keymap = km

	rects, err := wm.gw.Monitors()
	if err != nil || len(rects) == 0 {
		rects = []x11.Geom{wm.gw.ScreenRect()}
	}
	for i, r := range rects {
		wm.monitors = append(wm.monitors, &Monitor{ID: i, Rect: r, Visible: 0})
	}
	wm.setWorkspaces([]workspaceSpec{{Index: 1, Label: "1"}})
	if err := wm.renderAll(); err != nil {
		logger.Warn().Err(err).Msg("failed to render initial layout")
	}

	if err := wm.gw.SetWMName("mywm"); err != nil {
		return fmt.Errorf("wm: failed to set WM name: %w", err)
	}
	if err := wm.adoptExisting(); err != nil {
		logger.Warn().Err(err).Msg("failed to adopt pre-existing windows")
	}
	return nil
}

// Close tears down the X connection. Safe on a partially initialized WM.
func (wm *WM) Close() {
	wm.gw.Close()
}

// Run starts the reactor: a pump goroutine blocks on the X
// connection and forwards events over a channel, while this goroutine is
// the sole consumer of both X events and submitted commands, so all state
// mutation happens on one thread.
func (wm *WM) Run() error {
	go wm.pumpXEvents()
	for {
		select {
		case xe := <-wm.xevents:
			if xe.err != nil {
				return fmt.Errorf("wm: X connection lost: %w", xe.err)
			}
			wm.handleXEvent(xe.ev)
		case cmd := <-wm.commands:
			var queued []func()
			wm.emitSink = &queued
			err := wm.dispatch(cmd.Verb, cmd.Args)
			wm.emitSink = nil
			flush := func() {
				for _, fn := range queued {
					fn()
				}
			}
			if cmd.Reply != nil {
				cmd.Reply <- Reply{Err: err, Flush: flush}
			} else {
				flush()
			}
			if err != nil {
				logger.Warn().Err(err).Str("verb", cmd.Verb).Msg("command failed")
			}
		case <-wm.done:
			return wm.shutdown()
		}
	}
}

func (wm *WM) pumpXEvents() {
	for {
		ev, err := wm.gw.NextEvent()
		select {
		case wm.xevents <- xgbEvent{ev: ev, err: err}:
		case <-wm.done:
			return
		}
		if err != nil {
			return
		}
	}
}

// Submit enqueues a command for the reactor to run and blocks for its
// result, releasing any events the command caused before returning — the
// entry point the configuration pipeline and its watcher funnel through.
// Key/button bindings run on the reactor goroutine and call dispatch
// directly instead.
func (wm *WM) Submit(verb string, args []string) error {
	err, flush := wm.submit(verb, args)
	flush()
	return err
}

// SubmitWithFlush behaves like Submit but leaves releasing the command's
// caused events to the caller, via the returned flush func. The IPC server
// uses this to make a command's reply visible to its issuing client before
// any event that command triggered reaches the same connection.
func (wm *WM) SubmitWithFlush(verb string, args []string) (error, func()) {
	return wm.submit(verb, args)
}

func (wm *WM) submit(verb string, args []string) (error, func()) {
	reply := make(chan Reply, 1)
	select {
	case wm.commands <- Command{Verb: verb, Args: args, Reply: reply}:
	case <-wm.done:
		return fmt.Errorf("wm: shutting down"), func() {}
	}
	r := <-reply
	return r.Err, r.Flush
}

// emit runs event/payload through wm.Emit immediately, or defers it until
// the in-flight Submit's reply has been delivered if one is in progress.
func (wm *WM) emit(event string, payload interface{}) {
	if wm.emitSink != nil {
		*wm.emitSink = append(*wm.emitSink, func() { wm.Emit(event, payload) })
		return
	}
	wm.Emit(event, payload)
}

// Quit requests an orderly shutdown.
func (wm *WM) Quit() {
	close(wm.done)
}

func (wm *WM) shutdown() error {
	for win := range wm.windows {
		if f := wm.windows[win].Frame; f != nil {
			wm.gw.Unmap(f.Parent)
		}
	}
	wm.gw.Close()
	return nil
}

func (wm *WM) handleXEvent(xev interface{}) {
	switch e := xev.(type) {
	case xproto.KeyPressEvent:
		wm.handleKeyPress(e)
	case xproto.ButtonPressEvent:
		wm.handleButtonPress(e)
	case xproto.EnterNotifyEvent:
		if w, ok := wm.windows[e.Event]; ok {
			wm.setFocus(w.ID)
		}
	case xproto.ConfigureRequestEvent:
		wm.gw.AllowConfigureRequest(e)
	case xproto.MapRequestEvent:
		if !wm.gw.IsOverrideRedirect(e.Window) {
			if wm.gw.IsDock(e.Window) {
				if err := wm.adoptDock(e.Window); err != nil {
					logger.Warn().Err(err).Msg("failed to adopt dock window")
				}
			} else if err := wm.adoptWindow(e.Window); err != nil {
				logger.Warn().Err(err).Msg("failed to adopt window")
			}
		}
	case xproto.UnmapNotifyEvent:
		wm.handleUnmap(e.Window)
	case xproto.DestroyNotifyEvent:
		wm.handleDestroy(e.Window)
	case xproto.PropertyNotifyEvent:
		wm.handlePropertyNotify(e)
	}
}

func (wm *WM) findMonitor(id int) *Monitor {
	for _, m := range wm.monitors {
		if m.ID == id {
			return m
		}
	}
	return nil
}

// monitorFor returns the monitor hosting ws, or nil.
func (wm *WM) monitorFor(ws *Workspace) *Monitor {
	return wm.findMonitor(ws.Monitor)
}

// monitorRectFor returns ws's host monitor's usable rect, or the zero
// Geom if ws is unhosted (e.g. not currently assigned to a monitor).
func (wm *WM) monitorRectFor(ws *Workspace) x11.Geom {
	if m := wm.monitorFor(ws); m != nil {
		return m.UsableRect(uint32(wm.appearance.Gap))
	}
	return x11.Geom{}
}

// focusedWorkspace returns the workspace hosting the currently focused
// window, or nil if nothing is focused.
func (wm *WM) focusedWorkspace() *Workspace {
	w, ok := wm.windows[wm.focused]
	if !ok {
		return nil
	}
	return wm.workspaces[w.Workspace]
}
