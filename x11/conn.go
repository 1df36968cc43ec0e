// Package x11 is the display gateway: it owns the single X connection, the
// root window, screen geometry and the low level reparenting/configure/grab
// calls the rest of the window manager is built on. Apart from the keysym
// package's keyboard-mapping query, no other package issues X requests
// directly.
package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb"
	"github.com/BurntSushi/xgb/xinerama"
	"github.com/BurntSushi/xgb/xproto"
)

// Gateway wraps one X connection and the state derived from it at startup.
type Gateway struct {
	Conn   *xgb.Conn
	Screen *xproto.ScreenInfo
	Root   xproto.Window

	atoms map[string]xproto.Atom
}

// Connect dials the X server named by $DISPLAY and queries the default
// screen. It does not yet attempt to become the window manager.
func Connect() (*Gateway, error) {
	conn, err := xgb.NewConn()
	if err != nil {
		return nil, fmt.Errorf("x11: failed to connect: %w", err)
	}
	setup := xproto.Setup(conn)
	if setup == nil || len(setup.Roots) < 1 {
		conn.Close()
		return nil, fmt.Errorf("x11: could not parse setup info")
	}
	screen := &setup.Roots[0]

	if err := xinerama.Init(conn); err != nil {
		// Xinerama is best-effort: a single-monitor X server may not have
		// the extension at all. The gateway falls back to the root screen
		// rectangle as the sole monitor (see Monitors()).
		screen = &setup.Roots[0]
	}

	return &Gateway{
		Conn:   conn,
		Screen: screen,
		Root:   screen.Root,
		atoms:  make(map[string]xproto.Atom),
	}, nil
}

// Close tears down the X connection. Safe to call on a nil Gateway.
func (g *Gateway) Close() {
	if g != nil && g.Conn != nil {
		g.Conn.Close()
	}
}

// BecomeWM registers for substructure-redirect on the root window. This is
// how X grants (or refuses, via AccessError) sole ownership of window
// management to this process.
func (g *Gateway) BecomeWM() error {
	mask := []uint32{
		xproto.EventMaskKeyPress |
			xproto.EventMaskKeyRelease |
			xproto.EventMaskButtonPress |
			xproto.EventMaskButtonRelease |
			xproto.EventMaskPropertyChange |
			xproto.EventMaskFocusChange |
			xproto.EventMaskStructureNotify |
			xproto.EventMaskSubstructureRedirect |
			xproto.EventMaskSubstructureNotify,
	}
	return xproto.ChangeWindowAttributesChecked(g.Conn, g.Root, xproto.CwEventMask, mask).Check()
}

// NextEvent blocks until the next X event arrives. A non-nil error means the
// connection is in an unrecoverable state.
func (g *Gateway) NextEvent() (xgb.Event, error) {
	return g.Conn.WaitForEvent()
}

// ScreenRect returns the root screen's geometry in root coordinates.
func (g *Gateway) ScreenRect() Geom {
	return Geom{
		X: 0, Y: 0,
		W: uint32(g.Screen.WidthInPixels),
		H: uint32(g.Screen.HeightInPixels),
	}
}
