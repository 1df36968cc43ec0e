package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xfixes"
	"github.com/BurntSushi/xgb/xproto"
)

// CreateFrameWindow allocates a manager-owned X window suitable for
// reparenting a client into, following the same minimal attribute set
// funkycode-marwind's createParent uses: an input/output window painted
// with the given background color, selecting the events a decoration frame
// needs to forward button presses and repaint on expose.
func (g *Gateway) CreateFrameWindow(geom Geom, bg uint32) (xproto.Window, error) {
	id, err := xproto.NewWindowId(g.Conn)
	if err != nil {
		return 0, fmt.Errorf("x11: failed to allocate window id: %w", err)
	}
	err = xproto.CreateWindowChecked(
		g.Conn, g.Screen.RootDepth, id, g.Root,
		int16(geom.X), int16(geom.Y), uint16(geom.W), uint16(geom.H), 0,
		xproto.WindowClassInputOutput, g.Screen.RootVisual,
		xproto.CwBackPixel|xproto.CwEventMask,
		[]uint32{
			bg,
			xproto.EventMaskSubstructureRedirect |
				xproto.EventMaskSubstructureNotify |
				xproto.EventMaskExposure |
				xproto.EventMaskButtonPress |
				xproto.EventMaskButtonRelease |
				xproto.EventMaskFocusChange,
		},
	).Check()
	if err != nil {
		return 0, fmt.Errorf("x11: failed to create frame window: %w", err)
	}
	return id, nil
}

// Reparent moves child under parent at the given offset and adds child to
// the save-set, so that if this process dies mid-session the X server
// reparents it back to the root instead of destroying it — the same
// xfixes.SaveSetModeInsert call funkycode-marwind's frame.reparent makes.
func (g *Gateway) Reparent(child, parent xproto.Window, x, y int16) error {
	if err := xproto.ReparentWindowChecked(g.Conn, child, parent, x, y).Check(); err != nil {
		return fmt.Errorf("x11: failed to reparent %d into %d: %w", child, parent, err)
	}
	xproto.ChangeSaveSet(g.Conn, xfixes.SaveSetModeInsert, child)
	return nil
}

// Configure moves/resizes window atomically to geom.
func (g *Gateway) Configure(win xproto.Window, geom Geom) error {
	mask := uint16(xproto.ConfigWindowX | xproto.ConfigWindowY | xproto.ConfigWindowWidth | xproto.ConfigWindowHeight)
	values := []uint32{geom.X, geom.Y, geom.W, geom.H}
	return xproto.ConfigureWindowChecked(g.Conn, win, mask, values).Check()
}

// NotifyConfigure sends a synthetic ConfigureNotify so clients that only
// look at the root-relative geometry (rather than trusting their parent's
// coordinate frame) redraw popups/menus correctly after reparenting. This
// is the same workaround funkycode-marwind's renderFrame applies for Java
// clients.
func (g *Gateway) NotifyConfigure(win xproto.Window, geom Geom) error {
	ev := xproto.ConfigureNotifyEvent{
		Event:            win,
		Window:           win,
		X:                int16(geom.X),
		Y:                int16(geom.Y),
		Width:            uint16(geom.W),
		Height:           uint16(geom.H),
		BorderWidth:      0,
		AboveSibling:     0,
		OverrideRedirect: false,
	}
	return xproto.SendEventChecked(g.Conn, false, win, xproto.EventMaskStructureNotify, string(ev.Bytes())).Check()
}

// AllowConfigureRequest replies to an unhandled/pass-through
// ConfigureRequestEvent with the client's own requested geometry, the same
// pattern funkycode-marwind's Run loop uses for windows not yet managed.
func (g *Gateway) AllowConfigureRequest(e xproto.ConfigureRequestEvent) {
	ev := xproto.ConfigureNotifyEvent{
		Event:            e.Window,
		Window:           e.Window,
		AboveSibling:     0,
		X:                e.X,
		Y:                e.Y,
		Width:            e.Width,
		Height:           e.Height,
		BorderWidth:      0,
		OverrideRedirect: false,
	}
	xproto.SendEventChecked(g.Conn, false, e.Window, xproto.EventMaskStructureNotify, string(ev.Bytes()))
}

// Map/Unmap/Destroy are thin checked wrappers; a failure here means the
// window died mid-request and is reported to the caller rather than
// treated as fatal.

func (g *Gateway) Map(win xproto.Window) error {
	return xproto.MapWindowChecked(g.Conn, win).Check()
}

func (g *Gateway) Unmap(win xproto.Window) error {
	return xproto.UnmapWindowChecked(g.Conn, win).Check()
}

func (g *Gateway) Destroy(win xproto.Window) error {
	return xproto.DestroyWindowChecked(g.Conn, win).Check()
}

// SetBackground paints a window's background and clears it, used for the
// frame's outer border band.
func (g *Gateway) SetBackground(win xproto.Window, color uint32) error {
	if err := xproto.ChangeWindowAttributesChecked(g.Conn, win, xproto.CwBackPixel, []uint32{color}).Check(); err != nil {
		return err
	}
	return xproto.ClearAreaChecked(g.Conn, false, win, 0, 0, 0, 0).Check()
}

// FillRect paints color into rects on win using a freshly allocated and
// freed graphics context. Decoration frames repaint rarely enough that a
// per-call GC isn't worth caching.
func (g *Gateway) FillRect(win xproto.Window, color uint32, rects []xproto.Rectangle) error {
	if len(rects) == 0 {
		return nil
	}
	gc, err := xproto.NewGcontextId(g.Conn)
	if err != nil {
		return fmt.Errorf("x11: failed to allocate gc: %w", err)
	}
	defer xproto.FreeGC(g.Conn, gc)
	if err := xproto.CreateGCChecked(g.Conn, gc, xproto.Drawable(win), xproto.GcForeground, []uint32{color}).Check(); err != nil {
		return fmt.Errorf("x11: failed to create gc: %w", err)
	}
	return xproto.PolyFillRectangleChecked(g.Conn, xproto.Drawable(win), gc, rects).Check()
}

// GrabKey grabs a key combination on the root window asynchronously.
func (g *Gateway) GrabKey(mods uint16, code xproto.Keycode) error {
	return xproto.GrabKeyChecked(
		g.Conn, false, g.Root, mods, code,
		xproto.GrabModeAsync, xproto.GrabModeAsync,
	).Check()
}

// UngrabKey releases a previously grabbed key combination.
func (g *Gateway) UngrabKey(mods uint16, code xproto.Keycode) error {
	return xproto.UngrabKeyChecked(g.Conn, code, g.Root, mods).Check()
}

// GrabButton grabs a pointer button combination on the root window.
func (g *Gateway) GrabButton(mods uint16, button xproto.Button) error {
	return xproto.GrabButtonChecked(
		g.Conn, false, g.Root,
		xproto.EventMaskButtonPress|xproto.EventMaskButtonRelease,
		xproto.GrabModeAsync, xproto.GrabModeAsync,
		xproto.WindowNone, xproto.CursorNone,
		button, mods,
	).Check()
}

// UngrabButton releases a previously grabbed pointer button combination.
func (g *Gateway) UngrabButton(mods uint16, button xproto.Button) error {
	return xproto.UngrabButtonChecked(g.Conn, button, g.Root, mods).Check()
}

// SetInputFocus gives input focus to win, falling back to PointerRoot
// semantics the same way funkycode-marwind's setFocus does.
func (g *Gateway) SetInputFocus(win xproto.Window, t xproto.Timestamp) error {
	return xproto.SetInputFocusChecked(g.Conn, xproto.InputFocusPointerRoot, win, t).Check()
}

// SendDeleteWindow asks a client to close itself via the ICCCM
// WM_DELETE_WINDOW protocol. Returns false if the client never advertised
// support for it, in which case the caller should fall back to KillClient.
func (g *Gateway) SendDeleteWindow(win xproto.Window) (bool, error) {
	wmProtocols := g.Atom("WM_PROTOCOLS")
	wmDeleteWindow := g.Atom("WM_DELETE_WINDOW")

	reply, err := xproto.GetProperty(g.Conn, false, win, wmProtocols, xproto.GetPropertyTypeAny, 0, 64).Reply()
	if err != nil {
		return false, err
	}
	supports := false
	for v := reply.Value; len(v) >= 4; v = v[4:] {
		atom := xproto.Atom(uint32(v[0]) | uint32(v[1])<<8 | uint32(v[2])<<16 | uint32(v[3])<<24)
		if atom == wmDeleteWindow {
			supports = true
			break
		}
	}
	if !supports {
		return false, nil
	}
	ev := xproto.ClientMessageEvent{
		Format: 32,
		Window: win,
		Type:   wmProtocols,
		Data: xproto.ClientMessageDataUnionData32New([]uint32{
			uint32(wmDeleteWindow), 0, 0, 0, 0,
		}),
	}
	if err := xproto.SendEventChecked(g.Conn, false, win, xproto.EventMaskNoEvent, string(ev.Bytes())).Check(); err != nil {
		return false, err
	}
	return true, nil
}

// KillClient forcibly terminates a client connection. Last resort for
// `close` when the client does not speak WM_DELETE_WINDOW.
func (g *Gateway) KillClient(win xproto.Window) error {
	return xproto.KillClientChecked(g.Conn, uint32(win)).Check()
}

// QueryTree returns the direct children of the root window, used at
// startup to adopt any windows already mapped before this process became
// the window manager.
func (g *Gateway) QueryTree() ([]xproto.Window, error) {
	reply, err := xproto.QueryTree(g.Conn, g.Root).Reply()
	if err != nil {
		return nil, err
	}
	return reply.Children, nil
}

// IsOverrideRedirect reports whether a window opted out of window-management
// via override-redirect, as funkycode-marwind's MapRequest handler checks
// before calling manageWindow.
func (g *Gateway) IsOverrideRedirect(win xproto.Window) bool {
	attr, err := xproto.GetWindowAttributes(g.Conn, win).Reply()
	if err != nil {
		return false
	}
	return attr.OverrideRedirect
}
