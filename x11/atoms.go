package x11

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// Atom interns (and caches) the atom for name, creating it on the server if
// it does not already exist. Mirrors funkycode-marwind's x11.Atom helper
// that frame.go and wm.go call for "_NET_WM_NAME" and friends.
func (g *Gateway) Atom(name string) xproto.Atom {
	if a, ok := g.atoms[name]; ok {
		return a
	}
	reply, err := xproto.InternAtom(g.Conn, false, uint16(len(name)), name).Reply()
	if err != nil || reply == nil {
		return xproto.AtomNone
	}
	g.atoms[name] = reply.Atom
	return reply.Atom
}

// AtomName resolves an atom id back to its string name without depending on
// xgbutil's xprop package, which requires its own wrapped connection type.
// Nothing in this module calls it: SendDeleteWindow compares WM_PROTOCOLS
// atom ids numerically instead.
func (g *Gateway) AtomName(atom xproto.Atom) (string, error) {
	reply, err := xproto.GetAtomName(g.Conn, atom).Reply()
	if err != nil {
		return "", err
	}
	return string(reply.Name), nil
}

// SetWMName publishes the _NET_WM_NAME / _NET_SUPPORTING_WM_CHECK EWMH
// properties that well-behaved status bars and EWMH-aware clients use to
// detect which window manager is running.
func (g *Gateway) SetWMName(name string) error {
	checkWin, err := xproto.NewWindowId(g.Conn)
	if err != nil {
		return fmt.Errorf("x11: failed to allocate check window: %w", err)
	}
	if err := xproto.CreateWindowChecked(
		g.Conn, g.Screen.RootDepth, checkWin, g.Root,
		-1, -1, 1, 1, 0, xproto.WindowClassInputOutput, g.Screen.RootVisual,
		0, nil,
	).Check(); err != nil {
		return fmt.Errorf("x11: failed to create check window: %w", err)
	}

	utf8 := g.Atom("UTF8_STRING")
	supportingCheck := g.Atom("_NET_SUPPORTING_WM_CHECK")
	netWMName := g.Atom("_NET_WM_NAME")

	for _, win := range []xproto.Window{g.Root, checkWin} {
		if err := xproto.ChangePropertyChecked(
			g.Conn, xproto.PropModeReplace, win, supportingCheck,
			xproto.AtomWindow, 32, 1, windowToBytes(checkWin),
		).Check(); err != nil {
			return err
		}
		if err := xproto.ChangePropertyChecked(
			g.Conn, xproto.PropModeReplace, win, netWMName,
			utf8, 8, uint32(len(name)), []byte(name),
		).Check(); err != nil {
			return err
		}
	}
	return nil
}

func windowToBytes(w xproto.Window) []byte {
	return []byte{
		byte(w), byte(w >> 8), byte(w >> 16), byte(w >> 24),
	}
}

// GetWindowTitle reads _NET_WM_NAME (falling back to the legacy WM_NAME) for
// a client window. Missing titles are reported, never panicked on —
// adoptWindow treats an error here as "no title", so the rule matcher sees
// an empty title.
func (g *Gateway) GetWindowTitle(win xproto.Window) (string, error) {
	if v, err := g.getTextProperty(win, g.Atom("_NET_WM_NAME"), g.Atom("UTF8_STRING")); err == nil && v != "" {
		return v, nil
	}
	return g.getTextProperty(win, xproto.AtomWmName, xproto.AtomString)
}

// GetWindowClass reads WM_CLASS and returns the second (class) component,
// which is the conventional match target for window-manager rules.
func (g *Gateway) GetWindowClass(win xproto.Window) (string, error) {
	reply, err := xproto.GetProperty(g.Conn, false, win, xproto.AtomWmClass, xproto.AtomString, 0, 256).Reply()
	if err != nil {
		return "", err
	}
	if reply == nil || len(reply.Value) == 0 {
		return "", fmt.Errorf("x11: window %d has no WM_CLASS", win)
	}
	parts := splitNUL(reply.Value)
	if len(parts) < 2 {
		if len(parts) == 1 {
			return parts[0], nil
		}
		return "", fmt.Errorf("x11: window %d has empty WM_CLASS", win)
	}
	return parts[1], nil
}

func (g *Gateway) getTextProperty(win xproto.Window, prop, typ xproto.Atom) (string, error) {
	reply, err := xproto.GetProperty(g.Conn, false, win, prop, typ, 0, 1024).Reply()
	if err != nil {
		return "", err
	}
	if reply == nil || len(reply.Value) == 0 {
		return "", fmt.Errorf("x11: window %d missing property", win)
	}
	return string(reply.Value), nil
}

func splitNUL(b []byte) []string {
	var out []string
	start := 0
	for i, c := range b {
		if c == 0 {
			out = append(out, string(b[start:i]))
			start = i + 1
		}
	}
	if start < len(b) {
		out = append(out, string(b[start:]))
	}
	return out
}
