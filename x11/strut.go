package x11

import "github.com/BurntSushi/xgb/xproto"

// GetGeometry returns win's geometry in root coordinates.
func (g *Gateway) GetGeometry(win xproto.Window) (Geom, error) {
	reply, err := xproto.GetGeometry(g.Conn, xproto.Drawable(win)).Reply()
	if err != nil {
		return Geom{}, err
	}
	return Geom{
		X: uint32(int32(reply.X)), Y: uint32(int32(reply.Y)),
		W: uint32(reply.Width), H: uint32(reply.Height),
	}, nil
}

// GetWindowType reads _NET_WM_WINDOW_TYPE, the EWMH property a client
// publishes to identify itself as a panel/dock/dialog/splash/etc.
func (g *Gateway) GetWindowType(win xproto.Window) []xproto.Atom {
	reply, err := xproto.GetProperty(g.Conn, false, win, g.Atom("_NET_WM_WINDOW_TYPE"), xproto.AtomAtom, 0, 32).Reply()
	if err != nil || reply == nil {
		return nil
	}
	return decodeAtoms(reply.Value)
}

// IsDock reports whether win advertises _NET_WM_WINDOW_TYPE_DOCK, the EWMH
// marker for panels/taskbars that reserve a strip of screen instead of
// tiling alongside ordinary clients.
func (g *Gateway) IsDock(win xproto.Window) bool {
	dock := g.Atom("_NET_WM_WINDOW_TYPE_DOCK")
	for _, a := range g.GetWindowType(win) {
		if a == dock {
			return true
		}
	}
	return false
}

// GetStrutPartial reads _NET_WM_STRUT_PARTIAL (left, right, top, bottom and
// eight start/end coordinates, of which only the first four are used),
// falling back to the older 4-field _NET_WM_STRUT. Reports false if win has
// neither property set.
func (g *Gateway) GetStrutPartial(win xproto.Window) (Dimensions, bool) {
	if reply, err := xproto.GetProperty(g.Conn, false, win, g.Atom("_NET_WM_STRUT_PARTIAL"), xproto.AtomCardinal, 0, 12).Reply(); err == nil && reply != nil {
		if vals := decodeUint32s(reply.Value); len(vals) >= 4 {
			return Dimensions{Left: vals[0], Right: vals[1], Top: vals[2], Bottom: vals[3]}, true
		}
	}
	if reply, err := xproto.GetProperty(g.Conn, false, win, g.Atom("_NET_WM_STRUT"), xproto.AtomCardinal, 0, 4).Reply(); err == nil && reply != nil {
		if vals := decodeUint32s(reply.Value); len(vals) >= 4 {
			return Dimensions{Left: vals[0], Right: vals[1], Top: vals[2], Bottom: vals[3]}, true
		}
	}
	return Dimensions{}, false
}

// SelectPropertyChanges adds PropertyNotify to win's event mask, so a dock
// window that republishes its strut after mapping (common once it has
// measured its own content) is noticed.
func (g *Gateway) SelectPropertyChanges(win xproto.Window) error {
	return xproto.ChangeWindowAttributesChecked(g.Conn, win, xproto.CwEventMask, []uint32{xproto.EventMaskPropertyChange}).Check()
}

func decodeUint32s(b []byte) []uint32 {
	out := make([]uint32, 0, len(b)/4)
	for ; len(b) >= 4; b = b[4:] {
		out = append(out, uint32(b[0])|uint32(b[1])<<8|uint32(b[2])<<16|uint32(b[3])<<24)
	}
	return out
}

func decodeAtoms(b []byte) []xproto.Atom {
	vals := decodeUint32s(b)
	out := make([]xproto.Atom, len(vals))
	for i, v := range vals {
		out[i] = xproto.Atom(v)
	}
	return out
}
