package x11

import "github.com/BurntSushi/xgb/xinerama"

// Monitors returns the physical monitor rectangles in root coordinates, the
// same xinerama.QueryScreens call driusan-dewm's main() uses to populate
// attachedScreens. When Xinerama is unavailable (single-head X server with
// no RandR/Xinerama extension) the whole screen is reported as one monitor.
func (g *Gateway) Monitors() ([]Geom, error) {
	reply, err := xinerama.QueryScreens(g.Conn).Reply()
	if err != nil || reply == nil || len(reply.ScreenInfo) == 0 {
		return []Geom{g.ScreenRect()}, nil
	}
	out := make([]Geom, len(reply.ScreenInfo))
	for i, s := range reply.ScreenInfo {
		out[i] = Geom{
			X: uint32(s.XOrg), Y: uint32(s.YOrg),
			W: uint32(s.Width), H: uint32(s.Height),
		}
	}
	return out, nil
}
