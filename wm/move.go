package wm

import (
	"fmt"

	"github.com/BurntSushi/xgb/xproto"
)

// Direction is a directional argument to `focus`/`move`.
type Direction uint8

const (
	DirLeft Direction = iota
	DirRight
	DirUp
	DirDown
)

// ParseDirection parses the protocol's lowercase direction token.
func ParseDirection(s string) (Direction, error) {
	switch s {
	case "left":
		return DirLeft, nil
	case "right":
		return DirRight, nil
	case "up":
		return DirUp, nil
	case "down":
		return DirDown, nil
	default:
		return 0, fmt.Errorf("unknown direction %q", s)
	}
}

// directionalNeighbor finds the window whose frame center-point lies
// strictly in direction dir from origin's and minimizes Manhattan
// distance; on tie, the one minimizing the perpendicular offset.
func (wm *WM) directionalNeighbor(ws *Workspace, from xproto.Window, dir Direction) (xproto.Window, bool) {
	origin, ok := wm.windows[from]
	if !ok || origin.Frame == nil {
		return 0, false
	}
	ox, oy := origin.Frame.Geom.Center()

	var best xproto.Window
	var bestDist, bestPerp int64
	found := false

	consider := func(win xproto.Window) {
		if win == from {
			return
		}
		w, ok := wm.windows[win]
		if !ok || w.Workspace != origin.Workspace || w.Frame == nil || !w.Mapped {
			return
		}
		cx, cy := w.Frame.Geom.Center()
		dx := int64(cx) - int64(ox)
		dy := int64(cy) - int64(oy)

		var inDirection bool
		var dist, perp int64
		switch dir {
		case DirLeft:
			inDirection = dx < 0
			dist, perp = -dx, abs64(dy)
		case DirRight:
			inDirection = dx > 0
			dist, perp = dx, abs64(dy)
		case DirUp:
			inDirection = dy < 0
			dist, perp = -dy, abs64(dx)
		case DirDown:
			inDirection = dy > 0
			dist, perp = dy, abs64(dx)
		}
		if !inDirection {
			return
		}
		manhattan := dist + perp
		if !found || manhattan < bestDist || (manhattan == bestDist && perp < bestPerp) {
			best, bestDist, bestPerp, found = win, manhattan, perp, true
		}
	}

	for _, w := range ws.Tiled {
		consider(w)
	}
	for w := range ws.Floating {
		consider(w)
	}
	return best, found
}

func abs64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// cmdFocus implements `focus <dir>`: moves focus to the directional
// neighbor, or does nothing if there is none.
func (wm *WM) cmdFocus(dir Direction) error {
	ws := wm.focusedWorkspace()
	if ws == nil {
		return nil
	}
	next, ok := wm.directionalNeighbor(ws, wm.focused, dir)
	if !ok {
		return nil
	}
	return wm.setFocus(next)
}

// cmdMove implements `move <dir>`: swaps the focused tiled window with its
// directional neighbor and reapplies the layout, or translates a floating
// window by a fixed 5%-of-monitor step.
func (wm *WM) cmdMove(dir Direction) error {
	win, ok := wm.windows[wm.focused]
	if !ok {
		return nil
	}
	ws := wm.workspaces[win.Workspace]
	if ws == nil {
		return nil
	}

	if win.Floating {
		mon := wm.monitorFor(ws)
		if mon == nil {
			return nil
		}
		stepX := int32(mon.Rect.W) * 5 / 100
		stepY := int32(mon.Rect.H) * 5 / 100
		g := win.GeomFloating
		switch dir {
		case DirLeft:
			g.X = uint32(maxInt32(0, int32(g.X)-stepX))
		case DirRight:
			g.X += uint32(stepX)
		case DirUp:
			g.Y = uint32(maxInt32(0, int32(g.Y)-stepY))
		case DirDown:
			g.Y += uint32(stepY)
		}
		win.GeomFloating = g
		if win.Frame != nil {
			return wm.moveResizeFrame(win.Frame, g)
		}
		return nil
	}

	neighbor, ok := wm.directionalNeighbor(ws, wm.focused, dir)
	if !ok {
		return nil
	}
	ws.tree.swap(wm.focused, neighbor)
	return wm.applyLayout(ws)
}

func maxInt32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

// cmdResize implements `resize ±dx ±dy`.
func (wm *WM) cmdResize(dx, dy int) error {
	win, ok := wm.windows[wm.focused]
	if !ok {
		return nil
	}
	ws := wm.workspaces[win.Workspace]
	if ws == nil {
		return nil
	}

	if win.Floating {
		g := win.GeomFloating
		g.W = uint32(maxInt32(1, int32(g.W)+int32(dx)))
		g.H = uint32(maxInt32(1, int32(g.H)+int32(dy)))
		win.GeomFloating = g
		if win.Frame != nil {
			return wm.moveResizeFrame(win.Frame, g)
		}
		return nil
	}

	changed := false
	if dx != 0 {
		delta := float64(dx) / float64(max1(int(wm.monitorRectFor(ws).W)))
		if ws.tree.resizeRatio(wm.focused, axisVertical, delta) {
			changed = true
		}
	}
	if dy != 0 {
		delta := float64(dy) / float64(max1(int(wm.monitorRectFor(ws).H)))
		if ws.tree.resizeRatio(wm.focused, axisHorizontal, delta) {
			changed = true
		}
	}
	if !changed {
		return nil
	}
	return wm.applyLayout(ws)
}

func max1(v int) int {
	if v < 1 {
		return 1
	}
	return v
}
