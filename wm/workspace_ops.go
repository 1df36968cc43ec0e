package wm

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/BurntSushi/xgb/xproto"
	"github.com/mywm/mywm/x11"
)

// workspaceSpec is one `index:label` token from `set-workspaces`.
type workspaceSpec struct {
	Index int
	Label string
}

// parseWorkspaceSpecs parses the `set-workspaces` argument list.
func parseWorkspaceSpecs(args []string) ([]workspaceSpec, error) {
	if len(args) == 0 {
		return nil, fmt.Errorf("set-workspaces: at least one index:label token required")
	}
	specs := make([]workspaceSpec, 0, len(args))
	for _, a := range args {
		idx := strings.IndexByte(a, ':')
		if idx < 0 {
			return nil, fmt.Errorf("set-workspaces: malformed token %q", a)
		}
		n, err := strconv.Atoi(a[:idx])
		if err != nil {
			return nil, fmt.Errorf("set-workspaces: bad index in %q: %w", a, err)
		}
		specs = append(specs, workspaceSpec{Index: n, Label: a[idx+1:]})
	}
	return specs, nil
}

// setWorkspaces replaces the workspace set. The first len(monitors) workspaces are assigned
// one per monitor and made visible; the rest stay hidden on monitor 0 until
// a `view`/`move-ws` places them.
func (wm *WM) setWorkspaces(specs []workspaceSpec) {
	wm.workspaces = make(map[int]*Workspace, len(specs))
	for _, m := range wm.monitors {
		m.Workspaces = nil
		m.Visible = 0
	}
	for i, spec := range specs {
		ws := newWorkspace(spec.Index, spec.Label)
		monID := 0
		if i < len(wm.monitors) {
			monID = wm.monitors[i].ID
		}
		ws.Monitor = monID
		wm.workspaces[spec.Index] = ws
		if mon := wm.findMonitor(monID); mon != nil {
			mon.Workspaces = append(mon.Workspaces, spec.Index)
			if mon.Visible == 0 {
				mon.Visible = spec.Index
				ws.Visible = true
			}
		}
	}
}

func (wm *WM) cmdSetWorkspaces(args []string) error {
	specs, err := parseWorkspaceSpecs(args)
	if err != nil {
		return err
	}
	wm.setWorkspaces(specs)
	return wm.renderAll()
}

// applyLayout recomputes every tiled window's geometry on ws and pushes it
// to the gateway, skipping hidden workspaces entirely.
func (wm *WM) applyLayout(ws *Workspace) error {
	if !ws.Visible {
		return nil
	}
	usable := wm.monitorRectFor(ws)
	if fsWin, ok := wm.fullscreenWindow(ws); ok {
		w := wm.windows[fsWin]
		if w.Frame != nil {
			return wm.moveResizeFrame(w.Frame, wm.monitorFor(ws).Rect)
		}
		return nil
	}
	geoms := ws.tree.leafGeoms(usable, uint32(wm.appearance.Gap))
	var firstErr error
	for win, g := range geoms {
		w, ok := wm.windows[win]
		if !ok || w.Frame == nil {
			continue
		}
		w.GeomTiled = g
		if err := wm.moveResizeFrame(w.Frame, g); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (wm *WM) fullscreenWindow(ws *Workspace) (xproto.Window, bool) {
	for _, win := range ws.Tiled {
		if w := wm.windows[win]; w != nil && w.Fullscreen {
			return win, true
		}
	}
	for win := range ws.Floating {
		if w := wm.windows[win]; w != nil && w.Fullscreen {
			return win, true
		}
	}
	return 0, false
}

// cmdView implements `view ws n`.
func (wm *WM) cmdView(n int) error {
	target, ok := wm.workspaces[n]
	if !ok {
		return fmt.Errorf("unknown-workspace")
	}
	mon := wm.findMonitor(target.Monitor)
	if mon == nil {
		return fmt.Errorf("unknown-workspace")
	}
	prevIdx := mon.Visible
	if prevIdx == n {
		wm.emitWorkspaceEvent()
		return nil
	}
	if prev, ok := wm.workspaces[prevIdx]; ok {
		prev.Visible = false
		wm.unmapWorkspace(prev)
	}
	target.Visible = true
	mon.Visible = n
	wm.mapWorkspace(target)
	if err := wm.applyLayout(target); err != nil {
		return err
	}
	wm.emitWorkspaceEvent()
	return nil
}

func (wm *WM) unmapWorkspace(ws *Workspace) {
	for _, win := range ws.Tiled {
		if w := wm.windows[win]; w != nil && w.Frame != nil {
			wm.gw.Unmap(w.Frame.Parent)
		}
	}
	for win := range ws.Floating {
		if w := wm.windows[win]; w != nil && w.Frame != nil {
			wm.gw.Unmap(w.Frame.Parent)
		}
	}
}

func (wm *WM) mapWorkspace(ws *Workspace) {
	for _, win := range ws.Tiled {
		if w := wm.windows[win]; w != nil && w.Frame != nil {
			wm.gw.Map(w.Frame.Parent)
		}
	}
	for win := range ws.Floating {
		if w := wm.windows[win]; w != nil && w.Frame != nil {
			wm.gw.Map(w.Frame.Parent)
		}
	}
}

// cmdSend implements `send ws n`.
func (wm *WM) cmdSend(n int) error {
	w, ok := wm.windows[wm.focused]
	if !ok {
		return nil
	}
	target, ok := wm.workspaces[n]
	if !ok {
		return fmt.Errorf("unknown-workspace")
	}
	src := wm.workspaces[w.Workspace]
	if src == nil || src == target {
		return nil
	}

	if w.Floating {
		delete(src.Floating, w.ID)
	} else {
		src.removeTiled(w.ID)
	}
	w.Workspace = target.Index
	if w.Floating {
		target.Floating[w.ID] = true
	} else {
		target.addTiled(w.ID, wm.monitorRectFor(target))
	}

	if target.Visible {
		if w.Frame != nil {
			wm.gw.Map(w.Frame.Parent)
		}
		if err := wm.applyLayout(target); err != nil {
			return err
		}
	} else if w.Frame != nil {
		wm.gw.Unmap(w.Frame.Parent)
	}
	if err := wm.applyLayout(src); err != nil {
		return err
	}
	wm.emitWorkspaceEvent()
	return nil
}

// cmdMoveWs implements `move-ws n monitor m`.
func (wm *WM) cmdMoveWs(n, monitorID int) error {
	ws, ok := wm.workspaces[n]
	if !ok {
		return fmt.Errorf("unknown-workspace")
	}
	mon := wm.findMonitor(monitorID)
	if mon == nil {
		return fmt.Errorf("unknown-monitor")
	}
	if oldMon := wm.findMonitor(ws.Monitor); oldMon != nil && oldMon.Visible == n {
		oldMon.Visible = 0
		ws.Visible = false
		wm.unmapWorkspace(ws)
	}
	if oldMon := wm.findMonitor(ws.Monitor); oldMon != nil {
		for i, idx := range oldMon.Workspaces {
			if idx == n {
				oldMon.Workspaces = append(oldMon.Workspaces[:i], oldMon.Workspaces[i+1:]...)
				break
			}
		}
	}
	mon.Workspaces = append(mon.Workspaces, n)
	ws.Monitor = monitorID
	if mon.Visible == 0 {
		mon.Visible = n
		ws.Visible = true
		wm.mapWorkspace(ws)
		return wm.applyLayout(ws)
	}
	return nil
}

// resetAppearance restores appearance to defaults.
func (wm *WM) resetAppearance() {
	wm.appearance = DefaultAppearance()
}

func (wm *WM) centeredFloatGeom(mon *Monitor, wfrac, hfrac float64) x11.Geom {
	w := uint32(float64(mon.Rect.W) * wfrac)
	h := uint32(float64(mon.Rect.H) * hfrac)
	x := mon.Rect.X + (mon.Rect.W-w)/2
	y := mon.Rect.Y + (mon.Rect.H-h)/2
	return x11.Geom{X: x, Y: y, W: w, H: h}
}
