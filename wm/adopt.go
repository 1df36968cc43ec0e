package wm

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/mywm/mywm/x11"
)

// adoptWindow handles a MapRequest for a window the manager does not yet
// track: adoption.
func (wm *WM) adoptWindow(win xproto.Window) error {
	class, _ := wm.gw.GetWindowClass(win)
	title, _ := wm.gw.GetWindowTitle(win)

	if wm.pendingScratch != "" {
		return wm.adoptScratchWindow(win, class, title)
	}

	var rule *Rule
	if wm.pendingRule != nil {
		rule = wm.pendingRule
		wm.pendingRule = nil
	} else {
		rule = matchRule(wm.rules, class, title)
	}

	wsIdx := wm.defaultWorkspaceIndex()
	monOverride := -1
	floating := false
	if rule != nil {
		if rule.Workspace != 0 {
			if _, ok := wm.workspaces[rule.Workspace]; ok {
				wsIdx = rule.Workspace
			}
		}
		if rule.Monitor >= 0 && wm.findMonitor(rule.Monitor) != nil {
			monOverride = rule.Monitor
		}
		if rule.FloatSet {
			floating = rule.Float
		}
	}
	ws, ok := wm.workspaces[wsIdx]
	if !ok {
		return nil
	}
	if monOverride >= 0 && ws.Monitor != monOverride {
		if err := wm.cmdMoveWs(ws.Index, monOverride); err != nil {
			logger.Warn().Err(err).Msg("rule: failed to apply monitor override")
		}
	}

	geom := x11.Geom{X: 0, Y: 0, W: 640, H: 480}
	if mon := wm.monitorFor(ws); mon != nil {
		if floating {
			geom = wm.centeredFloatGeom(mon, 0.5, 0.5)
		} else {
			geom = mon.UsableRect(uint32(wm.appearance.Gap))
		}
	}

	frame, err := wm.createFrame(win, geom)
	if err != nil {
		return err
	}

	w := &Window{
		ID:        win,
		Class:     class,
		Title:     title,
		Workspace: ws.Index,
		Floating:  floating,
		Frame:     frame,
	}
	wm.windows[win] = w

	wasOccupied := ws.occupied()
	if floating {
		w.GeomFloating = geom
		ws.Floating[win] = true
	} else {
		ws.addTiled(win, wm.monitorRectFor(ws))
	}

	if ws.Visible {
		wm.gw.Map(frame.Parent)
		w.Mapped = true
		if err := wm.gw.Map(win); err != nil {
			return err
		}
		if err := wm.applyLayout(ws); err != nil {
			return err
		}
	}

	if !wasOccupied {
		wm.emitWorkspaceEvent()
	}

	if w.Scratch == "" {
		return wm.setFocus(win)
	}
	return nil
}

// adoptScratchWindow claims a freshly mapped window as the scratchpad named
// by wm.pendingScratch, excluding it from tiling/occupancy entirely.
func (wm *WM) adoptScratchWindow(win xproto.Window, class, title string) error {
	name := wm.pendingScratch
	wm.pendingScratch = ""

	mon := wm.monitorOf(wm.focusedWorkspace())
	if mon == nil && len(wm.monitors) > 0 {
		mon = wm.monitors[0]
	}
	geom := x11.Geom{X: 0, Y: 0, W: 640, H: 480}
	if mon != nil {
		geom = wm.centeredFloatGeom(mon, 0.8, 0.6)
	}

	frame, err := wm.createFrame(win, geom)
	if err != nil {
		return err
	}
	w := &Window{
		ID:           win,
		Class:        class,
		Title:        title,
		Workspace:    0,
		Floating:     true,
		Scratch:      name,
		GeomFloating: geom,
		Frame:        frame,
	}
	wm.windows[win] = w
	wm.scratchWins[name] = win
	wm.scratchOpen[name] = true

	wm.gw.Map(frame.Parent)
	w.Mapped = true
	if err := wm.gw.Map(win); err != nil {
		return err
	}
	return wm.setFocus(win)
}

func (wm *WM) defaultWorkspaceIndex() int {
	if ws := wm.focusedWorkspace(); ws != nil {
		return ws.Index
	}
	for idx := range wm.workspaces {
		return idx
	}
	return 0
}

// adoptExisting adopts windows already mapped before this process became
// the window manager (e.g. a restart), matching the query loop
// funkycode-marwind's Init performs via QueryTree before entering Run.
func (wm *WM) adoptExisting() error {
	children, err := wm.gw.QueryTree()
	if err != nil {
		return err
	}
	for _, win := range children {
		if wm.gw.IsOverrideRedirect(win) {
			continue
		}
		if wm.gw.IsDock(win) {
			if err := wm.adoptDock(win); err != nil {
				logger.Warn().Err(err).Msg("failed to adopt pre-existing dock")
			}
			continue
		}
		if err := wm.adoptWindow(win); err != nil {
			logger.Warn().Err(err).Msg("failed to adopt pre-existing window")
		}
	}
	return nil
}

// handleUnmap implements the destroyed-on-unmap/destroy-notify half of a
// window's lifecycle.
func (wm *WM) handleUnmap(win xproto.Window) {
	if _, ok := wm.docks[win]; ok {
		wm.forgetDock(win)
		return
	}
	w, ok := wm.windows[win]
	if !ok {
		return
	}
	wm.forgetWindow(w)
}

func (wm *WM) handleDestroy(win xproto.Window) {
	if _, ok := wm.docks[win]; ok {
		wm.forgetDock(win)
		return
	}
	w, ok := wm.windows[win]
	if !ok {
		return
	}
	wm.forgetWindow(w)
}

func (wm *WM) forgetWindow(w *Window) {
	ws := wm.workspaces[w.Workspace]
	if ws != nil {
		if w.Floating {
			delete(ws.Floating, w.ID)
		} else {
			ws.removeTiled(w.ID)
		}
	}
	wm.destroyFrame(w.Frame)
	delete(wm.windows, w.ID)

	if wm.focused == w.ID {
		wm.focused = 0
		if ws != nil {
			if next := ws.tree.firstLeaf(); next != -1 {
				wm.setFocus(ws.tree.leaves()[0])
			}
		}
		if wm.focused == 0 {
			wm.emitFocusEvent()
		}
	}
	if ws != nil {
		wm.applyLayout(ws)
		wm.emitWorkspaceEvent()
	}
}
