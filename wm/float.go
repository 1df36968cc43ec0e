package wm

// cmdFloatToggle implements `float toggle`: removes the window from the BSP leaf set (collapsing its node)
// or reinserts it at the previously focused leaf.
func (wm *WM) cmdFloatToggle() error {
	w, ok := wm.windows[wm.focused]
	if !ok {
		return nil
	}
	ws := wm.workspaces[w.Workspace]
	if ws == nil {
		return nil
	}

	if w.Floating {
		delete(ws.Floating, w.ID)
		w.Floating = false
		ws.addTiled(w.ID, wm.monitorRectFor(ws))
		return wm.applyLayout(ws)
	}

	ws.removeTiled(w.ID)
	w.Floating = true
	ws.Floating[w.ID] = true

	g := w.GeomFloating
	if g.W == 0 || g.H == 0 {
		if mon := wm.monitorFor(ws); mon != nil {
			g = wm.centeredFloatGeom(mon, 1.0/3, 1.0/3)
		}
	}
	w.GeomFloating = g
	if w.Frame != nil {
		if err := wm.moveResizeFrame(w.Frame, g); err != nil {
			return err
		}
	}
	return wm.applyLayout(ws)
}
