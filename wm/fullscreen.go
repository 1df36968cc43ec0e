package wm

// cmdFullscreenToggle implements `fullscreen toggle`: the window's
// frame grows to the monitor rect with zero borders; other tiled frames
// remain mapped but are obscured; untoggling reapplies the layout.
func (wm *WM) cmdFullscreenToggle() error {
	w, ok := wm.windows[wm.focused]
	if !ok || w.Frame == nil {
		return nil
	}
	ws := wm.workspaces[w.Workspace]
	if ws == nil {
		return nil
	}
	w.Fullscreen = !w.Fullscreen
	if w.Fullscreen {
		w.Frame.OuterBorder = 0
		w.Frame.InnerBorder = 0
	} else {
		w.Frame.OuterBorder = uint32(wm.appearance.BorderOuter)
		w.Frame.InnerBorder = uint32(wm.appearance.BorderInner)
	}
	return wm.applyLayout(ws)
}
