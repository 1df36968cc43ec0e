package wm

// renderAll reapplies the layout of every visible workspace across every
// monitor, the multi-monitor generalization of
// funkycode-marwind's renderOutput/renderWorkspace pair, which walked a
// single fixed output. Used after `set-workspaces` and at startup once
// monitors and the default workspace are in place.
func (wm *WM) renderAll() error {
	var firstErr error
	for _, mon := range wm.monitors {
		if mon.Visible == 0 {
			continue
		}
		ws, ok := wm.workspaces[mon.Visible]
		if !ok {
			continue
		}
		if err := wm.applyLayout(ws); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}
