package wm

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/mywm/mywm/x11"
)

// adoptDock maps a _NET_WM_WINDOW_TYPE_DOCK window directly, without
// reparenting it into a decoration frame — a panel positions and sizes
// itself — and folds its reserved strut into the monitor its geometry
// overlaps, so the BSP layout excludes that band.
func (wm *WM) adoptDock(win xproto.Window) error {
	if err := wm.gw.SelectPropertyChanges(win); err != nil {
		logger.Warn().Err(err).Msg("failed to select property changes on dock")
	}
	mon := wm.monitorForDock(win)
	if mon == nil && len(wm.monitors) > 0 {
		mon = wm.monitors[0]
	}
	if mon != nil {
		wm.docks[win] = mon.ID
	}
	if err := wm.gw.Map(win); err != nil {
		return err
	}
	wm.recomputeStruts()
	return wm.reapplyAllVisible()
}

// monitorForDock picks the monitor whose rect contains the dock window's
// center, falling back to nil if its geometry can't be read.
func (wm *WM) monitorForDock(win xproto.Window) *Monitor {
	geom, err := wm.gw.GetGeometry(win)
	if err != nil {
		return nil
	}
	cx, cy := geom.Center()
	for _, m := range wm.monitors {
		if cx >= int32(m.Rect.X) && cx < int32(m.Rect.X+m.Rect.W) &&
			cy >= int32(m.Rect.Y) && cy < int32(m.Rect.Y+m.Rect.H) {
			return m
		}
	}
	return nil
}

// recomputeStruts re-derives every monitor's reserved band from scratch,
// summing the strut each live dock assigned to it currently reports, so a
// dock that republishes its property or disappears is reflected at once.
func (wm *WM) recomputeStruts() {
	for _, m := range wm.monitors {
		m.Struts = x11.Dimensions{}
	}
	for win, monID := range wm.docks {
		d, ok := wm.gw.GetStrutPartial(win)
		if !ok {
			continue
		}
		m := wm.findMonitor(monID)
		if m == nil {
			continue
		}
		m.Struts.Top += d.Top
		m.Struts.Bottom += d.Bottom
		m.Struts.Left += d.Left
		m.Struts.Right += d.Right
	}
}

// forgetDock drops a dock's strut accounting once it unmaps or is
// destroyed, and reflows every visible workspace on its former monitor.
func (wm *WM) forgetDock(win xproto.Window) {
	if _, ok := wm.docks[win]; !ok {
		return
	}
	delete(wm.docks, win)
	wm.recomputeStruts()
	wm.reapplyAllVisible()
}

// handlePropertyNotify reacts to a tracked dock republishing its strut —
// common for panels that map empty and then set their real reserved size
// once they've measured their own content.
func (wm *WM) handlePropertyNotify(e xproto.PropertyNotifyEvent) {
	if _, ok := wm.docks[e.Window]; !ok {
		return
	}
	if e.Atom != wm.gw.Atom("_NET_WM_STRUT_PARTIAL") && e.Atom != wm.gw.Atom("_NET_WM_STRUT") {
		return
	}
	wm.recomputeStruts()
	wm.reapplyAllVisible()
}
