package wm

import "github.com/BurntSushi/xgb/xproto"

// setFocus gives X input focus to win and records it as the focused window,
// emitting a `focus` event on any change regardless of cause.
func (wm *WM) setFocus(win xproto.Window) error {
	if win == wm.focused {
		return nil
	}
	if win != 0 {
		if _, ok := wm.windows[win]; !ok {
			return nil
		}
	}
	wm.focused = win
	if win == 0 {
		if err := wm.gw.SetInputFocus(wm.gw.Root, xproto.TimeCurrentTime); err != nil {
			return err
		}
		wm.emitFocusEvent()
		return nil
	}
	if err := wm.gw.SetInputFocus(win, xproto.TimeCurrentTime); err != nil {
		return err
	}
	if w := wm.windows[win]; !w.Floating {
		if ws := wm.workspaces[w.Workspace]; ws != nil {
			if leaf := ws.tree.leafFor(win); leaf != -1 {
				ws.focusLeaf = leaf
			}
		}
	}
	wm.emitFocusEvent()
	return nil
}
