package wm

// cmdClose implements `close`: asks the focused client to
// close itself via WM_DELETE_WINDOW, falling back to KillClient if it never
// advertised support for the protocol — the same two-step
// funkycode-marwind's manager package performs for its take-focus handshake
// counterpart.
func (wm *WM) cmdClose() error {
	win := wm.focused
	if win == 0 {
		return nil
	}
	supported, err := wm.gw.SendDeleteWindow(win)
	if err != nil {
		return err
	}
	if supported {
		return nil
	}
	return wm.gw.KillClient(win)
}
