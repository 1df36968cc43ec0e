package wm

// Event payloads published over IPC. Field names match the
// JSON keys the protocol specifies exactly.

type workspaceEvent struct {
	Active   int   `json:"active"`
	Occupied []int `json:"occupied"`
}

type focusEvent struct {
	Win   uint32 `json:"win"`
	Title string `json:"title"`
}

type barToggleEvent struct {
	Visible bool `json:"visible"`
}

// emitWorkspaceEvent publishes the occupancy of every workspace hosted on
// the focused monitor's... actually every workspace, since subscribers (bar
// instances per-monitor) filter by `active`/`occupied` themselves. "active"
// is the workspace currently visible on the monitor hosting the focused
// window, or the lowest-index monitor's visible workspace if nothing is
// focused.
func (wm *WM) emitWorkspaceEvent() {
	active := 0
	if ws := wm.focusedWorkspace(); ws != nil {
		active = ws.Index
	} else if len(wm.monitors) > 0 {
		active = wm.monitors[0].Visible
	}
	var occupied []int
	for idx, ws := range wm.workspaces {
		if ws.occupied() {
			occupied = append(occupied, idx)
		}
	}
	wm.emit("workspace", workspaceEvent{Active: active, Occupied: occupied})
}

func (wm *WM) emitFocusEvent() {
	w := wm.windows[wm.focused]
	title := ""
	if w != nil {
		title = w.Title
	}
	wm.emit("focus", focusEvent{Win: uint32(wm.focused), Title: title})
}

func (wm *WM) emitBarToggleEvent() {
	wm.emit("bar-toggle", barToggleEvent{Visible: wm.barVisible})
}
