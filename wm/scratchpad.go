package wm

import "fmt"

// cmdScratchRegister implements `scratch <name>:<spawn-command>`: remembers
// the spawn command for a named scratchpad. The client itself is only
// associated with the name once adopted, via pendingScratch below.
func (wm *WM) cmdScratchRegister(nameCmd string) error {
	idx := indexByte(nameCmd, ':')
	if idx < 0 {
		return fmt.Errorf("scratch: malformed %q, want name:spawn-command", nameCmd)
	}
	name, cmd := nameCmd[:idx], nameCmd[idx+1:]
	wm.scratchpads[name] = cmd
	return nil
}

func indexByte(s string, b byte) int {
	for i := 0; i < len(s); i++ {
		if s[i] == b {
			return i
		}
	}
	return -1
}

// cmdScratchToggle implements `scratch toggle <name>`: on first use it
// spawns the registered command and remembers the name as pending so the
// next adopted window is claimed as that scratchpad instead of tiled; on
// later toggles it maps/unmaps the already-spawned client, centered at
// 80%x60% of the focused monitor, and takes/releases focus.
func (wm *WM) cmdScratchToggle(name string) error {
	spawnCmd, registered := wm.scratchpads[name]
	if !registered {
		return fmt.Errorf("scratch: unknown name %q", name)
	}

	win, spawned := wm.scratchWins[name]
	if !spawned {
		wm.pendingScratch = name
		return wm.Spawn(spawnCmd)
	}

	w := wm.windows[win]
	if w == nil || w.Frame == nil {
		return nil
	}
	if wm.scratchOpen[name] {
		wm.gw.Unmap(w.Frame.Parent)
		wm.scratchOpen[name] = false
		if wm.focused == win {
			wm.setFocus(0)
		}
		return nil
	}

	mon := wm.monitorOf(wm.focusedWorkspace())
	if mon == nil && len(wm.monitors) > 0 {
		mon = wm.monitors[0]
	}
	if mon == nil {
		return nil
	}
	g := wm.centeredFloatGeom(mon, 0.8, 0.6)
	if err := wm.moveResizeFrame(w.Frame, g); err != nil {
		return err
	}
	wm.gw.Map(w.Frame.Parent)
	wm.scratchOpen[name] = true
	return wm.setFocus(win)
}

func (wm *WM) monitorOf(ws *Workspace) *Monitor {
	if ws == nil {
		return nil
	}
	return wm.monitorFor(ws)
}
