package wm

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/mywm/mywm/x11"
)

// Workspace is named and ordered. The tiled sequence lives in both Tiled
// (the ordered identity other operations require) and the BSP arena
// (tree); the two are kept in lock-step by addTiled/removeTiled so that
// insertion-order tie-breaks and the layout engine agree.
type Workspace struct {
	Index int
	Label string

	Tiled    []xproto.Window
	Floating map[xproto.Window]bool

	Monitor int
	Visible bool

	tree      *bspTree
	focusLeaf int // last-focused leaf index, insertion point for new tiles
}

func newWorkspace(index int, label string) *Workspace {
	return &Workspace{
		Index:     index,
		Label:     label,
		Floating:  make(map[xproto.Window]bool),
		tree:      newBSPTree(),
		focusLeaf: -1,
		Monitor:   -1,
	}
}

// addTiled inserts win into the BSP tree and the ordered Tiled sequence.
func (ws *Workspace) addTiled(win xproto.Window, usable x11.Geom) {
	leaf := ws.tree.insert(win, ws.focusLeaf, usable)
	ws.focusLeaf = leaf
	ws.Tiled = append(ws.Tiled, win)
}

// removeTiled removes win from both the tree and the ordered sequence.
func (ws *Workspace) removeTiled(win xproto.Window) {
	leaf := ws.tree.leafFor(win)
	ws.tree.remove(leaf)
	for i, w := range ws.Tiled {
		if w == win {
			ws.Tiled = append(ws.Tiled[:i], ws.Tiled[i+1:]...)
			break
		}
	}
	if ws.focusLeaf == leaf {
		ws.focusLeaf = ws.tree.firstLeaf()
	}
}

// containsWindow reports whether win is hosted by this workspace, tiled or
// floating.
func (ws *Workspace) containsWindow(win xproto.Window) bool {
	if ws.Floating[win] {
		return true
	}
	for _, w := range ws.Tiled {
		if w == win {
			return true
		}
	}
	return false
}

// occupied reports whether the workspace hosts at least one window, tiled
// or floating — the occupancy bit the `workspace` IPC event publishes.
func (ws *Workspace) occupied() bool {
	return len(ws.Tiled) > 0 || len(ws.Floating) > 0
}
