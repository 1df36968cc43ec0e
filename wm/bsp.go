package wm

import (
	"github.com/BurntSushi/xgb/xproto"
	"github.com/mywm/mywm/x11"
)

// axis names the direction of a BSP split's dividing line.
type axis uint8

const (
	axisVertical   axis = iota // dividing line is vertical: left/right children
	axisHorizontal             // dividing line is horizontal: top/bottom children
)

// bspNode is one node of a workspace's BSP tree. A node is a leaf iff a == b == -1.
type bspNode struct {
	parent int
	a, b   int
	axis   axis
	ratio  float64
	win    xproto.Window
}

func (n *bspNode) isLeaf() bool { return n.a == -1 && n.b == -1 }

// bspTree is the per-workspace arena. Free slots left behind by removal are
// recycled by future inserts instead of leaking.
type bspTree struct {
	nodes []bspNode
	free  []int
	root  int // -1 when empty
}

func newBSPTree() *bspTree {
	return &bspTree{root: -1}
}

func (t *bspTree) alloc(n bspNode) int {
	if len(t.free) > 0 {
		idx := t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		t.nodes[idx] = n
		return idx
	}
	t.nodes = append(t.nodes, n)
	return len(t.nodes) - 1
}

func (t *bspTree) free_(idx int) {
	t.free = append(t.free, idx)
}

// firstLeaf returns the leftmost leaf. Ties for "first leaf" follow
// insertion order, via always descending into the `a` child, which
// insert() keeps as the pre-existing subtree.
func (t *bspTree) firstLeaf() int {
	if t.root == -1 {
		return -1
	}
	idx := t.root
	for !t.nodes[idx].isLeaf() {
		idx = t.nodes[idx].a
	}
	return idx
}

// leafFor returns the index of the leaf node holding win, or -1.
func (t *bspTree) leafFor(win xproto.Window) int {
	for i := range t.nodes {
		n := &t.nodes[i]
		if n.isLeaf() && n.win == win && !t.isFree(i) {
			return i
		}
	}
	return -1
}

func (t *bspTree) isFree(idx int) bool {
	for _, f := range t.free {
		if f == idx {
			return true
		}
	}
	return false
}

// leaves returns every live leaf window id in left-to-right tree order
// (`a` child before `b` child), which differs from insertion order once a
// leaf other than the last one is split.
func (t *bspTree) leaves() []xproto.Window {
	var out []xproto.Window
	var walk func(idx int)
	walk = func(idx int) {
		if idx == -1 {
			return
		}
		n := &t.nodes[idx]
		if n.isLeaf() {
			out = append(out, n.win)
			return
		}
		walk(n.a)
		walk(n.b)
	}
	walk(t.root)
	return out
}

// insert adds win as a new leaf, splitting the target leaf along the
// longer of its two dimensions. focus is the leaf index to split; if it is
// not a live leaf, the first leaf is used instead. usable is the current
// monitor usable rect, partitioned to find the target leaf's rect and so
// its split axis; the very first insertion only creates the root leaf and
// does not consult it.
func (t *bspTree) insert(win xproto.Window, focus int, usable x11.Geom) int {
	if t.root == -1 {
		idx := t.alloc(bspNode{parent: -1, a: -1, b: -1, win: win})
		t.root = idx
		return idx
	}

	target := focus
	if target < 0 || target >= len(t.nodes) || t.isFree(target) || !t.nodes[target].isLeaf() {
		target = t.firstLeaf()
	}

	rects := t.geoms(usable)
	targetRect := rects[target]
	splitAxis := axisVertical
	if targetRect.H > targetRect.W {
		splitAxis = axisHorizontal
	}

	oldWin := t.nodes[target].win
	parent := t.nodes[target].parent

	aIdx := t.alloc(bspNode{parent: target, a: -1, b: -1, win: oldWin})
	bIdx := t.alloc(bspNode{parent: target, a: -1, b: -1, win: win})

	t.nodes[target] = bspNode{
		parent: parent,
		a:      aIdx,
		b:      bIdx,
		axis:   splitAxis,
		ratio:  0.5,
		win:    0,
	}
	return bIdx
}

// remove collapses leafIdx and promotes its sibling into the parent's slot
// — an index move, not a pointer rewrite.
func (t *bspTree) remove(leafIdx int) {
	if leafIdx == -1 {
		return
	}
	parent := t.nodes[leafIdx].parent
	if parent == -1 {
		// Removing the sole window: the tree becomes empty.
		t.free_(leafIdx)
		t.root = -1
		return
	}

	p := &t.nodes[parent]
	var siblingIdx int
	if p.a == leafIdx {
		siblingIdx = p.b
	} else {
		siblingIdx = p.a
	}
	sibling := t.nodes[siblingIdx]

	grandparent := p.parent
	t.nodes[parent] = sibling
	t.nodes[parent].parent = grandparent
	if sibling.a != -1 {
		t.nodes[sibling.a].parent = parent
	}
	if sibling.b != -1 {
		t.nodes[sibling.b].parent = parent
	}
	if t.root == siblingIdx {
		t.root = parent
	}

	t.free_(leafIdx)
	t.free_(siblingIdx)
}

// promote swaps win into the root's first leaf slot.
func (t *bspTree) promote(win xproto.Window) {
	first := t.firstLeaf()
	if first == -1 {
		return
	}
	leaf := t.leafFor(win)
	if leaf == -1 || leaf == first {
		return
	}
	t.nodes[first].win, t.nodes[leaf].win = t.nodes[leaf].win, t.nodes[first].win
}

// swap exchanges the leaf positions of a and b.
func (t *bspTree) swap(a, b xproto.Window) {
	ai, bi := t.leafFor(a), t.leafFor(b)
	if ai == -1 || bi == -1 {
		return
	}
	t.nodes[ai].win, t.nodes[bi].win = t.nodes[bi].win, t.nodes[ai].win
}

// resizeRatio adjusts the ratio of the nearest ancestor of win whose split
// axis matches want, clamped to [0.1, 0.9].
func (t *bspTree) resizeRatio(win xproto.Window, want axis, delta float64) bool {
	idx := t.leafFor(win)
	if idx == -1 {
		return false
	}
	for idx != -1 {
		parent := t.nodes[idx].parent
		if parent == -1 {
			return false
		}
		p := &t.nodes[parent]
		if p.axis == want {
			r := p.ratio + delta
			if r < 0.1 {
				r = 0.1
			}
			if r > 0.9 {
				r = 0.9
			}
			p.ratio = r
			return true
		}
		idx = parent
	}
	return false
}

// geoms computes a rectangle per live node (including internal nodes, for
// insert()'s axis decision) by recursively partitioning usable along each
// node's axis/ratio.
func (t *bspTree) geoms(usable x11.Geom) map[int]x11.Geom {
	out := make(map[int]x11.Geom, len(t.nodes))
	if t.root == -1 {
		return out
	}
	var walk func(idx int, rect x11.Geom)
	walk = func(idx int, rect x11.Geom) {
		out[idx] = rect
		n := &t.nodes[idx]
		if n.isLeaf() {
			return
		}
		switch n.axis {
		case axisVertical:
			leftW := uint32(float64(rect.W) * n.ratio)
			left := x11.Geom{X: rect.X, Y: rect.Y, W: leftW, H: rect.H}
			right := x11.Geom{X: rect.X + leftW, Y: rect.Y, W: rect.W - leftW, H: rect.H}
			walk(n.a, left)
			walk(n.b, right)
		case axisHorizontal:
			topH := uint32(float64(rect.H) * n.ratio)
			top := x11.Geom{X: rect.X, Y: rect.Y, W: rect.W, H: topH}
			bottom := x11.Geom{X: rect.X, Y: rect.Y + topH, W: rect.W, H: rect.H - topH}
			walk(n.a, top)
			walk(n.b, bottom)
		}
	}
	walk(t.root, usable)
	return out
}

// leafGeoms returns the final, gap-inset rectangle for every managed window
// — the layout engine's output.
func (t *bspTree) leafGeoms(usable x11.Geom, gap uint32) map[xproto.Window]x11.Geom {
	rects := t.geoms(usable)
	out := make(map[xproto.Window]x11.Geom)
	for idx, rect := range rects {
		n := &t.nodes[idx]
		if n.isLeaf() && !t.isFree(idx) {
			out[n.win] = rect.Shrink(gap / 2)
		}
	}
	return out
}
