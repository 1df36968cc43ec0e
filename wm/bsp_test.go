package wm

import (
	"testing"

	"github.com/mywm/mywm/x11"
)

func TestBSPTreeInsertSplitsLongerDimension(t *testing.T) {
	tree := newBSPTree()
	usable := x11.Geom{X: 0, Y: 0, W: 1000, H: 500}
	tree.insert(1, -1, usable)
	tree.insert(2, tree.firstLeaf(), usable)

	if got := len(tree.leaves()); got != 2 {
		t.Fatalf("leaves = %d, want 2", got)
	}
	if got := tree.nodes[tree.root].axis; got != axisVertical {
		t.Errorf("split axis = %v, want axisVertical for a wider-than-tall rect", got)
	}
}

func TestBSPTreeInsertSplitsTallerDimension(t *testing.T) {
	tree := newBSPTree()
	usable := x11.Geom{X: 0, Y: 0, W: 500, H: 1000}
	tree.insert(1, -1, usable)
	tree.insert(2, tree.firstLeaf(), usable)

	if got := tree.nodes[tree.root].axis; got != axisHorizontal {
		t.Errorf("split axis = %v, want axisHorizontal for a taller-than-wide rect", got)
	}
}

func TestBSPTreeRemoveCollapsesSiblingIntoParent(t *testing.T) {
	tree := newBSPTree()
	usable := x11.Geom{X: 0, Y: 0, W: 1000, H: 1000}
	tree.insert(1, -1, usable)
	tree.insert(2, tree.firstLeaf(), usable)

	tree.remove(tree.leafFor(1))

	leaves := tree.leaves()
	if len(leaves) != 1 || leaves[0] != 2 {
		t.Fatalf("leaves after remove = %v, want [2]", leaves)
	}
}

func TestBSPTreeRemoveLastWindowEmptiesTree(t *testing.T) {
	tree := newBSPTree()
	usable := x11.Geom{X: 0, Y: 0, W: 1000, H: 1000}
	tree.insert(1, -1, usable)
	tree.remove(tree.leafFor(1))

	if tree.root != -1 {
		t.Errorf("root = %d, want -1 after removing the sole window", tree.root)
	}
	if got := tree.firstLeaf(); got != -1 {
		t.Errorf("firstLeaf = %d, want -1 on an empty tree", got)
	}
}

func TestBSPTreePromoteSwapsIntoFirstLeaf(t *testing.T) {
	tree := newBSPTree()
	usable := x11.Geom{X: 0, Y: 0, W: 1000, H: 1000}
	tree.insert(1, -1, usable)
	tree.insert(2, tree.firstLeaf(), usable)
	tree.insert(3, tree.firstLeaf(), usable)

	tree.promote(3)
	if got := tree.nodes[tree.firstLeaf()].win; got != 3 {
		t.Errorf("firstLeaf win after promote(3) = %d, want 3", got)
	}
}

func TestBSPTreeSwapExchangesLeafPositions(t *testing.T) {
	tree := newBSPTree()
	usable := x11.Geom{X: 0, Y: 0, W: 1000, H: 1000}
	tree.insert(1, -1, usable)
	tree.insert(2, tree.firstLeaf(), usable)

	aIdx, bIdx := tree.leafFor(1), tree.leafFor(2)
	tree.swap(1, 2)
	if tree.nodes[aIdx].win != 2 || tree.nodes[bIdx].win != 1 {
		t.Error("swap(1, 2) did not exchange leaf positions")
	}
}

func TestBSPTreeResizeRatioClampsToRange(t *testing.T) {
	tests := []struct {
		name  string
		delta float64
		want  float64
	}{
		{"grow past max clamps to 0.9", 10, 0.9},
		{"shrink past min clamps to 0.1", -10, 0.1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tree := newBSPTree()
			usable := x11.Geom{X: 0, Y: 0, W: 1000, H: 1000}
			tree.insert(1, -1, usable)
			tree.insert(2, tree.firstLeaf(), usable)

			if ok := tree.resizeRatio(2, axisVertical, tc.delta); !ok {
				t.Fatal("resizeRatio reported no matching ancestor")
			}
			parent := tree.nodes[tree.leafFor(2)].parent
			if got := tree.nodes[parent].ratio; got != tc.want {
				t.Errorf("ratio = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestBSPTreeResizeRatioNoMatchingAncestor(t *testing.T) {
	tree := newBSPTree()
	tree.insert(1, -1, x11.Geom{W: 1000, H: 1000})

	if tree.resizeRatio(1, axisVertical, 0.1) {
		t.Error("resizeRatio on a single-leaf tree: want false, no ancestor to adjust")
	}
}

func TestBSPTreeLeafGeomsShrinksByHalfGap(t *testing.T) {
	tree := newBSPTree()
	usable := x11.Geom{X: 0, Y: 0, W: 1000, H: 1000}
	tree.insert(1, -1, usable)

	geoms := tree.leafGeoms(usable, 20)
	g, ok := geoms[1]
	if !ok {
		t.Fatal("leafGeoms missing window 1")
	}
	if g.X != 10 || g.Y != 10 || g.W != 980 || g.H != 980 {
		t.Errorf("leafGeoms(gap=20) = %+v, want inset by 10 on every side", g)
	}
}
