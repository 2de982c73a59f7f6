package main

import "testing"

func TestSplitNestsOutermostLeaf(t *testing.T) {
	root := newPane()
	if countLeaves(root) != 1 {
		t.Fatalf("fresh tree has %d leaves", countLeaves(root))
	}

	// First split turns the root leaf into a row of two
	splitLeaf(rightmostLeaf(root), true)
	if countLeaves(root) != 2 {
		t.Fatalf("leaves = %d, want 2", countLeaves(root))
	}
	if !root.Value || len(root.Children) != 2 {
		t.Fatal("root did not become a row split")
	}

	// Second rightward split nests inside the right child, not the root
	splitLeaf(rightmostLeaf(root), true)
	if countLeaves(root) != 3 {
		t.Fatalf("leaves = %d, want 3", countLeaves(root))
	}
	if len(root.Children) != 2 {
		t.Errorf("root grew to %d children, want nested halving", len(root.Children))
	}
	right := root.Children[1]
	if len(right.Children) != 2 {
		t.Errorf("right child has %d children, want 2", len(right.Children))
	}
	if len(root.Children[0].Children) != 0 {
		t.Error("left leaf was split by a rightward command")
	}
}

func TestSplitLeftmostIndependent(t *testing.T) {
	root := newPane()
	splitLeaf(rightmostLeaf(root), true)
	splitLeaf(leftmostLeaf(root), false)

	left, right := root.Children[0], root.Children[1]
	if len(left.Children) != 2 || left.Value {
		t.Error("leftmost leaf did not become a column split")
	}
	if len(right.Children) != 0 {
		t.Error("leftward command touched the right leaf")
	}
}

func TestLeafSelectors(t *testing.T) {
	root := newPane()
	if leftmostLeaf(root) != root || rightmostLeaf(root) != root {
		t.Fatal("selectors on a leaf must return the leaf itself")
	}

	splitLeaf(root, true)
	if leftmostLeaf(root) != root.Children[0] {
		t.Error("leftmost leaf wrong")
	}
	if rightmostLeaf(root) != root.Children[1] {
		t.Error("rightmost leaf wrong")
	}
}
