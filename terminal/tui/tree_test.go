package tui

import "testing"

func testTree() *TreeNode[string] {
	return Node("root",
		Node("fruit",
			Leaf[string]("apple"), Leaf[string]("banana"), Leaf[string]("cherry"),
		),
		Node("veg",
			Leaf[string]("carrot"),
		),
		Leaf[string]("misc"),
	)
}

func TestPathCursorSiblingMoves(t *testing.T) {
	c := NewPathCursor(testTree())

	// At root both moves are no-ops
	c.MoveUp()
	c.MoveDown()
	if !c.AtRoot() {
		t.Fatal("root moves changed the path")
	}

	c.Descend()
	if !PathEqual(c.Path, []int{0}) {
		t.Fatalf("path = %v, want [0]", c.Path)
	}

	c.MoveDown()
	c.MoveDown()
	if !PathEqual(c.Path, []int{2}) {
		t.Fatalf("path = %v, want [2]", c.Path)
	}

	// Clamped at last sibling
	c.MoveDown()
	if !PathEqual(c.Path, []int{2}) {
		t.Fatalf("path = %v, want clamp at [2]", c.Path)
	}

	c.MoveUp()
	c.MoveUp()
	c.MoveUp()
	if !PathEqual(c.Path, []int{0}) {
		t.Fatalf("path = %v, want clamp at [0]", c.Path)
	}
}

func TestPathCursorDescendAscend(t *testing.T) {
	c := NewPathCursor(testTree())

	c.Descend()
	c.Descend()
	if !PathEqual(c.Path, []int{0, 0}) {
		t.Fatalf("path = %v", c.Path)
	}
	if c.Node().Value != "apple" {
		t.Errorf("node = %q, want apple", c.Node().Value)
	}

	// Leaves have nothing to enter
	c.Descend()
	if !PathEqual(c.Path, []int{0, 0}) {
		t.Fatalf("descend on leaf changed path to %v", c.Path)
	}

	c.Ascend()
	if !PathEqual(c.Path, []int{0}) {
		t.Fatalf("path = %v, want [0]", c.Path)
	}
	c.Ascend()
	if !c.AtRoot() {
		t.Fatal("not at root after ascending")
	}
	c.Ascend()
	if !c.AtRoot() {
		t.Fatal("ascend at root changed path")
	}
}

func TestPathCursorDescendRestoresPosition(t *testing.T) {
	c := NewPathCursor(testTree())
	c.Descend()
	c.MoveDown() // on "veg"

	c.Descend()
	c.Ascend()
	if !PathEqual(c.Path, []int{1}) {
		t.Fatalf("path = %v, want [1] restored", c.Path)
	}
}

func TestPathCursorNormalize(t *testing.T) {
	root := testTree()
	c := NewPathCursor(root)
	c.Descend()
	c.Descend()
	c.MoveDown()
	c.MoveDown() // [0 2] cherry

	// Shrink fruit to one child; path segment must clamp
	root.Children[0].Children = root.Children[0].Children[:1]
	c.Normalize()
	if !PathEqual(c.Path, []int{0, 0}) {
		t.Fatalf("path = %v, want [0 0]", c.Path)
	}

	// Remove all children; path truncates to the parent
	root.Children[0].Children = nil
	c.Normalize()
	if !PathEqual(c.Path, []int{0}) {
		t.Fatalf("path = %v, want [0]", c.Path)
	}
}

func TestFlattenVisible(t *testing.T) {
	root := testTree()

	rows := FlattenVisible(root)
	names := make([]string, len(rows))
	for i, r := range rows {
		names[i] = r.Node.Value
	}
	want := []string{"root", "fruit", "apple", "banana", "cherry", "veg", "carrot", "misc"}
	if len(names) != len(want) {
		t.Fatalf("got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("row %d = %q, want %q", i, names[i], want[i])
		}
	}

	// Collapsing prunes the subtree but keeps the node itself
	root.Children[0].Collapsed = true
	rows = FlattenVisible(root)
	names = names[:0]
	for _, r := range rows {
		names = append(names, r.Node.Value)
	}
	want = []string{"root", "fruit", "veg", "carrot", "misc"}
	if len(names) != len(want) {
		t.Fatalf("collapsed: got %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("collapsed row %d = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestFlattenVisibleDepthAndPath(t *testing.T) {
	rows := FlattenVisible(testTree())

	for _, r := range rows {
		if len(r.Path) != r.Depth {
			t.Errorf("%q: depth %d, path %v", r.Node.Value, r.Depth, r.Path)
		}
	}

	// Paths must round-trip through a cursor
	c := NewPathCursor(testTree())
	for _, r := range rows {
		c.Path = r.Path
		if c.Node() == nil {
			t.Errorf("path %v does not resolve", r.Path)
		} else if c.Node().Value != r.Node.Value {
			t.Errorf("path %v resolves to %q, want %q", r.Path, c.Node().Value, r.Node.Value)
		}
	}
}
