package tui

// TreeNode is a tree vertex. Children are owned exclusively by their
// parent; no node holds a back-pointer, so cursors address nodes by index
// path instead of by reference.
type TreeNode[T any] struct {
	Value     T
	Children  []*TreeNode[T]
	Collapsed bool
}

// Leaf creates a childless node
func Leaf[T any](v T) *TreeNode[T] {
	return &TreeNode[T]{Value: v}
}

// Node creates a node with the given children
func Node[T any](v T, children ...*TreeNode[T]) *TreeNode[T] {
	return &TreeNode[T]{Value: v, Children: children}
}

// ToggleCollapsed flips the collapse flag. A collapsed node keeps its
// subtree structurally present; only rendering hides it.
func (n *TreeNode[T]) ToggleCollapsed() {
	n.Collapsed = !n.Collapsed
}

// PathCursor addresses a node as a chain of child indices from the root.
// Path[i] indexes into the children of the node reached after consuming
// Path[0..i-1]; an empty path addresses the root. Every mutator clamps or
// no-ops rather than leaving a dangling segment.
type PathCursor[T any] struct {
	Root *TreeNode[T]
	Path []int
}

// NewPathCursor creates a cursor at the root
func NewPathCursor[T any](root *TreeNode[T]) *PathCursor[T] {
	return &PathCursor[T]{Root: root}
}

// nodeAt resolves a path prefix, nil when any segment dangles
func (c *PathCursor[T]) nodeAt(path []int) *TreeNode[T] {
	n := c.Root
	for _, idx := range path {
		if n == nil || idx < 0 || idx >= len(n.Children) {
			return nil
		}
		n = n.Children[idx]
	}
	return n
}

// Node returns the node under the cursor. The path invariant guarantees
// this is non-nil as long as mutations go through cursor methods and
// Normalize runs after external shape changes.
func (c *PathCursor[T]) Node() *TreeNode[T] {
	return c.nodeAt(c.Path)
}

// Parent returns the parent of the current node, nil at the root
func (c *PathCursor[T]) Parent() *TreeNode[T] {
	if len(c.Path) == 0 {
		return nil
	}
	return c.nodeAt(c.Path[:len(c.Path)-1])
}

// AtRoot reports whether the cursor is on the root node
func (c *PathCursor[T]) AtRoot() bool {
	return len(c.Path) == 0
}

// MoveUp steps to the previous sibling, clamped. No-op at the root.
func (c *PathCursor[T]) MoveUp() {
	if len(c.Path) == 0 {
		return
	}
	last := len(c.Path) - 1
	c.Path[last] = SaturatingSub(c.Path[last], 1, 0)
}

// MoveDown steps to the next sibling, clamped to the last one. No-op at
// the root.
func (c *PathCursor[T]) MoveDown() {
	if len(c.Path) == 0 {
		return
	}
	parent := c.Parent()
	last := len(c.Path) - 1
	c.Path[last] = SaturatingAdd(c.Path[last], 1, len(parent.Children)-1)
}

// Descend enters the first child. No-op on leaves.
func (c *PathCursor[T]) Descend() {
	n := c.Node()
	if n == nil || len(n.Children) == 0 {
		return
	}
	c.Path = append(c.Path, 0)
}

// Ascend pops back to the parent. No-op at the root.
func (c *PathCursor[T]) Ascend() {
	if len(c.Path) == 0 {
		return
	}
	c.Path = c.Path[:len(c.Path)-1]
}

// ToggleCollapsed flips the collapse flag of the current node
func (c *PathCursor[T]) ToggleCollapsed() {
	if n := c.Node(); n != nil {
		n.ToggleCollapsed()
	}
}

// Normalize re-validates the path after the tree changed shape elsewhere:
// each segment is clamped to the nearest valid sibling, and the path is
// truncated where a level has no children left. Conservative policy for a
// case navigation alone never produces.
func (c *PathCursor[T]) Normalize() {
	n := c.Root
	for i := 0; i < len(c.Path); i++ {
		if len(n.Children) == 0 {
			c.Path = c.Path[:i]
			return
		}
		c.Path[i] = ClampCursor(c.Path[i], len(n.Children))
		n = n.Children[c.Path[i]]
	}
}

// PathEqual reports whether two index paths address the same node
func PathEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// TreeRow is one visible line of a flattened tree
type TreeRow[T any] struct {
	Node  *TreeNode[T]
	Path  []int
	Depth int
}

// FlattenVisible walks the tree depth-first, pruning collapsed subtrees,
// and returns the rows in render order (root first).
func FlattenVisible[T any](root *TreeNode[T]) []TreeRow[T] {
	var rows []TreeRow[T]
	var walk func(n *TreeNode[T], path []int, depth int)
	walk = func(n *TreeNode[T], path []int, depth int) {
		p := make([]int, len(path))
		copy(p, path)
		rows = append(rows, TreeRow[T]{Node: n, Path: p, Depth: depth})
		if n.Collapsed {
			return
		}
		for i, child := range n.Children {
			walk(child, append(path, i), depth+1)
		}
	}
	if root != nil {
		walk(root, nil, 0)
	}
	return rows
}
