// Package selection models the check state of the file tree the user picks
// analysis targets from.
package selection

// State is the check state of a tree node.
type State int

const (
	// Unchecked nodes are not selected.
	Unchecked State = iota
	// Partial directories have some, but not all, children selected.
	Partial
	// Checked nodes are selected.
	Checked
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Checked:
		return "checked"
	case Partial:
		return "partial"
	default:
		return "unchecked"
	}
}

// Node represents a file or directory in the selection tree.
type Node struct {
	Path     string
	Name     string
	IsDir    bool
	State    State
	Children []*Node
	Parent   *Node
}

// Tree indexes a node hierarchy by path and applies check-box semantics to it.
// It is owned by the UI thread; no synchronization is done.
type Tree struct {
	root  *Node
	nodes map[string]*Node
}

// NewTree indexes the hierarchy under root. A nil root gives an empty tree.
func NewTree(root *Node) *Tree {
	t := &Tree{root: root, nodes: make(map[string]*Node)}
	t.index(root, nil)
	return t
}

func (t *Tree) index(n, parent *Node) {
	if n == nil {
		return
	}
	n.Parent = parent
	t.nodes[n.Path] = n
	for _, c := range n.Children {
		t.index(c, n)
	}
}

// Root returns the root node, or nil for an empty tree.
func (t *Tree) Root() *Node {
	return t.root
}

// RootPath returns the path of the root node, or "" for an empty tree.
func (t *Tree) RootPath() string {
	if t.root == nil {
		return ""
	}
	return t.root.Path
}

// Node looks up a node by path.
func (t *Tree) Node(path string) (*Node, bool) {
	n, ok := t.nodes[path]
	return n, ok
}

// Children returns the child paths of path. The empty path lists the root.
func (t *Tree) Children(path string) []string {
	if path == "" {
		if t.root == nil {
			return nil
		}
		return []string{t.root.Path}
	}
	n, ok := t.nodes[path]
	if !ok {
		return nil
	}
	out := make([]string, 0, len(n.Children))
	for _, c := range n.Children {
		out = append(out, c.Path)
	}
	return out
}

// IsBranch reports whether path is a directory or the virtual top level.
func (t *Tree) IsBranch(path string) bool {
	if path == "" {
		return true
	}
	n, ok := t.nodes[path]
	return ok && n.IsDir
}

// State returns the check state of path; unknown paths are Unchecked.
func (t *Tree) State(path string) State {
	if n, ok := t.nodes[path]; ok {
		return n.State
	}
	return Unchecked
}

// SetChecked checks or unchecks path together with all its descendants and
// recomputes the state of its ancestors. Unknown paths are ignored.
func (t *Tree) SetChecked(path string, checked bool) {
	n, ok := t.nodes[path]
	if !ok {
		return
	}
	s := Unchecked
	if checked {
		s = Checked
	}
	cascade(n, s)
	for p := n.Parent; p != nil; p = p.Parent {
		p.State = aggregate(p.Children)
	}
}

// SetState sets the state of a single node without touching relatives.
// It exists for restoring arbitrary states, e.g. from fixtures.
func (t *Tree) SetState(path string, s State) {
	if n, ok := t.nodes[path]; ok {
		n.State = s
	}
}

func cascade(n *Node, s State) {
	n.State = s
	for _, c := range n.Children {
		cascade(c, s)
	}
}

func aggregate(children []*Node) State {
	if len(children) == 0 {
		return Unchecked
	}
	first := children[0].State
	for _, c := range children[1:] {
		if c.State != first {
			return Partial
		}
	}
	return first
}

// CheckedPaths returns every Checked node in pre-order. Partial nodes are
// skipped but their descendants are visited. A checked directory and its
// checked descendants are all listed. The result is freshly allocated and
// never nil.
func (t *Tree) CheckedPaths() []string {
	out := []string{}
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.State == Checked {
			out = append(out, n.Path)
		}
		for _, c := range n.Children {
			walk(c)
		}
	}
	if t.root != nil {
		walk(t.root)
	}
	return out
}

// Count returns the number of nodes in the tree.
func (t *Tree) Count() int {
	return len(t.nodes)
}
