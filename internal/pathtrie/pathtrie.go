package pathtrie

import "strings"

// Node is a single entry in a path trie. It carries the sub-key relative to
// its parent, the full key from the root, an insertion-ordered child list and
// a visibility flag. A node may exist purely to index its descendants; such a
// node is invisible and is skipped by walks, but its identity is stable for
// the lifetime of the trie.
type Node[V any] struct {
	subKey  string
	fullKey string
	parent  *Node[V]
	// children stays nil until the first child is added; walks use the
	// nil/non-nil distinction to short-circuit.
	children []*Node[V]
	visible  bool

	// Value is the payload recorded against this node's exact key. It is
	// meaningful only while the node is visible.
	Value V
}

// SubKey returns the path segment relative to the parent node.
func (n *Node[V]) SubKey() string { return n.subKey }

// FullKey returns the complete path key from the root to this node.
func (n *Node[V]) FullKey() string { return n.fullKey }

// Parent returns the parent node, or nil for the root.
func (n *Node[V]) Parent() *Node[V] { return n.parent }

// Visible reports whether an entry was recorded against this exact key.
func (n *Node[V]) Visible() bool { return n.visible }

// SetVisible flips the visibility flag. It never touches the payload.
func (n *Node[V]) SetVisible(v bool) { n.visible = v }

// Reset hides the node and discards its payload. Children are kept attached
// and remain independently addressable and independently visible.
func (n *Node[V]) Reset() {
	n.visible = false
	var zero V
	n.Value = zero
}

// ClearChildren detaches every child. Only the trie root uses this, when the
// whole structure is cleared.
func (n *Node[V]) ClearChildren() { n.children = nil }

func (n *Node[V]) child(sub string) *Node[V] {
	for _, c := range n.children {
		if strings.EqualFold(c.subKey, sub) {
			return c
		}
	}
	return nil
}

// Trie is a mutable tree of Nodes keyed by hierarchical path keys. The root
// exists from construction and is never replaced. Child matching is
// case-insensitive, so "Person.Name" and "person.name" resolve to the same
// node; the node keeps the casing it was first created with.
//
// A Trie is not safe for concurrent use, and mutating it while a walk is in
// progress is undefined.
type Trie[V any] struct {
	root *Node[V]
}

// New returns a trie holding only the (invisible) root node.
func New[V any]() *Trie[V] {
	return &Trie[V]{root: &Node[V]{}}
}

// Root returns the root node. Its sub-key and full key are the empty path.
func (t *Trie[V]) Root() *Node[V] { return t.root }

// GetOrCreate walks the trie along key's segments, materializing missing
// nodes, and returns the terminal node. Created nodes are invisible;
// recording an entry is the caller's concern. The empty key addresses the
// root. Repeated calls with equivalent keys return the same node.
func (t *Trie[V]) GetOrCreate(key string) *Node[V] {
	n := t.root
	for seg := range Segments(key) {
		c := n.child(seg.Sub)
		if c == nil {
			c = &Node[V]{subKey: seg.Sub, fullKey: seg.Full, parent: n}
			n.children = append(n.children, c)
		}
		n = c
	}
	return n
}

// Find walks the trie along key's segments without creating anything. It
// returns nil as soon as a required child is missing. The returned node may
// itself be invisible.
func (t *Trie[V]) Find(key string) *Node[V] {
	n := t.root
	for seg := range Segments(key) {
		if n = n.child(seg.Sub); n == nil {
			return nil
		}
	}
	return n
}
