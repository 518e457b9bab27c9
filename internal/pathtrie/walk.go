package pathtrie

import "iter"

// WalkPrefix returns the visible nodes at or beneath prefix, keyed by full
// key. The sequence is lazy and restartable: each range starts over from the
// prefix node. When no node exists for the prefix the sequence is empty.
//
// Order is root-first, then breadth-first over child lists in the order they
// were enqueued: the prefix node (if visible) comes first, then each pending
// child list is walked element by element, with every element's own child
// list appended to the queue before the element is yielded. Shallow entries
// therefore always precede their own descendants, while descendants of
// different branches may interleave at the same depth.
//
// Invisible nodes are never yielded, but their children are still walked; an
// invisible intermediate node can have visible descendants.
func (t *Trie[V]) WalkPrefix(prefix string) iter.Seq2[string, *Node[V]] {
	return func(yield func(string, *Node[V]) bool) {
		n := t.Find(prefix)
		if n == nil {
			return
		}
		if n.visible && !yield(n.fullKey, n) {
			return
		}
		var queue [][]*Node[V]
		if n.children != nil {
			queue = append(queue, n.children)
		}
		for len(queue) > 0 {
			list := queue[0]
			queue = queue[1:]
			for _, c := range list {
				if c.children != nil {
					queue = append(queue, c.children)
				}
				if c.visible && !yield(c.fullKey, c) {
					return
				}
			}
		}
	}
}
