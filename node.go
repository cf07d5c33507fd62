package oskiplist

// node is one (key, value) slot at one level. Every level is its own
// doubly linked chain (next/prev); parent links the same item's copy on
// the level below, mirroring invariant 2: a node at level l > 0 points to
// its own copy at level l-1, and on the bottom level parent is nil.
//
// header and trailer nodes are ordinary nodes flagged isHeader/isTrailer;
// giving them parent pointers too (header chain, trailer chain) lets every
// descent loop treat "drop a level" as the same node.parent step whether
// the current node is a header, a trailer, or a promoted item.
type node[K any, V any] struct {
	key   K
	value V

	next, prev, parent *node[K, V]

	// width is the number of bottom-level items covered by the link
	// arriving at this node from its left neighbor, at this node's own
	// level. On level 0 every real node has width 1. The trailer's width
	// is maintained by the same rule as any other node's (see SPEC_FULL.md);
	// the header's width is never read.
	width int

	isHeader, isTrailer bool

	// free links this node into the cache's free list. It is only valid
	// while the node is parked there; the engine must not read it for a
	// node that is live in the structure.
	free *node[K, V]
}

// Node is a short-lived, read-only view of a node returned by the
// pointer-returning helpers (NodePtrByKey, NodePtrByIndex). It is valid
// only for as long as the caller holds a shared lock on the List that
// produced it (see List.NodePtrByKey).
type Node[K any, V any] struct {
	n *node[K, V]
}

// Key returns the node's key.
func (p Node[K, V]) Key() K { return p.n.key }

// Value returns the node's value.
func (p Node[K, V]) Value() V { return p.n.value }

// Item returns the node's (key, value) pair.
func (p Node[K, V]) Item() Item[K, V] { return Item[K, V]{Key: p.n.key, Value: p.n.value} }

// IsValid reports whether the pointer is non-nil; NodePtrByKey and
// NodePtrByIndex return a zero Node when there is no match.
func (p Node[K, V]) IsValid() bool { return p.n != nil }
