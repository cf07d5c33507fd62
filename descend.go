package oskiplist

// descendFloorOrEqual walks from the top level down to level 0, advancing
// right at each level while the next node's key is <= k, then dropping to
// the parent. It records the stopping node at every level into l.stack
// (top-to-bottom; length level+1) and the running bottom-rank-so-far into
// l.rankStack (same indexing). The bottom entry (last element of both
// slices) is the rightmost node at level 0 with key <= k: either the
// match (if one exists) or the insertion point's predecessor.
//
// rankStack accumulates a single running counter across every level
// (never reset on drop): since advancing at any level by one hop always
// skips exactly as many bottom items as that hop's width, the counter
// carries unchanged across a "drop to parent" step and ends up holding
// each recorded node's 1-based count of real items at or before it.
func (l *List[K, V]) descendFloorOrEqual(k K) ([]*node[K, V], []int) {
	l.stack = l.stack[:0]
	l.rankStack = l.rankStack[:0]
	cur := l.header
	rank := 0
	for lvl := l.level; ; lvl-- {
		for l.compare(cur.next.key, k) <= 0 {
			rank += cur.next.width
			cur = cur.next
		}
		l.stack = append(l.stack, cur)
		l.rankStack = append(l.rankStack, rank)
		if lvl == 0 {
			break
		}
		cur = cur.parent
	}
	return l.stack, l.rankStack
}

// descendStrictlyLess is the same walk with a strict "<" stopping
// predicate. Used directly for a range-removal stop key, and also
// realizes the spec's "leftmost-equal descent" for a range-removal start
// key: because keys are non-decreasing at every level (invariant 1), a
// run of duplicate keys is contiguous, so the rightmost node with
// key < k is already the predecessor of the leftmost node with key == k,
// with no separate step-left/step-right phase needed.
func (l *List[K, V]) descendStrictlyLess(k K) ([]*node[K, V], []int) {
	l.stack = l.stack[:0]
	l.rankStack = l.rankStack[:0]
	cur := l.header
	rank := 0
	for lvl := l.level; ; lvl-- {
		for l.compare(cur.next.key, k) < 0 {
			rank += cur.next.width
			cur = cur.next
		}
		l.stack = append(l.stack, cur)
		l.rankStack = append(l.rankStack, rank)
		if lvl == 0 {
			break
		}
		cur = cur.parent
	}
	return l.stack, l.rankStack
}

// descendByIndex walks down to the bottom-level node at 0-based rank u
// (the caller has already validated 0 <= u < size), recording the
// search path the same way the key-based descents do, so removeByIndex
// can reuse the point-removal splice logic.
func (l *List[K, V]) descendByIndex(u int) ([]*node[K, V], []int) {
	l.stack = l.stack[:0]
	l.rankStack = l.rankStack[:0]
	cur := l.header
	rank := -1 // header is conceptually at rank -1, trailer at rank size
	target := u
	for lvl := l.level; ; lvl-- {
		for !cur.next.isTrailer && rank+cur.next.width <= target {
			rank += cur.next.width
			cur = cur.next
		}
		l.stack = append(l.stack, cur)
		l.rankStack = append(l.rankStack, rank)
		if lvl == 0 {
			break
		}
		cur = cur.parent
	}
	return l.stack, l.rankStack
}

// descendIndexPredecessor is descendByIndex's predecessor-landing twin:
// it stops one hop short of rank target at every level (advancing only
// while doing so keeps rank strictly below target), so the bottom entry
// is the node at rank target-1 rather than target itself. Calling it with
// target == stop therefore lands on the item at rank stop-1 — the last
// item in a half-open [start, stop) range, inclusive — which is exactly
// what range removal needs on both ends.
func (l *List[K, V]) descendIndexPredecessor(target int) ([]*node[K, V], []int) {
	l.stack = l.stack[:0]
	l.rankStack = l.rankStack[:0]
	cur := l.header
	rank := -1
	for lvl := l.level; ; lvl-- {
		for !cur.next.isTrailer && rank+cur.next.width < target {
			rank += cur.next.width
			cur = cur.next
		}
		l.stack = append(l.stack, cur)
		l.rankStack = append(l.rankStack, rank)
		if lvl == 0 {
			break
		}
		cur = cur.parent
	}
	return l.stack, l.rankStack
}

// groundLeft returns the leftmost real bottom node, or nil if the list is
// empty.
func (l *List[K, V]) groundLeft() *node[K, V] {
	n := l.header
	for n.parent != nil {
		n = n.parent
	}
	if n.next.isTrailer {
		return nil
	}
	return n.next
}

// groundRight returns the rightmost real bottom node, or nil if the list
// is empty. Descends level by level the same way the search primitives
// do, so it is O(log n) rather than a linear scan.
func (l *List[K, V]) groundRight() *node[K, V] {
	cur := l.header
	for lvl := l.level; ; lvl-- {
		for !cur.next.isTrailer {
			cur = cur.next
		}
		if lvl == 0 {
			break
		}
		cur = cur.parent
	}
	if cur.isHeader {
		return nil
	}
	return cur
}
