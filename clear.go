package oskiplist

// ClearRetainingCapacity releases every real node to the cache's free
// list and collapses the list back to a single empty level. The arena
// backing the cache is preserved, so a subsequent burst of Puts reuses
// the released nodes instead of growing the arena again.
func (l *List[K, V]) ClearRetainingCapacity() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.releaseAllLevels()
	l.header, l.trailer = l.newLevelPair(nil, nil, 0)
	l.level = 0
	l.size = 0
}

// ClearAndFree destroys every node this List has ever allocated,
// including free-listed ones, and resets the arena to its initial size
// before reinitializing a single empty level.
func (l *List[K, V]) ClearAndFree() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache.clearAll()
	l.header, l.trailer = l.newLevelPair(nil, nil, 0)
	l.level = 0
	l.size = 0
}

// releaseAllLevels walks every level of every chain, releasing every
// header, trailer, and real node to the cache's free list.
func (l *List[K, V]) releaseAllLevels() {
	for h := l.header; h != nil; {
		nextH := h.parent
		for n := h; n != nil; {
			next := n.next
			l.cache.release(n)
			if next == nil || next.isTrailer {
				if next != nil {
					l.cache.release(next)
				}
				break
			}
			n = next
		}
		h = nextH
	}
}
