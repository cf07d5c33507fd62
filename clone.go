package oskiplist

// Clone returns a new, independent List with the same mode, comparator,
// and sentinel, containing the same (key, value) pairs. The clone has its
// own cache and its own independently seeded rng, so its internal
// structure (promotion heights, node identities) is statistically
// independent of the source; only keys, values, and ordering are
// guaranteed equivalent.
func (l *List[K, V]) Clone(opts ...Option[K, V]) *List[K, V] {
	l.mu.RLock()
	defer l.mu.RUnlock()

	dst := NewWithComparator(l.mode, l.compare, l.sentinel, opts...)
	for n := l.groundLeft(); n != nil; n = n.next {
		dst.Put(n.key, n.value)
		if n.next.isTrailer {
			break
		}
	}
	return dst
}

// CloneWithAllocator is Clone, passing opts through to the new List's
// constructor (for example WithCacheChunkSize to size its arena
// differently from the source's).
func (l *List[K, V]) CloneWithAllocator(opts ...Option[K, V]) *List[K, V] {
	return l.Clone(opts...)
}
