package oskiplist

// spliceLevels removes, at every level, the run of nodes strictly after
// aPath[j] through and including bPath[j], folding each removed run's
// width into its surviving successor less the number of real items
// removed. At levels where the two coincide no node is removed, and the
// link leaving aPath[j] just loses the removed items from its width.
// Returns the bottom level's removed width, i.e. the number of real items
// removed.
//
// aPath/aRanks and bPath/bRanks must come from two descents over an
// unmodified list (the caller is expected to have cloned the first
// descent's result before running the second, since both descents reuse
// the same scratch stack).
func (l *List[K, V]) spliceLevels(aPath []*node[K, V], aRanks []int, bPath []*node[K, V], bRanks []int) int {
	last := len(aPath) - 1
	removedBottom := bRanks[last] - aRanks[last]
	for j := range aPath {
		a, b := aPath[j], bPath[j]
		if a == b {
			a.next.width -= removedBottom
			continue
		}
		removedWidth := bRanks[j] - aRanks[j]
		for n := a.next; ; {
			next := n.next
			l.cache.release(n)
			if n == b {
				break
			}
			n = next
		}
		a.next = b.next
		b.next.prev = a
		b.next.width += removedWidth - removedBottom
	}
	return removedBottom
}

// removeSliceByKeyLocked removes every item with a key in [start, stop).
// Caller must hold the exclusive lock.
func (l *List[K, V]) removeSliceByKeyLocked(start, stop K) (bool, error) {
	c := l.compare(start, stop)
	if c > 0 {
		return false, ErrStartKeyGreaterThanStopKey
	}
	if l.size == 0 {
		return false, nil
	}
	if c == 0 {
		return false, nil
	}
	if l.find(start) == nil {
		return false, ErrMissingStartKey
	}
	if l.find(stop) == nil {
		return false, ErrMissingEndKey
	}

	aPath, aRanks := l.descendStrictlyLess(start)
	aPath = append([]*node[K, V](nil), aPath...)
	aRanks = append([]int(nil), aRanks...)
	bPath, bRanks := l.descendStrictlyLess(stop)

	removed := l.spliceLevels(aPath, aRanks, bPath, bRanks)
	if removed == 0 {
		return false, nil
	}
	l.size -= removed
	l.shrinkLevels()
	return true, nil
}

// removeSliceByIndexLocked removes every item at rank in [start, stop),
// with negative indices interpreted Python-style. Caller must hold the
// exclusive lock.
func (l *List[K, V]) removeSliceByIndexLocked(start, stop int) (bool, error) {
	if l.size == 0 {
		return false, nil
	}
	if start < 0 {
		start += l.size
	}
	if stop < 0 {
		stop += l.size
	}
	if start >= l.size {
		return false, nil
	}
	if start < 0 {
		start = 0
	}
	if stop > l.size {
		stop = l.size
	}
	if start > stop {
		return false, ErrStartIndexGreaterThanStopIndex
	}
	if start == stop {
		return false, ErrInvalidIndex
	}

	aPath, aRanks := l.descendIndexPredecessor(start)
	aPath = append([]*node[K, V](nil), aPath...)
	aRanks = append([]int(nil), aRanks...)
	bPath, bRanks := l.descendIndexPredecessor(stop)

	removed := l.spliceLevels(aPath, aRanks, bPath, bRanks)
	l.size -= removed
	l.shrinkLevels()
	return removed > 0, nil
}

// RemoveSliceByKey removes every item with a key in the half-open range
// [startKey, stopKey). startKey == stopKey is a valid no-op; startKey
// must order no later than stopKey, and (unless they are equal) both
// must be present, or an error is returned and the list is left
// unmodified. On an empty list it returns false with no error, whether or
// not the keys are present, unless startKey orders after stopKey.
func (l *List[K, V]) RemoveSliceByKey(startKey, stopKey K) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.removeSliceByKeyLocked(startKey, stopKey)
}

// RemoveSliceByIndex removes every item at rank in the half-open range
// [start, stop). Negative bounds are interpreted Python-style; stop is
// clamped to Len(). start >= Len() returns false with no error (deleting
// past the end is a no-op); start > stop (after normalization) returns
// ErrStartIndexGreaterThanStopIndex; start == stop returns ErrInvalidIndex.
func (l *List[K, V]) RemoveSliceByIndex(start, stop int) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.removeSliceByIndexLocked(start, stop)
}
