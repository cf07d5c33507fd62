package oskiplist

// Get returns the value stored for k and true, or the zero value and
// false if k is absent. In ModeList, returns the rightmost occurrence.
func (l *List[K, V]) Get(k K) (V, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := l.find(k)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.value, true
}

// GetItem is Get, returning the full Item.
func (l *List[K, V]) GetItem(k K) (Item[K, V], bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := l.find(k)
	if n == nil {
		return Item[K, V]{}, false
	}
	return Item[K, V]{Key: n.key, Value: n.value}, true
}

// GetOrError is Get for callers that prefer an error return over a bool,
// for example to use with errors.Is inside a larger chained operation.
func (l *List[K, V]) GetOrError(k K) (V, error) {
	v, ok := l.Get(k)
	if !ok {
		return v, ErrMissingKey
	}
	return v, nil
}

// Contains reports whether k is present.
func (l *List[K, V]) Contains(k K) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.find(k) != nil
}

// find runs the floor-or-equal descent and returns the matching bottom
// node, or nil. Caller must hold at least a shared lock.
func (l *List[K, V]) find(k K) *node[K, V] {
	path, _ := l.descendFloorOrEqual(k)
	bottom := path[len(path)-1]
	if bottom.isHeader || l.compare(bottom.key, k) != 0 {
		return nil
	}
	return bottom
}

// normalizeIndex turns a possibly negative, Python-style index into a
// 0-based offset, returning ok=false if it is out of range.
func normalizeIndex(i, size int) (int, bool) {
	u := i
	if i < 0 {
		u = size + i
	}
	if u < 0 || u >= size {
		return 0, false
	}
	return u, true
}

// nodeByIndex runs the rank descent for a possibly negative index.
// Caller must hold at least a shared lock.
func (l *List[K, V]) nodeByIndex(i int) *node[K, V] {
	u, ok := normalizeIndex(i, l.size)
	if !ok {
		return nil
	}
	path, _ := l.descendByIndex(u)
	return path[len(path)-1]
}

// GetByIndex returns the value at 0-based rank i (negative i counts from
// the end, Python-style) and true, or the zero value and false if
// i >= Len() or i < -Len().
func (l *List[K, V]) GetByIndex(i int) (V, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := l.nodeByIndex(i)
	if n == nil {
		var zero V
		return zero, false
	}
	return n.value, true
}

// GetItemByIndex is GetByIndex, returning the full Item.
func (l *List[K, V]) GetItemByIndex(i int) (Item[K, V], bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := l.nodeByIndex(i)
	if n == nil {
		return Item[K, V]{}, false
	}
	return Item[K, V]{Key: n.key, Value: n.value}, true
}

// GetItemIndexByKey returns the 0-based rank of the rightmost occurrence
// of k, or false if k is absent.
func (l *List[K, V]) GetItemIndexByKey(k K) (int, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	path, ranks := l.descendFloorOrEqual(k)
	bottom := path[len(path)-1]
	if bottom.isHeader || l.compare(bottom.key, k) != 0 {
		return 0, false
	}
	return ranks[len(ranks)-1] - 1, true
}

// Min returns the item with the smallest key.
func (l *List[K, V]) Min() (Item[K, V], bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := l.groundLeft()
	if n == nil {
		return Item[K, V]{}, false
	}
	return Item[K, V]{Key: n.key, Value: n.value}, true
}

// Max returns the item with the largest key.
func (l *List[K, V]) Max() (Item[K, V], bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	n := l.groundRight()
	if n == nil {
		return Item[K, V]{}, false
	}
	return Item[K, V]{Key: n.key, Value: n.value}, true
}

// Median returns the item at index floor(n/2).
func (l *List[K, V]) Median() (Item[K, V], bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if l.size == 0 {
		return Item[K, V]{}, false
	}
	path, _ := l.descendByIndex(l.size / 2)
	n := path[len(path)-1]
	return Item[K, V]{Key: n.key, Value: n.value}, true
}

// GetFirst returns the first item and true, or panics if the list is
// empty. GetFirstOrNull (idiomatic Go: a bool, not a pointer) is the
// usual way to call this safely.
func (l *List[K, V]) GetFirst() Item[K, V] {
	it, ok := l.GetFirstOrNull()
	if !ok {
		panic("oskiplist: GetFirst on an empty list")
	}
	return it
}

// GetFirstOrNull returns the first item and true, or false if empty.
func (l *List[K, V]) GetFirstOrNull() (Item[K, V], bool) {
	return l.Min()
}

// GetLast returns the last item, or panics if the list is empty.
func (l *List[K, V]) GetLast() Item[K, V] {
	it, ok := l.GetLastOrNull()
	if !ok {
		panic("oskiplist: GetLast on an empty list")
	}
	return it
}

// GetLastOrNull returns the last item and true, or false if empty.
func (l *List[K, V]) GetLastOrNull() (Item[K, V], bool) {
	return l.Max()
}

// NodePtrByKey returns a short-lived reference to the node with key k.
// It does not lock: the caller must already hold a shared lock (for
// example via Items or RangeWithLock) for the entire time it dereferences
// the returned Node.
func (l *List[K, V]) NodePtrByKey(k K) Node[K, V] {
	return Node[K, V]{n: l.find(k)}
}

// NodePtrByIndex is NodePtrByKey addressed by rank. Same locking
// contract: it does not lock.
func (l *List[K, V]) NodePtrByIndex(i int) Node[K, V] {
	return Node[K, V]{n: l.nodeByIndex(i)}
}

// RangeWithLock holds a shared lock for the duration of f, and passes it
// the list so NodePtrByKey/NodePtrByIndex are safe to call inside f. This
// is the non-iterator escape hatch for callers who want one lock
// acquisition around several pointer-returning reads; mirrors the
// teacher's RangeWithIterator (skiplist.go).
func (l *List[K, V]) RangeWithLock(f func(l *List[K, V])) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	f(l)
}
