package oskiplist

// SliceIterator is a bounded, steppable cursor returned by GetSliceByKey
// and GetSliceByIndex. Like Iterator, it holds a shared lock from
// construction until Release and must not be used concurrently with a
// locking call on the same List from the same goroutine.
//
// It operates in one of two modes: index-bounded (a rank window with a
// direction and step) or key-bounded (walks forward from a start key to
// an exclusive end key, emitting every step-th node visited). Both modes
// share the same "counter checked before increment" emission rule, so
// the node the cursor starts on is always emitted regardless of step's
// sign: a 0 counter always satisfies counter%step == 0.
type SliceIterator[K any, V any] struct {
	l *List[K, V]

	fringe *node[K, V] // next candidate node to examine
	cur    *node[K, V] // last emitted node

	dir      int // +1 or -1; key-bounded mode is always +1
	absStep  int
	counter  int
	remaining  int  // index-bounded: visits left before the stop boundary
	end        *node[K, V]
	keyBounded bool

	done     bool
	released bool
}

// newIndexSlice builds index-bounded slice state without locking; callers
// hold whichever lock their operation requires.
func (l *List[K, V]) newIndexSlice(start, stop, step int) (*SliceIterator[K, V], error) {
	if stop < -l.size || stop > l.size {
		return nil, ErrInvalidStopIndex
	}
	if step == 0 {
		return nil, ErrStepIsZero
	}

	size := l.size
	normStart := start
	if normStart < 0 {
		normStart += size
	}
	normStop := stop
	if normStop < 0 {
		normStop += size
	}

	dir, absStep := 1, step
	if step < 0 {
		dir, absStep = -1, -step
	}

	var remaining int
	if dir > 0 {
		remaining = normStop - normStart
	} else {
		remaining = normStart - normStop
	}
	if remaining < 0 {
		remaining = 0
	}

	var fringe *node[K, V]
	if normStart >= 0 && normStart < size {
		fringe = l.nodeByIndex(normStart)
	}

	return &SliceIterator[K, V]{l: l, fringe: fringe, dir: dir, remaining: remaining, absStep: absStep}, nil
}

// newKeySlice builds key-bounded slice state without locking.
func (l *List[K, V]) newKeySlice(startKey, stopKey K, step int) (*SliceIterator[K, V], error) {
	if step == 0 {
		return nil, ErrStepIsZero
	}
	startNode := l.find(startKey)
	if startNode == nil {
		return nil, ErrMissingStartKey
	}
	endNode := l.find(stopKey)
	if endNode == nil {
		return nil, ErrMissingEndKey
	}
	absStep := step
	if absStep < 0 {
		absStep = -absStep
	}
	return &SliceIterator[K, V]{l: l, fringe: startNode, end: endNode, dir: 1, absStep: absStep, keyBounded: true}, nil
}

// GetSliceByKey returns a scoped iterator over every step-th node walking
// forward from startKey up to (not including) stopKey. Both keys must be
// present.
func (l *List[K, V]) GetSliceByKey(startKey, stopKey K, step int) (*SliceIterator[K, V], error) {
	l.mu.RLock()
	it, err := l.newKeySlice(startKey, stopKey, step)
	if err != nil {
		l.mu.RUnlock()
		return nil, err
	}
	return it, nil
}

// GetSliceByIndex returns a scoped iterator over every step-th rank in
// the half-open window [start, stop), walking backward if step is
// negative. stop must fall within [-Len(), Len()].
func (l *List[K, V]) GetSliceByIndex(start, stop, step int) (*SliceIterator[K, V], error) {
	l.mu.RLock()
	it, err := l.newIndexSlice(start, stop, step)
	if err != nil {
		l.mu.RUnlock()
		return nil, err
	}
	return it, nil
}

// SetSliceByKey overwrites the value of every step-th node walking
// forward from startKey up to (not including) stopKey.
func (l *List[K, V]) SetSliceByKey(startKey, stopKey K, step int, v V) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	it, err := l.newKeySlice(startKey, stopKey, step)
	if err != nil {
		return err
	}
	for it.Next() {
		it.cur.value = v
	}
	return nil
}

// SetSliceByIndex overwrites the value of every step-th rank in the
// half-open window [start, stop).
func (l *List[K, V]) SetSliceByIndex(start, stop, step int, v V) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	it, err := l.newIndexSlice(start, stop, step)
	if err != nil {
		return err
	}
	for it.Next() {
		it.cur.value = v
	}
	return nil
}

// Next advances to the next node due for emission, skipping over any
// visited-but-not-due nodes along the way, and reports whether one was
// found before the boundary.
func (s *SliceIterator[K, V]) Next() bool {
	for {
		if s.done {
			return false
		}
		var atBoundary bool
		if s.keyBounded {
			atBoundary = s.fringe == s.end
		} else {
			atBoundary = s.remaining <= 0
		}
		if atBoundary || s.fringe == nil || s.fringe.isHeader || s.fringe.isTrailer {
			s.done = true
			return false
		}

		candidate := s.fringe
		emit := s.counter%s.absStep == 0
		s.counter++
		if !s.keyBounded {
			s.remaining--
		}
		if s.dir > 0 {
			s.fringe = s.fringe.next
		} else {
			s.fringe = s.fringe.prev
		}

		if emit {
			s.cur = candidate
			return true
		}
	}
}

// Key returns the current node's key. Valid only after Next returns true.
func (s *SliceIterator[K, V]) Key() K { return s.cur.key }

// Value returns the current node's value. Valid only after Next returns
// true.
func (s *SliceIterator[K, V]) Value() V { return s.cur.value }

// Item returns the current (key, value) pair. Valid only after Next
// returns true.
func (s *SliceIterator[K, V]) Item() Item[K, V] {
	return Item[K, V]{Key: s.cur.key, Value: s.cur.value}
}

// Release drops the shared lock taken at construction. Safe to call more
// than once; only the first call has an effect. GetSliceByKey and
// GetSliceByIndex are the only constructors that leave a lock for the
// caller to release — SetSliceByKey/SetSliceByIndex already release
// their (exclusive) lock before returning.
func (s *SliceIterator[K, V]) Release() {
	if s.released {
		return
	}
	s.released = true
	s.l.mu.RUnlock()
}
