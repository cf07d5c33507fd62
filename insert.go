package oskiplist

// Put inserts (k, v). In ModeSet, if k already exists its value is
// overwritten and no new node is created. In ModeList, k is always
// inserted, to the right of any existing run of equal keys (so duplicates
// accumulate in insertion order and Get/GetItemIndexByKey see the
// rightmost one).
//
// k must be strictly less than the List's sentinel; Put panics otherwise,
// per spec.md §3 ("a key equal to the type's designated sentinel is not
// storable") — this is a contract violation, not an expected domain
// error.
func (l *List[K, V]) Put(k K, v V) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.compare(k, l.sentinel) >= 0 {
		panic("oskiplist: key equals or exceeds the sentinel value")
	}

	path, ranks := l.descendFloorOrEqual(k)
	bottom := path[len(path)-1]

	if l.mode == ModeSet && !bottom.isHeader && l.compare(bottom.key, k) == 0 {
		bottom.value = v
		return
	}

	promote := l.promotionLevels()

	// Grow the list's height until it can host the new node at every
	// level it is promoted to. Each added level's header/trailer pair is
	// prepended to path/ranks with rank 0, matching a brand-new header's
	// baseline (see spec.md §4.2.2 step 5's "new top level" branch).
	for promote+1 > len(path) {
		l.addLevel()
		path = append([]*node[K, V]{l.header}, path...)
		ranks = append([]int{0}, ranks...)
	}

	bottomRank := ranks[len(ranks)-1]
	last := len(path) - 1

	var below *node[K, V]
	for p := 0; p <= promote; p++ {
		j := last - p // top-to-bottom index of the level this copy lives on
		u := path[j]

		m := l.cache.acquire()
		*m = node[K, V]{key: k, value: v, parent: below}

		width := bottomRank - ranks[j] + 1
		m.width = width
		m.next = u.next
		m.prev = u
		u.next.prev = m
		u.next = m
		m.next.width -= width - 1

		below = m
	}

	// Levels strictly above where the new node lives just gained one more
	// bottom item passing under their existing link.
	for j := 0; j < last-promote; j++ {
		path[j].next.width++
	}

	l.size++
}

// TryPut is Put for callers that validate user-supplied keys at the
// boundary and would rather get ErrKeyIsSentinel back than panic.
func (l *List[K, V]) TryPut(k K, v V) error {
	if l.compare(k, l.sentinel) >= 0 {
		return ErrKeyIsSentinel
	}
	l.Put(k, v)
	return nil
}

// promotionLevels draws how many levels above the bottom the new node
// should also occupy: repeatedly draw a uniform integer in [1,7] and keep
// promoting while the draw is 1 (promotion probability 1/7 per level),
// per spec.md §4.2.2 step 5.
func (l *List[K, V]) promotionLevels() int {
	levels := 0
	for l.rng.IntN(7) == 0 {
		levels++
	}
	return levels
}
