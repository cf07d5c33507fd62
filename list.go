package oskiplist

import (
	"cmp"
	"math"
	"math/rand/v2"
	"sync"
)

// Comparator compares two keys: negative if a < b, zero if equal,
// positive if a > b. Mirrors the teacher's Comparator[K] in skiplist.go.
type Comparator[K any] func(a, b K) int

// List is a thread-safe, indexable skip list mapping keys K to values V.
// The zero value is not ready to use; construct one with New,
// NewWithComparator, or one of the typed convenience constructors
// (NewInt, NewInt64, NewFloat64, NewString).
type List[K any, V any] struct {
	mu sync.RWMutex

	mode     Mode
	compare  Comparator[K]
	sentinel K

	header, trailer *node[K, V]
	level           int // index of the topmost level that currently exists
	size            int

	// stack is the reusable search-path scratch sequence: cleared at the
	// start of each descent, never reallocated while its capacity
	// suffices. rankStack runs alongside it, recording the accumulated
	// bottom-level rank at each level (see descend.go).
	stack     []*node[K, V]
	rankStack []int

	cache *nodeCache[K, V]
	rng   *rand.Rand
}

// Option configures a List at construction time.
type Option[K any, V any] func(*List[K, V])

// WithCacheChunkSize sets the node cache's initial arena chunk size (in
// nodes, not bytes). Mirrors the teacher's WithArena option, adapted from
// a byte budget to a node count because this cache's arena is a typed
// []node[K,V] rather than a raw byte buffer.
func WithCacheChunkSize[K any, V any](nodes int) Option[K, V] {
	return func(l *List[K, V]) {
		if nodes > 0 {
			l.cache = newNodeCache[K, V](nodes)
		}
	}
}

// NewWithComparator creates a List with a custom comparator and an
// explicit sentinel key (a value the comparator treats as strictly
// greater than every key that will ever be inserted). compare must not
// be nil.
func NewWithComparator[K any, V any](mode Mode, compare Comparator[K], sentinel K, opts ...Option[K, V]) *List[K, V] {
	if compare == nil {
		panic("oskiplist: comparator cannot be nil")
	}
	l := &List[K, V]{
		mode:     mode,
		compare:  compare,
		sentinel: sentinel,
		cache:    newNodeCache[K, V](defaultChunkCap),
		rng:      rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	for _, opt := range opts {
		opt(l)
	}
	l.header, l.trailer = l.newLevelPair(nil, nil, 0)
	return l
}

// New creates a List for key types that implement cmp.Ordered, using
// cmp.Compare as the comparator. sentinel must be a value strictly
// greater than every key that will be inserted; see the typed
// constructors (NewInt, NewFloat64, NewString, ...) for the common cases.
func New[K cmp.Ordered, V any](mode Mode, sentinel K, opts ...Option[K, V]) *List[K, V] {
	return NewWithComparator(mode, cmp.Compare[K], sentinel, opts...)
}

// NewInt creates an int-keyed List. The sentinel is math.MaxInt.
func NewInt[V any](mode Mode, opts ...Option[int, V]) *List[int, V] {
	return New[int, V](mode, math.MaxInt, opts...)
}

// NewInt64 creates an int64-keyed List. The sentinel is math.MaxInt64.
func NewInt64[V any](mode Mode, opts ...Option[int64, V]) *List[int64, V] {
	return New[int64, V](mode, math.MaxInt64, opts...)
}

// NewFloat64 creates a float64-keyed List. The sentinel is +Inf.
func NewFloat64[V any](mode Mode, opts ...Option[float64, V]) *List[float64, V] {
	return New[float64, V](mode, math.Inf(1), opts...)
}

// NewString creates a string-keyed List, compared as a byte string
// (lexicographic byte order, which is what Go's native string comparison
// already does). The sentinel is "\xff": nothing lexicographically >= a
// single 0xFF byte is insertable.
func NewString[V any](mode Mode, opts ...Option[string, V]) *List[string, V] {
	return New[string, V](mode, "\xff", opts...)
}

// newLevelPair acquires a fresh header/trailer pair for one new level,
// linking it above (parent, not next) the given level-0-relative
// header/trailer, and sets the new trailer's width to size (the new level
// has exactly one link, header->trailer, whose width must account for
// every item that already exists so invariant 4 holds immediately).
func (l *List[K, V]) newLevelPair(belowHeader, belowTrailer *node[K, V], size int) (*node[K, V], *node[K, V]) {
	h := l.cache.acquire()
	*h = node[K, V]{isHeader: true, parent: belowHeader}
	t := l.cache.acquire()
	*t = node[K, V]{isTrailer: true, key: l.sentinel, parent: belowTrailer, width: size}
	h.next = t
	t.prev = h
	return h, t
}

// addLevel grows the list by one level, preserving invariant 4 on the new
// level (a single header->trailer link spanning the current size).
func (l *List[K, V]) addLevel() {
	h, t := l.newLevelPair(l.header, l.trailer, l.size)
	l.header, l.trailer = h, t
	l.level++
}

// Len returns the number of items.
func (l *List[K, V]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.size
}

// Mode returns the List's duplicate-key policy.
func (l *List[K, V]) Mode() Mode {
	return l.mode
}

// Close releases every node this List has ever allocated. The List must
// not be used afterward.
func (l *List[K, V]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.cache.destroyPool()
	l.header, l.trailer = nil, nil
	l.size = 0
}
