package oskiplist

// nodeCache is the Node Cache from the spec: a pooled allocator over a
// single growing arena, with a free list of released nodes checked first.
// Released nodes are pushed onto the free list and are never returned to
// the arena until clearAll or destroyPool runs.
//
// Grounded on the teacher's Arena (arena.go: a growing byte buffer with a
// bump offset) and its nodeAllocator Get/Put/Reset contract (node.go), but
// typed as a slice-of-node arena rather than a raw []byte plus
// unsafe.Pointer: node[K,V] can carry pointer-bearing K/V, and those
// pointers must stay visible to the garbage collector, which an
// unsafe.Pointer-addressed byte arena would hide.
type nodeCache[K any, V any] struct {
	chunks   [][]node[K, V]
	chunkCap int
	next     int // offset of the next free slot in the last chunk

	free    *node[K, V]
	freeLen int
}

const defaultChunkCap = 64

func newNodeCache[K any, V any](chunkCap int) *nodeCache[K, V] {
	if chunkCap <= 0 {
		chunkCap = defaultChunkCap
	}
	c := &nodeCache[K, V]{chunkCap: chunkCap}
	c.growArena()
	return c
}

func (c *nodeCache[K, V]) growArena() {
	size := c.chunkCap
	if n := len(c.chunks); n > 0 {
		size = len(c.chunks[n-1]) * 2
	}
	c.chunks = append(c.chunks, make([]node[K, V], size))
	c.next = 0
}

// acquire returns a node from the free list's head if one is parked there,
// otherwise a fresh slot from the arena. The returned node's fields are
// uninitialized from the cache's perspective; the caller must fully
// initialize them before linking the node into the structure.
func (c *nodeCache[K, V]) acquire() *node[K, V] {
	if c.free != nil {
		n := c.free
		c.free = n.free
		n.free = nil
		c.freeLen--
		return n
	}
	last := c.chunks[len(c.chunks)-1]
	if c.next == len(last) {
		c.growArena()
		last = c.chunks[len(c.chunks)-1]
	}
	n := &last[c.next]
	c.next++
	return n
}

// release pushes n onto the head of the free list. Constant time. Pushing
// a node that is already on the free list corrupts the list; the engine
// must never do that.
func (c *nodeCache[K, V]) release(n *node[K, V]) {
	n.free = c.free
	c.free = n
	c.freeLen++
}

// clearAll destroys every node ever served, including those parked on the
// free list, and resets the arena to empty.
func (c *nodeCache[K, V]) clearAll() {
	c.chunks = nil
	c.next = 0
	c.free = nil
	c.freeLen = 0
	c.growArena()
}

// destroyPool tears down the arena; the cache is unusable afterward.
func (c *nodeCache[K, V]) destroyPool() {
	c.chunks = nil
	c.next = 0
	c.free = nil
	c.freeLen = 0
}

// freeCount reports the free list length. Diagnostic only.
func (c *nodeCache[K, V]) freeCount() int { return c.freeLen }
