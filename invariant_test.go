package oskiplist

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
)

// widthSumAtLevel walks one level's chain from its header to its trailer
// and sums every link's width, which invariant 4 requires to equal size.
func widthSumAtLevel(h *node[int, string]) int {
	sum := 0
	for n := h.next; ; n = n.next {
		sum += n.width
		if n.isTrailer {
			return sum
		}
	}
}

func assertListInvariants(t *testing.T, l *List[int, string]) {
	t.Helper()

	// Invariant 1: bottom level keys are non-decreasing.
	bottom := l.bottomHeader()
	prev := -1
	count := 0
	for n := bottom.next; !n.isTrailer; n = n.next {
		require.GreaterOrEqual(t, n.key, prev)
		prev = n.key
		count++
	}
	require.Equal(t, l.size, count, "bottom-level real-node count must equal size")

	// Invariant 4: every level's total width equals size.
	for h := l.header; h != nil; h = h.parent {
		require.Equal(t, l.size, widthSumAtLevel(h))
	}
}

func TestInvariantsHoldAfterMixedInsertAndRemove(t *testing.T) {
	l := NewInt[string](ModeSet)
	rng := rand.New(rand.NewPCG(1, 2))

	present := map[int]bool{}
	for i := 0; i < 2000; i++ {
		k := rng.IntN(300)
		if rng.IntN(3) == 0 && present[k] {
			l.Remove(k)
			delete(present, k)
		} else {
			l.Put(k, "")
			present[k] = true
		}
		if i%97 == 0 {
			assertListInvariants(t, l)
		}
	}
	assertListInvariants(t, l)
	require.Equal(t, len(present), l.Len())
}

func TestInvariantsHoldAfterRangeRemoval(t *testing.T) {
	l := NewInt[string](ModeSet)
	for i := 0; i < 500; i++ {
		l.Put(i, "")
	}
	assertListInvariants(t, l)

	_, err := l.RemoveSliceByIndex(100, 300)
	require.NoError(t, err)
	assertListInvariants(t, l)

	_, err = l.RemoveSliceByKey(0, 50)
	require.NoError(t, err)
	assertListInvariants(t, l)
}

func TestFreeListAndLiveNodesAreDisjoint(t *testing.T) {
	l := NewInt[string](ModeSet)
	for i := 0; i < 100; i++ {
		l.Put(i, "")
	}
	for i := 0; i < 50; i++ {
		l.Remove(i)
	}

	live := map[*node[int, string]]bool{}
	for h := l.header; h != nil; h = h.parent {
		for n := h; n != nil; n = n.next {
			live[n] = true
			if n.isTrailer {
				break
			}
		}
	}

	for n := l.cache.free; n != nil; n = n.free {
		require.False(t, live[n], "a free-listed node must not also be reachable from the live structure")
	}
}
