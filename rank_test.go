package oskiplist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetByIndexAscendingAndNegative(t *testing.T) {
	l := NewInt[string](ModeSet)
	for _, k := range []int{30, 10, 20, 40} {
		l.Put(k, "")
	}
	// sorted: 10, 20, 30, 40

	v, ok := l.GetByIndex(0)
	require.True(t, ok)
	require.Equal(t, "", v)

	item, ok := l.GetItemByIndex(0)
	require.True(t, ok)
	require.Equal(t, 10, item.Key)

	item, ok = l.GetItemByIndex(-1)
	require.True(t, ok)
	require.Equal(t, 40, item.Key)

	item, ok = l.GetItemByIndex(2)
	require.True(t, ok)
	require.Equal(t, 30, item.Key)

	_, ok = l.GetItemByIndex(4)
	require.False(t, ok)
	_, ok = l.GetItemByIndex(-5)
	require.False(t, ok)
}

func TestGetItemIndexByKeyUniqueMode(t *testing.T) {
	l := NewInt[string](ModeSet)
	for _, k := range []int{30, 10, 20, 40} {
		l.Put(k, "")
	}
	idx, ok := l.GetItemIndexByKey(20)
	require.True(t, ok)
	require.Equal(t, 1, idx)

	_, ok = l.GetItemIndexByKey(99)
	require.False(t, ok)
}

func TestNodePtrByKeyAndByIndex(t *testing.T) {
	l := NewInt[string](ModeSet)
	l.Put(1, "one")
	l.Put(2, "two")

	l.RangeWithLock(func(l *List[int, string]) {
		p := l.NodePtrByKey(1)
		require.True(t, p.IsValid())
		require.Equal(t, "one", p.Value())
		require.Equal(t, Item[int, string]{Key: 1, Value: "one"}, p.Item())

		missing := l.NodePtrByKey(99)
		require.False(t, missing.IsValid())

		byIdx := l.NodePtrByIndex(1)
		require.True(t, byIdx.IsValid())
		require.Equal(t, 2, byIdx.Key())
	})
}

func TestNormalizeIndex(t *testing.T) {
	u, ok := normalizeIndex(0, 5)
	require.True(t, ok)
	require.Equal(t, 0, u)

	u, ok = normalizeIndex(-1, 5)
	require.True(t, ok)
	require.Equal(t, 4, u)

	_, ok = normalizeIndex(5, 5)
	require.False(t, ok)

	_, ok = normalizeIndex(-6, 5)
	require.False(t, ok)
}
