package oskiplist

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRemoveSliceByKeyRemovesHalfOpenRange(t *testing.T) {
	l := NewInt[int](ModeSet)
	for i := 0; i <= 6; i++ {
		l.Put(i, i)
	}

	ok, err := l.RemoveSliceByKey(1, 4)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 4, l.Len())

	for _, k := range []int{1, 2, 3} {
		require.False(t, l.Contains(k))
	}
	for _, k := range []int{0, 4, 5, 6} {
		require.True(t, l.Contains(k))
	}
}

func TestRemoveSliceByKeyStartGreaterThanStop(t *testing.T) {
	l := NewInt[int](ModeSet)
	for i := 0; i <= 6; i++ {
		l.Put(i, i)
	}
	ok, err := l.RemoveSliceByKey(4, 2)
	require.ErrorIs(t, err, ErrStartKeyGreaterThanStopKey)
	require.False(t, ok)
	require.Equal(t, 7, l.Len())
}

func TestRemoveSliceByKeyEqualBoundsIsNoop(t *testing.T) {
	l := NewInt[int](ModeSet)
	for i := 0; i <= 6; i++ {
		l.Put(i, i)
	}
	ok, err := l.RemoveSliceByKey(3, 3)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 7, l.Len())
}

func TestRemoveSliceByKeyMissingStartOrEnd(t *testing.T) {
	l := NewInt[int](ModeSet)
	for i := 0; i <= 6; i++ {
		l.Put(i, i)
	}

	_, err := l.RemoveSliceByKey(100, 200)
	require.ErrorIs(t, err, ErrMissingStartKey)

	_, err = l.RemoveSliceByKey(2, 200)
	require.ErrorIs(t, err, ErrMissingEndKey)
}

func TestRemoveSliceByKeyOnEmptyListIsNoop(t *testing.T) {
	l := NewInt[int](ModeSet)
	ok, err := l.RemoveSliceByKey(1, 4)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestRemoveSliceByIndexRemovesHalfOpenRange(t *testing.T) {
	l := NewInt[int](ModeSet)
	for i := 0; i < 10; i++ {
		l.Put(i, i)
	}

	ok, err := l.RemoveSliceByIndex(2, 5)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 7, l.Len())

	for _, k := range []int{2, 3, 4} {
		require.False(t, l.Contains(k))
	}
	first, _ := l.GetItemByIndex(2)
	require.Equal(t, 5, first.Key)
}

func TestRemoveSliceByIndexNegativeBounds(t *testing.T) {
	l := NewInt[int](ModeSet)
	for i := 0; i < 10; i++ {
		l.Put(i, i)
	}

	ok, err := l.RemoveSliceByIndex(-3, -1)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 8, l.Len())
	for _, k := range []int{7, 8} {
		require.False(t, l.Contains(k))
	}
	require.True(t, l.Contains(9))
}

func TestRemoveSliceByIndexStartGreaterThanStop(t *testing.T) {
	l := NewInt[int](ModeSet)
	for i := 0; i < 10; i++ {
		l.Put(i, i)
	}
	ok, err := l.RemoveSliceByIndex(5, 2)
	require.ErrorIs(t, err, ErrStartIndexGreaterThanStopIndex)
	require.False(t, ok)
	require.Equal(t, 10, l.Len())
}

func TestRemoveSliceByIndexEqualBoundsIsError(t *testing.T) {
	l := NewInt[int](ModeSet)
	for i := 0; i < 10; i++ {
		l.Put(i, i)
	}
	ok, err := l.RemoveSliceByIndex(3, 3)
	require.ErrorIs(t, err, ErrInvalidIndex)
	require.False(t, ok)
}

func TestRemoveSliceByIndexStartPastEndIsNoop(t *testing.T) {
	l := NewInt[int](ModeSet)
	for i := 0; i < 10; i++ {
		l.Put(i, i)
	}
	ok, err := l.RemoveSliceByIndex(20, 30)
	require.NoError(t, err)
	require.False(t, ok)
	require.Equal(t, 10, l.Len())
}

func TestRemoveSliceByIndexStopClampedToLen(t *testing.T) {
	l := NewInt[int](ModeSet)
	for i := 0; i < 5; i++ {
		l.Put(i, i)
	}
	ok, err := l.RemoveSliceByIndex(3, 999)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 3, l.Len())
}
