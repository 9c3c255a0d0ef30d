package eqmap_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/countdown/eqmap"
	"github.com/katalvlaran/countdown/multiset"
)

// collider hashes every value to the same bucket to exercise in-bucket lists.
type collider struct{ v int }

func (c *collider) Hash() uint64           { return 42 }
func (c *collider) Equal(o *collider) bool { return o != nil && c.v == o.v }
func (c *collider) Copy() *collider        { return &collider{v: c.v} }

func TestSetGet_StructuralEquality(t *testing.T) {
	m := eqmap.New[*multiset.Multiset, int]()
	_, replaced := m.Set(multiset.Of(1, 2, 3), 7)
	require.False(t, replaced)

	v, ok := m.Get(multiset.Of(3, 2, 1))
	require.True(t, ok, "lookup must use value equality, not identity")
	require.Equal(t, 7, v)

	old, replaced := m.Set(multiset.Of(2, 1, 3), 9)
	require.True(t, replaced)
	require.Equal(t, 7, old)
	require.Equal(t, 1, m.Len())

	_, ok = m.Get(multiset.Of(1, 2))
	require.False(t, ok)
}

func TestSet_CopiesKey(t *testing.T) {
	m := eqmap.New[*multiset.Multiset, string]()
	k := multiset.Of(4, 5)
	m.Set(k, "a")
	k.Inc(6)

	_, ok := m.Get(multiset.Of(4, 5))
	require.True(t, ok, "mutating the caller's key must not affect the stored copy")
	_, ok = m.Get(k)
	require.False(t, ok)
}

func TestSetIfAbsent_KeepsExisting(t *testing.T) {
	m := eqmap.New[*multiset.Multiset, []string]()
	first := m.SetIfAbsent(multiset.Of(1), []string{"x"})
	require.Equal(t, []string{"x"}, first)

	second := m.SetIfAbsent(multiset.Of(1), []string{"y"})
	require.Equal(t, []string{"x"}, second)
	require.Equal(t, 1, m.Len())
}

func TestCompute_Minimum(t *testing.T) {
	m := eqmap.New[*multiset.Multiset, int]()
	minimum := func(d int) func(int, bool) int {
		return func(old int, ok bool) int {
			if !ok || d < old {
				return d
			}
			return old
		}
	}
	k := multiset.Of(10, 20)
	m.Compute(k, minimum(50))
	m.Compute(k, minimum(80))
	m.Compute(k, minimum(30))

	v, ok := m.Get(k)
	require.True(t, ok)
	require.Equal(t, 30, v)
}

func TestCollisions_ResolvedByEquality(t *testing.T) {
	m := eqmap.New[*collider, int]()
	for i := 0; i < 10; i++ {
		m.Set(&collider{v: i}, i*i)
	}
	require.Equal(t, 10, m.Len())
	for i := 0; i < 10; i++ {
		v, ok := m.Get(&collider{v: i})
		require.True(t, ok)
		require.Equal(t, i*i, v)
	}
}

func TestRange_InsertionOrderAndStop(t *testing.T) {
	m := eqmap.New[*collider, int]()
	for _, v := range []int{5, 3, 9} {
		m.Set(&collider{v: v}, v)
	}
	var seen []int
	m.Range(func(k *collider, v int) bool {
		seen = append(seen, k.v)
		return true
	})
	require.Equal(t, []int{5, 3, 9}, seen)

	seen = seen[:0]
	m.Range(func(k *collider, v int) bool {
		seen = append(seen, v)
		return len(seen) < 2
	})
	require.Equal(t, []int{5, 3}, seen)
}
