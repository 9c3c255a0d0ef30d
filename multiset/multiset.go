package multiset

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"strconv"
	"strings"
)

// ErrAbsentValue is the panic value raised when Dec is asked to remove a
// value that the Multiset does not hold.
var ErrAbsentValue = errors.New("multiset: decrement of absent value")

// Multiset is a counted bag of integers.
type Multiset struct {
	counts map[int]int
}

// New returns an empty Multiset.
func New() *Multiset {
	return &Multiset{counts: make(map[int]int)}
}

// Of builds a Multiset holding every value in values, with repetition.
func Of(values ...int) *Multiset {
	m := &Multiset{counts: make(map[int]int, len(values))}
	for _, v := range values {
		m.counts[v]++
	}

	return m
}

// OfFloat64 rounds each value to the nearest integer before counting it.
// Halves round away from zero.
func OfFloat64(values ...float64) *Multiset {
	m := &Multiset{counts: make(map[int]int, len(values))}
	for _, v := range values {
		m.counts[int(math.Round(v))]++
	}

	return m
}

// Copy returns an independent duplicate in O(distinct values).
func (m *Multiset) Copy() *Multiset {
	c := &Multiset{counts: make(map[int]int, len(m.counts))}
	for v, n := range m.counts {
		c.counts[v] = n
	}

	return c
}

// Has reports whether v occurs at least once.
func (m *Multiset) Has(v int) bool { return m.counts[v] > 0 }

// Count returns the number of occurrences of v.
func (m *Multiset) Count(v int) int { return m.counts[v] }

// Len returns the number of distinct values.
func (m *Multiset) Len() int { return len(m.counts) }

// Size returns the total number of occurrences across all values.
func (m *Multiset) Size() int {
	total := 0
	for _, n := range m.counts {
		total += n
	}

	return total
}

// Inc adds one occurrence of v.
func (m *Multiset) Inc(v int) { m.counts[v]++ }

// Dec removes one occurrence of v, dropping the entry when its count reaches
// zero. It panics with ErrAbsentValue if v is not present.
func (m *Multiset) Dec(v int) {
	n, ok := m.counts[v]
	if !ok {
		panic(fmt.Errorf("%w: %d", ErrAbsentValue, v))
	}
	if n == 1 {
		delete(m.counts, v)
		return
	}
	m.counts[v] = n - 1
}

// Set forces the count of v to n. A count of zero (or less) removes v.
func (m *Multiset) Set(v, n int) {
	if n <= 0 {
		delete(m.counts, v)
		return
	}
	m.counts[v] = n
}

// distinct returns the present values in ascending order.
func (m *Multiset) distinct() []int {
	vs := make([]int, 0, len(m.counts))
	for v := range m.counts {
		vs = append(vs, v)
	}
	slices.Sort(vs)

	return vs
}

// Values returns every occurrence in ascending order.
func (m *Multiset) Values() []int {
	out := make([]int, 0, len(m.counts))
	for _, v := range m.distinct() {
		for i := 0; i < m.counts[v]; i++ {
			out = append(out, v)
		}
	}

	return out
}

// Pairings calls fn for every ordered pair of operands that can be drawn from
// m. rest is a fresh Multiset with one occurrence of v1 and v2 removed; fn may
// keep it. The receiver is never modified.
func (m *Multiset) Pairings(fn func(v1, v2 int, rest *Multiset)) {
	vs := m.distinct()
	for _, v1 := range vs {
		for _, v2 := range vs {
			if v1 == v2 && m.counts[v1] < 2 {
				continue
			}
			rest := m.Copy()
			rest.Dec(v1)
			rest.Dec(v2)
			fn(v1, v2, rest)
		}
	}
}

// PairingsInPlace visits the same ordered pairs as Pairings, but passes the
// receiver itself as rest, temporarily reduced by the two operands. The
// receiver is restored after every callback, so fn may mutate rest only if
// it undoes those mutations before returning, and must not retain it.
func (m *Multiset) PairingsInPlace(fn func(v1, v2 int, rest *Multiset)) {
	vs := m.distinct()
	for i1, v1 := range vs {
		n1 := m.counts[v1]
		if n1 >= 2 {
			m.Set(v1, n1-2)
			fn(v1, v1, m)
		}
		m.Set(v1, n1-1)
		for _, v2 := range vs[:i1] {
			n2 := m.counts[v2]
			m.Set(v2, n2-1)
			fn(v1, v2, m)
			fn(v2, v1, m)
			m.counts[v2] = n2
		}
		m.counts[v1] = n1
	}
}

// Hash returns an order-independent hash consistent with Equal.
func (m *Multiset) Hash() uint64 {
	var h uint64
	for v, n := range m.counts {
		k := uint64(v)
		h += k * k * (k*23 + uint64(n))
	}

	return h
}

// Equal reports whether m and o hold identical (value, count) pairs.
func (m *Multiset) Equal(o *Multiset) bool {
	if m == o {
		return true
	}
	if o == nil || len(m.counts) != len(o.counts) {
		return false
	}
	for v, n := range m.counts {
		if o.counts[v] != n {
			return false
		}
	}

	return true
}

// Key returns the canonical string form "v×n,v×n,..." with values ascending.
// Equal multisets produce identical keys.
func (m *Multiset) Key() string {
	var sb strings.Builder
	for i, v := range m.distinct() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(v))
		sb.WriteString("×")
		sb.WriteString(strconv.Itoa(m.counts[v]))
	}

	return sb.String()
}

// String renders the expanded values, e.g. "{1 1 5 25}".
func (m *Multiset) String() string {
	vals := m.Values()
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}

	return "{" + strings.Join(parts, " ") + "}"
}
