package eqmap

// Key is the contract a key type must satisfy. Hash must be consistent with
// Equal: equal keys hash identically.
type Key[K any] interface {
	Hash() uint64
	Equal(other K) bool
	Copy() K
}

type entry[K Key[K], V any] struct {
	key K
	val V
}

// Map is a hash map whose keys are compared with their own Equal method.
type Map[K Key[K], V any] struct {
	buckets map[uint64][]*entry[K, V]
	order   []*entry[K, V]
}

// New returns an empty Map.
func New[K Key[K], V any]() *Map[K, V] {
	return &Map[K, V]{buckets: make(map[uint64][]*entry[K, V])}
}

// find returns the entry equal to k together with k's hash.
func (m *Map[K, V]) find(k K) (*entry[K, V], uint64) {
	h := k.Hash()
	for _, e := range m.buckets[h] {
		if k.Equal(e.key) {
			return e, h
		}
	}

	return nil, h
}

func (m *Map[K, V]) insert(h uint64, k K, v V) *entry[K, V] {
	e := &entry[K, V]{key: k.Copy(), val: v}
	m.buckets[h] = append(m.buckets[h], e)
	m.order = append(m.order, e)

	return e
}

// Set stores v under k. It returns the previous value and true when k was
// already present.
func (m *Map[K, V]) Set(k K, v V) (V, bool) {
	e, h := m.find(k)
	if e != nil {
		old := e.val
		e.val = v
		return old, true
	}
	m.insert(h, k, v)

	var zero V
	return zero, false
}

// Get returns the value stored under k.
func (m *Map[K, V]) Get(k K) (V, bool) {
	if e, _ := m.find(k); e != nil {
		return e.val, true
	}

	var zero V
	return zero, false
}

// SetIfAbsent stores v under k only if k is absent, and returns whichever
// value is stored afterwards.
func (m *Map[K, V]) SetIfAbsent(k K, v V) V {
	e, h := m.find(k)
	if e == nil {
		e = m.insert(h, k, v)
	}

	return e.val
}

// Compute replaces the value under k with fn(old, ok). ok is false (and old
// the zero value) when k is absent, in which case the result is inserted.
func (m *Map[K, V]) Compute(k K, fn func(old V, ok bool) V) {
	e, h := m.find(k)
	if e != nil {
		e.val = fn(e.val, true)
		return
	}

	var zero V
	m.insert(h, k, fn(zero, false))
}

// Len returns the number of entries.
func (m *Map[K, V]) Len() int { return len(m.order) }

// Range calls fn for each entry in insertion order until fn returns false.
// The key passed to fn is the Map's own copy and must not be left modified.
func (m *Map[K, V]) Range(fn func(k K, v V) bool) {
	for _, e := range m.order {
		if !fn(e.key, e.val) {
			return
		}
	}
}
