// Package multiset provides Multiset, a counted bag of integer values used as
// the search state of the countdown engine.
//
// Overview:
//
//   - A Multiset maps each present value to a strictly positive count.
//     Counts that drop to zero are removed, never stored.
//   - Two multisets are Equal iff they hold identical (value, count) pairs.
//     Hash is an order-independent sum over entries, so equal multisets
//     always hash identically regardless of insertion order.
//   - Key returns a canonical string form usable as a native Go map key.
//
// Pair enumeration:
//
//   - Pairings(fn) calls fn(v1, v2, rest) for every ordered pair of values
//     present (v1 == v2 only when its count is at least 2). rest is a fresh
//     copy with one occurrence of each operand removed.
//   - PairingsInPlace(fn) produces the same pairs but mutates the receiver
//     and restores it after every callback. It allocates nothing per pair;
//     in exchange fn must not retain rest past its own invocation.
//
// Both enumerations visit values in ascending order, so a search driven by
// them is deterministic.
//
// Preconditions:
//
//   - Dec on an absent value is a programming error and panics with
//     ErrAbsentValue.
//
// Thread safety:
//
//   - A Multiset is not safe for concurrent mutation. Copy before sharing a
//     state with another goroutine.
package multiset
