// Package eqmap implements Map, an associative container keyed by value
// equality of the key rather than by identity.
//
// A key type supplies its own Hash, Equal and Copy. Entries are bucketed by
// hash; collisions are resolved by an in-bucket list compared with Equal.
// Keys are copied on insertion, so a caller may keep mutating the key it
// passed in (the search engine relies on this when it probes with a
// temporarily modified state).
//
// Operations:
//
//   - Set / Get         upsert and lookup.
//   - SetIfAbsent       insert only when absent, returning the stored value.
//   - Compute           read-modify-write with an "absent" flag.
//   - Range             visit entries in insertion order.
//
// Complexity: O(1) amortized per operation assuming a good hash spread.
// Map is not safe for concurrent use.
package eqmap
