// Package oskiplist implements a thread-safe, generic, indexable skip list.
//
// A List behaves like a sorted map (Mode ModeSet, unique keys) or like an
// order-statistic list (Mode ModeList, duplicate keys allowed, positional
// access by rank). Every node on every level carries a width — the number
// of bottom-level items spanned by the link arriving at that node — which
// is kept consistent on insert and on both point and range removal so that
// rank-addressed operations (GetByIndex, RemoveByIndex, slices by index,
// ...) run in O(log n) alongside the usual O(log n) key lookups.
//
// Keys must be one of cmp.Ordered's concrete families: integers, floats,
// or strings (used as byte strings, compared lexicographically). Each
// family has a designated sentinel value, strictly greater than every
// admissible key, used internally as the key of the header/trailer nodes
// on every level; it can never be stored.
package oskiplist
