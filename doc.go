// Package veb provides an ordered, integer-keyed associative container
// with sublogarithmic successor and predecessor queries.
//
// Map[K, V] is a recursive van Emde Boas tree: every node caches its own
// minimum and maximum key/value pair outside of its children, keeps a
// summary node recording which of its child clusters are non-empty, and
// stores those clusters in a sparse map keyed by the high bits of K. This
// gives Get, Insert, Remove, Min, Max, Successor and Predecessor
// O(log log U) expected time over a universe U = [0, 2^w - 1], using
// O(n * log log U) expected space rather than the O(U) a dense vEB tree
// would need.
//
// Map is not safe for concurrent use; MutexMap wraps it behind a
// sync.RWMutex for callers that need that.
package veb
