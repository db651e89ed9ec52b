package veb

// Cloner is implemented by value types that need a deep copy rather than
// a shallow Go assignment when they are duplicated out of the tree. Get,
// Min, Max, Successor and Predecessor all return copies of the stored
// value; if V implements Cloner[V], that Clone method is used to produce
// the copy instead of a plain assignment.
type Cloner[V any] interface {
	Clone() V
}

// cloneValue returns a duplicate of v, using v.Clone() when V implements
// Cloner[V] and a shallow copy otherwise.
func cloneValue[V any](v V) V {
	if c, ok := any(v).(Cloner[V]); ok {
		return c.Clone()
	}
	return v
}

// entry is a stored key/value pair, used for the lazy min and max slots
// of a node.
type entry[K Key, V any] struct {
	key   K
	value V
}

func (e *entry[K, V]) copy() entry[K, V] {
	return entry[K, V]{key: e.key, value: cloneValue(e.value)}
}
