package veb

// predecessor implements spec.md §4.7: the mirror of successor, swapping
// < for >, min for max. key is assumed already range-checked by the
// caller.
func (n *node[K, V]) predecessor(key K) (K, V, bool) {
	var zero V

	if n.isEmpty() {
		return 0, zero, false
	}
	if key > n.max.key {
		return n.max.key, cloneValue(n.max.value), true
	}

	h := high(key, n.clusterBits)
	l := low(key, n.clusterBits)

	if cluster, ok := n.clusters[h]; ok && cluster.min != nil && l > cluster.min.key {
		pl, pv, found := cluster.predecessor(l)
		if !found {
			panic(newInvariantViolation("cluster %v has min < %v but no predecessor for it", h, l))
		}
		return index(h, pl, n.clusterBits), pv, true
	}

	if n.summary != nil {
		if prevH, _, found := n.summary.predecessor(h); found {
			cluster, ok := n.clusters[prevH]
			if !ok {
				panic(newInvariantViolation("summary names previous cluster %v that does not exist", prevH))
			}
			pl, pv, found := cluster.getMax()
			if !found {
				panic(newInvariantViolation("cluster %v named by summary predecessor has no max", prevH))
			}
			return index(prevH, pl, n.clusterBits), pv, true
		}
	}

	if key > n.min.key {
		return n.min.key, cloneValue(n.min.value), true
	}

	return 0, zero, false
}
