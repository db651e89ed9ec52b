package veb

// successor implements spec.md §4.6: the smallest stored key strictly
// greater than key, with its value. key is assumed already
// range-checked by the caller.
func (n *node[K, V]) successor(key K) (K, V, bool) {
	var zero V

	if n.isEmpty() {
		return 0, zero, false
	}
	if key < n.min.key {
		return n.min.key, cloneValue(n.min.value), true
	}

	h := high(key, n.clusterBits)
	l := low(key, n.clusterBits)

	if cluster, ok := n.clusters[h]; ok && cluster.max != nil && l < cluster.max.key {
		nl, nv, found := cluster.successor(l)
		if !found {
			panic(newInvariantViolation("cluster %v has max > %v but no successor for it", h, l))
		}
		return index(h, nl, n.clusterBits), nv, true
	}

	if n.summary != nil {
		if nextH, _, found := n.summary.successor(h); found {
			cluster, ok := n.clusters[nextH]
			if !ok {
				panic(newInvariantViolation("summary names next cluster %v that does not exist", nextH))
			}
			nl, nv, found := cluster.getMin()
			if !found {
				panic(newInvariantViolation("cluster %v named by summary successor has no min", nextH))
			}
			return index(nextH, nl, n.clusterBits), nv, true
		}
	}

	if key < n.max.key {
		return n.max.key, cloneValue(n.max.value), true
	}

	return 0, zero, false
}
