package veb

// remove implements spec.md §4.5. It is idempotent: removing an absent
// key is a no-op. key is assumed already range-checked by the caller.
func (n *node[K, V]) remove(key K) {
	if n.isEmpty() {
		return
	}

	if n.min.key == n.max.key && n.min.key == key {
		n.min = nil
		n.max = nil
		return
	}

	target := key

	if key == n.min.key {
		if n.summary == nil || n.summary.isEmpty() {
			// Only min and max are populated; removing min collapses
			// the node to a singleton at max.
			n.min = &entry[K, V]{key: n.max.key, value: n.max.value}
			return
		}

		sh, _, ok := n.summary.getMin()
		if !ok {
			panic(newInvariantViolation("node has a non-empty summary with no min"))
		}
		cluster, ok := n.clusters[sh]
		if !ok {
			panic(newInvariantViolation("summary names cluster %v but clusters[%v] does not exist", sh, sh))
		}
		cm, cv, ok := cluster.getMin()
		if !ok {
			panic(newInvariantViolation("cluster %v named by summary has no min", sh))
		}

		newMinKey := index(sh, cm, n.clusterBits)
		n.min = &entry[K, V]{key: newMinKey, value: cv}
		// The new min key must be excluded from its cluster (invariant
		// 3), so it still needs to be removed below.
		target = newMinKey
	}

	h := high(target, n.clusterBits)
	if cluster, ok := n.clusters[h]; ok {
		l := low(target, n.clusterBits)
		cluster.remove(l)
		if cluster.isEmpty() {
			delete(n.clusters, h)
			if n.summary != nil {
				n.summary.remove(h)
			}
		}
	}

	if target == n.max.key {
		if n.summary == nil || n.summary.isEmpty() {
			n.max = &entry[K, V]{key: n.min.key, value: n.min.value}
			return
		}

		sh, _, ok := n.summary.getMax()
		if !ok {
			panic(newInvariantViolation("node has a non-empty summary with no max"))
		}
		cluster, ok := n.clusters[sh]
		if !ok {
			panic(newInvariantViolation("summary names cluster %v but clusters[%v] does not exist", sh, sh))
		}
		cm, cv, ok := cluster.getMax()
		if !ok {
			panic(newInvariantViolation("cluster %v named by summary has no max", sh))
		}
		n.max = &entry[K, V]{key: index(sh, cm, n.clusterBits), value: cv}
	}
}
