package veb

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
)

// Validate walks the tree and checks the structural invariants of the
// package's design notes (empty-iff-no-min, singleton collapse,
// min-exclusion, max-inclusion, summary fidelity, bit-width descent, and
// min not above max at every node; cluster keys are not compared against
// min and max). It is a read-only diagnostic: unlike Remove, Successor and
// Predecessor, which panic on the first sign of corruption, Validate collects every
// violation it finds and returns them together, which is more useful for
// property-based tests and fuzzing oracles than stopping at the first
// broken invariant.
//
// Validate is O(n) and is not called from any mutating operation.
func (m *Map[K, V]) Validate() error {
	var errs *multierror.Error
	m.root.validate(&errs, "root")
	return errs.ErrorOrNil()
}

func (n *node[K, V]) validate(errs **multierror.Error, path string) {
	if n.isEmpty() {
		if n.max != nil || (n.summary != nil && !n.summary.isEmpty()) || len(n.clusters) != 0 {
			*errs = multierror.Append(*errs, errors.Errorf("%s: empty node must have nil max and empty summary and clusters", path))
		}
		return
	}

	if n.max == nil {
		*errs = multierror.Append(*errs, errors.Errorf("%s: node has a min but no max", path))
		return
	}
	if n.min.key > n.max.key {
		*errs = multierror.Append(*errs, errors.Errorf("%s: min %v is greater than max %v", path, n.min.key, n.max.key))
	}

	if n.min.key == n.max.key {
		if n.summary != nil && !n.summary.isEmpty() {
			*errs = multierror.Append(*errs, errors.Errorf("%s: singleton node has a non-empty summary", path))
		}
		if len(n.clusters) != 0 {
			*errs = multierror.Append(*errs, errors.Errorf("%s: singleton node has non-empty clusters", path))
		}
		return
	}

	// Invariant 3: min exclusion.
	h := high(n.min.key, n.clusterBits)
	l := low(n.min.key, n.clusterBits)
	if cluster, ok := n.clusters[h]; ok {
		if _, found := cluster.get(l); found {
			*errs = multierror.Append(*errs, errors.Errorf("%s: min key %v is also present in its own cluster", path, n.min.key))
		}
	}

	// Invariant 4: max inclusion. Every non-singleton node has at least
	// one cluster, and max must be that cluster's own max.
	if len(n.clusters) > 0 {
		hMax := high(n.max.key, n.clusterBits)
		lMax := low(n.max.key, n.clusterBits)
		cluster, ok := n.clusters[hMax]
		if !ok || cluster.max == nil || cluster.max.key != lMax {
			*errs = multierror.Append(*errs, errors.Errorf("%s: max key %v is not mirrored as its cluster's own max", path, n.max.key))
		}
	}

	// Invariant 5: summary fidelity, plus invariant 8 (bit-width
	// descent) and recursion into each live cluster.
	summaryKeys := map[K]bool{}
	if n.summary != nil {
		n.summary.collectKeys(summaryKeys, 0)
	}
	for ch, cluster := range n.clusters {
		if cluster.isEmpty() {
			*errs = multierror.Append(*errs, errors.Errorf("%s: retains an empty cluster at index %v", path, ch))
			continue
		}
		if !summaryKeys[ch] {
			*errs = multierror.Append(*errs, errors.Errorf("%s: cluster %v exists but is not recorded in summary", path, ch))
		}
		if cluster.universeBits != n.clusterBits {
			*errs = multierror.Append(*errs, errors.Errorf("%s: cluster %v has universe width %d, want %d", path, ch, cluster.universeBits, n.clusterBits))
		}
		cluster.validate(errs, fmt.Sprintf("%s/cluster[%v]", path, ch))
	}
	for ch := range summaryKeys {
		if cluster, ok := n.clusters[ch]; !ok || cluster.isEmpty() {
			*errs = multierror.Append(*errs, errors.Errorf("%s: summary names cluster %v with no corresponding live cluster", path, ch))
		}
	}
}

// collectKeys flattens every key stored anywhere in n's subtree into
// dst, recomposing cluster-local keys with index() as it unwinds. offset
// is always 0 for a top-level call; it exists only to thread the
// recursion.
func (n *node[K, V]) collectKeys(dst map[K]bool, offset K) {
	if n.isEmpty() {
		return
	}
	dst[offset+n.min.key] = true
	if n.min.key == n.max.key {
		return
	}
	dst[offset+n.max.key] = true
	for ch, cluster := range n.clusters {
		cluster.collectKeys(dst, offset+(ch<<uint(n.clusterBits)))
	}
}
