package veb

import (
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Key is the set of integer types that can be used as Map keys. Go has no
// native 128-bit integer, so the u128 width named by the data structure's
// source spec is not representable and is not implemented here.
type Key interface {
	constraints.Unsigned
}

// nativeBits returns the bit-width of the Go type K, used to size the
// root universe of a freshly constructed Map.
func nativeBits[K Key]() int {
	var zero K
	return int(unsafe.Sizeof(zero)) * 8
}

// clusterBitsOf returns w/2, the bit-width of a node's children at
// universe width w.
func clusterBitsOf(universeBits int) int {
	return universeBits / 2
}

// high returns the upper universeBits-clusterBits bits of key, i.e. the
// index of the cluster that would contain key.
func high[K Key](key K, clusterBits int) K {
	return key >> uint(clusterBits)
}

// low returns the lower clusterBits bits of key, i.e. key's index within
// its cluster.
func low[K Key](key K, clusterBits int) K {
	if clusterBits == 0 {
		return 0
	}
	return key & ((K(1) << uint(clusterBits)) - 1)
}

// index recomposes a key from a cluster index and an offset within that
// cluster. index(high(k, cb), low(k, cb), cb) == k for every k < 2^w.
func index[K Key](h, l K, clusterBits int) K {
	return (h << uint(clusterBits)) | l
}

// maxKey returns the largest key representable in a universe of the
// given bit-width, saturating at K's own maximum when universeBits
// equals K's native width (where 1<<universeBits would overflow).
func maxKey[K Key](universeBits int) K {
	if universeBits >= nativeBits[K]() {
		return ^K(0)
	}
	return (K(1) << uint(universeBits)) - 1
}
