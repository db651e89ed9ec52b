package veb

import "testing"

func TestIndexRoundTrip(t *testing.T) {
	cb := clusterBitsOf(32)
	if cb != 16 {
		t.Fatalf("clusterBitsOf(32) = %d, want 16", cb)
	}

	for _, key := range []uint32{0, 1, 2, 65535, 65536, 70000, 4294967295} {
		h := high(key, cb)
		l := low(key, cb)
		got := index(h, l, cb)
		if got != key {
			t.Fatalf("index(high(%d), low(%d)) = %d, want %d", key, key, got, key)
		}
	}
}

func TestMaxKeySaturates(t *testing.T) {
	if got := maxKey[uint32](32); got != 4294967295 {
		t.Fatalf("maxKey[uint32](32) = %d, want 4294967295", got)
	}
	if got := maxKey[uint32](8); got != 255 {
		t.Fatalf("maxKey[uint32](8) = %d, want 255", got)
	}
	if got := maxKey[uint8](8); got != 255 {
		t.Fatalf("maxKey[uint8](8) = %d, want 255", got)
	}
}

func TestNativeBits(t *testing.T) {
	if n := nativeBits[uint8](); n != 8 {
		t.Fatalf("nativeBits[uint8]() = %d, want 8", n)
	}
	if n := nativeBits[uint16](); n != 16 {
		t.Fatalf("nativeBits[uint16]() = %d, want 16", n)
	}
	if n := nativeBits[uint32](); n != 32 {
		t.Fatalf("nativeBits[uint32]() = %d, want 32", n)
	}
	if n := nativeBits[uint64](); n != 64 {
		t.Fatalf("nativeBits[uint64]() = %d, want 64", n)
	}
}
