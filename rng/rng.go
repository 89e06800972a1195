// Package rng provides the single process-wide pseudo-random generator
// used by gf.RandomElement and gf.RandomPoly. It is one generator shared
// by all goroutines behind a mutex, not a per-goroutine or per-thread
// generator, so concurrent callers serialize on it. Its seed is
// mixed from OS entropy through SHAKE-256 rather than taken directly from
// time, matching the "seeded from entropy" requirement.
package rng

import (
	crand "crypto/rand"
	mrand "math/rand"
	"sync"

	"golang.org/x/crypto/sha3"
)

var (
	mu  sync.Mutex
	gen *mrand.Rand
)

func seed() int64 {
	var entropy [32]byte
	if _, err := crand.Read(entropy[:]); err != nil {
		// crypto/rand failing is catastrophic for the platform; fall back
		// to a fixed salt rather than panic, since this is only used to
		// seed a non-cryptographic generator.
		entropy = [32]byte{0x67, 0x46, 0x66, 0x70, 0x6f, 0x6c, 0x79}
	}
	digest := make([]byte, 8)
	h := sha3.NewShake256()
	_, _ = h.Write(entropy[:])
	_, _ = h.Read(digest)
	var s int64
	for _, b := range digest {
		s = (s << 8) | int64(b)
	}
	if s < 0 {
		s = -s
	}
	return s
}

// instance returns the lazily-initialized shared generator. Callers must
// hold mu.
func instance() *mrand.Rand {
	if gen == nil {
		gen = mrand.New(mrand.NewSource(seed()))
	}
	return gen
}

// Uint64n returns a uniform pseudo-random value in [0, n). It panics if
// n == 0, mirroring math/rand.Rand.Int63n's contract.
func Uint64n(n uint64) uint64 {
	if n == 0 {
		panic("rng: Uint64n called with n == 0")
	}
	mu.Lock()
	defer mu.Unlock()
	g := instance()
	if n <= 1<<63-1 {
		return uint64(g.Int63n(int64(n)))
	}
	// n exceeds the int63 range: draw 64 uniform bits and reject-resample
	// to remove modulo bias.
	lim := ^uint64(0) - (^uint64(0) % n)
	for {
		v := g.Uint64()
		if v < lim {
			return v % n
		}
	}
}
