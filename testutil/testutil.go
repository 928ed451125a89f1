package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Byte returns a pseudo-random byte.
func (r *RNG) Byte() byte {
	r.mu.Lock()
	defer r.mu.Unlock()
	return byte(r.rand.Intn(256))
}

// Bytes returns n pseudo-random bytes.
func (r *RNG) Bytes(n int) []byte {
	buf := make([]byte, n)
	r.FillBytes(buf)
	return buf
}

// FillBytes fills dst with pseudo-random bytes.
// Locks only once per call (preferred over calling Byte in a loop).
func (r *RNG) FillBytes(dst []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Read(dst)
}

// Span returns a random sub-range [off, off+n) of a buffer of length size.
func (r *RNG) Span(size int) (off, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if size == 0 {
		return 0, 0
	}
	off = r.rand.Intn(size + 1)
	n = r.rand.Intn(size - off + 1)
	return off, n
}
