package shuffle

import (
	crand "crypto/rand"
	"encoding/binary"
	"time"
)

// RNG is a small xorshift64* generator. Equal seeds produce equal
// sequences, which is what makes session orderings reproducible.
type RNG struct {
	state uint64
}

// New returns a generator seeded with the given value. A zero seed is
// remapped because an all-zero xorshift state never leaves zero.
func New(seed int64) *RNG {
	s := uint64(seed)
	if s == 0 {
		s = 0x9E3779B97F4A7C15
	}
	return &RNG{state: s}
}

// NewRandom returns a generator seeded from the OS entropy source,
// falling back to the clock if that fails.
func NewRandom() *RNG {
	var buf [8]byte
	if _, err := crand.Read(buf[:]); err == nil {
		if s := binary.LittleEndian.Uint64(buf[:]); s != 0 {
			return &RNG{state: s}
		}
	}
	return New(time.Now().UnixNano())
}

func (r *RNG) next() uint64 {
	r.state ^= r.state >> 12
	r.state ^= r.state << 25
	r.state ^= r.state >> 27
	return r.state * 0x2545F4914F6CDD1D
}

// Int63 returns a non-negative pseudo-random 63-bit integer.
func (r *RNG) Int63() int64 {
	return int64(r.next() >> 1)
}

// Float64 returns a pseudo-random fraction in [0, 1).
func (r *RNG) Float64() float64 {
	return float64(r.next()>>11) / (1 << 53)
}
