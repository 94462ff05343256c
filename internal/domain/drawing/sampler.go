package drawing

import (
	cryptorand "crypto/rand"
	"encoding/binary"
	"math/rand"
	"sync"

	"github.com/google/uuid"
)

// Sampler selects winning tickets uniformly at random, without replacement.
type Sampler interface {
	Sample(candidates []uuid.UUID, n int) []uuid.UUID
}

// ShuffleSampler implements the contract by Fisher-Yates shuffling a copy of
// the candidate set and slicing the head. The PRNG is seeded from crypto/rand
// so draws are not predictable from process start time.
type ShuffleSampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewShuffleSampler() *ShuffleSampler {
	return &ShuffleSampler{rng: rand.New(rand.NewSource(cryptoSeed()))}
}

func cryptoSeed() int64 {
	var buf [8]byte
	if _, err := cryptorand.Read(buf[:]); err != nil {
		// crypto/rand failing is effectively fatal elsewhere; a zero seed
		// still yields a valid (if predictable) uniform shuffle.
		return 0
	}
	return int64(binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF)
}

// Sample returns min(n, len(candidates)) distinct elements. The returned slice
// is freshly allocated; the input is never reordered.
func (s *ShuffleSampler) Sample(candidates []uuid.UUID, n int) []uuid.UUID {
	if n <= 0 || len(candidates) == 0 {
		return nil
	}
	if n > len(candidates) {
		n = len(candidates)
	}

	pool := make([]uuid.UUID, len(candidates))
	copy(pool, candidates)

	s.mu.Lock()
	s.rng.Shuffle(len(pool), func(i, j int) {
		pool[i], pool[j] = pool[j], pool[i]
	})
	s.mu.Unlock()

	return pool[:n]
}
