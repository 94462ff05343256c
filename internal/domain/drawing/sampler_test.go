//go:build unit

package drawing_test

import (
	"testing"

	"raffle-engine/internal/domain/drawing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func candidates(n int) []uuid.UUID {
	ids := make([]uuid.UUID, n)
	for i := range ids {
		ids[i] = uuid.New()
	}
	return ids
}

func TestShuffleSampler(t *testing.T) {
	sampler := drawing.NewShuffleSampler()

	t.Run("重複なしで指定数を返す", func(t *testing.T) {
		pool := candidates(100)
		got := sampler.Sample(pool, 10)
		require.Len(t, got, 10)

		seen := make(map[uuid.UUID]bool, len(got))
		valid := make(map[uuid.UUID]bool, len(pool))
		for _, id := range pool {
			valid[id] = true
		}
		for _, id := range got {
			assert.False(t, seen[id], "duplicate winner")
			assert.True(t, valid[id], "winner not from candidate set")
			seen[id] = true
		}
	})

	t.Run("候補数以上を要求したら全員", func(t *testing.T) {
		pool := candidates(3)
		got := sampler.Sample(pool, 10)
		assert.Len(t, got, 3)
	})

	t.Run("境界ケース", func(t *testing.T) {
		assert.Nil(t, sampler.Sample(nil, 5))
		assert.Nil(t, sampler.Sample(candidates(5), 0))
		assert.Nil(t, sampler.Sample(candidates(5), -1))
	})

	t.Run("入力スライスを並べ替えない", func(t *testing.T) {
		pool := candidates(50)
		orig := make([]uuid.UUID, len(pool))
		copy(orig, pool)

		_ = sampler.Sample(pool, 25)
		assert.Equal(t, orig, pool)
	})

	t.Run("全候補がいずれ選ばれる", func(t *testing.T) {
		// 5候補から1名を繰り返し引けば、数百回でほぼ確実に全員が出る
		pool := candidates(5)
		picked := make(map[uuid.UUID]bool)
		for i := 0; i < 500; i++ {
			got := sampler.Sample(pool, 1)
			require.Len(t, got, 1)
			picked[got[0]] = true
		}
		assert.Len(t, picked, 5)
	})
}
