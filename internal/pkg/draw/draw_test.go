package draw

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rewards_service/internal/models"
)

func TestPick_EmptyPool(t *testing.T) {
	selector := NewSelector(rand.NewSource(1))

	_, err := selector.Pick(nil)
	assert.True(t, errors.Is(err, ErrEmptyPool))

	_, err = selector.Pick([]models.Sticker{})
	assert.True(t, errors.Is(err, ErrEmptyPool))
}

func TestPick_SingleSticker(t *testing.T) {
	selector := NewSelector(rand.NewSource(1))
	pool := []models.Sticker{{ID: 7, Name: "only", DropWeight: 0.25}}

	for i := 0; i < 100; i++ {
		sticker, err := selector.Pick(pool)
		require.NoError(t, err)
		assert.Equal(t, int32(7), sticker.ID)
	}
}

func TestPick_AlwaysSelectsFromPool(t *testing.T) {
	selector := NewSelector(rand.NewSource(42))
	pool := []models.Sticker{
		{ID: 1, DropWeight: 0.0001},
		{ID: 2, DropWeight: 0.0001},
		{ID: 3, DropWeight: 0.0001},
	}

	for i := 0; i < 10000; i++ {
		sticker, err := selector.Pick(pool)
		require.NoError(t, err)
		assert.Contains(t, []int32{1, 2, 3}, sticker.ID)
	}
}

func TestPick_FrequenciesProportionalToWeights(t *testing.T) {
	selector := NewSelector(rand.NewSource(12345))
	pool := []models.Sticker{
		{ID: 1, DropWeight: 90},
		{ID: 2, DropWeight: 9},
		{ID: 3, DropWeight: 1},
	}

	const draws = 200000
	counts := map[int32]int{}
	for i := 0; i < draws; i++ {
		sticker, err := selector.Pick(pool)
		require.NoError(t, err)
		counts[sticker.ID]++
	}

	// Observed frequencies should approximate 90% / 9% / 1%.
	assert.InDelta(t, 0.90, float64(counts[1])/draws, 0.01)
	assert.InDelta(t, 0.09, float64(counts[2])/draws, 0.005)
	assert.InDelta(t, 0.01, float64(counts[3])/draws, 0.003)
}

func TestPick_DeterministicWithSeed(t *testing.T) {
	pool := []models.Sticker{
		{ID: 1, DropWeight: 1},
		{ID: 2, DropWeight: 2},
		{ID: 3, DropWeight: 3},
	}

	first := NewSelector(rand.NewSource(99))
	second := NewSelector(rand.NewSource(99))

	for i := 0; i < 1000; i++ {
		a, err := first.Pick(pool)
		require.NoError(t, err)
		b, err := second.Pick(pool)
		require.NoError(t, err)
		assert.Equal(t, a.ID, b.ID)
	}
}
