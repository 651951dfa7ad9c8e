// Package draw implements proportional weighted random selection of
// reward stickers. A Selector is constructed with an explicit random
// source so tests can seed it deterministically.
package draw

import (
	"errors"
	"math/rand"
	"sync"

	"rewards_service/internal/models"
)

// ErrEmptyPool indicates that the collection has no stickers to draw from.
var ErrEmptyPool = errors.New("draw: no stickers available")

// Selector draws one sticker from a pool with probability proportional
// to each sticker's drop weight. Weights need not sum to 1.
type Selector struct {
	mu  sync.Mutex // rand.Rand is not safe for concurrent use
	rng *rand.Rand
}

// NewSelector creates a Selector backed by the given random source.
func NewSelector(src rand.Source) *Selector {
	return &Selector{rng: rand.New(src)}
}

// Pick selects one sticker from the pool. The pool must already be
// filtered to active stickers; iteration order follows the slice order.
func (selector *Selector) Pick(pool []models.Sticker) (models.Sticker, error) {
	if len(pool) == 0 {
		return models.Sticker{}, ErrEmptyPool
	}

	var totalWeight float64
	for _, sticker := range pool {
		totalWeight += sticker.DropWeight
	}

	selector.mu.Lock()
	r := selector.rng.Float64() * totalWeight
	selector.mu.Unlock()

	for _, sticker := range pool {
		r -= sticker.DropWeight
		if r <= 0 {
			return sticker, nil
		}
	}

	// Accumulated rounding can leave r marginally above zero after the
	// last subtraction; the last sticker is the selection in that case.
	return pool[len(pool)-1], nil
}
