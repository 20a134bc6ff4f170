package quotes

import (
	"fmt"
	"math/rand"

	"github.com/akyairhashvil/takvim/internal/models"
)

// Panel is what the content area currently shows.
type Panel int

const (
	ShowingContent Panel = iota
	ShowingCountdown
)

// Order selects how the next quote is picked.
type Order string

const (
	// OrderSequential walks the list once in order, then picks at random.
	OrderSequential Order = "sequential"
	// OrderRandom always picks uniformly at random.
	OrderRandom Order = "random"
)

// ParseOrder validates a configured order name.
func ParseOrder(s string) (Order, error) {
	switch Order(s) {
	case OrderSequential, OrderRandom:
		return Order(s), nil
	}
	return "", fmt.Errorf("unknown quote order %q", s)
}

// Rotator is a value type; Toggle returns the next state.
type Rotator struct {
	Panel  Panel
	Index  int // index into the quote list of the quote on screen
	order  Order
	walked int // quotes handed out sequentially so far
	rng    *rand.Rand
}

// NewRotator starts on the content panel with the first selected quote.
func NewRotator(order Order, rng *rand.Rand, count int) Rotator {
	r := Rotator{Panel: ShowingContent, order: order, rng: rng}
	r.Index = r.pick(count)
	return r
}

// Toggle flips the panel. Entering the content panel selects a new quote from a
// list of count quotes.
func (r Rotator) Toggle(count int) Rotator {
	if r.Panel == ShowingContent {
		r.Panel = ShowingCountdown
		return r
	}
	r.Panel = ShowingContent
	r.Index = r.pick(count)
	return r
}

// Reset restarts selection after the quote list was replaced.
func (r Rotator) Reset(count int) Rotator {
	r.walked = 0
	r.Index = r.pick(count)
	return r
}

func (r *Rotator) pick(count int) int {
	if count <= 0 {
		return 0
	}
	if r.order != OrderRandom && r.walked < count {
		idx := r.walked
		r.walked++
		return idx
	}
	if r.rng == nil {
		return rand.Intn(count)
	}
	return r.rng.Intn(count)
}

// Current returns the selected quote, or false when the list is empty.
func (r Rotator) Current(list []models.Quote) (models.Quote, bool) {
	if len(list) == 0 {
		return models.Quote{}, false
	}
	if r.Index < 0 || r.Index >= len(list) {
		return list[0], true
	}
	return list[r.Index], true
}
