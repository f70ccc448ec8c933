// Package deck is the card source for the robot: sampling without
// replacement from the 52-card set, reproducible by seed, with used-card
// tracking so a card is never dealt twice before a reset.
package deck

import (
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/cardworks/poker-robot/domain/poker"
)

// Deck owns the full card identity set and the used-card markers. The
// decision core never touches it; only the orchestration layer draws.
// A Deck serializes its own draws, so one instance may be shared.
type Deck struct {
	mu   sync.Mutex
	all  []poker.Card
	used map[poker.Card]bool
	rng  *rand.Rand
}

// New creates a full deck. A non-zero seed makes the draw sequence
// reproducible; seed 0 seeds from the clock.
func New(seed int64) *Deck {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Deck{
		all:  poker.FullDeck(),
		used: map[poker.Card]bool{},
		rng:  rand.New(rand.NewSource(seed)),
	}
}

// Reset returns every card to the deck.
func (d *Deck) Reset() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.used = map[poker.Card]bool{}
}

// DrawCard draws one card at random from the remaining deck. The second
// return value is false when the deck is exhausted.
func (d *Deck) DrawCard() (poker.Card, bool) {
	d.mu.Lock()
	defer d.mu.Unlock()

	available := d.available()
	if len(available) == 0 {
		return poker.Card{}, false
	}
	card := available[d.rng.Intn(len(available))]
	d.used[card] = true
	return card, true
}

// DrawCards draws up to count cards. The result is short if the deck runs
// out.
func (d *Deck) DrawCards(count int) []poker.Card {
	cards := make([]poker.Card, 0, count)
	for i := 0; i < count; i++ {
		card, ok := d.DrawCard()
		if !ok {
			break
		}
		cards = append(cards, card)
	}
	return cards
}

// MarkUsed removes a specific card from circulation, e.g. when the arm
// drops it into the trash.
func (d *Deck) MarkUsed(card poker.Card) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.used[card] = true
}

// MarkCardsUsed removes several cards from circulation.
func (d *Deck) MarkCardsUsed(cards []poker.Card) {
	d.mu.Lock()
	defer d.mu.Unlock()
	for _, card := range cards {
		d.used[card] = true
	}
}

// Remaining returns how many cards are still drawable.
func (d *Deck) Remaining() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.all) - len(d.used)
}

// IsAvailable reports whether a specific card is still in the deck.
func (d *Deck) IsAvailable(card poker.Card) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !d.used[card]
}

// InitialHand deals the opening 5 cards into the holder slots.
func (d *Deck) InitialHand() (poker.Hand, error) {
	cards := d.DrawCards(poker.HandSize)
	if len(cards) < poker.HandSize {
		return poker.Hand{}, fmt.Errorf("deck exhausted: %d cards left", len(cards))
	}
	var hand poker.Hand
	copy(hand[:], cards)
	return hand, nil
}

// available lists the drawable cards in deck order. Callers must hold mu.
func (d *Deck) available() []poker.Card {
	out := make([]poker.Card, 0, len(d.all)-len(d.used))
	for _, c := range d.all {
		if !d.used[c] {
			out = append(out, c)
		}
	}
	return out
}
