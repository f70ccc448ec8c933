package deck

import (
	"reflect"
	"testing"

	"github.com/cardworks/poker-robot/domain/poker"
)

func TestDrawCardNoDuplicates(t *testing.T) {
	d := New(1)
	seen := map[poker.Card]bool{}
	for i := 0; i < 52; i++ {
		card, ok := d.DrawCard()
		if !ok {
			t.Fatalf("deck ran out after %d draws", i)
		}
		if seen[card] {
			t.Fatalf("card %v drawn twice", card)
		}
		seen[card] = true
	}
	if _, ok := d.DrawCard(); ok {
		t.Fatal("expected exhausted deck to report no card")
	}
	if d.Remaining() != 0 {
		t.Fatalf("expected 0 remaining, got %d", d.Remaining())
	}
}

func TestDrawDeterministicBySeed(t *testing.T) {
	a := New(42)
	b := New(42)
	for i := 0; i < 52; i++ {
		ca, _ := a.DrawCard()
		cb, _ := b.DrawCard()
		if ca != cb {
			t.Fatalf("draw %d differs between equal seeds: %v vs %v", i, ca, cb)
		}
	}
}

func TestDrawCardsShortOnExhaustion(t *testing.T) {
	d := New(7)
	d.DrawCards(50)
	cards := d.DrawCards(5)
	if len(cards) != 2 {
		t.Fatalf("expected 2 cards from a near-empty deck, got %d", len(cards))
	}
}

func TestReset(t *testing.T) {
	d := New(3)
	d.DrawCards(20)
	if d.Remaining() != 32 {
		t.Fatalf("expected 32 remaining, got %d", d.Remaining())
	}
	d.Reset()
	if d.Remaining() != 52 {
		t.Fatalf("expected full deck after reset, got %d", d.Remaining())
	}
}

func TestMarkUsed(t *testing.T) {
	d := New(5)
	card := poker.Card{Rank: poker.Ace, Suit: poker.Spades}
	if !d.IsAvailable(card) {
		t.Fatal("fresh deck should have the ace of spades")
	}
	d.MarkUsed(card)
	if d.IsAvailable(card) {
		t.Fatal("marked card should be out of circulation")
	}
	if d.Remaining() != 51 {
		t.Fatalf("expected 51 remaining, got %d", d.Remaining())
	}
	for i := 0; i < 51; i++ {
		drawn, ok := d.DrawCard()
		if !ok {
			t.Fatalf("deck ran out after %d draws", i)
		}
		if drawn == card {
			t.Fatal("marked card must never be drawn")
		}
	}
}

func TestMarkCardsUsed(t *testing.T) {
	d := New(9)
	cards := []poker.Card{
		{Rank: 2, Suit: poker.Clubs},
		{Rank: 3, Suit: poker.Clubs},
	}
	d.MarkCardsUsed(cards)
	if d.Remaining() != 50 {
		t.Fatalf("expected 50 remaining, got %d", d.Remaining())
	}
	for _, c := range cards {
		if d.IsAvailable(c) {
			t.Fatalf("card %v should be used", c)
		}
	}
}

func TestInitialHand(t *testing.T) {
	d := New(13)
	hand, err := d.InitialHand()
	if err != nil {
		t.Fatal(err)
	}
	seen := map[poker.Card]bool{}
	for _, c := range hand {
		if c.Empty() {
			t.Fatal("initial hand must fill every slot")
		}
		if seen[c] {
			t.Fatalf("duplicate card %v in initial hand", c)
		}
		seen[c] = true
	}
	if d.Remaining() != 47 {
		t.Fatalf("expected 47 remaining after the deal, got %d", d.Remaining())
	}

	again := New(13)
	other, err := again.InitialHand()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(hand, other) {
		t.Fatalf("equal seeds dealt different hands: %v vs %v", hand, other)
	}
}

func TestInitialHandExhausted(t *testing.T) {
	d := New(21)
	d.DrawCards(49)
	if _, err := d.InitialHand(); err == nil {
		t.Fatal("expected error dealing from a 3-card deck")
	}
}
