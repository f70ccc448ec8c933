package application

import (
	"io"
	"log/slog"
	"reflect"
	"testing"

	"github.com/cardworks/poker-robot/domain/poker"
	"github.com/cardworks/poker-robot/domain/robot"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func card(rank int, suit uint8) poker.Card {
	return poker.Card{Rank: rank, Suit: suit}
}

func testHand(cards ...poker.Card) poker.Hand {
	var h poker.Hand
	copy(h[:], cards)
	return h
}

func TestResolveHandKeepsMadeHand(t *testing.T) {
	o := NewRoundOrchestrator(1, poker.Standard, quietLogger())
	h := testHand(card(poker.Ace, poker.Hearts), card(poker.King, poker.Hearts), card(poker.Queen, poker.Hearts), card(poker.Jack, poker.Hearts), card(10, poker.Hearts))
	o.Deck.MarkCardsUsed(h[:])

	report, err := o.ResolveHand(h)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Actions) != 0 {
		t.Fatalf("royal flush produced actions %v", report.Actions)
	}
	if report.FinalHand != h {
		t.Fatal("kept hand must not change")
	}
	if report.FinalEval.Category != poker.RoyalFlush {
		t.Fatalf("expected royal flush, got %s", report.FinalEval.Name)
	}
}

func TestResolveHandSwapsAndRefills(t *testing.T) {
	o := NewRoundOrchestrator(1, poker.Standard, quietLogger())
	h := testHand(card(10, poker.Hearts), card(10, poker.Diamonds), card(5, poker.Clubs), card(3, poker.Spades), card(7, poker.Hearts))
	o.Deck.MarkCardsUsed(h[:])

	report, err := o.ResolveHand(h)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Actions) != 24 {
		t.Fatalf("expected 24 commands, got %d", len(report.Actions))
	}
	if len(report.Swaps) != 3 {
		t.Fatalf("expected 3 swaps, got %d", len(report.Swaps))
	}
	if report.DeckShorted {
		t.Fatal("a near-full deck must not run out")
	}

	// the pair stays put, the swapped slots hold fresh cards
	if report.FinalHand[0] != h[0] || report.FinalHand[1] != h[1] {
		t.Fatal("kept positions changed")
	}
	for _, swap := range report.Swaps {
		idx := swap.Position - 1
		if report.FinalHand[idx] != swap.In {
			t.Fatalf("slot %d does not hold the drawn card", swap.Position)
		}
		if swap.In == swap.Out {
			t.Fatal("drew back the discarded card")
		}
	}
	if o.Deck.Remaining() != 52-5-3 {
		t.Fatalf("expected 44 cards remaining, got %d", o.Deck.Remaining())
	}
}

func TestResolveHandFillsEmptySlots(t *testing.T) {
	o := NewRoundOrchestrator(1, poker.Standard, quietLogger())
	h := testHand(card(10, poker.Hearts), poker.Card{}, card(5, poker.Clubs), poker.Card{}, card(7, poker.Hearts))
	o.Deck.MarkCardsUsed([]poker.Card{h[0], h[2], h[4]})

	report, err := o.ResolveHand(h)
	if err != nil {
		t.Fatal(err)
	}
	if len(report.Actions) != 8 {
		t.Fatalf("expected 8 fill commands, got %d", len(report.Actions))
	}
	if n := robot.CountSwaps(report.Actions); n != 0 {
		t.Fatalf("fill round must not take cards, counted %d", n)
	}
	if len(report.Swaps) != 2 {
		t.Fatalf("expected 2 filled slots, got %d", len(report.Swaps))
	}
	for _, c := range report.FinalHand {
		if c.Empty() {
			t.Fatal("hand still has empty slots after the fill round")
		}
	}
	if report.FinalEval.Name == "" {
		t.Fatal("completed hand should be evaluated")
	}
}

func TestPlayRoundDeterministicBySeed(t *testing.T) {
	a, err := NewRoundOrchestrator(99, poker.Standard, quietLogger()).PlayRound()
	if err != nil {
		t.Fatal(err)
	}
	b, err := NewRoundOrchestrator(99, poker.Standard, quietLogger()).PlayRound()
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("equal seeds played different rounds: %v vs %v", a, b)
	}
}

func TestPlayRoundsHandContinuity(t *testing.T) {
	o := NewRoundOrchestrator(5, poker.Standard, quietLogger())
	reports, err := o.PlayRounds(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(reports) == 0 {
		t.Fatal("expected at least one round")
	}
	for i := 1; i < len(reports); i++ {
		if reports[i].Hand != reports[i-1].FinalHand {
			t.Fatalf("round %d did not continue from the previous hand", i+1)
		}
	}
	last := reports[len(reports)-1]
	if len(reports) < 3 && len(last.Actions) != 0 && !last.DeckShorted {
		t.Fatal("rounds stopped early without a reason")
	}
}

func TestResolveHandDeckShorted(t *testing.T) {
	o := NewRoundOrchestrator(17, poker.Standard, quietLogger())
	h := testHand(card(10, poker.Hearts), card(10, poker.Diamonds), card(5, poker.Clubs), card(3, poker.Spades), card(7, poker.Hearts))
	o.Deck.MarkCardsUsed(h[:])
	// leave a single drawable card
	o.Deck.DrawCards(46)

	report, err := o.ResolveHand(h)
	if err != nil {
		t.Fatal(err)
	}
	if !report.DeckShorted {
		t.Fatal("expected the deck to run out mid-round")
	}
	if len(report.Swaps) != 1 {
		t.Fatalf("expected exactly 1 completed swap, got %d", len(report.Swaps))
	}
}
