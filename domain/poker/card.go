package poker

import (
	"fmt"

	"github.com/pterm/pterm"
)

// Card suit constants (0-3)
const (
	Clubs    = 0 // ♣ (black)
	Diamonds = 1 // ♦ (red)
	Hearts   = 2 // ♥ (red)
	Spades   = 3 // ♠ (black)
)

// Card rank constants for face cards and ace
const (
	Jack  = 11 // J
	Queen = 12 // Q
	King  = 13 // K
	Ace   = 14 // A (high by default, counts low only in the wheel straight)
)

// EmptySlot is the display character for an empty holder slot
const (
	EmptySlot = "▓"
)

// HandSize is the number of physical card holder slots on the robot arm.
const HandSize = 5

// Card represents a playing card with suit and rank.
// The zero value (rank 0) stands for an empty holder slot.
type Card struct {
	Rank int   // 2-14: deuce through ace (0 = empty slot)
	Suit uint8 // 0-3: clubs, diamonds, hearts, spades
}

// Hand is the rappresentation of the 5 holder slots on the robot. The slot
// index (0-based here, 1-based on the arm side) is the physical position and
// is preserved across discards and redraws.
type Hand [HandSize]Card

// NewCard creates a new Card with validation.
//
// Parameters:
//   - rank: 2-14 (2-10=face value, Jack=11, Queen=12, King=13, Ace=14)
//   - suit: 0-3 (Clubs, Diamonds, Hearts, Spades)
//
// Returns the Card or an error if suit or rank is invalid.
func NewCard(rank int, suit uint8) (Card, error) {
	if suit > 3 || rank < 2 || rank > Ace {
		return Card{}, fmt.Errorf("invalid card %d, %d", rank, suit)
	}

	return Card{
		Rank: rank,
		Suit: suit,
	}, nil
}

// Empty reports whether the slot holds no card.
func (c Card) Empty() bool {
	return c.Rank == 0
}

// ParseSuit converts the single letter suit form used on the firmware
// protocol: C, D, H or S.
func ParseSuit(s string) (uint8, error) {
	switch s {
	case "C":
		return Clubs, nil
	case "D":
		return Diamonds, nil
	case "H":
		return Hearts, nil
	case "S":
		return Spades, nil
	}
	return 0, fmt.Errorf("invalid suit %q", s)
}

// SuitLetter returns the single letter form of a suit (C, D, H or S).
func SuitLetter(suit uint8) string {
	switch suit {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	}
	return "?"
}

// String returns a human-readable representation of the Card using suit symbols
// (♣, ♦, ♥, ♠) and rank abbreviations (A, J, Q, K, or number).
func (c Card) String() string {
	var suit string
	switch c.Suit {
	case Clubs:
		suit = pterm.Black("♣")
	case Diamonds:
		suit = pterm.LightRed("♦")
	case Hearts:
		suit = pterm.LightRed("♥")
	case Spades:
		suit = pterm.Black("♠")
	default:
		suit = "?"
	}

	var rankStr string
	switch c.Rank {
	case Ace:
		rankStr = "A"
	case King:
		rankStr = "K"
	case Queen:
		rankStr = "Q"
	case Jack:
		rankStr = "J"
	default:
		rankStr = fmt.Sprintf("%d", c.Rank)
	}
	if c.Rank == 0 {
		return EmptySlot
	}
	return rankStr + suit
}

// FullDeck returns the canonical 52-card set, suits in ♣ -> ♦ -> ♥ -> ♠
// order, ranks ascending within each suit.
func FullDeck() []Card {
	cards := make([]Card, 0, 52)
	for s := uint8(Clubs); s <= Spades; s++ {
		for r := 2; r <= Ace; r++ {
			cards = append(cards, Card{Rank: r, Suit: s})
		}
	}
	return cards
}
