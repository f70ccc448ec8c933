// Package robot translates discard decisions into the literal command
// sequence executed by the manipulator arm.
//
// Command vocabulary (positions are 1-indexed on the arm side):
//   - "take card N"      pick up the card at holder position N (1-5)
//   - "default position" return the arm to its rest position
//   - "drop holding"     drop the held card into the trash
//   - "take deck"        pick up the top card of the deck
//   - "place at N"       place the held card at holder position N (1-5)
package robot

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/cardworks/poker-robot/domain/poker"
)

// ActionKind is the verb part of a manipulator command.
type ActionKind string

const (
	TakeCard        ActionKind = "take card"
	DefaultPosition ActionKind = "default position"
	DropHolding     ActionKind = "drop holding"
	TakeDeck        ActionKind = "take deck"
	PlaceAt         ActionKind = "place at"
)

// ErrUnknownAction is returned when a command string cannot be parsed.
var ErrUnknownAction = errors.New("unknown action")

// Action is a single stateless instruction for the arm. Pos is the 1-based
// holder position and is meaningful for TakeCard and PlaceAt only.
type Action struct {
	Kind ActionKind `json:"kind"`
	Pos  int        `json:"pos,omitempty"`
}

// String renders the exact lowercase wire form consumed by the firmware.
func (a Action) String() string {
	switch a.Kind {
	case TakeCard, PlaceAt:
		return fmt.Sprintf("%s %d", string(a.Kind), a.Pos)
	}
	return string(a.Kind)
}

// ParseAction is the case-insensitive inverse of Action.String. It fails
// with ErrUnknownAction on unrecognized text or an out-of-range position.
func ParseAction(text string) (Action, error) {
	s := strings.ToLower(strings.TrimSpace(text))
	switch {
	case s == string(DefaultPosition):
		return Action{Kind: DefaultPosition}, nil
	case s == string(DropHolding):
		return Action{Kind: DropHolding}, nil
	case s == string(TakeDeck):
		return Action{Kind: TakeDeck}, nil
	case strings.HasPrefix(s, string(TakeCard)+" "):
		return parsePositional(TakeCard, s, text)
	case strings.HasPrefix(s, string(PlaceAt)+" "):
		return parsePositional(PlaceAt, s, text)
	}
	return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, text)
}

func parsePositional(kind ActionKind, s, orig string) (Action, error) {
	pos, err := strconv.Atoi(strings.TrimSpace(strings.TrimPrefix(s, string(kind))))
	if err != nil || pos < 1 || pos > poker.HandSize {
		return Action{}, fmt.Errorf("%w: %q", ErrUnknownAction, orig)
	}
	return Action{Kind: kind, Pos: pos}, nil
}

// FillActions generates the sequence that fills every empty holder slot from
// the deck, in ascending position order.
func FillActions(hand poker.Hand) []Action {
	var actions []Action
	for pos, card := range hand {
		if !card.Empty() {
			continue
		}
		holderPos := pos + 1 // convert to 1-indexed
		actions = append(actions,
			Action{Kind: TakeDeck},
			Action{Kind: DefaultPosition},
			Action{Kind: PlaceAt, Pos: holderPos},
			Action{Kind: DefaultPosition},
		)
	}
	return actions
}

// SwapActions runs the discard strategy on a full hand and generates the
// per-position swap sequences, ascending. An empty result means the hand is
// good enough as it stands.
func SwapActions(hand poker.Hand, mode poker.Mode) ([]Action, error) {
	discards, err := poker.SelectDiscards(hand, mode)
	if err != nil {
		return nil, err
	}

	var actions []Action
	for _, pos := range discards {
		holderPos := pos + 1

		// pick up the reject, trash it, redraw into the same slot
		actions = append(actions,
			Action{Kind: TakeCard, Pos: holderPos},
			Action{Kind: DefaultPosition},
			Action{Kind: DropHolding},
			Action{Kind: DefaultPosition},
			Action{Kind: TakeDeck},
			Action{Kind: DefaultPosition},
			Action{Kind: PlaceAt, Pos: holderPos},
			Action{Kind: DefaultPosition},
		)
	}
	return actions, nil
}

// BuildActions is the main entry point for the firmware side. A hand with
// empty slots yields only the fill sequence, since the swap decision cannot
// be made before the drawn cards are known; the caller must refill the hand
// and invoke again. A full hand yields the swap sequence, possibly empty.
func BuildActions(hand poker.Hand, mode poker.Mode) ([]Action, error) {
	for _, card := range hand {
		if card.Empty() {
			return FillActions(hand), nil
		}
	}
	return SwapActions(hand, mode)
}

// CountSwaps counts how many cards an action sequence replaces.
func CountSwaps(actions []Action) int {
	n := 0
	for _, a := range actions {
		if a.Kind == TakeCard {
			n++
		}
	}
	return n
}

// SwapPositions extracts the 1-indexed holder positions an action sequence
// replaces, unique, in first-seen order.
func SwapPositions(actions []Action) []int {
	var positions []int
	for _, a := range actions {
		if a.Kind != TakeCard {
			continue
		}
		seen := false
		for _, p := range positions {
			if p == a.Pos {
				seen = true
				break
			}
		}
		if !seen {
			positions = append(positions, a.Pos)
		}
	}
	return positions
}
