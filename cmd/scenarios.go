package main

import (
	"github.com/pterm/pterm"

	"github.com/cardworks/poker-robot/domain/poker"
	"github.com/cardworks/poker-robot/domain/robot"
)

func mustHand(cards ...poker.Card) poker.Hand {
	var h poker.Hand
	copy(h[:], cards)
	return h
}

var scenarioHands = []struct {
	title string
	hand  poker.Hand
}{
	{
		title: "one pair, swap the rest",
		hand: mustHand(
			poker.Card{Rank: 10, Suit: poker.Hearts},
			poker.Card{Rank: 10, Suit: poker.Diamonds},
			poker.Card{Rank: 5, Suit: poker.Clubs},
			poker.Card{Rank: 3, Suit: poker.Spades},
			poker.Card{Rank: 7, Suit: poker.Hearts},
		),
	},
	{
		title: "four hearts, chase the flush",
		hand: mustHand(
			poker.Card{Rank: poker.Ace, Suit: poker.Hearts},
			poker.Card{Rank: 10, Suit: poker.Hearts},
			poker.Card{Rank: 8, Suit: poker.Hearts},
			poker.Card{Rank: 5, Suit: poker.Clubs},
			poker.Card{Rank: 2, Suit: poker.Hearts},
		),
	},
	{
		title: "royal flush, touch nothing",
		hand: mustHand(
			poker.Card{Rank: poker.Ace, Suit: poker.Spades},
			poker.Card{Rank: poker.King, Suit: poker.Spades},
			poker.Card{Rank: poker.Queen, Suit: poker.Spades},
			poker.Card{Rank: poker.Jack, Suit: poker.Spades},
			poker.Card{Rank: 10, Suit: poker.Spades},
		),
	},
}

// printScenarios walks a few fixed hands through the decision pipeline so
// the command sequences can be eyeballed before the live rounds start.
func printScenarios(mode poker.Mode) {
	pterm.DefaultSection.Println("Scenario checks")

	for _, sc := range scenarioHands {
		ev, err := poker.Evaluate(sc.hand)
		if err != nil {
			pterm.Error.Printfln("%s: %v", sc.title, err)
			continue
		}
		actions, err := robot.BuildActions(sc.hand, mode)
		if err != nil {
			pterm.Error.Printfln("%s: %v", sc.title, err)
			continue
		}

		pterm.Println(handBox(sc.title, sc.hand, ev))
		if len(actions) == 0 {
			pterm.Success.Println("Hand kept, no commands")
			continue
		}
		pterm.Info.Printfln("Swapping positions %v", robot.SwapPositions(actions))
		printActionSequence(actions)
	}
}
