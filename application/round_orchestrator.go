// Package application drives complete draw rounds: deal, decide, emit the
// arm command sequence, and account for the physical draws. It is the only
// layer that mutates a hand between core invocations.
package application

import (
	"fmt"
	"log/slog"

	"github.com/cardworks/poker-robot/domain/deck"
	"github.com/cardworks/poker-robot/domain/poker"
	"github.com/cardworks/poker-robot/domain/robot"
)

// RoundOrchestrator owns the card source and the strategy mode for a play
// session. The decision pipeline itself stays pure; the orchestrator holds
// all the state.
type RoundOrchestrator struct {
	Deck   *deck.Deck
	Mode   poker.Mode
	Logger *slog.Logger
}

// Swap records one physical card replacement in a round.
type Swap struct {
	Position int // 1-indexed holder position
	Out      poker.Card
	In       poker.Card
}

// RoundReport is what a single decision round produced.
type RoundReport struct {
	Hand        poker.Hand
	Evaluation  poker.Evaluation
	Actions     []robot.Action
	Swaps       []Swap
	FinalHand   poker.Hand
	FinalEval   poker.Evaluation
	DeckShorted bool // the deck ran out before all swaps were refilled
}

// NewRoundOrchestrator creates an orchestrator over a fresh deck. Seed 0
// gives a non-reproducible session.
func NewRoundOrchestrator(seed int64, mode poker.Mode, logger *slog.Logger) *RoundOrchestrator {
	if logger == nil {
		logger = slog.Default()
	}
	return &RoundOrchestrator{
		Deck:   deck.New(seed),
		Mode:   mode,
		Logger: logger,
	}
}

// PlayRound deals a fresh 5-card hand and resolves one decision round on it.
func (o *RoundOrchestrator) PlayRound() (RoundReport, error) {
	hand, err := o.Deck.InitialHand()
	if err != nil {
		return RoundReport{}, err
	}
	return o.ResolveHand(hand)
}

// FillHand handles a hand with empty holder slots: it emits the fill
// command sequence and draws the replacement cards, ascending by position.
// The swap decision is left to a follow-up ResolveHand call on the
// completed hand, mirroring the physical flow where the drawn cards are
// only known after the arm executed the fills.
func (o *RoundOrchestrator) FillHand(hand poker.Hand) (RoundReport, error) {
	report := RoundReport{
		Hand:      hand,
		Actions:   robot.FillActions(hand),
		FinalHand: hand,
	}
	if len(report.Actions) == 0 {
		return RoundReport{}, fmt.Errorf("no empty slot to fill")
	}

	for pos, card := range hand {
		if !card.Empty() {
			continue
		}
		drawn, ok := o.Deck.DrawCard()
		if !ok {
			o.Logger.Warn("deck exhausted, stopping fills", "position", pos+1)
			report.DeckShorted = true
			return report, nil
		}
		report.Swaps = append(report.Swaps, Swap{Position: pos + 1, In: drawn})
		report.FinalHand[pos] = drawn
	}

	finalEval, err := poker.Evaluate(report.FinalHand)
	if err != nil {
		return RoundReport{}, err
	}
	report.FinalEval = finalEval
	o.Logger.Info("slots filled", "filled", len(report.Swaps), "category", finalEval.Name)
	return report, nil
}

// ResolveHand runs the full decision pipeline on an already-dealt hand and
// simulates the physical draws: every swapped slot is refilled from the deck
// at the same position. A hand with empty slots is delegated to FillHand.
// If the deck runs out mid-round the remaining swaps are abandoned and the
// report notes it.
func (o *RoundOrchestrator) ResolveHand(hand poker.Hand) (RoundReport, error) {
	for _, card := range hand {
		if card.Empty() {
			return o.FillHand(hand)
		}
	}

	ev, err := poker.Evaluate(hand)
	if err != nil {
		return RoundReport{}, err
	}
	o.Logger.Info("hand evaluated", "hand", handString(hand), "category", ev.Name)

	actions, err := robot.BuildActions(hand, o.Mode)
	if err != nil {
		return RoundReport{}, err
	}

	report := RoundReport{
		Hand:       hand,
		Evaluation: ev,
		Actions:    actions,
		FinalHand:  hand,
		FinalEval:  ev,
	}
	if len(actions) == 0 {
		o.Logger.Info("hand kept, no swaps needed")
		return report, nil
	}

	for _, pos := range robot.SwapPositions(actions) {
		card, ok := o.Deck.DrawCard()
		if !ok {
			o.Logger.Warn("deck exhausted, stopping swaps", "position", pos)
			report.DeckShorted = true
			break
		}
		idx := pos - 1
		report.Swaps = append(report.Swaps, Swap{Position: pos, Out: report.FinalHand[idx], In: card})
		report.FinalHand[idx] = card
	}

	finalEval, err := poker.Evaluate(report.FinalHand)
	if err != nil {
		return RoundReport{}, err
	}
	report.FinalEval = finalEval
	o.Logger.Info("swaps done", "swapped", len(report.Swaps), "category", finalEval.Name)
	return report, nil
}

// PlayRounds deals once and then keeps resolving the same hand for games
// that allow multiple swap rounds, stopping early when the hand is good
// enough or the deck empties.
func (o *RoundOrchestrator) PlayRounds(rounds int) ([]RoundReport, error) {
	hand, err := o.Deck.InitialHand()
	if err != nil {
		return nil, err
	}

	var reports []RoundReport
	for i := 0; i < rounds; i++ {
		report, err := o.ResolveHand(hand)
		if err != nil {
			return reports, fmt.Errorf("round %d: %w", i+1, err)
		}
		reports = append(reports, report)
		if len(report.Actions) == 0 || report.DeckShorted {
			break
		}
		hand = report.FinalHand
	}
	return reports, nil
}

func handString(hand poker.Hand) string {
	s := ""
	for i, c := range hand {
		if i > 0 {
			s += " "
		}
		s += c.String()
	}
	return s
}
