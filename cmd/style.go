package main

import (
	"strconv"

	"github.com/pterm/pterm"

	"github.com/cardworks/poker-robot/application"
	"github.com/cardworks/poker-robot/domain/poker"
	"github.com/cardworks/poker-robot/domain/robot"
)

// printRound renders a full decision round: the dealt hand, its evaluation,
// the command sequence for the arm and the resulting hand after the swaps.
func printRound(n int, report application.RoundReport) {
	pterm.DefaultSection.Printfln("Round %d", n)

	panels := []pterm.Panel{
		{Data: handBox("HAND", report.Hand, report.Evaluation)},
	}
	if len(report.Swaps) > 0 {
		panels = append(panels, pterm.Panel{Data: handBox("AFTER DRAW", report.FinalHand, report.FinalEval)})
	}
	pterm.DefaultPanel.WithPanels([][]pterm.Panel{panels}).Render()

	if len(report.Actions) == 0 {
		pterm.Success.Println("Hand is good enough - no swaps needed")
		return
	}

	positions := robot.SwapPositions(report.Actions)
	pterm.Info.Printfln("Swapping %d card(s) at positions %v", robot.CountSwaps(report.Actions), positions)
	printActionSequence(report.Actions)

	for _, swap := range report.Swaps {
		if swap.Out.Empty() {
			pterm.Printfln("  position %d: dealt %s", swap.Position, swap.In)
		} else {
			pterm.Printfln("  position %d: %s -> %s", swap.Position, swap.Out, swap.In)
		}
	}
	if report.DeckShorted {
		pterm.Warning.Println("Deck ran out before all swaps completed")
	}
}

// handBox formats the 5 holder positions and the evaluation into a box.
func handBox(title string, hand poker.Hand, ev poker.Evaluation) string {
	pbox := pterm.DefaultBox.WithLeftPadding(4).WithRightPadding(4).WithTopPadding(1).WithBottomPadding(1)
	body := ""
	for i, c := range hand {
		body += pterm.Sprintfln("Position %d: %s", i+1, c)
	}
	if ev.Name != "" {
		body += pterm.Sprintfln("\n%s", pterm.LightCyan(ev.Name))
	}
	return pbox.WithTitle(pterm.LightYellow("|" + title + "|")).WithTitleTopCenter().Sprint(body)
}

// printActionSequence lists the numbered commands exactly as the firmware
// will receive them.
func printActionSequence(actions []robot.Action) {
	items := make([]pterm.BulletListItem, 0, len(actions))
	for i, a := range actions {
		items = append(items, pterm.BulletListItem{
			Level:  0,
			Bullet: strconv.Itoa(i+1) + ".",
			Text:   a.String(),
		})
	}
	pterm.DefaultBulletList.WithItems(items).Render()
}

// printSessionSummary closes the demo with the final hand and deck state.
func printSessionSummary(reports []application.RoundReport, remaining int) {
	if len(reports) == 0 {
		return
	}
	last := reports[len(reports)-1]
	pterm.DefaultSection.Println("Session summary")
	pterm.Printfln("Final hand: %s", last.FinalEval.Name)
	pterm.Printfln("Cards left in deck: %d", remaining)
}
