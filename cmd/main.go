package main

import (
	"log/slog"
	"net/http"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/pterm/pterm"
	"github.com/pterm/pterm/putils"

	"github.com/cardworks/poker-robot/application"
	"github.com/cardworks/poker-robot/domain/poker"
)

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return n
}

func main() {
	_ = godotenv.Load()

	// Create a new slog handler with the default PTerm logger
	handler := pterm.NewSlogHandler(&pterm.DefaultLogger)
	logger := slog.New(handler)

	seed := int64(atoiDef(os.Getenv("ROBOT_SEED"), 0))
	mode := poker.Mode(getenv("ROBOT_MODE", string(poker.Standard)))
	rounds := atoiDef(os.Getenv("ROBOT_ROUNDS"), 2)

	serve := false
	for _, a := range os.Args[1:] {
		if a == "--serve" {
			serve = true
		}
	}

	if serve {
		port := getenv("PORT", "8080")
		logger.Info("firmware bridge listening", "port", port)
		if err := http.ListenAndServe(":"+port, Router(mode, logger)); err != nil {
			logger.Error("bridge stopped", "error", err.Error())
			os.Exit(1)
		}
		return
	}

	pterm.DefaultBigText.WithLetters(
		putils.LettersFromStringWithStyle("P", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("oker ", pterm.FgDarkGray.ToStyle()),
		putils.LettersFromStringWithStyle("R", pterm.FgRed.ToStyle()),
		putils.LettersFromStringWithStyle("obot", pterm.FgDarkGray.ToStyle()),
	).Render()

	pterm.Info.Printfln("Strategy mode: %s (keeps %s or better)", mode, mode.KeepThreshold())
	if seed != 0 {
		pterm.Info.Printfln("Deck seed: %d", seed)
	}

	printScenarios(mode)

	orchestrator := application.NewRoundOrchestrator(seed, mode, logger)
	reports, err := orchestrator.PlayRounds(rounds)
	if err != nil {
		logger.Error(err.Error())
		os.Exit(1)
	}

	for i, report := range reports {
		printRound(i+1, report)
	}
	printSessionSummary(reports, orchestrator.Deck.Remaining())
}
