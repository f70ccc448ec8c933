package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/cardworks/poker-robot/domain/poker"
	"github.com/cardworks/poker-robot/domain/robot"
)

// The bridge is the HTTP face of the decision core for the firmware: the
// controller posts the holder state and gets back the literal command
// sequence to execute. Cards travel as {"rank":14,"suit":"H"}; a null entry
// marks an empty holder slot.

type cardJSON struct {
	Rank int    `json:"rank"`
	Suit string `json:"suit"`
}

type handRequest struct {
	Hand []*cardJSON `json:"hand"`
	Mode string      `json:"mode,omitempty"`
}

// Router wires the firmware-facing endpoints.
func Router(defaultMode poker.Mode, logger *slog.Logger) http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("/api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, map[string]any{"ok": true})
	})

	mux.HandleFunc("/api/evaluate", func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeHandRequest(w, r)
		if !ok {
			return
		}
		hand, err := toHand(req.Hand)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		ev, err := poker.Evaluate(hand)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		writeJSON(w, map[string]any{
			"category":  int(ev.Category),
			"name":      ev.Name,
			"tiebreaks": ev.Tiebreaks,
		})
	})

	mux.HandleFunc("/api/actions", func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeHandRequest(w, r)
		if !ok {
			return
		}
		hand, err := toHand(req.Hand)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		mode := defaultMode
		if req.Mode != "" {
			mode = poker.Mode(req.Mode)
		}
		actions, err := robot.BuildActions(hand, mode)
		if err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		texts := make([]string, 0, len(actions))
		for _, a := range actions {
			texts = append(texts, a.String())
		}
		logger.Info("actions served", "mode", string(mode), "commands", len(texts))
		writeJSON(w, map[string]any{
			"actions":   texts,
			"swaps":     robot.CountSwaps(actions),
			"positions": robot.SwapPositions(actions),
		})
	})

	return mux
}

func decodeHandRequest(w http.ResponseWriter, r *http.Request) (handRequest, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, "POST only", http.StatusMethodNotAllowed)
		return handRequest{}, false
	}
	var req handRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body: "+err.Error(), http.StatusBadRequest)
		return handRequest{}, false
	}
	return req, true
}

// toHand maps the wire form onto the holder slots. Null entries become
// empty slots.
func toHand(cards []*cardJSON) (poker.Hand, error) {
	var hand poker.Hand
	if len(cards) != poker.HandSize {
		return hand, fmt.Errorf("hand must have exactly %d slots, got %d", poker.HandSize, len(cards))
	}
	for i, cj := range cards {
		if cj == nil {
			continue
		}
		suit, err := poker.ParseSuit(cj.Suit)
		if err != nil {
			return hand, fmt.Errorf("slot %d: %w", i+1, err)
		}
		card, err := poker.NewCard(cj.Rank, suit)
		if err != nil {
			return hand, fmt.Errorf("slot %d: %w", i+1, err)
		}
		hand[i] = card
	}
	return hand, nil
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
