package poker

import (
	"sort"
)

// Mode selects how good a hand has to be before the robot stops drawing.
type Mode string

const (
	Conservative Mode = "conservative"
	Standard     Mode = "standard"
	Aggressive   Mode = "aggressive"
)

// MaxSwapsPerRound is the standard draw poker limit on replaced cards.
const MaxSwapsPerRound = 3

// KeepThreshold returns the minimum category at which the mode keeps the
// hand as-is. Unknown modes behave like Standard.
func (m Mode) KeepThreshold() Category {
	switch m {
	case Conservative:
		return FullHouse
	case Aggressive:
		return FourOfAKind
	}
	return Straight
}

// SelectDiscards decides which slot positions (0-4) to discard and redraw.
// It returns at most MaxSwapsPerRound positions, sorted ascending, or an
// empty set when the hand is worth keeping. Made hands (straight or better)
// are never broken regardless of mode.
func SelectDiscards(hand Hand, mode Mode) ([]int, error) {
	ev, err := Evaluate(hand)
	if err != nil {
		return nil, err
	}

	if ev.Category >= mode.KeepThreshold() {
		return nil, nil
	}

	var discards []int
	switch ev.Category {
	case RoyalFlush, StraightFlush, FourOfAKind, FullHouse, Flush, Straight:
		return nil, nil

	case ThreeOfAKind:
		trip := ev.Tiebreaks[0]
		for i, c := range hand {
			if c.Rank != trip {
				discards = append(discards, i)
			}
		}

	case TwoPair:
		high, low := ev.Tiebreaks[0], ev.Tiebreaks[1]
		for i, c := range hand {
			if c.Rank != high && c.Rank != low {
				discards = append(discards, i)
			}
		}

	case OnePair:
		pair := ev.Tiebreaks[0]
		for i, c := range hand {
			if c.Rank != pair {
				discards = append(discards, i)
			}
		}

	default: // HighCard: look for a draw before dumping low cards
		discards = flushDrawDiscards(hand)
		if discards == nil {
			if keep, ok := findStraightDraw(hand); ok {
				for i := 0; i < HandSize; i++ {
					if !keep[i] {
						discards = append(discards, i)
					}
				}
			}
		}
		if discards == nil {
			discards = lowestRankDiscards(hand, MaxSwapsPerRound)
		}
	}

	if len(discards) > MaxSwapsPerRound {
		discards = discards[:MaxSwapsPerRound]
	}
	sort.Ints(discards)
	return discards, nil
}

// flushDrawDiscards returns the single off-suit position when exactly 4 of
// the 5 cards share a suit, or nil when there is no flush draw.
func flushDrawDiscards(hand Hand) []int {
	suitCount := map[uint8]int{}
	for _, c := range hand {
		suitCount[c.Suit]++
	}
	for s := uint8(Clubs); s <= Spades; s++ {
		if suitCount[s] != 4 {
			continue
		}
		var discards []int
		for i, c := range hand {
			if c.Suit != s {
				discards = append(discards, i)
			}
		}
		return discards
	}
	return nil
}

// findStraightDraw looks for 4 cards that could complete a straight
// (open-ended or gutshot). The ace contributes both rank 14 and rank 1 so
// that low draws like A-2-3-4 are seen. Candidate windows of 5 consecutive
// ranks are scanned in ascending base-rank order and the first window
// covering 4 distinct ranks wins. Returns the positions to keep.
func findStraightDraw(hand Hand) ([HandSize]bool, bool) {
	type rankPos struct {
		rank int
		pos  int
	}

	rps := make([]rankPos, 0, HandSize+1)
	for i, c := range hand {
		rps = append(rps, rankPos{rank: c.Rank, pos: i})
	}
	for i, c := range hand {
		if c.Rank == Ace {
			rps = append(rps, rankPos{rank: 1, pos: i})
		}
	}
	sort.SliceStable(rps, func(i, j int) bool { return rps[i].rank < rps[j].rank })

	for i := range rps {
		base := rps[i].rank

		// collect window members, skipping duplicate positions from the
		// ace dual-counting
		var candidates []rankPos
		for _, rp := range rps {
			if rp.rank < base || rp.rank > base+4 {
				continue
			}
			seen := false
			for _, c := range candidates {
				if c.pos == rp.pos {
					seen = true
					break
				}
			}
			if !seen {
				candidates = append(candidates, rp)
			}
		}

		distinct := map[int]bool{}
		for _, c := range candidates {
			distinct[c.rank] = true
		}
		if len(distinct) < 4 {
			continue
		}

		var keep [HandSize]bool
		kept := 0
		for _, c := range candidates[:4] {
			if !keep[c.pos] {
				keep[c.pos] = true
				kept++
			}
		}
		if kept == 4 {
			return keep, true
		}
	}
	return [HandSize]bool{}, false
}

// lowestRankDiscards picks the n lowest-ranked positions. Rank ties keep
// their original slot order, which the physical sequencing depends on.
func lowestRankDiscards(hand Hand, n int) []int {
	positions := make([]int, HandSize)
	for i := range positions {
		positions[i] = i
	}
	sort.SliceStable(positions, func(i, j int) bool {
		return hand[positions[i]].Rank < hand[positions[j]].Rank
	})
	return positions[:n]
}
