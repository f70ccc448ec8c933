package poker

import (
	"errors"
	"fmt"
	"sort"
)

// Hand categories, ordered weakest to strongest.
type Category int

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the human-readable name of the category.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	case RoyalFlush:
		return "Royal Flush"
	}
	return "Unknown"
}

// ErrInvalidHand is returned when a hand passed to Evaluate has an empty
// slot or an out-of-range card.
var ErrInvalidHand = errors.New("invalid hand")

// Evaluation is the result of classifying a 5-card hand. Tiebreaks holds the
// ranks used to order two hands of the same category, most significant first.
type Evaluation struct {
	Category  Category
	Tiebreaks []int
	Name      string
}

// Evaluate classifies a full 5-card hand into its category. It fails with
// ErrInvalidHand if any slot is empty.
func Evaluate(hand Hand) (Evaluation, error) {
	for i, c := range hand {
		if c.Empty() {
			return Evaluation{}, fmt.Errorf("%w: empty slot at position %d", ErrInvalidHand, i)
		}
		if c.Rank < 2 || c.Rank > Ace || c.Suit > Spades {
			return Evaluation{}, fmt.Errorf("%w: bad card at position %d", ErrInvalidHand, i)
		}
	}

	ranks := make([]int, 0, HandSize)
	rankCount := map[int]int{}
	suitCount := map[uint8]int{}
	for _, c := range hand {
		ranks = append(ranks, c.Rank)
		rankCount[c.Rank]++
		suitCount[c.Suit]++
	}
	sort.Sort(sort.Reverse(sort.IntSlice(ranks)))

	isFlush := len(suitCount) == 1
	straightHigh, isStraight := checkStraight(ranks)

	var cat Category
	var tiebreaks []int
	switch {
	case isFlush && isStraight && straightHigh == Ace:
		cat, tiebreaks = RoyalFlush, []int{Ace}
	case isFlush && isStraight:
		cat, tiebreaks = StraightFlush, []int{straightHigh}
	case len(ranksCounted(rankCount, 4)) == 1:
		quad := ranksCounted(rankCount, 4)[0]
		kicker := ranksCounted(rankCount, 1)[0]
		cat, tiebreaks = FourOfAKind, []int{quad, kicker}
	case len(ranksCounted(rankCount, 3)) == 1 && len(ranksCounted(rankCount, 2)) == 1:
		trip := ranksCounted(rankCount, 3)[0]
		pair := ranksCounted(rankCount, 2)[0]
		cat, tiebreaks = FullHouse, []int{trip, pair}
	case isFlush:
		cat, tiebreaks = Flush, ranks
	case isStraight:
		cat, tiebreaks = Straight, []int{straightHigh}
	case len(ranksCounted(rankCount, 3)) == 1:
		trip := ranksCounted(rankCount, 3)[0]
		cat, tiebreaks = ThreeOfAKind, append([]int{trip}, ranksCounted(rankCount, 1)...)
	case len(ranksCounted(rankCount, 2)) == 2:
		pairs := ranksCounted(rankCount, 2)
		kicker := ranksCounted(rankCount, 1)[0]
		cat, tiebreaks = TwoPair, []int{pairs[0], pairs[1], kicker}
	case len(ranksCounted(rankCount, 2)) == 1:
		pair := ranksCounted(rankCount, 2)[0]
		cat, tiebreaks = OnePair, append([]int{pair}, ranksCounted(rankCount, 1)...)
	default:
		cat, tiebreaks = HighCard, ranks
	}

	return Evaluation{Category: cat, Tiebreaks: tiebreaks, Name: cat.String()}, nil
}

// checkStraight reports whether the descending sorted ranks form a straight
// and the rank of its high card. The wheel A-2-3-4-5 counts as a 5-high
// straight.
func checkStraight(ranks []int) (int, bool) {
	uniq := uniqueSortedDesc(ranks)
	if len(uniq) != HandSize {
		return 0, false
	}
	if uniq[0]-uniq[4] == 4 {
		return uniq[0], true
	}
	if uniq[0] == Ace && uniq[1] == 5 && uniq[2] == 4 && uniq[3] == 3 && uniq[4] == 2 {
		return 5, true
	}
	return 0, false
}

// Compare orders two evaluations: 1 if a is stronger, -1 if b is stronger,
// 0 on a true tie. Category decides first, then the tiebreak ranks compared
// element-wise.
func Compare(a, b Evaluation) int {
	if a.Category != b.Category {
		if a.Category > b.Category {
			return 1
		}
		return -1
	}
	for i := 0; i < len(a.Tiebreaks) && i < len(b.Tiebreaks); i++ {
		if a.Tiebreaks[i] > b.Tiebreaks[i] {
			return 1
		}
		if a.Tiebreaks[i] < b.Tiebreaks[i] {
			return -1
		}
	}
	return 0
}

// ranksCounted returns the ranks appearing exactly n times, sorted descending.
func ranksCounted(counts map[int]int, n int) []int {
	out := []int{}
	for r, c := range counts {
		if c == n {
			out = append(out, r)
		}
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}

func uniqueSortedDesc(in []int) []int {
	m := map[int]bool{}
	for _, v := range in {
		m[v] = true
	}
	out := make([]int, 0, len(m))
	for v := range m {
		out = append(out, v)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(out)))
	return out
}
