// Package poker implements the decision core for five-card draw: hand
// evaluation, category ordering, and the discard strategy.
//
// # Core Types
//
// Card: a playing card with suit and rank. The zero value marks an empty
// holder slot.
//
// Hand: the five holder slots, indexed 0 to 4.
//
// Evaluation: the category of a hand plus the tiebreak ranks that order
// hands within a category.
//
// Mode: the strategy profile (conservative, standard, aggressive) that sets
// how strong a hand must be before the robot stops drawing.
//
// # Hand Evaluation
//
// Evaluate classifies a full 5-card hand into one of the ten standard
// categories, from high card up to royal flush. The ace plays high
// everywhere except the wheel (A-2-3-4-5), where the straight counts as
// 5 high. Compare orders two evaluations by category first, then by the
// tiebreak ranks.
//
// # Discard Strategy
//
// SelectDiscards picks at most three holder positions to throw away. Made
// hands (straight or better) are never broken; below the mode threshold the
// strategy chases a flush draw, then a straight draw, and otherwise dumps
// the lowest cards.
package poker
