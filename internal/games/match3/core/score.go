package core

// Scorer maps a matched group to points.
type Scorer interface {
	ValueOf(group MatchGroup) int
}

// TieredScorer awards a fixed value per run-length tier.
// Runs longer than five all earn Six; there is no per-tile scaling and no
// bonus for a tile shared by a row and a column group.
type TieredScorer struct {
	Three int
	Four  int
	Five  int
	Six   int // six or more
}

// DefaultScorer returns the standard 3/5/9/15 tiers.
func DefaultScorer() TieredScorer {
	return TieredScorer{Three: 3, Four: 5, Five: 9, Six: 15}
}

// ValueOf returns the points for one group. Groups shorter than MinRun are
// worth nothing.
func (s TieredScorer) ValueOf(group MatchGroup) int {
	switch n := group.Len(); {
	case n < MinRun:
		return 0
	case n == 3:
		return s.Three
	case n == 4:
		return s.Four
	case n == 5:
		return s.Five
	default:
		return s.Six
	}
}

// Score is a running total that never drops below zero.
type Score struct {
	value int
}

// Value returns the current total.
func (s *Score) Value() int {
	return s.value
}

// Add increases the total. Negative input is ignored.
func (s *Score) Add(points int) {
	if points > 0 {
		s.value += points
	}
}

// Subtract lowers the total, clamping at zero. It returns the amount that was
// actually removed.
func (s *Score) Subtract(points int) int {
	if points <= 0 {
		return 0
	}
	if points > s.value {
		points = s.value
	}
	s.value -= points
	return points
}

// Set overwrites the total; negative values clamp to zero.
func (s *Score) Set(v int) {
	if v < 0 {
		v = 0
	}
	s.value = v
}

// Reset zeroes the total.
func (s *Score) Reset() {
	s.value = 0
}
