// internal/game/score.go
//
// Length-based scoring. The schedule is deliberately non-linear so
// that sweeping up every 4-letter word cannot match finding a few
// long ones. The exact numbers are a tuning choice, so the table is a
// replaceable value rather than a constant.

package game

// ScoreTable maps word length to points. Lengths beyond the table
// grow by PerExtraLetter per letter.
type ScoreTable struct {
	Points         map[int]int
	PerExtraLetter int
}

// DefaultScoreTable returns the stock schedule:
// 4→1, 5→2, 6→4, 7→7, 8→11, then +5 per further letter.
func DefaultScoreTable() ScoreTable {
	return ScoreTable{
		Points:         map[int]int{4: 1, 5: 2, 6: 4, 7: 7, 8: 11},
		PerExtraLetter: 5,
	}
}

// PointsFor returns the value of a word of the given letter count.
// Lengths below the minimum are worth nothing.
func (t ScoreTable) PointsFor(length int) int {
	if length < minTableLength(t) {
		return 0
	}
	if pts, ok := t.Points[length]; ok {
		return pts
	}
	// Beyond the table: extend from its longest entry.
	max, pts := 0, 0
	for l, p := range t.Points {
		if l > max {
			max, pts = l, p
		}
	}
	if length <= max {
		return 0 // hole in a custom table
	}
	return pts + (length-max)*t.PerExtraLetter
}

func minTableLength(t ScoreTable) int {
	min := 0
	for l := range t.Points {
		if min == 0 || l < min {
			min = l
		}
	}
	return min
}
