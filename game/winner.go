package game

// Run is a maximal stretch of consecutive identical cells within a line.
type Run struct {
	Value  Cell
	Length int
}

// Runs run-length encodes a line.
func Runs(seq []Cell) []Run {
	var runs []Run
	for _, c := range seq {
		if n := len(runs); n > 0 && runs[n-1].Value == c {
			runs[n-1].Length++
		} else {
			runs = append(runs, Run{Value: c, Length: 1})
		}
	}
	return runs
}

// Winner scans every line of the board for a run of at least toWin
// identical pieces and returns the side owning it, or Empty when there
// is no winner. At most one side can have a qualifying run in a position
// reached one move at a time, so the first match decides.
func Winner(b *Board, toWin int) Cell {
	for seq := range b.Sequences(toWin) {
		for _, r := range Runs(seq) {
			if r.Value != Empty && r.Length >= toWin {
				return r.Value
			}
		}
	}
	return Empty
}
