package negamax

import "github.com/IlikeChooros/go-negamax/pkg/ttt"

type sortedMove struct {
	move  ttt.Move
	score int
}

// Small priority queue of candidate moves, sorted on insertion.
// Holds at most 9 moves, one for each cell.
//
// Moves with equal scores are popped in the order they were added,
// so adding them in StaticOrder with a constant score keeps that order.
type MoveSorter struct {
	entries [ttt.NumCells]sortedMove
	size    int
}

func (ms *MoveSorter) Clear() {
	ms.size = 0
}

func (ms *MoveSorter) Len() int {
	return ms.size
}

// Insert the move, keeping the entries in ascending score order,
// the last entry is the next one to pop
func (ms *MoveSorter) Add(move ttt.Move, score int) {
	i := ms.size
	for ; i > 0 && ms.entries[i-1].score >= score; i-- {
		ms.entries[i] = ms.entries[i-1]
	}
	ms.entries[i] = sortedMove{move: move, score: score}
	ms.size++
}

// Remove and return the highest scoring move, false when empty
func (ms *MoveSorter) Pop() (ttt.Move, bool) {
	if ms.size == 0 {
		return ttt.NoMove, false
	}
	ms.size--
	return ms.entries[ms.size].move, true
}
