package ttt

import (
	"testing"

	"github.com/pkg/errors"
)

// Visit every position reachable by legal play, stopping at terminal ones
func walk(p *Position, visit func(*Position)) {
	visit(p)
	if p.Winning() || p.OpponentWinning() || p.Full() {
		return
	}
	for _, m := range p.GenerateMoves().Slice() {
		p.Play(m)
		walk(p, visit)
		p.Undo(m)
	}
}

func TestCellMask(t *testing.T) {
	if m := CellMask(0); m != 0b100000000 {
		t.Errorf("CellMask(0)=%09b, want most significant bit", m)
	}
	if m := CellMask(8); m != 0b000000001 {
		t.Errorf("CellMask(8)=%09b, want least significant bit", m)
	}

	var all Move
	for c := range Cell(NumCells) {
		all |= CellMask(c)
		if got := CellMask(c).Cell(); got != c {
			t.Errorf("CellMask(%d).Cell()=%d", c, got)
		}
	}
	if uint16(all) != FullBoard {
		t.Errorf("cell masks don't cover the board: %09b", all)
	}
}

func TestPlayUndoRoundTrip(t *testing.T) {
	count := 0
	walk(NewPosition(), func(p *Position) {
		count++
		if p.Full() || p.OpponentWinning() {
			return
		}
		for _, m := range p.GenerateMoves().Slice() {
			before := *p
			p.Play(m)
			p.Undo(m)
			if *p != before {
				t.Fatalf("play/undo %s changed %+v into %+v", m, before, *p)
			}
		}
	})
	t.Logf("visited %d positions", count)
}

func TestInvariants(t *testing.T) {
	keys := make(map[uint16][2]uint16)

	walk(NewPosition(), func(p *Position) {
		if p.position&^p.mask != 0 {
			t.Fatalf("mover's cells not a subset of the mask: %+v", *p)
		}
		if n := countOnes(p.mask); n != p.moves {
			t.Fatalf("ply count %d != occupied cells %d", p.moves, n)
		}
		if p.Winning() && p.OpponentWinning() {
			t.Fatalf("both sides winning at %s", p.Notation())
		}

		// key must be a bijection over reachable states
		pair := [2]uint16{p.position, p.mask}
		if other, ok := keys[p.Key()]; ok && other != pair {
			t.Fatalf("key %d collides: %v and %v", p.Key(), other, pair)
		}
		keys[p.Key()] = pair
	})

	t.Logf("%d distinct keys", len(keys))
}

func TestKeyNoCarry(t *testing.T) {
	// As binary sums both are 0b100: X c1, O b1 with X to move vs X a1 with O to move
	a := NewPosition()
	a.PlayCell(C1)
	a.PlayCell(B1)

	b := NewPosition()
	b.PlayCell(A1)

	if a.Key() == b.Key() {
		t.Fatalf("keys collide: %d", a.Key())
	}
	if NewPosition().Key() != 0 {
		t.Errorf("empty board key=%d, want 0", NewPosition().Key())
	}
}

func countOnes(v uint16) int {
	n := 0
	for ; v != 0; v &= v - 1 {
		n++
	}
	return n
}

func TestScore(t *testing.T) {
	tests := []struct {
		moves int
		score int
	}{
		{5, 3}, {6, 2}, {7, 2}, {8, 1}, {9, 1},
	}

	for _, tt := range tests {
		p := Position{moves: tt.moves}
		if s := p.Score(); s != tt.score {
			t.Errorf("Score() at ply %d = %d, want %d", tt.moves, s, tt.score)
		}
	}
}

func TestWinAtPlyFive(t *testing.T) {
	p := NewPosition()
	// X: 0, 1, 2 (top row), O: 3, 4
	for _, c := range []Cell{0, 3, 1, 4, 2} {
		p.PlayCell(c)
	}

	if p.NumMoves() != 5 {
		t.Fatalf("NumMoves()=%d, want 5", p.NumMoves())
	}
	if !p.OpponentWinning() || p.Winning() {
		t.Fatalf("after X completes a line: opponentWinning=%v winning=%v", p.OpponentWinning(), p.Winning())
	}

	// Same position, seen from the player who completed the line
	mover := *p
	mover.position ^= mover.mask
	if !mover.Winning() {
		t.Error("Winning() should be true for the player who completed the line")
	}
	if s := mover.Score(); s != 3 {
		t.Errorf("Score()=%d, want 3", s)
	}
	if p.Termination() != TerminationCrossWon {
		t.Errorf("Termination()=%s, want %s", p.Termination(), TerminationCrossWon)
	}
}

func TestPossibleMoves(t *testing.T) {
	p := NewPosition()
	if uint16(p.PossibleMoves()) != FullBoard {
		t.Fatalf("empty board possible moves %09b", p.PossibleMoves())
	}

	p.PlayCell(B2)
	if p.PossibleMoves()&CellMask(B2) != 0 {
		t.Error("center should be occupied")
	}
	if got := p.GenerateMoves().Size; got != 8 {
		t.Errorf("GenerateMoves().Size=%d, want 8", got)
	}
	if p.Turn() != CircleTurn {
		t.Error("circle should be to move")
	}
}

func TestBitboards(t *testing.T) {
	p := NewPosition()
	p.PlayCell(4) // X
	p.PlayCell(0) // O
	p.PlayCell(8) // X

	cross, circle := p.Bitboards()
	if want := uint16(CellMask(4) | CellMask(8)); cross != want {
		t.Errorf("cross=%09b, want %09b", cross, want)
	}
	if want := uint16(CellMask(0)); circle != want {
		t.Errorf("circle=%09b, want %09b", circle, want)
	}
	if p.At(0) != Circle || p.At(4) != Cross || p.At(1) != None {
		t.Errorf("unexpected board %v", p.Board())
	}
}

func TestMakeLegalMove(t *testing.T) {
	p := NewPosition()
	if err := p.MakeLegalMove(CellMask(4)); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		move Move
	}{
		{"occupied", CellMask(4)},
		{"empty", NoMove},
		{"two cells", CellMask(0) | CellMask(1)},
		{"outside", Move(1 << 12)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := *p
			err := p.MakeLegalMove(tt.move)
			if !errors.Is(err, ErrIllegalMove) {
				t.Errorf("MakeLegalMove(%016b) err=%v, want ErrIllegalMove", tt.move, err)
			}
			if *p != before {
				t.Error("position changed after illegal move")
			}
		})
	}
}
