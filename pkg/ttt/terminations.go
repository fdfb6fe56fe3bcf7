package ttt

type Termination int

const (
	TerminationNone      Termination = 0
	TerminationCircleWon Termination = 1
	TerminationCrossWon  Termination = 2
	TerminationDraw      Termination = 4
)

func (t Termination) String() string {
	switch t {
	case TerminationCircleWon:
		return "O won"
	case TerminationCrossWon:
		return "X won"
	case TerminationDraw:
		return "draw"
	}
	return "none"
}

// Evaluate the termination from the physical bitboards
func (p *Position) Termination() Termination {
	cross, circle := p.Bitboards()

	if checkWinning(cross) {
		return TerminationCrossWon
	}
	if checkWinning(circle) {
		return TerminationCircleWon
	}
	if p.Full() {
		return TerminationDraw
	}
	return TerminationNone
}

// Check if the game is over
func (p *Position) IsTerminated() bool {
	return p.Termination() != TerminationNone
}

func (p *Position) IsDraw() bool {
	return p.Termination() == TerminationDraw
}

// The player who completed a line, None on draws and unfinished games
func (p *Position) Winner() PlayerType {
	switch p.Termination() {
	case TerminationCrossWon:
		return Cross
	case TerminationCircleWon:
		return Circle
	}
	return None
}
