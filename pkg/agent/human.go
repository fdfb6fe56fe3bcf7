package agent

import (
	"bufio"
	"fmt"
	"io"

	"github.com/rs/zerolog/log"

	"github.com/IlikeChooros/go-negamax/pkg/ttt"
)

// Reads moves from the input, one per line, either as a coordinate ('b2')
// or a cell index ('4'). Asks again until the move is legal.
type HumanAgent struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHumanAgent(in io.Reader, out io.Writer) *HumanAgent {
	return &HumanAgent{in: bufio.NewScanner(in), out: out}
}

// Returns NoMove once the input is exhausted
func (a *HumanAgent) SelectMove(pos *ttt.Position) ttt.Move {
	if !checkPlayable(a.Name(), pos) {
		return ttt.NoMove
	}

	for {
		fmt.Fprintf(a.out, "%s to move [%s]: ", pos.Turn().Player(), pos.GenerateMoves())
		if !a.in.Scan() {
			if err := a.in.Err(); err != nil {
				log.Error().Err(err).Msg("human-input-failed")
			}
			fmt.Fprintln(a.out)
			return ttt.NoMove
		}

		text := a.in.Text()
		move := ttt.MoveFromString(text)
		if pos.CanPlay(move) {
			return move
		}
		fmt.Fprintf(a.out, "illegal move %q\n", text)
	}
}

func (a *HumanAgent) NodesVisited() int {
	return 0
}

func (a *HumanAgent) Reset() {}

func (a *HumanAgent) Name() string {
	return "human"
}

// Clones share the input and output, only one of them may be reading at a time
func (a *HumanAgent) Clone() Agent {
	return &HumanAgent{in: a.in, out: a.out}
}
