package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/muesli/termenv"

	"github.com/IlikeChooros/go-negamax/pkg/agent"
	"github.com/IlikeChooros/go-negamax/pkg/ttt"
)

// Draws boards with colored pieces, plain text when the output has no colors
type renderer struct {
	out    *termenv.Output
	cross  termenv.Color
	circle termenv.Color
}

func newRenderer(w io.Writer, noColor bool) *renderer {
	var out *termenv.Output
	if noColor {
		out = termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	} else {
		out = termenv.NewOutput(w)
	}

	return &renderer{
		out:    out,
		cross:  out.Color("1"),
		circle: out.Color("4"),
	}
}

func (r *renderer) cell(p ttt.PlayerType) string {
	switch p {
	case ttt.Cross:
		return r.out.String(p.String()).Foreground(r.cross).Bold().String()
	case ttt.Circle:
		return r.out.String(p.String()).Foreground(r.circle).Bold().String()
	}
	return r.out.String(p.String()).Faint().String()
}

// Board with the coordinates, last move highlighted
//
//	   a b c
//	3  X . O
//	2  . X .
//	1  . . O
func (r *renderer) board(pos *ttt.Position, last ttt.Move) string {
	builder := strings.Builder{}
	builder.WriteString("   a b c\n")

	board := pos.Board()
	for row := range 3 {
		fmt.Fprintf(&builder, "%d ", 3-row)
		for col := range 3 {
			c := ttt.Cell(row*3 + col)
			sep := " "
			if last != ttt.NoMove && last.Cell() == c {
				sep = r.out.String(">").Faint().String()
			}
			builder.WriteString(sep)
			builder.WriteString(r.cell(board[c]))
		}
		builder.WriteByte('\n')
	}
	return builder.String()
}

func (r *renderer) printBoard(pos *ttt.Position, last ttt.Move) {
	fmt.Fprint(r.out, r.board(pos, last))
}

func (r *renderer) title(s string) string {
	return r.out.String(s).Bold().Underline().String()
}

// Shows the board before every decision, so a human opponent can see it
type displayAgent struct {
	agent.Agent
	r *renderer
}

func (d displayAgent) SelectMove(pos *ttt.Position) ttt.Move {
	fmt.Fprintf(d.r.out, "\n%s (%s)\n", d.r.title(d.Name()), pos.Turn().Player())
	d.r.printBoard(pos, ttt.NoMove)
	return d.Agent.SelectMove(pos)
}

func (d displayAgent) Clone() agent.Agent {
	return displayAgent{Agent: d.Agent.Clone(), r: d.r}
}
