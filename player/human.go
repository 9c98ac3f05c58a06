package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/NicolasHug/connect4/game"
)

// Human asks for a 1-based column number on its reader and re-prompts
// until the answer parses, is on the board, and is not full. It returns
// an error only when the reader is exhausted or fails.
type Human struct {
	side game.Cell
	in   *bufio.Scanner
	out  io.Writer
}

func NewHuman(side game.Cell, in io.Reader, out io.Writer) *Human {
	return &Human{side: side, in: bufio.NewScanner(in), out: out}
}

func (p *Human) ChooseColumn(b *game.Board) (int, error) {
	for {
		fmt.Fprintf(p.out, "%s's turn. Please choose a column: ", p)
		if !p.in.Scan() {
			if err := p.in.Err(); err != nil {
				return 0, err
			}
			return 0, io.EOF
		}

		col, err := strconv.Atoi(strings.TrimSpace(p.in.Text()))
		if err != nil {
			fmt.Fprintln(p.out, "Invalid choice.")
			continue
		}
		col-- // columns are shown 1-based
		if col < 0 || col >= b.Cols || !b.IsFree(col) {
			fmt.Fprintln(p.out, "Invalid choice.")
			continue
		}
		return col, nil
	}
}

func (p *Human) Side() game.Cell {
	return p.side
}

func (p *Human) String() string {
	return p.side.String()
}
