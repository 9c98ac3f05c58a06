// Command connect4-tui plays a terminal game against the minimax
// player.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/NicolasHug/connect4/game"
	"github.com/NicolasHug/connect4/searcher"
)

type aiMoveMsg struct {
	result searcher.Result
}

type model struct {
	game     *game.Game
	ai       *searcher.Minimax
	cursor   int
	status   string
	thinking bool
}

func initialModel(rows, cols, toWin, depth int) (model, error) {
	g, err := game.NewGame(rows, cols, toWin, game.Yellow, game.Red)
	if err != nil {
		return model{}, err
	}
	return model{
		game:   g,
		ai:     searcher.NewMinimax(game.Red, game.Yellow, toWin, searcher.WithDepth(depth)),
		cursor: cols / 2,
		status: "Your move.",
	}, nil
}

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) aiMove() tea.Cmd {
	// Search on a clone: the live board is still being rendered while
	// the search mutates its working copy.
	board := m.game.Board.Clone()
	return func() tea.Msg {
		return aiMoveMsg{result: m.ai.ChooseMove(board)}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < m.game.Board.Cols-1 {
				m.cursor++
			}
		case "enter", " ":
			if m.thinking || m.game.Over() {
				return m, nil
			}
			if !m.game.Board.IsFree(m.cursor) {
				m.status = "That column is full."
				return m, nil
			}
			if _, err := m.game.Play(m.cursor); err != nil {
				m.status = err.Error()
				return m, nil
			}
			if m.game.Over() {
				m.status = verdict(m.game)
				return m, nil
			}
			m.thinking = true
			m.status = "Thinking..."
			return m, m.aiMove()
		}

	case aiMoveMsg:
		m.thinking = false
		if _, err := m.game.Play(msg.result.Column); err != nil {
			m.status = err.Error()
			return m, nil
		}
		if m.game.Over() {
			m.status = verdict(m.game)
		} else {
			m.status = fmt.Sprintf("I played column %d. Your move.", msg.result.Column+1)
		}
	}

	return m, nil
}

func verdict(g *game.Game) string {
	switch g.Winner() {
	case game.Yellow:
		return "You won the game!"
	case game.Red:
		return "I won the game!"
	default:
		return "There's no winner. We're both losers."
	}
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString("connect4 — you are o, the machine is x\n\n")

	for col := 0; col < m.game.Board.Cols; col++ {
		if col == m.cursor {
			sb.WriteString(" v ")
		} else {
			sb.WriteString("   ")
		}
	}
	sb.WriteByte('\n')

	for row := 0; row < m.game.Board.Rows; row++ {
		for col := 0; col < m.game.Board.Cols; col++ {
			fmt.Fprintf(&sb, " %s ", m.game.Board.At(row, col))
		}
		sb.WriteByte('\n')
	}

	sb.WriteString("\n" + m.status + "\n")
	sb.WriteString("\n←/→ pick a column, enter to drop, q to quit.\n")
	return sb.String()
}

func main() {
	rows := flag.Int("rows", 6, "Number of board rows")
	cols := flag.Int("cols", 7, "Number of board columns")
	toWin := flag.Int("towin", 4, "Number of aligned pieces needed to win")
	depth := flag.Int("depth", searcher.DefaultDepth, "Minimax search depth")
	flag.Parse()

	m, err := initialModel(*rows, *cols, *toWin, *depth)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
