package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/glowgrid/akari/internal/board"
	"github.com/glowgrid/akari/internal/engine"
	"github.com/glowgrid/akari/internal/game"
	"github.com/glowgrid/akari/internal/generator"
)

var (
	playSeed   int64
	playConfig string
	playSolo   bool
)

// thinkingPause keeps the engine's reply from appearing instantaneous,
// so the alternation reads as a turn exchange rather than a flicker.
const thinkingPause = 300 * time.Millisecond

var (
	styleWall   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	styleNumber = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	styleBulb   = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	styleLit    = lipgloss.NewStyle().Foreground(lipgloss.Color("228"))
	styleMark   = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	styleDark   = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	styleEngine = lipgloss.NewStyle().Foreground(lipgloss.Color("213"))
	styleStatus = lipgloss.NewStyle().Foreground(lipgloss.Color("120"))
)

func init() {
	playCmd := &cobra.Command{
		Use:   "play",
		Short: "Play an interactive game against the board",
		Long: `Start an interactive game. You and the engine alternate: each of
your moves is answered by one engine move.

Commands at the prompt:
  b ROW COL   toggle a bulb
  m ROW COL   toggle a no-bulb mark
  undo, redo  step through move history
  solve       let the solver finish the puzzle
  new [seed]  generate a fresh puzzle
  restart     clear the current puzzle
  quit        exit`,
		RunE: runPlay,
	}
	playCmd.Flags().Int64Var(&playSeed, "seed", 0, "Generation seed (0 means time-based)")
	playCmd.Flags().StringVar(&playConfig, "config", "", "YAML generator parameters file")
	playCmd.Flags().BoolVar(&playSolo, "solo", false, "Disable the engine's replies")
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	cfg := generator.DefaultConfig()
	if playConfig != "" {
		var err error
		if cfg, err = generator.LoadConfig(playConfig); err != nil {
			return err
		}
	}
	seed := playSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	g, err := game.New(cfg, seed)
	if err != nil {
		return err
	}

	rl, err := readline.New("akari> ")
	if err != nil {
		return err
	}
	defer rl.Close()

	fmt.Println(renderBoard(g))
	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt || err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if quit := dispatch(g, strings.Fields(line)); quit {
			return nil
		}
	}
}

// dispatch runs one REPL command and reports whether the loop should
// exit.
func dispatch(g *game.Game, fields []string) bool {
	if len(fields) == 0 {
		return false
	}
	switch fields[0] {
	case "quit", "exit", "q":
		return true
	case "help", "h", "?":
		fmt.Println("commands: b ROW COL | m ROW COL | undo | redo | solve | new [seed] | restart | quit")
		return false
	case "b", "bulb":
		humanTurn(g, fields, g.ToggleBulb)
	case "m", "mark":
		humanTurn(g, fields, g.ToggleMark)
	case "undo":
		report(g, g.Undo())
	case "redo":
		report(g, g.Redo())
	case "solve":
		report(g, g.RequestSolve())
	case "new":
		seed := time.Now().UnixNano()
		if len(fields) > 1 {
			if n, err := strconv.ParseInt(fields[1], 10, 64); err == nil {
				seed = n
			}
		}
		report(g, g.NewPuzzle(seed))
	case "restart":
		report(g, g.Restart())
	default:
		fmt.Printf("unknown command %q (try 'help')\n", fields[0])
	}
	return false
}

// humanTurn applies one toggle and, unless playing solo, gives the
// engine its reply.
func humanTurn(g *game.Game, fields []string, toggle func(int, int) game.Status) {
	r, c, err := parseCell(fields)
	if err != nil {
		fmt.Println(err)
		return
	}
	st := toggle(r, c)
	if st == game.StatusIllegalMove {
		fmt.Println(styleStatus.Render("that move is not allowed"))
		return
	}
	fmt.Println(renderBoard(g))
	if st == game.StatusSolved {
		fmt.Println(styleStatus.Render("solved! nice work"))
		return
	}

	if playSolo {
		return
	}
	if g.State() != engine.EngineThinking {
		return
	}
	time.Sleep(thinkingPause)
	mv, est := g.EngineMove()
	switch est {
	case game.StatusNoSafeMove:
		fmt.Println(styleEngine.Render("engine passes: no safe move found"))
	case game.StatusSolved:
		fmt.Println(styleEngine.Render("engine: " + mv.String()))
		fmt.Println(renderBoard(g))
		fmt.Println(styleStatus.Render("solved!"))
	default:
		fmt.Println(styleEngine.Render("engine: " + mv.String()))
		fmt.Println(renderBoard(g))
	}
}

func parseCell(fields []string) (int, int, error) {
	if len(fields) != 3 {
		return 0, 0, fmt.Errorf("usage: %s ROW COL", fields[0])
	}
	r, err := strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, fmt.Errorf("bad row %q", fields[1])
	}
	c, err := strconv.Atoi(fields[2])
	if err != nil {
		return 0, 0, fmt.Errorf("bad col %q", fields[2])
	}
	return r, c, nil
}

func report(g *game.Game, st game.Status) {
	fmt.Println(styleStatus.Render(st.String()))
	if st == game.StatusOK || st == game.StatusSolved {
		fmt.Println(renderBoard(g))
	}
}

// renderBoard draws the live board with a column/row legend. The
// engine's last move is highlighted so the human can follow the
// exchange.
func renderBoard(g *game.Game) string {
	b := g.Board()
	last, hasLast := g.LastEngineMove()

	var sb strings.Builder
	sb.WriteString("   ")
	for c := 0; c < b.Cols; c++ {
		sb.WriteString(fmt.Sprintf("%2d", c))
	}
	sb.WriteString("\n")
	for r := 0; r < b.Rows; r++ {
		sb.WriteString(fmt.Sprintf("%2d ", r))
		for c := 0; c < b.Cols; c++ {
			sb.WriteString(" ")
			sb.WriteString(renderCell(b, r, c, hasLast && last.Row == r && last.Col == c))
		}
		sb.WriteString("\n")
	}
	if g.TeamEffort() {
		sb.WriteString(styleDark.Render("(a joint effort)"))
		sb.WriteString("\n")
	}
	return sb.String()
}

func renderCell(b *board.Board, r int, c int, engineLast bool) string {
	cell := b.Grid[r][c]
	var s string
	var style lipgloss.Style
	switch {
	case cell.Kind == board.Wall:
		s, style = "#", styleWall
	case cell.Kind == board.NumberedWall:
		s, style = strconv.Itoa(cell.Number), styleNumber
	case cell.Bulb:
		s, style = "*", styleBulb
	case cell.Mark:
		s, style = "x", styleMark
	case cell.Lit:
		s, style = "+", styleLit
	default:
		s, style = ".", styleDark
	}
	if engineLast {
		style = style.Copy().Underline(true)
	}
	return style.Render(s)
}
