// Package shell implements the interactive console: a readline loop
// where a human sows against the minimax engine.
package shell

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog/log"

	"mancala/config"
	"mancala/game"
	"mancala/searcher"
)

const clearScreen = "\033[H\033[2J"

const maxDepth = 20

const helpText = `Commands:
  new [white|black]  start a game playing the given side (default white)
  1-6                sow the numbered pocket (play N works too)
  hint               ask the engine for the best continuation
  depth N            set the engine lookahead (1-20)
  board              redraw the board
  score              show the current standing
  help               show this text
  exit               leave the shell`

type ShellController struct {
	l            *readline.Instance
	out          io.Writer
	searcher     *searcher.Minimax
	depth        int
	defaultColor string
	pos          game.Position
	human        game.Player
	playing      bool
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

func NewShellController(cfg *config.Config) *ShellController {
	l, err := readline.NewEx(&readline.Config{
		Prompt:          "\033[31mmancala>\033[0m ",
		HistoryFile:     "/tmp/readline-mancala.tmp",
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
	if err != nil {
		panic(err)
	}
	sc := newController(cfg, l.Stdout())
	sc.l = l
	return sc
}

// newController wires everything except the readline instance.
func newController(cfg *config.Config, out io.Writer) *ShellController {
	depth := cfg.Depth
	if depth < 1 || depth > maxDepth {
		depth = searcher.DefaultDepth
	}
	return &ShellController{
		out:          out,
		searcher:     searcher.NewMinimax(depth, searcher.WithMetrics()),
		depth:        depth,
		defaultColor: cfg.Color,
	}
}

func (sc *ShellController) Loop(sig chan os.Signal) {
	defer sc.l.Close()

	sc.showMessage("Mancala shell. Type help for commands.")

	for {
		line, err := sc.l.Readline()
		if err == readline.ErrInterrupt {
			if len(line) == 0 {
				sig <- syscall.SIGINT
				break
			}
			continue
		} else if err == io.EOF {
			sig <- syscall.SIGINT
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if sc.dispatch(line) {
			break
		}
	}
	log.Debug().Msgf("exiting shell loop")
}

// dispatch runs one command line and reports whether the shell should
// exit.
func (sc *ShellController) dispatch(line string) bool {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false
	}
	cmd := strings.ToLower(fields[0])
	args := fields[1:]

	switch cmd {
	case "exit", "quit":
		return true
	case "help":
		sc.showMessage(helpText)
	case "new":
		sc.newGame(args)
	case "depth":
		sc.setDepth(args)
	case "board", "show":
		sc.showBoard()
	case "score":
		sc.showScore()
	case "hint":
		sc.hint()
	case "play":
		if len(args) != 1 {
			sc.showError(errors.New("usage: play <pocket>"))
			break
		}
		sc.humanSow(args[0])
	default:
		if _, err := strconv.Atoi(cmd); err == nil {
			// A bare number sows that pocket.
			sc.humanSow(cmd)
			break
		}
		sc.showError(fmt.Errorf("unknown command %v, type help", cmd))
	}
	return false
}

func (sc *ShellController) newGame(args []string) {
	color := sc.defaultColor
	if len(args) > 0 {
		color = args[0]
	}
	switch strings.ToLower(color) {
	case "", "white":
		sc.human = game.White
	case "black":
		sc.human = game.Black
	default:
		sc.showError(fmt.Errorf("side must be white or black, not %v", color))
		return
	}

	sc.pos = game.NewPosition()
	sc.playing = true
	log.Info().Msgf("new game: human is %s, engine depth %d", sc.human, sc.depth)

	sc.showBoard()
	if sc.pos.Player() != sc.human {
		sc.engineTurn()
	}
}

func (sc *ShellController) humanSow(arg string) {
	if !sc.playing {
		sc.showError(errors.New("no game in progress, type new to start one"))
		return
	}
	if sc.pos.Player() != sc.human {
		sc.showError(errors.New("it is not your turn"))
		return
	}

	label, err := strconv.Atoi(arg)
	if err != nil {
		sc.showError(fmt.Errorf("pockets are numbered 1-6, not %v", arg))
		return
	}
	pocket, ok := pocketIndex(sc.human, label)
	if !ok {
		sc.showError(game.ErrInvalidPocket)
		return
	}

	next, err := sc.pos.Sow(pocket)
	if err != nil {
		if errors.Is(err, game.ErrEmptyPocket) {
			err = fmt.Errorf("pocket %d has no stones", label)
		}
		sc.showError(err)
		return
	}
	sc.pos = next
	sc.showBoard()

	if sc.finishIfOver() {
		return
	}
	if sc.pos.Player() == sc.human {
		sc.showMessage("your sow ended in your store: go again")
		return
	}
	sc.engineTurn()
}

func (sc *ShellController) engineTurn() {
	move, score, metric := sc.searcher.FindMove(sc.pos)
	if len(move) == 0 {
		sc.finishIfOver()
		return
	}
	next, err := sc.pos.Play(move)
	if err != nil {
		panic(fmt.Sprintf("engine produced illegal move %v: %v", move, err))
	}
	sc.pos = next

	sc.showBoard()
	sc.showMessage(fmt.Sprintf("engine sows %s (score %+d, %d nodes in %s)",
		labels(sc.human.Other(), move), int(score), metric.Nodes, metric.Duration))
	sc.finishIfOver()
}

func (sc *ShellController) hint() {
	if !sc.playing {
		sc.showError(errors.New("no game in progress, type new to start one"))
		return
	}
	if sc.pos.Player() != sc.human {
		sc.showError(errors.New("it is not your turn"))
		return
	}

	move, score, metric := sc.searcher.FindMove(sc.pos)
	if len(move) == 0 {
		sc.finishIfOver()
		return
	}
	sc.showMessage(fmt.Sprintf("hint: sow %s (score %+d, %d nodes in %s)",
		labels(sc.human, move), int(score), metric.Nodes, metric.Duration))
}

func (sc *ShellController) setDepth(args []string) {
	if len(args) != 1 {
		sc.showError(errors.New("usage: depth <1-20>"))
		return
	}
	depth, err := strconv.Atoi(args[0])
	if err != nil || depth < 1 || depth > maxDepth {
		sc.showError(fmt.Errorf("depth must be between 1 and %d", maxDepth))
		return
	}
	sc.depth = depth
	sc.searcher = searcher.NewMinimax(depth, searcher.WithMetrics())
	sc.showMessage(fmt.Sprintf("engine depth set to %d", depth))
}

func (sc *ShellController) showScore() {
	if sc.pos.Total() == 0 {
		sc.showError(errors.New("no game in progress, type new to start one"))
		return
	}
	if sc.pos.GameOver() {
		sc.showMessage(fmt.Sprintf("final score %+d for white", int(sc.pos.FinalScore())))
		return
	}
	sc.showMessage(fmt.Sprintf("stores %d-%d white-black, lead %+d for white",
		sc.pos.Stones(game.WhiteStore), sc.pos.Stones(game.BlackStore), int(sc.pos.HeuristicScore())))
}

func (sc *ShellController) showBoard() {
	if sc.pos.Total() == 0 {
		sc.showError(errors.New("no game in progress, type new to start one"))
		return
	}
	sc.showMessage(clearScreen + Render(sc.pos))
}

// finishIfOver closes out the game once no complete turn remains.
func (sc *ShellController) finishIfOver() bool {
	if !sc.playing || !sc.pos.GameOver() {
		return false
	}
	sc.playing = false

	score := int(sc.pos.FinalScore())
	white := (game.TotalStones + score) / 2
	black := game.TotalStones - white
	switch sc.pos.Winner() {
	case "white":
		sc.showMessage(fmt.Sprintf("game over: white wins %d-%d", white, black))
	case "black":
		sc.showMessage(fmt.Sprintf("game over: black wins %d-%d", black, white))
	default:
		sc.showMessage(fmt.Sprintf("game over: drawn %d-%d", white, black))
	}
	log.Info().Msgf("game over: final score %+d", score)
	return true
}

func showMessage(msg string, w io.Writer) {
	io.WriteString(w, msg)
	io.WriteString(w, "\n")
}

func (sc *ShellController) showMessage(msg string) {
	showMessage(msg, sc.out)
}

func (sc *ShellController) showError(err error) {
	sc.showMessage("Error: " + err.Error())
}
