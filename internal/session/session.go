package session

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/board"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/terminal"
)

const welcomeText = "Tic-Tac-Toe"

const helpText = `Commands (abbreviations work, a bare number moves):
  move <cell>  place your mark on cell 0-8
  board        show the board
  score        show the session score
  help         show this help
  quit         leave the game

Cells are numbered row by row:
 0 | 1 | 2
---+---+---
 3 | 4 | 5
---+---+---
 6 | 7 | 8 `

// errQuit ends the session from inside a game.
var errQuit = errors.New("session quit")

// Scoreboard is the slice of the repository the session needs.
type Scoreboard interface {
	Record(ctx context.Context, match *entity.Match) error
	Totals(ctx context.Context) (entity.Totals, error)
}

// Options carry the configured player name defaults.
type Options struct {
	DefaultNameX string
	DefaultNameO string
}

// Session drives one interactive sitting: name entry, one or more games,
// score tallying. It owns no goroutines; Run blocks on its reader.
type Session struct {
	logger  *slog.Logger
	printer *terminal.Printer
	in      *bufio.Scanner
	rng     *rand.Rand
	scores  Scoreboard
	opts    Options

	playerX entity.Player
	playerO entity.Player
}

func New(logger *slog.Logger, in io.Reader, printer *terminal.Printer, rng *rand.Rand, scores Scoreboard, opts Options) *Session {
	return &Session{
		logger:  logger.With("component", "session"),
		printer: printer,
		in:      bufio.NewScanner(in),
		rng:     rng,
		scores:  scores,
		opts:    opts,
	}
}

// Run - greets, reads player names, then plays games until the players stop.
func (that *Session) Run(ctx context.Context) error {
	that.printer.Banner(welcomeText)
	that.printer.Line(helpText)

	nameOne := that.askName("first player", that.opts.DefaultNameX)
	nameTwo := that.askName("second player", that.opts.DefaultNameO)

	for {
		that.assignMarks(nameOne, nameTwo)
		that.printer.Line("%s plays X and goes first; %s plays O.", that.playerX.Name, that.playerO.Name)

		if err := that.playGame(ctx); err != nil {
			if errors.Is(err, errQuit) {
				break
			}

			return err
		}

		if !that.askYesNo("Play again? [y/N] ") {
			break
		}
	}

	that.showScore(ctx)

	return nil
}

// assignMarks - randomizes which player takes X for the next game; X always
// moves first.
func (that *Session) assignMarks(nameOne, nameTwo string) {
	if that.rng.Intn(2) == 0 {
		nameOne, nameTwo = nameTwo, nameOne
	}

	that.playerX = entity.Player{Name: nameOne, Mark: board.TokenX}
	that.playerO = entity.Player{Name: nameTwo, Mark: board.TokenO}
}

// playGame - runs a single game to a terminal state or a quit.
func (that *Session) playGame(ctx context.Context) error {
	gameID := uuid.NewString()
	log := that.logger.With("game_id", gameID)
	log.Debug("game started", "player_x", that.playerX.Name, "player_o", that.playerO.Name)

	b := board.New()
	current, next := that.playerX, that.playerO
	that.printer.Line("%s", b)

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, ok := that.readLine(fmt.Sprintf("%s (%s)> ", current.Name, current.Mark))
		if !ok {
			return errQuit
		}

		cmd, args, err := lookupCommand(line)
		if err != nil {
			that.printer.Error("%v", err)
			continue
		}

		switch cmd {
		case cmdMove:
			index, err := parseCell(args)
			if err != nil {
				that.printer.Error("%v", err)
				continue
			}

			if b.IsOutOfBounds(index) {
				that.printer.Error("%v: %d (valid cells are 0-8)", apperror.ErrCellOutOfBounds, index)
				continue
			}

			if b.IsOccupied(index) {
				that.printer.Error("%v: %d", apperror.ErrCellOccupied, index)
				continue
			}

			b = b.Place(current.Mark, index)
			that.printer.Line("%s", b)
			log.Debug("move applied", "player", current.Name, "mark", current.Mark, "cell", index)

			if b.IsGameOver() {
				that.finishGame(ctx, gameID, b)
				return nil
			}

			current, next = next, current

		case cmdBoard:
			that.printer.Line("%s", b)

		case cmdScore:
			that.showScore(ctx)

		case cmdHelp:
			that.printer.Line(helpText)

		case cmdQuit:
			log.Debug("game abandoned")
			return errQuit
		}
	}
}

// finishGame - announces the result and records it on the scoreboard.
func (that *Session) finishGame(ctx context.Context, gameID string, b board.Board) {
	winner := b.Winner()

	switch winner {
	case board.TokenX:
		that.printer.Line("%s wins!", that.playerX.Name)
	case board.TokenO:
		that.printer.Line("%s wins!", that.playerO.Name)
	default:
		that.printer.Line("Stalemate - nobody can win this one.")
	}

	match := &entity.Match{
		ID:      gameID,
		PlayerX: that.playerX.Name,
		PlayerO: that.playerO.Name,
		Winner:  winner,
		Cells:   b.Cells(),
	}

	if err := that.scores.Record(ctx, match); err != nil {
		that.logger.Error("failed to record match", "game_id", gameID, "error", err)
	}
}

func (that *Session) showScore(ctx context.Context) {
	totals, err := that.scores.Totals(ctx)
	if err != nil {
		that.printer.Error("failed to read score: %v", err)
		return
	}

	that.printer.Line("Games: %d  X wins: %d  O wins: %d  Draws: %d",
		totals.Games, totals.WinsX, totals.WinsO, totals.Draws)
}

// readLine - prompts and reads one trimmed line; ok is false on EOF.
func (that *Session) readLine(prompt string) (string, bool) {
	that.printer.Prompt(prompt)

	if !that.in.Scan() {
		return "", false
	}

	return strings.TrimSpace(that.in.Text()), true
}

func (that *Session) askName(label, fallback string) string {
	line, ok := that.readLine(fmt.Sprintf("Name of the %s [%s]: ", label, fallback))
	if !ok || line == "" {
		return fallback
	}

	return line
}

func (that *Session) askYesNo(prompt string) bool {
	line, ok := that.readLine(prompt)
	if !ok {
		return false
	}

	switch strings.ToLower(line) {
	case "y", "yes":
		return true
	default:
		return false
	}
}
