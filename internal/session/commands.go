package session

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

type command int

const (
	cmdMove command = iota
	cmdBoard
	cmdScore
	cmdHelp
	cmdQuit
)

var errMoveUsage = errors.New("usage: move <cell>")

// commandNames in lookup order; any unique prefix of a name is accepted as
// an abbreviation.
var commandNames = []struct {
	name string
	cmd  command
}{
	{"move", cmdMove},
	{"board", cmdBoard},
	{"score", cmdScore},
	{"help", cmdHelp},
	{"quit", cmdQuit},
}

// lookupCommand - resolves one input line into a command and its arguments.
// A bare cell number is shorthand for "move <cell>".
func lookupCommand(line string) (command, []string, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return 0, nil, apperror.ErrUnknownCommand
	}

	word := strings.ToLower(fields[0])
	if _, err := strconv.Atoi(word); err == nil {
		return cmdMove, fields, nil
	}

	var matched []command
	for _, entry := range commandNames {
		if entry.name == word {
			return entry.cmd, fields[1:], nil
		}

		if strings.HasPrefix(entry.name, word) {
			matched = append(matched, entry.cmd)
		}
	}

	switch len(matched) {
	case 1:
		return matched[0], fields[1:], nil
	case 0:
		return 0, nil, fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, word)
	default:
		return 0, nil, fmt.Errorf("%w: %q", apperror.ErrAmbiguousCommand, word)
	}
}

// parseCell - extracts the cell index from move arguments.
func parseCell(args []string) (int, error) {
	if len(args) != 1 {
		return 0, errMoveUsage
	}

	index, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, fmt.Errorf("%q is not a cell number: %w", args[0], errMoveUsage)
	}

	return index, nil
}
