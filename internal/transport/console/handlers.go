package console

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/usecase"
)

const (
	commandMove = "move"
	commandJump = "jump"
	commandHelp = "help"
	commandQuit = "quit"
	commandExit = "exit"
)

const helpText = `commands:
  <cell> | move <cell>   place the next mark on cell 0-8
  jump <move>            show the board after that move
  help                   show this text
  quit                   leave the game`

// handleLine - runs one command and writes its outcome. The returned error is a write failure only.
func (that *Server) handleLine(line string, r *renderer) (bool, error) {
	log := that.logger.With("method", "handleLine")

	fields := strings.Fields(strings.ToLower(line))
	if len(fields) == 0 {
		return false, nil
	}

	var (
		view *usecase.GameView
		err  error
	)

	switch {
	case fields[0] == commandQuit || fields[0] == commandExit:
		return true, nil
	case fields[0] == commandHelp:
		return false, r.line(helpText)
	case fields[0] == commandMove && len(fields) == 2:
		view, err = that.handleMove(fields[1])
	case fields[0] == commandJump && len(fields) == 2:
		view, err = that.handleJump(fields[1])
	case len(fields) == 1:
		view, err = that.handleMove(fields[0])
	default:
		err = fmt.Errorf("%w: %q", apperror.ErrUnknownCommand, line)
	}

	if err != nil {
		if !errors.Is(err, apperror.ErrInvalidArgument) && !errors.Is(err, apperror.ErrUnknownCommand) {
			log.Error("command failed", "error", err)
		}
		return false, r.errorLine(err)
	}

	return false, r.frame(view)
}

func (that *Server) handleMove(arg string) (*usecase.GameView, error) {
	cell, err := parseNumber(arg)
	if err != nil {
		return nil, err
	}

	view, err := that.manager.MakeTurn(cell)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	return view, nil
}

func (that *Server) handleJump(arg string) (*usecase.GameView, error) {
	move, err := parseNumber(arg)
	if err != nil {
		return nil, err
	}

	view, err := that.manager.JumpTo(move)
	if err != nil {
		return nil, fmt.Errorf("failed to jump: %w", err)
	}

	return view, nil
}

func parseNumber(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", apperror.ErrUnknownCommand, arg)
	}
	return n, nil
}
