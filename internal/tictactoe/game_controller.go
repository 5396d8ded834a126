package tictactoe

import (
	"errors"
	"fmt"
	"iter"

	"github.com/rocketscienceinc/tictactoe-timetravel/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-timetravel/internal/entity"
)

var (
	ErrInvalidCell       = errors.New("invalid cell index")
	ErrInvalidMoveNumber = errors.New("invalid move number")
)

// GameController owns the move history of a single game and the cursor into it.
// It is not safe for concurrent use.
type GameController struct {
	history []entity.Board
	cursor  int
}

func NewGameController() *GameController {
	return &GameController{
		history: []entity.Board{{}},
	}
}

// ApplyMove - places the current mover's mark on cell of the current snapshot.
// It reports false without an error when the game at the cursor is already won or the cell is occupied.
func (that *GameController) ApplyMove(cell int) (bool, error) {
	if cell < 0 || cell >= entity.BoardSize {
		return false, fmt.Errorf("%w: %w: cell %d", apperror.ErrInvalidArgument, ErrInvalidCell, cell)
	}

	base := that.history[that.cursor]
	if entity.Winner(base) != entity.EmptyCell || base[cell] != entity.EmptyCell {
		return false, nil
	}

	next := base
	next[cell] = that.CurrentMover()

	that.history = append(that.history[:that.cursor+1], next)
	that.cursor = len(that.history) - 1

	return true, nil
}

// JumpTo - moves the cursor to an existing move number. History is left untouched.
func (that *GameController) JumpTo(move int) error {
	if move < 0 || move >= len(that.history) {
		return fmt.Errorf("%w: %w: move %d of %d", apperror.ErrInvalidArgument, ErrInvalidMoveNumber, move, len(that.history))
	}

	that.cursor = move

	return nil
}

func (that *GameController) CurrentSnapshot() entity.Board {
	return that.history[that.cursor]
}

func (that *GameController) CurrentMover() entity.Cell {
	return entity.MoverAt(that.cursor)
}

func (that *GameController) Status() entity.Status {
	return entity.StatusOf(that.CurrentSnapshot(), that.CurrentMover())
}

func (that *GameController) Cursor() int {
	return that.cursor
}

func (that *GameController) Len() int {
	return len(that.history)
}

// HistoryView - yields (move number, snapshot) pairs in ascending order.
// Each range over the sequence starts from move 0 and sees the history as it is at that moment.
func (that *GameController) HistoryView() iter.Seq2[int, entity.Board] {
	return func(yield func(int, entity.Board) bool) {
		for move, board := range that.history {
			if !yield(move, board) {
				return
			}
		}
	}
}

func (that *GameController) Moves() iter.Seq[entity.Move] {
	return func(yield func(entity.Move) bool) {
		for move, board := range that.HistoryView() {
			if !yield(entity.Move{Number: move, Board: board}) {
				return
			}
		}
	}
}
