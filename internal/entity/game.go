package entity

import "fmt"

const BoardSize = 9

var WinCombos = [8][3]int{
	{0, 1, 2},
	{3, 4, 5},
	{6, 7, 8},
	{0, 3, 6},
	{1, 4, 7},
	{2, 5, 8},
	{0, 4, 8},
	{2, 4, 6},
}

// Board is a row-major 3x3 grid. Boards are values, so every copy is an independent snapshot.
type Board [BoardSize]Cell

// Winner - returns the occupant of the first complete line, or EmptyCell if there is none.
func Winner(board Board) Cell {
	line, ok := WinningLine(board)
	if !ok {
		return EmptyCell
	}
	return board[line[0]]
}

// WinningLine - returns the first line in WinCombos order whose three cells are occupied by the same player.
func WinningLine(board Board) ([3]int, bool) {
	for _, combo := range WinCombos {
		a, b, c := board[combo[0]], board[combo[1]], board[combo[2]]
		if a != EmptyCell && a == b && b == c {
			return combo, true
		}
	}
	return [3]int{}, false
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == EmptyCell {
			return false
		}
	}
	return true
}

// Occupied - counts non-empty cells.
func (that Board) Occupied() int {
	count := 0
	for _, cell := range that {
		if cell != EmptyCell {
			count++
		}
	}
	return count
}

type StatusKind uint8

const (
	StatusInProgress StatusKind = iota
	StatusWinner
	StatusDraw
)

// Status describes a snapshot. Player holds the next mover while the game is in progress,
// the winner once someone has won, and EmptyCell on a draw.
type Status struct {
	Kind   StatusKind
	Player Cell
}

// StatusOf - derives the status of board when mover is the player to place the next mark.
func StatusOf(board Board, mover Cell) Status {
	if winner := Winner(board); winner != EmptyCell {
		return Status{Kind: StatusWinner, Player: winner}
	}

	if board.IsFull() {
		return Status{Kind: StatusDraw}
	}

	return Status{Kind: StatusInProgress, Player: mover}
}

func (that Status) IsFinished() bool {
	return that.Kind != StatusInProgress
}

func (that Status) String() string {
	switch that.Kind {
	case StatusWinner:
		return "Winner: " + that.Player.String()
	case StatusDraw:
		return "Draw"
	default:
		return "Next player: " + that.Player.String()
	}
}

// Move is one entry of the move list: the board reached after Number moves.
type Move struct {
	Number int
	Board  Board
}

func (that Move) Description() string {
	if that.Number == 0 {
		return "Go to game start"
	}
	return fmt.Sprintf("Go to move #%d", that.Number)
}
